// Package config loads agentup's layered configuration: embedded defaults,
// then the optional user config file, then AGENTUP_* environment variables.
// Later layers win.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/agentup/agentup/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// UserConfigName is the filename of the optional user configuration file,
// looked up under XDG_CONFIG_HOME/agentup/.
const UserConfigName = "config.toml"

// envPrefix namespaces the environment variable layer
const envPrefix = "AGENTUP_"

// Config holds the resolved installation settings.
type Config struct {
	// SourceDir is the agent directory relative to the repository root
	SourceDir string
	// DestDir is the destination directory relative to XDG_CONFIG_HOME
	DestDir string
	// Pattern matches installable files in the source directory
	Pattern string
	// BackupSuffix is the infix for timestamped backup files
	BackupSuffix string
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "raw bytes provider does not support Read")
}

// Load builds the configuration from all layers.
func Load() (*Config, error) {
	return LoadFrom(userConfigPath())
}

// LoadFrom builds the configuration with an explicit user config path.
// A missing file is not an error; a present but unparsable one is.
func LoadFrom(userConfig string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	if userConfig != "" {
		if _, err := os.Stat(userConfig); err == nil {
			if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load user config from %s", userConfig)
			}
		}
	}

	// AGENTUP_INSTALL_SOURCE_DIR -> install.source_dir style mapping.
	// The key namespace is flat enough that a plain lowercase transform
	// with the first underscore as the section separator is sufficient.
	if err := k.Load(env.Provider(envPrefix, ".", envKeyTransform), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	cfg := &Config{
		SourceDir:    k.String("install.source_dir"),
		DestDir:      k.String("install.dest_dir"),
		Pattern:      k.String("install.pattern"),
		BackupSuffix: k.String("install.backup_suffix"),
	}

	if cfg.SourceDir == "" || cfg.DestDir == "" || cfg.Pattern == "" {
		return nil, errors.New(errors.ErrConfigLoad, "configuration is missing required install keys")
	}

	return cfg, nil
}

// envKeyTransform maps AGENTUP_INSTALL_SOURCE_DIR to install.source_dir
func envKeyTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	parts := strings.SplitN(key, "_", 2)
	if len(parts) == 2 {
		return parts[0] + "." + parts[1]
	}
	return key
}

// userConfigPath returns the default location of the user config file
func userConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "agentup", UserConfigName)
}
