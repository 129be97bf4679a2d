package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, ".opencode/agent", cfg.SourceDir)
	assert.Equal(t, "opencode/agent", cfg.DestDir)
	assert.Equal(t, "*.md", cfg.Pattern)
	assert.Equal(t, "bak", cfg.BackupSuffix)
}

func TestLoadMissingUserFileIsNotAnError(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "*.md", cfg.Pattern)
}

func TestLoadUserFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[install]\npattern = \"*.markdown\"\nbackup_suffix = \"orig\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "*.markdown", cfg.Pattern)
	assert.Equal(t, "orig", cfg.BackupSuffix)
	// Untouched keys keep their defaults
	assert.Equal(t, ".opencode/agent", cfg.SourceDir)
}

func TestLoadInvalidUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("AGENTUP_INSTALL_SOURCE_DIR", ".agents/defs")
	t.Setenv("AGENTUP_INSTALL_PATTERN", "*.txt")

	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, ".agents/defs", cfg.SourceDir)
	assert.Equal(t, "*.txt", cfg.Pattern)
}

func TestEnvKeyTransform(t *testing.T) {
	assert.Equal(t, "install.source_dir", envKeyTransform("AGENTUP_INSTALL_SOURCE_DIR"))
	assert.Equal(t, "install.pattern", envKeyTransform("AGENTUP_INSTALL_PATTERN"))
}
