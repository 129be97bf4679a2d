package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/agentup/agentup/pkg/config"
	"github.com/agentup/agentup/pkg/errors"
	"github.com/agentup/agentup/pkg/paths"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <agent>",
		Short: MsgShowShort,
		Long:  MsgShowLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			p, err := paths.New(rootHint, cfg)
			if err != nil {
				return err
			}
			if err := p.ValidateSource(); err != nil {
				return err
			}

			path, err := findAgentFile(p.SourceDir(), args[0], cfg.Pattern)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
			}

			rendered, err := renderMarkdown(string(content))
			if err != nil {
				// Fall back to plain output rather than failing the command
				fmt.Fprint(cmd.OutOrStdout(), string(content))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

// findAgentFile locates an agent by name, with or without the extension
// implied by the installable-file pattern.
func findAgentFile(sourceDir, name, pattern string) (string, error) {
	candidates := []string{name}
	if ext := strings.TrimPrefix(pattern, "*"); ext != "" && !strings.HasSuffix(name, ext) {
		candidates = append(candidates, name+ext)
	}

	for _, candidate := range candidates {
		path := filepath.Join(sourceDir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", errors.Newf(errors.ErrSourceNotFound, "no agent named %q in %s", name, sourceDir)
}

func renderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
