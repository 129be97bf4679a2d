package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/agentup/agentup/pkg/config"
	"github.com/agentup/agentup/pkg/paths"
	"github.com/agentup/agentup/pkg/scan"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
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

			entries, err := scan.Scan(p.SourceDir(), p.DestDir(), cfg.Pattern)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				pterm.Println("No agent files found.")
				return nil
			}

			data := pterm.TableData{{"AGENT", "STATUS"}}
			for _, entry := range entries {
				status := pterm.FgGreen.Sprint("new")
				if entry.Collides {
					status = pterm.FgYellow.Sprint("exists")
				}
				data = append(data, []string{entry.Name, status})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
}
