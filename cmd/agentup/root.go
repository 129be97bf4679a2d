package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/agentup/agentup/pkg/errors"
	"github.com/agentup/agentup/pkg/install"
	"github.com/agentup/agentup/pkg/logging"
	"github.com/agentup/agentup/pkg/types"
)

var (
	verbosity    int
	dryRun       bool
	force        bool
	backup       bool
	skipExisting bool
	interactive  bool
	batchMode    bool
	rootHint     string
)

// NewRootCmd builds the command tree. The root command runs the install;
// the explicit install subcommand is an alias for scripts that prefer it.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agentup",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runInstall,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&rootHint, "root", "", "Repository root (default: discovered via git)")

	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview actions without writing anything")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files without prompting")
	rootCmd.Flags().BoolVarP(&backup, "backup", "b", false, "Back up existing files before overwriting")
	rootCmd.Flags().BoolVarP(&skipExisting, "skip-existing", "s", false, "Leave existing files untouched without prompting")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Resolve collisions at an interactive prompt (default on a terminal)")
	rootCmd.Flags().BoolVar(&batchMode, "batch-mode", false, "Offer an apply-to-all choice at the interactive prompt")

	installCmd := &cobra.Command{
		Use:   "install",
		Short: MsgInstallShort,
		RunE:  runInstall,
	}
	installCmd.Flags().AddFlagSet(rootCmd.Flags())

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runInstall(cmd *cobra.Command, args []string) error {
	mode := buildMode()
	logger := logging.GetLogger("cmd.install")
	logger.Debug().
		Bool("dryRun", mode.DryRun).
		Bool("force", mode.Force).
		Bool("skipExisting", mode.SkipExisting).
		Bool("backup", mode.Backup).
		Bool("interactive", mode.Interactive).
		Bool("batchMode", mode.BatchMode).
		Msg("Starting install")

	result, err := install.Run(install.Options{
		RootHint: rootHint,
		Mode:     mode,
	})
	if err != nil {
		return err
	}

	// Operator quit: remaining files untouched, no summary, clean exit
	if result.Quit {
		return nil
	}

	install.PrintSummary(os.Stdout, result)

	if result.Report.Failed > 0 {
		return errors.Newf(errors.ErrFileCopy, "%d file(s) failed to install", result.Report.Failed)
	}
	return nil
}

// buildMode assembles the immutable mode record from the flags. Force,
// skip-existing and backup are not mutually exclusive at parse time; the
// resolution policy applies them in priority order. Interactive defaults to
// whether stdin is a terminal.
func buildMode() types.Mode {
	return types.Mode{
		DryRun:       dryRun,
		Force:        force,
		SkipExisting: skipExisting,
		Backup:       backup,
		Interactive:  interactive || isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		BatchMode:    batchMode,
		Verbosity:    verbosity,
	}
}
