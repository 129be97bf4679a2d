// Package install orchestrates a full run: dependency check, path
// resolution, collision scan, per-file decision and transfer, report
// accumulation and the post-run validation pass.
package install

import (
	"io"
	"os"

	"github.com/agentup/agentup/pkg/config"
	"github.com/agentup/agentup/pkg/errors"
	"github.com/agentup/agentup/pkg/logging"
	"github.com/agentup/agentup/pkg/paths"
	"github.com/agentup/agentup/pkg/resolve"
	"github.com/agentup/agentup/pkg/scan"
	"github.com/agentup/agentup/pkg/transfer"
	"github.com/agentup/agentup/pkg/types"
)

// Options configures a run.
type Options struct {
	// RootHint overrides repository root discovery when non-empty
	RootHint string

	// Mode is the flag set for this run
	Mode types.Mode

	// Config provides directories and patterns; loaded from the standard
	// layers when nil
	Config *config.Config

	// Prompter answers interactive prompts; a console prompter is used
	// when nil
	Prompter resolve.Prompter

	// Out receives preflight warnings; defaults to stdout
	Out io.Writer
}

// Result is the outcome of a run.
type Result struct {
	Report  types.Report
	Entries []types.FileEntry

	// Quit is true when the operator aborted the run; remaining files
	// were not touched and no summary should be shown
	Quit bool

	// Missing lists source files absent from the destination after the
	// run, found by the validation pass. Warnings, never failures.
	Missing []string

	DryRun bool
}

// Run processes every installable agent file sequentially, one at a time,
// in enumeration order. Fatal setup errors return before any file is
// touched; per-file transfer errors are counted as failed and processing
// continues.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("install")

	if err := paths.CheckGit(); err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	p, err := paths.New(opts.RootHint, cfg)
	if err != nil {
		return nil, err
	}
	if p.UsedFallback() {
		logger.Warn().Str("root", p.RepoRoot()).Msg("No repository found, using current directory")
	}

	if err := p.ValidateSource(); err != nil {
		return nil, err
	}

	entries, err := scan.Scan(p.SourceDir(), p.DestDir(), cfg.Pattern)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.Newf(errors.ErrNoAgentFiles,
			"no %s files found in %s; nothing to install", cfg.Pattern, p.SourceDir())
	}

	// Dry run must leave the filesystem byte-identical, including a
	// destination directory that does not exist yet.
	if !opts.Mode.DryRun {
		if err := p.EnsureDest(); err != nil {
			return nil, err
		}
	}

	printPreflight(out, entries, opts.Mode)

	prompter := opts.Prompter
	if prompter == nil {
		prompter = resolve.NewConsolePrompter()
	}

	result := &Result{Entries: entries, DryRun: opts.Mode.DryRun}
	batch := &types.BatchState{}
	transferer := transfer.New(cfg.BackupSuffix, opts.Mode.DryRun)

	for _, entry := range entries {
		decision := types.DecisionOverwrite
		if entry.Collides {
			decision, err = resolve.Resolve(entry, opts.Mode, batch, prompter)
			if err != nil {
				return nil, err
			}
		}

		if decision == types.DecisionQuit {
			logger.Info().Str("file", entry.Name).Msg("Run aborted by operator")
			result.Quit = true
			return result, nil
		}

		outcome, applyErr := transferer.Apply(entry, decision)
		result.Report.Record(outcome)
		if applyErr != nil {
			logger.Error().Err(applyErr).Str("file", entry.Name).Msg("Transfer failed")
		}
	}

	if !opts.Mode.DryRun {
		result.Missing = validate(entries)
	}

	return result, nil
}

// validate confirms every source file now exists at its destination. A
// missing file is a warning for the operator, not a run failure.
func validate(entries []types.FileEntry) []string {
	var missing []string
	for _, entry := range entries {
		info, err := os.Stat(entry.DestPath)
		if err != nil || info.IsDir() {
			missing = append(missing, entry.Name)
		}
	}
	return missing
}
