// Package transfer executes resolved decisions: copy, backup-then-copy, or
// no-op, with a dry-run mode that mutates nothing but reports the outcome a
// real run would produce.
package transfer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agentup/agentup/pkg/errors"
	"github.com/agentup/agentup/pkg/logging"
	"github.com/agentup/agentup/pkg/types"
)

// Transferer applies decisions to individual files.
type Transferer struct {
	backupSuffix string
	dryRun       bool

	// now is a seam for tests that need deterministic backup names
	now func() time.Time
}

// New creates a Transferer. backupSuffix is the infix for timestamped
// backups: <dest>.<suffix>.<unix-seconds>.
func New(backupSuffix string, dryRun bool) *Transferer {
	return &Transferer{
		backupSuffix: backupSuffix,
		dryRun:       dryRun,
		now:          time.Now,
	}
}

// Apply executes the decision for one file and returns the outcome. In dry
// run no filesystem mutation occurs for any decision; the returned outcome
// is still the one a real run would produce. Per-file errors are returned
// alongside OutcomeFailed so the run loop can count them and continue.
func (t *Transferer) Apply(entry types.FileEntry, decision types.Decision) (types.Outcome, error) {
	logger := logging.GetLogger("transfer")

	switch decision {
	case types.DecisionSkip:
		logger.Debug().Str("file", entry.Name).Msg("Skipping")
		return types.OutcomeSkipped, nil

	case types.DecisionOverwrite:
		if t.dryRun {
			logger.Info().Str("file", entry.Name).Msg("Would install")
			return types.OutcomeInstalled, nil
		}
		if err := copyFile(entry.SourcePath, entry.DestPath); err != nil {
			return types.OutcomeFailed, errors.Wrapf(err, errors.ErrFileCopy, "failed to install %s", entry.Name)
		}
		logger.Info().Str("file", entry.Name).Str("dest", entry.DestPath).Msg("Installed")
		return types.OutcomeInstalled, nil

	case types.DecisionBackup:
		if t.dryRun {
			logger.Info().Str("file", entry.Name).Msg("Would back up and install")
			return types.OutcomeInstalled, nil
		}
		if err := t.backup(entry); err != nil {
			// Never overwrite without a successful backup
			return types.OutcomeFailed, err
		}
		if err := copyFile(entry.SourcePath, entry.DestPath); err != nil {
			return types.OutcomeFailed, errors.Wrapf(err, errors.ErrFileCopy, "failed to install %s", entry.Name)
		}
		logger.Info().Str("file", entry.Name).Str("dest", entry.DestPath).Msg("Installed with backup")
		return types.OutcomeInstalled, nil

	case types.DecisionQuit:
		// The run loop short-circuits on quit before reaching here
		return types.OutcomeFailed, errors.Newf(errors.ErrInternal, "quit decision passed to transfer for %s", entry.Name)

	default:
		return types.OutcomeFailed, errors.Newf(errors.ErrInternal, "unknown decision %d for %s", decision, entry.Name)
	}
}

// BackupPath returns the timestamped backup path for a destination file.
// Second-granularity wall clock keeps repeated runs distinguishable.
func (t *Transferer) BackupPath(destPath string) string {
	return fmt.Sprintf("%s.%s.%d", destPath, t.backupSuffix, t.now().Unix())
}

// backup copies the current destination file aside before it is replaced.
// A missing destination means there is nothing to preserve.
func (t *Transferer) backup(entry types.FileEntry) error {
	logger := logging.GetLogger("transfer")

	if _, err := os.Stat(entry.DestPath); os.IsNotExist(err) {
		return nil
	}

	backupPath := t.BackupPath(entry.DestPath)
	if err := copyFile(entry.DestPath, backupPath); err != nil {
		return errors.Wrapf(err, errors.ErrBackupFailed, "failed to back up %s", entry.Name)
	}

	logger.Info().Str("file", entry.Name).Str("backup", backupPath).Msg("Created backup")
	return nil
}

// copyFile copies src to dst byte for byte, replacing dst if present
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
