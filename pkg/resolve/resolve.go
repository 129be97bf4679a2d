// Package resolve decides what happens to each collision: skip, overwrite,
// backup, or quit. Flags resolve deterministically; interactive mode asks
// the operator through a Prompter.
package resolve

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentup/agentup/pkg/logging"
	"github.com/agentup/agentup/pkg/types"
)

// Resolve yields the decision for one colliding file. Priority order, first
// match wins:
//
//	dry-run > force > skip-existing > backup > interactive > skip
//
// Dry run always resolves to Overwrite so the report reflects the action a
// real run would take, never a silent skip. The function performs no
// filesystem writes; its only side effects are the prompter I/O and the
// batch-state mutation in the interactive branch.
func Resolve(entry types.FileEntry, mode types.Mode, batch *types.BatchState, prompter Prompter) (types.Decision, error) {
	logger := logging.GetLogger("resolve")

	switch {
	case mode.DryRun:
		return types.DecisionOverwrite, nil
	case mode.Force:
		return types.DecisionOverwrite, nil
	case mode.SkipExisting:
		return types.DecisionSkip, nil
	case mode.Backup:
		return types.DecisionBackup, nil
	case mode.Interactive:
		if mode.BatchMode {
			if remembered, ok := batch.Get(); ok {
				logger.Debug().
					Str("file", entry.Name).
					Stringer("decision", remembered).
					Msg("Applying remembered batch choice")
				return remembered, nil
			}
		}

		decision, applyAll, err := promptCollision(entry, mode.BatchMode, prompter)
		if err == io.EOF {
			// Closed stdin mid-prompt reads as the operator walking
			// away; treat it as a clean quit.
			return types.DecisionQuit, nil
		}
		if err != nil {
			return types.DecisionQuit, err
		}
		if applyAll && mode.BatchMode {
			batch.Set(decision)
		}
		return decision, nil
	default:
		// Non-interactive fallback: leave existing files alone
		return types.DecisionSkip, nil
	}
}

// promptCollision runs the interactive prompt loop for one file. Diff is
// not a terminal choice: it displays the comparison and the loop continues.
// Invalid input re-prompts without advancing state. An apply-to-all answer
// opens a sub-prompt restricted to skip/overwrite/backup.
func promptCollision(entry types.FileEntry, batchMode bool, prompter Prompter) (types.Decision, bool, error) {
	options := "[o]verwrite, [s]kip, [b]ackup, [d]iff, [q]uit"
	if batchMode {
		options += ", [a]pply to all"
	}

	for {
		answer, err := prompter.Ask(fmt.Sprintf("%s already exists. %s: ", entry.Name, options))
		if err != nil {
			return types.DecisionQuit, false, err
		}

		switch normalize(answer) {
		case "o", "overwrite":
			return types.DecisionOverwrite, false, nil
		case "s", "skip":
			return types.DecisionSkip, false, nil
		case "b", "backup":
			return types.DecisionBackup, false, nil
		case "q", "quit":
			return types.DecisionQuit, false, nil
		case "d", "diff":
			rendered, diffErr := RenderDiff(entry)
			if diffErr != nil {
				prompter.Show(fmt.Sprintf("could not diff %s: %v", entry.Name, diffErr))
				continue
			}
			prompter.Show(rendered)
		case "a", "all":
			if !batchMode {
				prompter.Show(invalidNotice(answer))
				continue
			}
			decision, err := promptApplyAll(prompter)
			if err != nil {
				return types.DecisionQuit, false, err
			}
			return decision, true, nil
		default:
			prompter.Show(invalidNotice(answer))
		}
	}
}

// promptApplyAll asks which decision to apply to all remaining collisions.
// Quit and diff are not offered here; invalid input re-prompts this
// sub-prompt only.
func promptApplyAll(prompter Prompter) (types.Decision, error) {
	for {
		answer, err := prompter.Ask("Apply to all remaining: [o]verwrite, [s]kip, [b]ackup: ")
		if err != nil {
			return types.DecisionQuit, err
		}

		switch normalize(answer) {
		case "o", "overwrite":
			return types.DecisionOverwrite, nil
		case "s", "skip":
			return types.DecisionSkip, nil
		case "b", "backup":
			return types.DecisionBackup, nil
		default:
			prompter.Show(invalidNotice(answer))
		}
	}
}

func invalidNotice(answer string) string {
	return fmt.Sprintf("invalid choice %q", strings.TrimSpace(answer))
}

func normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
