// Package types defines the core data model shared by the scanner, the
// resolution policy, the transfer engine and the run loop.
package types

// Mode is the immutable flag set for a single run. Exactly one strategy is
// derived from it per collision; force, skip-existing and backup are
// precedence tiers (force > skip-existing > backup > interactive), not
// mutually exclusive at parse time.
type Mode struct {
	DryRun       bool
	Force        bool
	SkipExisting bool
	Backup       bool
	Interactive  bool
	BatchMode    bool
	Verbosity    int
}

// FileEntry describes one installable agent file. Identity is the filename,
// case-sensitive; enumeration is flat, subdirectories are never traversed.
type FileEntry struct {
	Name       string
	SourcePath string
	DestPath   string

	// Collides is true when a same-named file already exists at the
	// destination. Computed once before transfer begins, not re-checked
	// per file at transfer time.
	Collides bool
}

// Decision is the resolution for a single collision.
type Decision int

const (
	DecisionSkip Decision = iota
	DecisionOverwrite
	DecisionBackup
	// DecisionQuit terminates the whole run immediately, not just the
	// current file.
	DecisionQuit
)

// String implements fmt.Stringer
func (d Decision) String() string {
	switch d {
	case DecisionSkip:
		return "skip"
	case DecisionOverwrite:
		return "overwrite"
	case DecisionBackup:
		return "backup"
	case DecisionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the result of applying a decision to one file.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeInstalled
	OutcomeFailed
)

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeInstalled:
		return "installed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BatchState remembers an apply-to-all choice for the remainder of a run.
// It is set at most once and never cleared; the run loop threads it through
// resolution calls explicitly instead of holding it in a global.
type BatchState struct {
	choice Decision
	set    bool
}

// Set records the batch-wide choice. The first call wins; later calls are
// ignored so a remembered choice cannot be replaced mid-run.
func (b *BatchState) Set(d Decision) {
	if b.set {
		return
	}
	b.choice = d
	b.set = true
}

// Get returns the remembered choice and whether one has been recorded.
func (b *BatchState) Get() (Decision, bool) {
	return b.choice, b.set
}

// Report accumulates per-file outcomes. Counters are owned by the run loop
// and only ever increase.
type Report struct {
	Installed int
	Skipped   int
	Failed    int
}

// Record counts one outcome.
func (r *Report) Record(o Outcome) {
	switch o {
	case OutcomeInstalled:
		r.Installed++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}

// Total returns the number of files processed.
func (r *Report) Total() int {
	return r.Installed + r.Skipped + r.Failed
}
