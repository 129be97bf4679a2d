package install

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/agentup/agentup/pkg/scan"
	"github.com/agentup/agentup/pkg/types"
)

var (
	successStyle = pterm.NewStyle(pterm.FgGreen)
	warnStyle    = pterm.NewStyle(pterm.FgYellow)
	errorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	noticeStyle  = pterm.NewStyle(pterm.FgCyan)
)

// styled applies a pterm style only when stdout is a terminal
func styled(style *pterm.Style, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return style.Sprint(s)
}

// printPreflight warns about collisions before any transfer starts.
func printPreflight(out io.Writer, entries []types.FileEntry, mode types.Mode) {
	collisions := scan.Collisions(entries)
	if len(collisions) == 0 {
		return
	}

	fmt.Fprintln(out, styled(warnStyle, fmt.Sprintf("%d file(s) already exist at the destination:", len(collisions))))
	for _, entry := range collisions {
		fmt.Fprintf(out, "  %s\n", entry.Name)
	}
	if mode.DryRun {
		fmt.Fprintln(out, styled(noticeStyle, "Dry run: reporting intended actions only."))
	}
}

// PrintSummary emits the final report: counters, the dry-run notice, and
// any validation warnings. Not called after an operator quit.
func PrintSummary(out io.Writer, result *Result) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %d installed, %d skipped, %d failed\n",
		styled(successStyle, "Done:"),
		result.Report.Installed, result.Report.Skipped, result.Report.Failed)

	if result.DryRun {
		fmt.Fprintln(out, styled(noticeStyle, "Dry run: no files were written."))
	}

	if result.Report.Failed > 0 {
		fmt.Fprintln(out, styled(errorStyle, fmt.Sprintf("%d file(s) failed to install.", result.Report.Failed)))
	}

	for _, name := range result.Missing {
		fmt.Fprintln(out, styled(warnStyle, fmt.Sprintf("warning: %s is missing from the destination", name)))
	}
}
