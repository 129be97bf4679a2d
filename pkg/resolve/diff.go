package resolve

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/agentup/agentup/pkg/errors"
	"github.com/agentup/agentup/pkg/types"
)

var (
	diffHeaderStyle = lipgloss.NewStyle().Bold(true)
	diffAddStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
	diffDelStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"})
)

// RenderDiff produces a line-oriented comparison between the destination
// file (old) and the source file (new): removed lines prefixed with "-",
// added lines with "+", unchanged lines with two spaces.
func RenderDiff(entry types.FileEntry) (string, error) {
	oldBytes, err := os.ReadFile(entry.DestPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", entry.DestPath)
	}
	newBytes, err := os.ReadFile(entry.SourcePath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", entry.SourcePath)
	}

	var b strings.Builder
	b.WriteString(diffDelStyle.Render(diffHeaderStyle.Render("--- " + entry.DestPath + " (current)")))
	b.WriteString("\n")
	b.WriteString(diffAddStyle.Render(diffHeaderStyle.Render("+++ " + entry.SourcePath + " (incoming)")))
	b.WriteString("\n")

	for _, diff := range diffLines(string(oldBytes), string(newBytes)) {
		lines := splitLines(diff.Text)
		for _, line := range lines {
			switch diff.Type {
			case diffmatchpatch.DiffInsert:
				b.WriteString(diffAddStyle.Render("+" + line))
			case diffmatchpatch.DiffDelete:
				b.WriteString(diffDelStyle.Render("-" + line))
			case diffmatchpatch.DiffEqual:
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// diffLines runs diffmatchpatch in line mode so whole lines move as units
func diffLines(oldText, newText string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lineIndex := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(oldRunes, newRunes, false)
	return dmp.DiffCharsToLines(diffs, lineIndex)
}

func splitLines(text string) []string {
	trimmed := strings.TrimSuffix(text, "\n")
	if trimmed == "" && text != "" {
		// The chunk was a bare newline
		return []string{""}
	}
	return strings.Split(trimmed, "\n")
}
