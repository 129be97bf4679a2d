package resolve

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/agentup/agentup/pkg/errors"
)

// Prompter abstracts the blocking console read so the resolution policy can
// be tested with scripted responses.
type Prompter interface {
	// Ask presents a prompt and returns the operator's answer line.
	// io.EOF-equivalent conditions surface as a quit decision upstream.
	Ask(prompt string) (string, error)

	// Show displays informational content (diff output, error notices)
	// without consuming a prompt turn.
	Show(content string)
}

// ConsolePrompter reads answers line by line from an input stream,
// normally stdin. The read blocks with no timeout; an unattended
// interactive run can hang, which is accepted for an operator-driven tool.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsolePrompter creates a prompter on stdin/stdout.
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// NewConsolePrompterWith creates a prompter on explicit streams.
func NewConsolePrompterWith(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask implements Prompter. EOF on a closed stdin is reported as-is so the
// caller can treat it as a clean quit rather than a failure.
func (p *ConsolePrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, pterm.FgCyan.Sprint(prompt))

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			// A partial line before EOF still counts as an answer
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, nil
			}
			return "", err
		}
		return "", errors.Wrap(err, errors.ErrPromptFailed, "failed to read prompt answer")
	}

	return strings.TrimSpace(line), nil
}

// Show implements Prompter
func (p *ConsolePrompter) Show(content string) {
	fmt.Fprintln(p.out, content)
}
