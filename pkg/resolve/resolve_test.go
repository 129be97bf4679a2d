package resolve

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentup/agentup/pkg/types"
)

// scriptedPrompter returns predetermined answers and records what it was
// asked and shown.
type scriptedPrompter struct {
	answers []string
	asks    []string
	shown   []string
}

func (p *scriptedPrompter) Ask(prompt string) (string, error) {
	p.asks = append(p.asks, prompt)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Show(content string) {
	p.shown = append(p.shown, content)
}

func collidingEntry(t *testing.T) types.FileEntry {
	t.Helper()
	srcDir := t.TempDir()
	destDir := t.TempDir()
	srcPath := filepath.Join(srcDir, "reviewer.md")
	destPath := filepath.Join(destDir, "reviewer.md")
	require.NoError(t, os.WriteFile(srcPath, []byte("new line\nshared line\n"), 0644))
	require.NoError(t, os.WriteFile(destPath, []byte("old line\nshared line\n"), 0644))
	return types.FileEntry{Name: "reviewer.md", SourcePath: srcPath, DestPath: destPath, Collides: true}
}

func TestResolvePriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		mode types.Mode
		want types.Decision
	}{
		{"dry run wins over everything", types.Mode{DryRun: true, Force: true, SkipExisting: true, Backup: true}, types.DecisionOverwrite},
		{"dry run with backup still reports overwrite", types.Mode{DryRun: true, Backup: true}, types.DecisionOverwrite},
		{"force", types.Mode{Force: true}, types.DecisionOverwrite},
		{"force wins over skip-existing", types.Mode{Force: true, SkipExisting: true}, types.DecisionOverwrite},
		{"skip-existing", types.Mode{SkipExisting: true}, types.DecisionSkip},
		{"skip-existing wins over backup", types.Mode{SkipExisting: true, Backup: true}, types.DecisionSkip},
		{"backup", types.Mode{Backup: true}, types.DecisionBackup},
		{"backup wins over interactive", types.Mode{Backup: true, Interactive: true}, types.DecisionBackup},
		{"no flags falls back to skip", types.Mode{}, types.DecisionSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &scriptedPrompter{}
			batch := &types.BatchState{}

			decision, err := Resolve(collidingEntry(t), tt.mode, batch, prompter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decision)
			assert.Empty(t, prompter.asks, "no prompt should be invoked for deterministic modes")
		})
	}
}

func TestResolveInteractiveChoices(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   types.Decision
	}{
		{"overwrite", "o", types.DecisionOverwrite},
		{"overwrite full word", "overwrite", types.DecisionOverwrite},
		{"skip", "s", types.DecisionSkip},
		{"backup", "B", types.DecisionBackup},
		{"quit", "q", types.DecisionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &scriptedPrompter{answers: []string{tt.answer}}
			batch := &types.BatchState{}

			decision, err := Resolve(collidingEntry(t), types.Mode{Interactive: true}, batch, prompter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decision)
			assert.Len(t, prompter.asks, 1)
		})
	}
}

func TestResolveInvalidInputReprompts(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"x", "", "s"}}
	batch := &types.BatchState{}

	decision, err := Resolve(collidingEntry(t), types.Mode{Interactive: true}, batch, prompter)
	require.NoError(t, err)

	assert.Equal(t, types.DecisionSkip, decision)
	assert.Len(t, prompter.asks, 3)
	require.Len(t, prompter.shown, 2)
	assert.Contains(t, prompter.shown[0], "invalid choice")
}

func TestResolveDiffDoesNotConsumeTurn(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"d", "s"}}
	batch := &types.BatchState{}

	decision, err := Resolve(collidingEntry(t), types.Mode{Interactive: true}, batch, prompter)
	require.NoError(t, err)

	assert.Equal(t, types.DecisionSkip, decision)
	require.Len(t, prompter.shown, 1, "diff output should be shown once")
	assert.Contains(t, prompter.shown[0], "+new line")
	assert.Contains(t, prompter.shown[0], "-old line")
}

func TestResolveApplyToAll(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"a", "b"}}
	batch := &types.BatchState{}
	mode := types.Mode{Interactive: true, BatchMode: true}

	decision, err := Resolve(collidingEntry(t), mode, batch, prompter)
	require.NoError(t, err)
	assert.Equal(t, types.DecisionBackup, decision)

	remembered, ok := batch.Get()
	require.True(t, ok, "apply-to-all must persist into batch state")
	assert.Equal(t, types.DecisionBackup, remembered)

	// A second collision resolves from the remembered choice, no prompt
	quiet := &scriptedPrompter{}
	decision, err = Resolve(collidingEntry(t), mode, batch, quiet)
	require.NoError(t, err)
	assert.Equal(t, types.DecisionBackup, decision)
	assert.Empty(t, quiet.asks)
}

func TestResolveApplyToAllSubPromptReprompts(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"a", "q", "o"}}
	batch := &types.BatchState{}
	mode := types.Mode{Interactive: true, BatchMode: true}

	decision, err := Resolve(collidingEntry(t), mode, batch, prompter)
	require.NoError(t, err)

	// quit is not offered in the sub-prompt, so "q" re-prompts it
	assert.Equal(t, types.DecisionOverwrite, decision)
	assert.Len(t, prompter.asks, 3)
}

func TestResolveApplyToAllRequiresBatchMode(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"a", "s"}}
	batch := &types.BatchState{}

	decision, err := Resolve(collidingEntry(t), types.Mode{Interactive: true}, batch, prompter)
	require.NoError(t, err)

	assert.Equal(t, types.DecisionSkip, decision)
	require.NotEmpty(t, prompter.shown)
	assert.Contains(t, prompter.shown[0], "invalid choice")

	_, ok := batch.Get()
	assert.False(t, ok)
}

func TestResolveBatchStateIgnoredOutsideBatchMode(t *testing.T) {
	batch := &types.BatchState{}
	batch.Set(types.DecisionOverwrite)

	prompter := &scriptedPrompter{answers: []string{"s"}}
	decision, err := Resolve(collidingEntry(t), types.Mode{Interactive: true}, batch, prompter)
	require.NoError(t, err)

	assert.Equal(t, types.DecisionSkip, decision, "remembered choice only applies under batch mode")
	assert.Len(t, prompter.asks, 1)
}

func TestResolveEOFQuitsCleanly(t *testing.T) {
	prompter := &scriptedPrompter{}
	batch := &types.BatchState{}

	decision, err := Resolve(collidingEntry(t), types.Mode{Interactive: true}, batch, prompter)
	require.NoError(t, err)
	assert.Equal(t, types.DecisionQuit, decision)
}

func TestPromptMentionsApplyToAllOnlyInBatchMode(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"s"}}
	_, err := Resolve(collidingEntry(t), types.Mode{Interactive: true}, &types.BatchState{}, prompter)
	require.NoError(t, err)
	require.Len(t, prompter.asks, 1)
	assert.NotContains(t, prompter.asks[0], "apply to all")

	prompter = &scriptedPrompter{answers: []string{"s"}}
	_, err = Resolve(collidingEntry(t), types.Mode{Interactive: true, BatchMode: true}, &types.BatchState{}, prompter)
	require.NoError(t, err)
	require.Len(t, prompter.asks, 1)
	assert.Contains(t, prompter.asks[0], "apply to all")
}
