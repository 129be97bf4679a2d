package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentup/agentup/pkg/types"
)

func TestRenderDiff(t *testing.T) {
	dir := t.TempDir()
	entry := types.FileEntry{
		Name:       "agent.md",
		SourcePath: filepath.Join(dir, "src.md"),
		DestPath:   filepath.Join(dir, "dest.md"),
	}
	require.NoError(t, os.WriteFile(entry.SourcePath, []byte("# Agent\nreworked body\n"), 0644))
	require.NoError(t, os.WriteFile(entry.DestPath, []byte("# Agent\noriginal body\n"), 0644))

	out, err := RenderDiff(entry)
	require.NoError(t, err)

	assert.Contains(t, out, "--- "+entry.DestPath)
	assert.Contains(t, out, "+++ "+entry.SourcePath)
	assert.Contains(t, out, "-original body")
	assert.Contains(t, out, "+reworked body")
	assert.Contains(t, out, "# Agent")
}

func TestRenderDiffIdenticalFiles(t *testing.T) {
	dir := t.TempDir()
	entry := types.FileEntry{
		Name:       "agent.md",
		SourcePath: filepath.Join(dir, "src.md"),
		DestPath:   filepath.Join(dir, "dest.md"),
	}
	require.NoError(t, os.WriteFile(entry.SourcePath, []byte("same\n"), 0644))
	require.NoError(t, os.WriteFile(entry.DestPath, []byte("same\n"), 0644))

	out, err := RenderDiff(entry)
	require.NoError(t, err)
	assert.NotContains(t, out, "\n+same")
	assert.NotContains(t, out, "\n-same")
}

func TestRenderDiffMissingFile(t *testing.T) {
	entry := types.FileEntry{
		Name:       "agent.md",
		SourcePath: filepath.Join(t.TempDir(), "missing.md"),
		DestPath:   filepath.Join(t.TempDir(), "missing.md"),
	}

	_, err := RenderDiff(entry)
	assert.Error(t, err)
}
