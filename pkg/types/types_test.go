package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecisionString(t *testing.T) {
	tests := []struct {
		decision Decision
		want     string
	}{
		{DecisionSkip, "skip"},
		{DecisionOverwrite, "overwrite"},
		{DecisionBackup, "backup"},
		{DecisionQuit, "quit"},
		{Decision(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.decision.String())
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "installed", OutcomeInstalled.String())
	assert.Equal(t, "skipped", OutcomeSkipped.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}

func TestBatchStateSetOnce(t *testing.T) {
	var batch BatchState

	_, ok := batch.Get()
	assert.False(t, ok, "fresh batch state should hold no choice")

	batch.Set(DecisionBackup)
	choice, ok := batch.Get()
	assert.True(t, ok)
	assert.Equal(t, DecisionBackup, choice)

	// A second Set must not replace the remembered choice
	batch.Set(DecisionOverwrite)
	choice, ok = batch.Get()
	assert.True(t, ok)
	assert.Equal(t, DecisionBackup, choice)
}

func TestReportRecord(t *testing.T) {
	var report Report

	report.Record(OutcomeInstalled)
	report.Record(OutcomeInstalled)
	report.Record(OutcomeSkipped)
	report.Record(OutcomeFailed)

	assert.Equal(t, 2, report.Installed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 4, report.Total())
}
