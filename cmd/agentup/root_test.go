package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := NewRootCmd()

	for flag, shorthand := range map[string]string{
		"dry-run":       "n",
		"force":         "f",
		"backup":        "b",
		"skip-existing": "s",
		"interactive":   "i",
	} {
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "missing flag --%s", flag)
		assert.Equal(t, shorthand, f.Shorthand)
	}

	assert.NotNil(t, cmd.Flags().Lookup("batch-mode"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("root"))
}

func TestRootCmdSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "install")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "version")
}

func TestRootCmdUnknownFlag(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--bogus"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestRootCmdHelp(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{"--help"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "agentup")
	assert.Contains(t, out.String(), "--dry-run")
}

func TestVersionCmd(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"version"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	assert.NoError(t, err)
}
