package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"init", "add", "list", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"config", "verbose", "no-color", "project-config", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "openhooks version")
}

func TestRootCmd_AddFlagsExclusive(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"add", "useDebounce", "--overwrite", "--skip-existing"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overwrite")
}
