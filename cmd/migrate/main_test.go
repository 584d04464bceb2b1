package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMigrationsPath(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveMigrationsPath(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	got, err = resolveMigrationsPath("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, defaultMigrationsPath, filepath.Base(got))
}

func TestCreateCommand(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"create", "add invoices", "--path", dir, "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"000001_add_invoices.up.sql",
		"000001_add_invoices.down.sql",
	}, names)
}

func TestCommandArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"create needs a name", []string{"create"}},
		{"steps needs a count", []string{"steps"}},
		{"steps rejects text", []string{"steps", "many"}},
		{"force rejects text", []string{"force", "latest"}},
		{"up takes no arguments", []string{"up", "now"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(append(tt.args, "--path", t.TempDir(), "--log-level", "error"))
			assert.Error(t, cmd.Execute())
		})
	}
}
