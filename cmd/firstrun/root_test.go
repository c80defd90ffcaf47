package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/firstrun/pkg/filesystem"
	"github.com/arthur-debert/firstrun/pkg/installog"
	"github.com/arthur-debert/firstrun/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Commands(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"run", "status", "version", "help"} {
		assert.True(t, names[want], "missing %q command", want)
	}
}

func TestNewRootCmd_UsageTemplate(t *testing.T) {
	root := NewRootCmd()

	usage := root.UsageString()
	// Section headers run through the boldUpper template func; without a
	// terminal attached only the upper-casing shows.
	assert.Contains(t, usage, "USAGE:")
	assert.Contains(t, usage, "COMMANDS:")
	assert.Contains(t, usage, "FLAGS:")
	assert.Contains(t, usage, `help [command]`)
}

func TestStatusCommand_EmptyLog(t *testing.T) {
	t.Setenv("FIRSTRUN_STATE_DIR", t.TempDir())

	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"status"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "No packages installed yet")
}

func TestStatusCommand_JSON(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("FIRSTRUN_STATE_DIR", stateDir)

	store := installog.New(filesystem.NewOS(), filepath.Join(stateDir, "installed.toml"))
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.WriteMerge("vim", types.NewRecord(true, at)))
	require.NoError(t, store.WriteMerge("zsh", types.NewRecord(false, at)))

	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"status", "--format", "json"})

	require.NoError(t, root.Execute())

	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 2)
	// Sorted by package name
	assert.Equal(t, "vim", entries[0]["package"])
	assert.Equal(t, true, entries[0]["installed"])
	assert.Equal(t, "zsh", entries[1]["package"])
	assert.Equal(t, false, entries[1]["installed"])
}

func TestStatusCommand_BadFormat(t *testing.T) {
	t.Setenv("FIRSTRUN_STATE_DIR", t.TempDir())

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"status", "--format", "xml"})

	assert.Error(t, root.Execute())
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
}
