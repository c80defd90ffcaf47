package installog_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/firstrun/pkg/filesystem"
	"github.com/arthur-debert/firstrun/pkg/installog"
	"github.com/arthur-debert/firstrun/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*installog.Store, types.FS) {
	t.Helper()
	fs := filesystem.NewMem()
	return installog.New(fs, filepath.Join("/state", "installed.toml")), fs
}

func TestExistsAndCreate(t *testing.T) {
	store, _ := newStore(t)

	assert.False(t, store.Exists())

	require.NoError(t, store.Create())
	assert.True(t, store.Exists())

	// Creating again is a no-op
	require.NoError(t, store.Create())
	assert.True(t, store.Exists())
}

func TestRead_MissingFile(t *testing.T) {
	store, _ := newStore(t)

	records, err := store.Read(false)
	require.NoError(t, err)
	assert.Empty(t, records)

	// warnOnMissing only changes logging, not the result
	records, err = store.Read(true)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRead_EmptyFile(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Create())

	records, err := store.Read(false)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRead_CorruptFile(t *testing.T) {
	store, fs := newStore(t)
	require.NoError(t, fs.MkdirAll("/state", 0755))
	require.NoError(t, fs.WriteFile(store.Path(), []byte("not toml {{{"), 0644))

	_, err := store.Read(false)
	assert.Error(t, err)
}

func TestWriteMerge(t *testing.T) {
	store, _ := newStore(t)
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.WriteMerge("vim", types.NewRecord(true, at)))
	require.NoError(t, store.WriteMerge("zsh", types.NewRecord(false, at.Add(time.Minute))))

	records, err := store.Read(false)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records["vim"].Result)
	assert.Equal(t, "2024-06-01T09:00:00Z", records["vim"].InstalledAt)
	assert.False(t, records["zsh"].Result)
}

func TestWriteMerge_OverwritesSingleKey(t *testing.T) {
	store, _ := newStore(t)
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.WriteMerge("vim", types.NewRecord(false, at)))
	require.NoError(t, store.WriteMerge("zsh", types.NewRecord(true, at)))

	// Retry of vim flips only its record
	require.NoError(t, store.WriteMerge("vim", types.NewRecord(true, at.Add(time.Hour))))

	records, err := store.Read(false)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records["vim"].Result)
	assert.Equal(t, "2024-06-01T10:00:00Z", records["vim"].InstalledAt)
	assert.True(t, records["zsh"].Result)
}

func TestWriteMerge_CreatesParentDir(t *testing.T) {
	fs := filesystem.NewMem()
	store := installog.New(fs, filepath.Join("/deep", "nested", "installed.toml"))

	require.NoError(t, store.WriteMerge("git", types.NewRecord(true, time.Now())))
	assert.True(t, store.Exists())
}

func TestErrorLog_Append(t *testing.T) {
	fs := filesystem.NewMem()
	errLog := installog.NewErrorLog(fs, filepath.Join("/state", "install-errors.log"))
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, errLog.Append("vim", fmt.Errorf("network unreachable"), at))
	require.NoError(t, errLog.Append("zsh", fmt.Errorf("checksum mismatch"), at.Add(time.Minute)))

	data, err := fs.ReadFile(errLog.Path())
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "2024-06-01T09:30:00Z")
	assert.Contains(t, content, "package: vim")
	assert.Contains(t, content, "error: network unreachable")
	// Appends accumulate
	assert.Contains(t, content, "package: zsh")
	assert.Contains(t, content, "error: checksum mismatch")
}
