package gitignore_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/firstrun/pkg/filesystem"
	"github.com/arthur-debert/firstrun/pkg/gitignore"
	"github.com/arthur-debert/firstrun/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*gitignore.Manager, types.FS) {
	t.Helper()
	fs := filesystem.NewMem()
	require.NoError(t, fs.MkdirAll("/repo", 0755))
	return gitignore.NewManager(fs, "/repo/.gitignore"), fs
}

func TestAdd_CreatesFileWithBlock(t *testing.T) {
	mgr, fs := newManager(t)

	require.NoError(t, mgr.Add("install-logs", "installed.toml", "install-errors.log"))

	data, err := fs.ReadFile("/repo/.gitignore")
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "# firstrun:install-logs begin")
	assert.Contains(t, content, "installed.toml")
	assert.Contains(t, content, "install-errors.log")
	assert.Contains(t, content, "# firstrun:install-logs end")
}

func TestAdd_Idempotent(t *testing.T) {
	mgr, fs := newManager(t)

	require.NoError(t, mgr.Add("install-logs", "installed.toml"))
	require.NoError(t, mgr.Add("install-logs", "installed.toml"))
	require.NoError(t, mgr.Add("install-logs", "installed.toml", "install-errors.log"))

	data, err := fs.ReadFile("/repo/.gitignore")
	require.NoError(t, err)

	content := string(data)
	assert.Equal(t, 1, strings.Count(content, "installed.toml"))
	assert.Equal(t, 1, strings.Count(content, "install-errors.log"))
	assert.Equal(t, 1, strings.Count(content, "begin"))
}

func TestAdd_PreservesUserEntries(t *testing.T) {
	mgr, fs := newManager(t)
	require.NoError(t, fs.WriteFile("/repo/.gitignore", []byte("node_modules/\n*.swp\n"), 0644))

	require.NoError(t, mgr.Add("install-logs", "installed.toml"))

	data, err := fs.ReadFile("/repo/.gitignore")
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "node_modules/")
	assert.Contains(t, content, "*.swp")
	assert.Contains(t, content, "installed.toml")
	// User entries come before the managed block
	assert.Less(t, strings.Index(content, "node_modules/"), strings.Index(content, "begin"))
}

func TestAdd_PreservesTextAfterBlock(t *testing.T) {
	mgr, fs := newManager(t)
	initial := "before/\n# firstrun:install-logs begin\nold.toml\n# firstrun:install-logs end\nafter/\n"
	require.NoError(t, fs.WriteFile("/repo/.gitignore", []byte(initial), 0644))

	require.NoError(t, mgr.Add("install-logs", "new.log"))

	data, err := fs.ReadFile("/repo/.gitignore")
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "before/")
	assert.Contains(t, content, "after/")
	assert.Contains(t, content, "old.toml")
	assert.Contains(t, content, "new.log")
}

func TestAdd_SeparateGroups(t *testing.T) {
	mgr, fs := newManager(t)

	require.NoError(t, mgr.Add("install-logs", "installed.toml"))
	require.NoError(t, mgr.Add("caches", "cache/"))

	data, err := fs.ReadFile("/repo/.gitignore")
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "# firstrun:install-logs begin")
	assert.Contains(t, content, "# firstrun:caches begin")
}

func TestAdd_NoPatternsIsNoop(t *testing.T) {
	mgr, fs := newManager(t)

	require.NoError(t, mgr.Add("install-logs"))

	_, err := fs.ReadFile("/repo/.gitignore")
	assert.Error(t, err, "no file should be created for an empty pattern list")
}
