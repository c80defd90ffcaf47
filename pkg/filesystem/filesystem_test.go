package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/firstrun/pkg/filesystem"
	"github.com/arthur-debert/firstrun/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both implementations must agree on the behaviors the rest of the
// codebase relies on, so the suite runs against each.
func implementations(t *testing.T) map[string]func() (types.FS, string) {
	t.Helper()
	return map[string]func() (types.FS, string){
		"os": func() (types.FS, string) {
			return filesystem.NewOS(), t.TempDir()
		},
		"afero-mem": func() (types.FS, string) {
			return filesystem.NewMem(), "/work"
		},
	}
}

func TestWriteAndRead(t *testing.T) {
	for name, setup := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			fs, root := setup()
			path := filepath.Join(root, "state", "installed.toml")

			require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, fs.WriteFile(path, []byte("a = 1\n"), 0644))

			data, err := fs.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "a = 1\n", string(data))

			info, err := fs.Stat(path)
			require.NoError(t, err)
			assert.False(t, info.IsDir())
		})
	}
}

func TestAppend(t *testing.T) {
	for name, setup := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			fs, root := setup()
			require.NoError(t, fs.MkdirAll(root, 0755))
			path := filepath.Join(root, "errors.log")

			// Append must create the file on first write
			require.NoError(t, fs.Append(path, []byte("first\n"), 0644))
			require.NoError(t, fs.Append(path, []byte("second\n"), 0644))

			data, err := fs.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "first\nsecond\n", string(data))
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	for name, setup := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			fs, root := setup()
			_, err := fs.ReadFile(filepath.Join(root, "nope.toml"))
			assert.Error(t, err)
		})
	}
}

func TestRemove(t *testing.T) {
	for name, setup := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			fs, root := setup()
			require.NoError(t, fs.MkdirAll(root, 0755))
			path := filepath.Join(root, "tmp.txt")
			require.NoError(t, fs.WriteFile(path, []byte("x"), 0644))
			require.NoError(t, fs.Remove(path))

			_, err := fs.Stat(path)
			assert.Error(t, err)
		})
	}
}
