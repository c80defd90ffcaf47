package installog

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/firstrun/pkg/errors"
	"github.com/arthur-debert/firstrun/pkg/logging"
	"github.com/arthur-debert/firstrun/pkg/types"
)

// Store reads and writes the persisted installation log
type Store struct {
	fs   types.FS
	path string
}

// New creates a Store over the given filesystem and log file path
func New(fs types.FS, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the log file path
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the log file is present
func (s *Store) Exists() bool {
	_, err := s.fs.Stat(s.path)
	return err == nil
}

// Create ensures the log file and its parent directory exist. Creating an
// already existing log is a no-op.
func (s *Store) Create() error {
	if s.Exists() {
		return nil
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrLogCreate, "failed to create state directory for %s", s.path)
	}
	if err := s.fs.WriteFile(s.path, []byte{}, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrLogCreate, "failed to create installation log %s", s.path)
	}
	return nil
}

// Read loads the full log. A missing file reads as an empty map;
// warnOnMissing controls whether that case is logged.
func (s *Store) Read(warnOnMissing bool) (map[string]types.Record, error) {
	logger := logging.GetLogger("installog")

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if warnOnMissing {
				logger.Warn().Str("path", s.path).Msg("Installation log missing, treating as empty")
			}
			return map[string]types.Record{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrLogRead, "failed to read installation log %s", s.path)
	}

	records := map[string]types.Record{}
	if len(data) == 0 {
		return records, nil
	}
	if err := toml.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLogRead, "installation log %s is not valid TOML", s.path)
	}
	return records, nil
}

// WriteMerge merges one record into the log with a read-modify-write:
// existing entries for other packages are preserved, the entry for
// packageID is replaced.
func (s *Store) WriteMerge(packageID string, rec types.Record) error {
	records, err := s.Read(false)
	if err != nil {
		return err
	}
	records[packageID] = rec

	data, err := toml.Marshal(records)
	if err != nil {
		return errors.Wrapf(err, errors.ErrLogWrite, "failed to encode installation log %s", s.path)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrLogWrite, "failed to create state directory for %s", s.path)
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrLogWrite, "failed to write installation log %s", s.path)
	}

	logger := logging.GetLogger("installog")
	logger.Debug().
		Str("package", packageID).
		Bool("result", rec.Result).
		Msg("Persisted installation record")
	return nil
}
