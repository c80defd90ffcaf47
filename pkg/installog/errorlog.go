package installog

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/arthur-debert/firstrun/pkg/errors"
	"github.com/arthur-debert/firstrun/pkg/types"
)

// ErrorLog appends fatal installer failures to a plain-text file
type ErrorLog struct {
	fs   types.FS
	path string
}

// NewErrorLog creates an ErrorLog over the given filesystem and path
func NewErrorLog(fs types.FS, path string) *ErrorLog {
	return &ErrorLog{fs: fs, path: path}
}

// Path returns the error log file path
func (e *ErrorLog) Path() string {
	return e.path
}

// Append writes one timestamped, human-readable failure block
func (e *ErrorLog) Append(packageID string, cause error, at time.Time) error {
	if err := e.fs.MkdirAll(filepath.Dir(e.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create state directory for %s", e.path)
	}

	block := fmt.Sprintf("--- %s\npackage: %s\nerror: %v\n\n",
		at.Format(types.TimestampFormat), packageID, cause)

	if err := e.fs.Append(e.path, []byte(block), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to append to error log %s", e.path)
	}
	return nil
}
