// Package paths provides centralized path handling for firstrun.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvStateDir overrides the XDG state directory for firstrun
	EnvStateDir = "FIRSTRUN_STATE_DIR"
)

// Default directories and files
// IMPORTANT: These constants define firstrun's on-disk state layout and
// are NOT user-configurable here. User-configurable paths belong in
// pkg/config instead.
const (
	// AppDirName is the directory name for firstrun-specific files
	AppDirName = "firstrun"

	// InstalledLogFileName is the persisted installation log
	InstalledLogFileName = "installed.toml"

	// ErrorLogFileName is the append-only installer error log
	ErrorLogFileName = "install-errors.log"
)

// Paths provides centralized path management for firstrun
type Paths interface {
	StateDir() string
	InstalledLogPath() string
	ErrorLogPath() string
}

type paths struct {
	stateDir string
}

// New creates a new Paths instance. If stateDir is empty it is resolved
// from FIRSTRUN_STATE_DIR, falling back to the XDG state home.
func New(stateDir string) Paths {
	p := &paths{stateDir: stateDir}

	if p.stateDir == "" {
		p.stateDir = os.Getenv(EnvStateDir)
	}
	if p.stateDir == "" {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// StateDir returns the directory holding firstrun's persisted state
func (p *paths) StateDir() string {
	return p.stateDir
}

// InstalledLogPath returns the path of the persisted installation log
func (p *paths) InstalledLogPath() string {
	return filepath.Join(p.stateDir, InstalledLogFileName)
}

// ErrorLogPath returns the path of the append-only error log
func (p *paths) ErrorLogPath() string {
	return filepath.Join(p.stateDir, ErrorLogFileName)
}
