package orchestrator

import "time"

// Mode describes how a run ended
type Mode int

const (
	// ModeReportOnly means no installation was required; only the
	// summary was printed
	ModeReportOnly Mode = iota

	// ModeInstalled means the run walked all pending installers to
	// completion
	ModeInstalled

	// ModeFatal means an installer failed and the run stopped early
	ModeFatal
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeReportOnly:
		return "report-only"
	case ModeInstalled:
		return "installed"
	case ModeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Report is the outcome of one orchestration run
type Report struct {
	// Mode is how the run ended
	Mode Mode

	// Installed is the number of packages installed during this run
	Installed int

	// TotalInstalled is the number of packages with a successful
	// persisted record, filled on the report-only path
	TotalInstalled int

	// FirstInstalledAt is the earliest persisted success timestamp,
	// zero when nothing is installed
	FirstInstalledAt time.Time

	// FailedPackage names the package that hit the fatal path
	FailedPackage string

	// Err is the fatal installer error, nil unless Mode is ModeFatal
	Err error
}
