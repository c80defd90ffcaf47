package types

import "time"

// TimestampFormat is the wire format for InstalledAt values in the
// persisted installation log.
const TimestampFormat = time.RFC3339

// Record is one persisted entry in the installation log. A Result of true
// marks the package permanently installed; false marks it pending
// re-installation on the next run.
type Record struct {
	Result      bool   `toml:"result"`
	InstalledAt string `toml:"installed_at"`
}

// NewRecord builds a Record for an outcome stamped at the given time
func NewRecord(result bool, at time.Time) Record {
	return Record{
		Result:      result,
		InstalledAt: at.Format(TimestampFormat),
	}
}

// InstalledTime parses the InstalledAt timestamp. Returns the zero time
// for empty or malformed values.
func (r Record) InstalledTime() time.Time {
	t, err := time.Parse(TimestampFormat, r.InstalledAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
