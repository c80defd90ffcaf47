// Package installog persists per-package installation outcomes.
//
// The installed log is a TOML file keyed by package identifier, one table
// per package with the boolean result and the installed-at timestamp. A
// missing file always reads as an empty log. The companion error log is an
// append-only plain-text file of fatal installer failures.
package installog
