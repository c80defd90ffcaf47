// Package orchestrator runs one installation pass: it decides between
// reporting and installing, executes pending installers in priority
// order, persists per-package outcomes, and returns a Report describing
// what happened. It never exits the process; exit policy belongs to the
// hosting entry point.
package orchestrator
