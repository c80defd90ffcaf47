package app

import "fmt"

// CommandError reports a failed shell installer, keeping the command's
// output for the error log
type CommandError struct {
	Command string
	Output  string
	Err     error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("command %q failed: %v\noutput: %s", e.Command, e.Err, e.Output)
}

// Unwrap returns the underlying exec error
func (e *CommandError) Unwrap() error {
	return e.Err
}
