package run

// Message constants
const (
	MsgShort = "Run pending installers"
	MsgLong  = `The 'run' command executes one installation pass.

When installation is required (via --require, the install.required
configuration key, or FIRSTRUN_INSTALL_REQUIRED), every registered
installer that has not yet succeeded runs in priority order and its
outcome is persisted. When installation is not required, a one-line
summary of the installed log is printed instead.

A failing installer stops the pass: the failure is appended to the
error log and the package is retried on the next required run.`

	MsgExample = `  # Report or install, depending on configuration
  firstrun run

  # Force an installation pass
  firstrun run --require

  # Force via the environment
  FIRSTRUN_INSTALL_REQUIRED=true firstrun run`
)
