package status

// Message constants
const (
	MsgShort = "Show the persisted installation log"
	MsgLong  = `The 'status' command lists every package in the installed log with its
outcome and timestamp. Packages recorded with a failed outcome will be
retried on the next required run.`

	MsgExample = `  # Human-readable table
  firstrun status

  # Machine-readable output
  firstrun status --format json
  firstrun status --format yaml`
)
