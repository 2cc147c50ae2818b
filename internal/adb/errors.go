package adb

import (
	"fmt"
	"strings"
)

// CommandError reports a bridge command that exited non-zero or could
// not be started. Stderr holds the captured standard-error text.
type CommandError struct {
	Args     []string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("bridge command %q failed", strings.Join(e.Args, " "))
	if e.ExitCode >= 0 {
		msg = fmt.Sprintf("%s (exit %d)", msg, e.ExitCode)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg = msg + ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }
