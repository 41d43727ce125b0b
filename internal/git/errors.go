package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHistory is matched by every error returned from a HistoryProvider backend.
var ErrHistory = errors.New("history provider error")

// CommandError is returned when the git executable fails or exits non-zero.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s failed: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// Is reports whether target is ErrHistory.
func (e *CommandError) Is(target error) bool { return target == ErrHistory }

// ParseError is returned when git output does not have the expected shape.
type ParseError struct {
	Record string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected git log record %q: %s", e.Record, e.Reason)
}

// Is reports whether target is ErrHistory.
func (e *ParseError) Is(target error) bool { return target == ErrHistory }

// historyError tags an error from the go-git backend with ErrHistory.
func historyError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrHistory, op, err)
}
