package terminal

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotTTY        = errors.New("not a terminal")
	ErrSessionActive = errors.New("terminal session already active")
	ErrClosed        = errors.New("terminal session closed")
	ErrInterrupted   = errors.New("input interrupted")
	ErrNoChoices     = errors.New("no choices given")
	ErrYesNoSuffix   = errors.New("yes/no suffix must contain '/'")
	ErrUnsupported   = errors.New("not supported on this platform")
)

// InitError reports a session that could not be established
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return "terminal init: " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// OutputError reports a write or refresh that could not reach the screen
type OutputError struct {
	Op  string
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// TeardownError reports a session whose release did not complete cleanly.
// The terminal mode has still been reset on a best-effort basis.
type TeardownError struct {
	Err error
}

func (e *TeardownError) Error() string {
	return "terminal teardown: " + e.Err.Error()
}

func (e *TeardownError) Unwrap() error {
	return e.Err
}
