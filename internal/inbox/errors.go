package inbox

import (
	"errors"
	"fmt"
)

// ErrEmptyNote is returned when a note is empty after trimming. Callers treat
// it as a discard rather than a failure.
var ErrEmptyNote = errors.New("note is empty")

// ErrDayNotFound is returned when no day log exists for the requested date.
var ErrDayNotFound = errors.New("day log not found")

// IOError reports a failed filesystem step while persisting a note.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
