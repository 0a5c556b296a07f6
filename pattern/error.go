package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is reported for malformed templates
var ErrInvalidFormat = errors.New("invalid format")

// Error represents template compilation error
type Error struct {
	Template string
	Offset   int
	Reason   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid format %q at %d: %v", e.Template, e.Offset, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrInvalidFormat
}

func newError(template string, offset int, reason string) error {
	return &Error{Template: template, Offset: offset, Reason: reason}
}
