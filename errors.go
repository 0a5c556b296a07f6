package parsefmt

import (
	"errors"
	"fmt"

	"github.com/viant/parsefmt/conv"
	"github.com/viant/parsefmt/pattern"
)

var (
	//ErrInvalidFormat reports malformed template or unknown type tag
	ErrInvalidFormat = pattern.ErrInvalidFormat
	//ErrNoMatch reports input not conforming to a template
	ErrNoMatch = errors.New("no match")
	//ErrTypeConversion reports field text that could not be converted
	ErrTypeConversion = conv.ErrConversion
)

// FieldError represents a field conversion error
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %v: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{ErrTypeConversion, e.Err}
}
