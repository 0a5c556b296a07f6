package conv

import (
	"errors"
	"fmt"
)

// ErrConversion is reported when matched text can not be converted to a field value
var ErrConversion = errors.New("type conversion failed")

// Converter converts field text into a Value
type Converter interface {
	//Pattern returns expression fragment a field text has to match, empty for the default one
	Pattern() string
	//Convert converts matched text
	Convert(text string) (Value, error)
}

// Func adapts an expression fragment and a function into a Converter
type Func struct {
	Expr string
	Fn   func(text string) (Value, error)
}

func (f *Func) Pattern() string {
	return f.Expr
}

func (f *Func) Convert(text string) (Value, error) {
	return f.Fn(text)
}

// ConverterFunc adapts a function into a Converter using the default field pattern
type ConverterFunc func(text string) (Value, error)

func (f ConverterFunc) Pattern() string {
	return ""
}

func (f ConverterFunc) Convert(text string) (Value, error) {
	return f(text)
}

// Error represents a conversion error
type Error struct {
	Tag  string
	Text string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to convert %q as %v", e.Text, e.Tag)
	}
	return fmt.Sprintf("failed to convert %q as %v: %v", e.Text, e.Tag, e.Err)
}

// Unwrap returns ErrConversion with the underlying cause
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}

// NewError creates a conversion error
func NewError(tag, text string, err error) error {
	return &Error{Tag: tag, Text: text, Err: err}
}
