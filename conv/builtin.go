package conv

import (
	"strconv"
)

// Built-in tags
const (
	TagInt   = "d"
	TagFloat = "f"
	TagWord  = "w"
)

const (
	intExpr   = `[-+]?\d+`
	floatExpr = `[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`
	wordExpr  = `\w+`
)

// NewInt creates a signed 64-bit integer converter
func NewInt() Converter {
	return &Func{Expr: intExpr, Fn: func(text string) (Value, error) {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, NewError(TagInt, text, err)
		}
		return IntValue(v), nil
	}}
}

// NewFloat creates a 64-bit float converter
func NewFloat() Converter {
	return &Func{Expr: floatExpr, Fn: func(text string) (Value, error) {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, NewError(TagFloat, text, err)
		}
		return FloatValue(v), nil
	}}
}

// NewWord creates a word converter returning matched text as is
func NewWord() Converter {
	return &Func{Expr: wordExpr, Fn: func(text string) (Value, error) {
		return TextValue(text), nil
	}}
}
