// Package pattern compiles format templates into regular expressions with a field table.
//
// A template mixes literal text with placeholders: {}, {name}, {:type} and {name:type}.
// Literal braces are written as {{ and }}. Each placeholder becomes exactly one capturing
// group, numbered in declaration order.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/viant/parsefmt/conv"
)

// Lookup returns converter for a type tag
type Lookup func(tag string) (conv.Converter, bool)

// Pattern represents compiled template
type Pattern struct {
	//Exact matches a whole input
	Exact string
	//Search matches anywhere in an input
	Search string
	Fields []Field
	//Index maps field identifier to field position
	Index map[string]int
	//Converters holds field converter by position, nil for untyped fields
	Converters    []conv.Converter
	CaseSensitive bool
}

// FieldIndex returns field position for supplied identifier, dotted and indexed names are normalized
func (p *Pattern) FieldIndex(name string) (int, bool) {
	if idx, ok := p.Index[name]; ok {
		return idx, true
	}
	idx, ok := p.Index[Normalize(name)]
	return idx, ok
}

// Compile compiles template, type tags are resolved with lookup
func Compile(template string, lookup Lookup, opts ...Option) (*Pattern, error) {
	options := newOptions(opts)
	segments, err := tokenize(template)
	if err != nil {
		return nil, err
	}
	ret := &Pattern{Index: map[string]int{}, CaseSensitive: options.caseSensitive}
	body := strings.Builder{}
	for _, seg := range segments {
		if !seg.field {
			body.WriteString(escapeLiteral(seg.literal))
			continue
		}
		field := newField(seg.literal, len(ret.Fields))
		if _, ok := ret.Index[field.Name]; ok {
			return nil, newError(template, seg.offset, fmt.Sprintf("duplicate field %q", field.Name))
		}
		converter, err := resolve(field, lookup)
		if err != nil {
			return nil, newError(template, seg.offset, err.Error())
		}
		field.Expr = options.defaultPattern
		if converter != nil && converter.Pattern() != "" {
			field.Expr = converter.Pattern()
		}
		if field.Expr, err = sanitize(field.Expr); err != nil {
			return nil, newError(template, seg.offset, fmt.Sprintf("invalid %q pattern: %v", field.Type, err))
		}
		ret.Index[field.Name] = field.Ordinal
		ret.Fields = append(ret.Fields, *field)
		ret.Converters = append(ret.Converters, converter)
		body.WriteString("(")
		body.WriteString(field.Expr)
		body.WriteString(")")
	}
	prefix := ""
	if !options.caseSensitive {
		prefix = "(?i)"
	}
	ret.Search = prefix + body.String()
	ret.Exact = prefix + `\A(?:` + body.String() + `)\z`
	return ret, nil
}

func resolve(field *Field, lookup Lookup) (conv.Converter, error) {
	if field.Type == "" {
		return nil, nil
	}
	if lookup == nil {
		return nil, fmt.Errorf("unknown type %q", field.Type)
	}
	converter, ok := lookup(field.Type)
	if !ok || converter == nil {
		return nil, fmt.Errorf("unknown type %q", field.Type)
	}
	return converter, nil
}

// escapeLiteral quotes literal text, allowing optional whitespace around , = + -
func escapeLiteral(literal string) string {
	if !strings.ContainsAny(literal, ",=+-") {
		return regexp.QuoteMeta(literal)
	}
	var result strings.Builder
	start := 0
	for i := 0; i < len(literal); i++ {
		switch literal[i] {
		case ',', '=', '+', '-':
			result.WriteString(regexp.QuoteMeta(literal[start:i]))
			result.WriteString(`\s*`)
			result.WriteString(regexp.QuoteMeta(literal[i : i+1]))
			result.WriteString(`\s*`)
			start = i + 1
		}
	}
	result.WriteString(regexp.QuoteMeta(literal[start:]))
	return result.String()
}
