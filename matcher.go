package parsefmt

import (
	"fmt"

	"github.com/viant/parsefmt/conv"
	"github.com/viant/parsefmt/pattern"
	"github.com/viant/parsefmt/regex"
)

// Matcher represents a compiled template
type Matcher struct {
	pattern *pattern.Pattern
	exact   regex.Expr
	search  regex.Expr
	engine  string
	logger  *Logger
}

// Compile compiles template with built-in converters
func Compile(template string, caseSensitive bool, opts ...Option) (*Matcher, error) {
	options := newOptions(opts)
	if !regex.IsSupported(options.engine) {
		return nil, fmt.Errorf("unsupported engine %q, supported: %v", options.engine, regex.Engines())
	}
	aPattern, err := pattern.Compile(template, options.registry.Lookup,
		pattern.WithDefaultPattern(options.defaultPattern),
		pattern.WithCaseSensitive(caseSensitive))
	if err != nil {
		return nil, err
	}
	ret := &Matcher{pattern: aPattern, engine: options.engine, logger: options.logger}
	if ret.exact, err = regex.Compile(options.engine, aPattern.Exact); err != nil {
		return nil, &pattern.Error{Template: template, Reason: err.Error()}
	}
	if ret.search, err = regex.Compile(options.engine, aPattern.Search); err != nil {
		return nil, &pattern.Error{Template: template, Reason: err.Error()}
	}
	ret.logger.Log("compiled %q with %v engine, fields: %v", template, options.engine, len(aPattern.Fields))
	ret.logger.Log("exact: %s", aPattern.Exact)
	ret.logger.Log("search: %s", aPattern.Search)
	return ret, nil
}

// CompileWithTypes compiles template with built-in converters merged with extra ones, extra wins on tag collision
func CompileWithTypes(template string, caseSensitive bool, extra map[string]conv.Converter, opts ...Option) (*Matcher, error) {
	options := append([]Option{}, opts...)
	options = append(options, WithConverters(extra))
	return Compile(template, caseSensitive, options...)
}

// MustCompile is like Compile but panics if the template can not be compiled
func MustCompile(template string, caseSensitive bool, opts ...Option) *Matcher {
	ret, err := Compile(template, caseSensitive, opts...)
	if err != nil {
		panic(fmt.Sprintf("parsefmt: Compile(%q): %v", template, err))
	}
	return ret
}

// Parse matches the whole text
func (m *Matcher) Parse(text string) (*Result, error) {
	loc := m.exact.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, ErrNoMatch
	}
	return m.newResult(text, loc)
}

// Search matches the first occurrence anywhere in text
func (m *Matcher) Search(text string) (*Result, error) {
	loc := m.search.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, ErrNoMatch
	}
	return m.newResult(text, loc)
}

// FindAll returns all non-overlapping matches from left to right, matches failing conversion are skipped
func (m *Matcher) FindAll(text string) []*Result {
	locs := m.search.FindAllStringSubmatchIndex(text, -1)
	var result = make([]*Result, 0, len(locs))
	for _, loc := range locs {
		item, err := m.newResult(text, loc)
		if err != nil {
			m.logger.Log("skipped match at %v: %v", loc[0], err)
			continue
		}
		result = append(result, item)
	}
	return result
}

// Match returns true if the whole text conforms to the template, values are not converted
func (m *Matcher) Match(text string) bool {
	return m.exact.MatchString(text)
}

// Fields returns template fields in declaration order
func (m *Matcher) Fields() []pattern.Field {
	return append([]pattern.Field{}, m.pattern.Fields...)
}

// Expr returns exact match expression
func (m *Matcher) Expr() string {
	return m.pattern.Exact
}

// SearchExpr returns search expression
func (m *Matcher) SearchExpr() string {
	return m.pattern.Search
}

func (m *Matcher) CaseSensitive() bool {
	return m.pattern.CaseSensitive
}

// Engine returns regex engine name
func (m *Matcher) Engine() string {
	return m.engine
}

func (m *Matcher) newResult(text string, loc []int) (*Result, error) {
	count := len(m.pattern.Fields)
	ret := &Result{
		pattern: m.pattern,
		span:    Span{Start: loc[0], End: loc[1]},
		raw:     make([]string, count),
		values:  make([]conv.Value, count),
		spans:   make([]Span, count),
	}
	for i, field := range m.pattern.Fields {
		start, end := loc[2*field.Group], loc[2*field.Group+1]
		ret.spans[i] = Span{Start: start, End: end}
		if start >= 0 {
			ret.raw[i] = text[start:end]
		}
		converter := m.pattern.Converters[i]
		if converter == nil {
			ret.values[i] = conv.TextValue(ret.raw[i])
			continue
		}
		value, err := converter.Convert(ret.raw[i])
		if err != nil {
			return nil, &FieldError{Field: field.Name, Err: err}
		}
		ret.values[i] = value
	}
	return ret, nil
}
