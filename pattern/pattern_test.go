package pattern

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/parsefmt/conv"
)

func TestCompile(t *testing.T) {
	registry := conv.Builtins()
	var testCases = []struct {
		description string
		template    string
		options     []Option
		exact       string
		search      string
		names       []string
		types       []string
	}{
		{
			description: "anonymous fields",
			template:    "{} {}",
			exact:       `\A(?:(.+?) (.+?))\z`,
			search:      `(.+?) (.+?)`,
			names:       []string{"0", "1"},
			types:       []string{"", ""},
		},
		{
			description: "escaped braces",
			template:    "{{hello}} {}",
			exact:       `\A(?:\{hello\} (.+?))\z`,
			search:      `\{hello\} (.+?)`,
			names:       []string{"0"},
			types:       []string{""},
		},
		{
			description: "named typed fields",
			template:    "Name: {name:w}, Age: {age:d}",
			exact:       `\A(?:Name: (\w+)\s*,\s* Age: ([-+]?\d+))\z`,
			search:      `Name: (\w+)\s*,\s* Age: ([-+]?\d+)`,
			names:       []string{"name", "age"},
			types:       []string{"w", "d"},
		},
		{
			description: "anonymous ordinal counts all fields",
			template:    "{x:d}-{}",
			exact:       `\A(?:([-+]?\d+)\s*-\s*(.+?))\z`,
			search:      `([-+]?\d+)\s*-\s*(.+?)`,
			names:       []string{"x", "1"},
			types:       []string{"d", ""},
		},
		{
			description: "flattened names",
			template:    "{user.name} {items[0]}",
			exact:       `\A(?:(.+?) (.+?))\z`,
			search:      `(.+?) (.+?)`,
			names:       []string{"user__name", "items__0"},
			types:       []string{"", ""},
		},
		{
			description: "meta characters",
			template:    "a.b*({:d})?",
			exact:       `\A(?:a\.b\*\(([-+]?\d+)\)\?)\z`,
			search:      `a\.b\*\(([-+]?\d+)\)\?`,
			names:       []string{"0"},
			types:       []string{"d"},
		},
		{
			description: "case insensitive",
			template:    "HELLO {}",
			options:     []Option{WithCaseSensitive(false)},
			exact:       `(?i)\A(?:HELLO (.+?))\z`,
			search:      `(?i)HELLO (.+?)`,
			names:       []string{"0"},
			types:       []string{""},
		},
		{
			description: "custom default pattern",
			template:    "{}={}",
			options:     []Option{WithDefaultPattern(`\S+`)},
			exact:       `\A(?:(\S+)\s*=\s*(\S+))\z`,
			search:      `(\S+)\s*=\s*(\S+)`,
			names:       []string{"0", "1"},
			types:       []string{"", ""},
		},
		{
			description: "literal only",
			template:    "plain text",
			exact:       `\A(?:plain text)\z`,
			search:      `plain text`,
		},
	}

	for _, testCase := range testCases {
		actual, err := Compile(testCase.template, registry.Lookup, testCase.options...)
		require.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.exact, actual.Exact, testCase.description)
		assert.Equal(t, testCase.search, actual.Search, testCase.description)
		require.Equal(t, len(testCase.names), len(actual.Fields), testCase.description)
		require.Equal(t, len(actual.Fields), len(actual.Converters), testCase.description)
		for i, field := range actual.Fields {
			assert.Equal(t, testCase.names[i], field.Name, testCase.description)
			assert.Equal(t, testCase.types[i], field.Type, testCase.description)
			assert.Equal(t, i+1, field.Group, testCase.description)
			assert.Equal(t, i, actual.Index[field.Name], testCase.description)
			assert.Equal(t, field.Type == "", actual.Converters[i] == nil, testCase.description)
		}
		_, err = regexp.Compile(actual.Exact)
		assert.Nil(t, err, testCase.description)
	}
}

func TestCompile_Error(t *testing.T) {
	registry := conv.Builtins()
	var testCases = []struct {
		description string
		template    string
		offset      int
	}{
		{description: "unterminated field", template: "a{b", offset: 1},
		{description: "unmatched close", template: "a}b", offset: 1},
		{description: "nested open", template: "{a{b}}", offset: 2},
		{description: "unknown type", template: "x {:zz}", offset: 2},
		{description: "duplicate name", template: "{a} {a:d}", offset: 4},
		{description: "duplicate ordinal", template: "{} {0}", offset: 3},
		{description: "duplicate flattened", template: "{a.b} {a__b}", offset: 6},
	}
	for _, testCase := range testCases {
		_, err := Compile(testCase.template, registry.Lookup)
		require.NotNil(t, err, testCase.description)
		assert.True(t, errors.Is(err, ErrInvalidFormat), testCase.description)
		var compileErr *Error
		require.True(t, errors.As(err, &compileErr), testCase.description)
		assert.Equal(t, testCase.offset, compileErr.Offset, testCase.description)
	}
}

func TestCompile_Fragment(t *testing.T) {
	var testCases = []struct {
		description string
		expr        string
		expect      string
		hasError    bool
	}{
		{description: "plain fragment", expr: `[a-z]+`, expect: `([a-z]+)`},
		{description: "inner capture", expr: `(a)(b)`, expect: `(ab)`},
		{description: "invalid fragment", expr: `(a`, hasError: true},
	}
	for _, testCase := range testCases {
		registry := conv.NewRegistry(map[string]conv.Converter{
			"x": &conv.Func{Expr: testCase.expr, Fn: func(text string) (conv.Value, error) {
				return conv.TextValue(text), nil
			}},
		})
		actual, err := Compile("{:x}", registry.Lookup)
		if testCase.hasError {
			assert.True(t, errors.Is(err, ErrInvalidFormat), testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual.Search, testCase.description)
		expr, err := regexp.Compile(actual.Search)
		require.Nil(t, err, testCase.description)
		assert.Equal(t, 1, expr.NumSubexp(), testCase.description)
	}
}

func TestCompile_Deterministic(t *testing.T) {
	registry := conv.Builtins()
	template := "{id:d} {name} {:tg} {{x}}"
	first, err := Compile(template, registry.Lookup)
	require.Nil(t, err)
	second, err := Compile(template, registry.Lookup)
	require.Nil(t, err)
	assert.Equal(t, first.Exact, second.Exact)
	assert.Equal(t, first.Search, second.Search)
	assert.Equal(t, first.Fields, second.Fields)
	assert.Equal(t, first.Index, second.Index)
}

func TestPattern_FieldIndex(t *testing.T) {
	actual, err := Compile("{user.name} {}", nil)
	require.Nil(t, err)
	var testCases = []struct {
		name   string
		expect int
		ok     bool
	}{
		{name: "user.name", expect: 0, ok: true},
		{name: "user__name", expect: 0, ok: true},
		{name: "1", expect: 1, ok: true},
		{name: "user", ok: false},
	}
	for _, testCase := range testCases {
		idx, ok := actual.FieldIndex(testCase.name)
		assert.Equal(t, testCase.ok, ok, testCase.name)
		assert.Equal(t, testCase.expect, idx, testCase.name)
	}
}

func TestNormalize(t *testing.T) {
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: "name", expect: "name"},
		{input: "a.b", expect: "a__b"},
		{input: "a[0]", expect: "a__0"},
		{input: "a.b[1].c", expect: "a__b__1__c"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Normalize(testCase.input), testCase.input)
	}
}
