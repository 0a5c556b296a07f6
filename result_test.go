package parsefmt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/parsefmt/conv"
)

func TestResult_Accessors(t *testing.T) {
	matcher := MustCompile("Name: {name:w}, Age: {age:d}, {}", true)
	result, err := matcher.Parse("Name: Alice, Age: 25, extra")
	require.Nil(t, err)

	var testCases = []struct {
		description string
		position    int
		name        string
		raw         string
		span        Span
	}{
		{description: "named word", position: 0, name: "name", raw: "Alice", span: Span{Start: 6, End: 11}},
		{description: "named int", position: 1, name: "age", raw: "25", span: Span{Start: 18, End: 20}},
		{description: "anonymous by ordinal", position: 2, name: "2", raw: "extra", span: Span{Start: 22, End: 27}},
	}
	for _, testCase := range testCases {
		byPosition, ok := result.Value(testCase.position)
		require.True(t, ok, testCase.description)
		byName, ok := result.Named(testCase.name)
		require.True(t, ok, testCase.description)
		assert.Equal(t, byPosition, byName, testCase.description)

		raw, ok := result.Raw(testCase.position)
		assert.True(t, ok, testCase.description)
		assert.Equal(t, testCase.raw, raw, testCase.description)
		raw, ok = result.RawNamed(testCase.name)
		assert.True(t, ok, testCase.description)
		assert.Equal(t, testCase.raw, raw, testCase.description)

		span, ok := result.Span(testCase.position)
		assert.True(t, ok, testCase.description)
		assert.Equal(t, testCase.span, span, testCase.description)
	}

	assert.Equal(t, 3, result.Len())
	assert.Equal(t, map[string]string{"name": "Alice", "age": "25", "2": "extra"}, result.Map())
	assert.Len(t, result.Fields(), 3)
	assert.Len(t, result.Values(), 3)

	_, ok := result.Value(3)
	assert.False(t, ok)
	_, ok = result.Value(-1)
	assert.False(t, ok)
	_, ok = result.Named("missing")
	assert.False(t, ok)
	_, ok = result.Raw(5)
	assert.False(t, ok)
	_, ok = result.RawNamed("missing")
	assert.False(t, ok)
	_, ok = result.Span(5)
	assert.False(t, ok)
}

func TestResult_TypedLookup(t *testing.T) {
	matcher := MustCompile("{id:d} {score:f} {user.name:w} {at:ti} {day:tg}", true)
	result, err := matcher.Parse("7 9.5 bob 2024-12-27T19:57:55+01:00 12:15 PM")
	require.Nil(t, err)

	id, ok := Get[int64](result, 0)
	assert.True(t, ok)
	assert.EqualValues(t, 7, id)

	_, ok = Get[string](result, 0)
	assert.False(t, ok, "type mismatch returns false")
	_, ok = Get[int64](result, 10)
	assert.False(t, ok, "out of range returns false")

	score, ok := Lookup[float64](result, "score")
	assert.True(t, ok)
	assert.Equal(t, 9.5, score)

	name, ok := Lookup[string](result, "user.name")
	assert.True(t, ok)
	assert.Equal(t, "bob", name)
	name, ok = Lookup[string](result, "user__name")
	assert.True(t, ok)
	assert.Equal(t, "bob", name)

	at, ok := Lookup[time.Time](result, "at")
	assert.True(t, ok)
	assert.True(t, time.Date(2024, 12, 27, 18, 57, 55, 0, time.UTC).Equal(at))

	clock, ok := Lookup[conv.Clock](result, "day")
	assert.True(t, ok)
	assert.Equal(t, conv.Clock{Hour: 12, Minute: 15}, clock)

	_, ok = Lookup[int64](result, "nope")
	assert.False(t, ok)

	value, _ := result.Named("id")
	n, ok := value.Int()
	assert.True(t, ok)
	assert.EqualValues(t, 7, n)
	_, ok = value.DateTime()
	assert.False(t, ok)
}

func TestResult_MarshalJSON(t *testing.T) {
	matcher := compileWithUpper(t, "{id:d} {score:f} {name:w} {at:ti} {day:ti} {tag:upper}")
	result, err := matcher.Parse("7 9.5 bob 2024-12-27T19:57:55Z 2024-12-28 X")
	require.Nil(t, err)

	data, err := json.Marshal(result)
	require.Nil(t, err)
	var actual map[string]interface{}
	require.Nil(t, json.Unmarshal(data, &actual))
	assert.Equal(t, map[string]interface{}{
		"id":    7.0,
		"score": 9.5,
		"name":  "bob",
		"at":    "2024-12-27T19:57:55Z",
		"day":   "2024-12-28",
		"tag":   "x",
	}, actual)

	encoded, err := gojay.MarshalJSONObject(result)
	require.Nil(t, err)
	assert.JSONEq(t, string(data), string(encoded))
}

func compileWithUpper(t *testing.T, template string) *Matcher {
	matcher, err := CompileWithTypes(template, true, map[string]conv.Converter{
		"upper": &conv.Func{Expr: `[A-Z]+`, Fn: func(text string) (conv.Value, error) {
			return conv.CustomValue(strings.ToLower(text)), nil
		}},
	})
	require.Nil(t, err)
	return matcher
}

func TestResult_MarshalJSONCustom(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	matcher, err := CompileWithTypes("{n:d} {at:pt} {size:u} {none:nil}", true, map[string]conv.Converter{
		"pt": &conv.Func{Expr: `\d+,\d+`, Fn: func(text string) (conv.Value, error) {
			var x, y int
			_, err := fmt.Sscanf(text, "%d,%d", &x, &y)
			return conv.CustomValue(point{X: x, Y: y}), err
		}},
		"u": &conv.Func{Expr: `\d+`, Fn: func(text string) (conv.Value, error) {
			v, err := strconv.ParseUint(text, 10, 64)
			return conv.CustomValue(uint(v)), err
		}},
		"nil": conv.ConverterFunc(func(text string) (conv.Value, error) { return conv.CustomValue(nil), nil }),
	})
	require.Nil(t, err)
	result, err := matcher.Parse("3 1,2 10 x")
	require.Nil(t, err)

	data, err := result.MarshalJSON()
	require.Nil(t, err)
	assert.JSONEq(t, `{"n":3,"at":{"x":1,"y":2},"size":10,"none":null}`, string(data))
}
