package parsefmt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/viant/parsefmt/conv"
	"github.com/viant/parsefmt/pattern"
)

// Span represents byte offsets of a match in the input, [Start, End)
type Span struct {
	Start int
	End   int
}

// Result represents a successful match
type Result struct {
	pattern *pattern.Pattern
	span    Span
	raw     []string
	values  []conv.Value
	spans   []Span
}

// Len returns number of fields
func (r *Result) Len() int {
	return len(r.values)
}

// Value returns converted value at 0-based field position
func (r *Result) Value(i int) (conv.Value, bool) {
	if i < 0 || i >= len(r.values) {
		return conv.Value{}, false
	}
	return r.values[i], true
}

// Named returns converted value for field identifier, anonymous fields are named by ordinal
func (r *Result) Named(name string) (conv.Value, bool) {
	idx, ok := r.pattern.FieldIndex(name)
	if !ok {
		return conv.Value{}, false
	}
	return r.Value(idx)
}

// Raw returns captured text at 0-based field position
func (r *Result) Raw(i int) (string, bool) {
	if i < 0 || i >= len(r.raw) {
		return "", false
	}
	return r.raw[i], true
}

// RawNamed returns captured text for field identifier
func (r *Result) RawNamed(name string) (string, bool) {
	idx, ok := r.pattern.FieldIndex(name)
	if !ok {
		return "", false
	}
	return r.Raw(idx)
}

// Span returns field offsets in the input
func (r *Result) Span(i int) (Span, bool) {
	if i < 0 || i >= len(r.spans) {
		return Span{}, false
	}
	return r.spans[i], true
}

// MatchSpan returns whole match offsets in the input
func (r *Result) MatchSpan() Span {
	return r.span
}

// Fields returns matched template fields
func (r *Result) Fields() []pattern.Field {
	return append([]pattern.Field{}, r.pattern.Fields...)
}

// Values returns converted values in declaration order
func (r *Result) Values() []conv.Value {
	return append([]conv.Value{}, r.values...)
}

// Map returns field identifier to captured text mapping
func (r *Result) Map() map[string]string {
	var result = make(map[string]string, len(r.raw))
	for i, field := range r.pattern.Fields {
		result[field.Name] = r.raw[i]
	}
	return result
}

// Get returns value at field position as T, false if position is out of range or type differs
func Get[T any](r *Result, i int) (T, bool) {
	value, ok := r.Value(i)
	if !ok {
		var zero T
		return zero, false
	}
	return conv.As[T](value)
}

// Lookup returns value for field identifier as T, false if field is unknown or type differs
func Lookup[T any](r *Result, name string) (T, bool) {
	value, ok := r.Named(name)
	if !ok {
		var zero T
		return zero, false
	}
	return conv.As[T](value)
}

// MarshalJSONObject encodes field identifier to value object
func (r *Result) MarshalJSONObject(enc *gojay.Encoder) {
	for i, field := range r.pattern.Fields {
		value := r.values[i]
		switch value.Kind() {
		case conv.KindInt:
			v, _ := value.Int()
			enc.Int64Key(field.Name, v)
		case conv.KindFloat:
			v, _ := value.Float()
			enc.Float64Key(field.Name, v)
		case conv.KindDateTime:
			v, _ := value.DateTime()
			enc.StringKey(field.Name, v.Format(time.RFC3339Nano))
		case conv.KindCustom:
			encodeCustom(enc, field.Name, value.Interface())
		default:
			enc.StringKey(field.Name, value.String())
		}
	}
}

// encodeCustom writes values gojay can not encode natively as embedded encoding/json output
func encodeCustom(enc *gojay.Encoder, key string, value interface{}) {
	switch value.(type) {
	case string, bool, int, int8, int16, int32, int64, uint8, uint16, uint32, uint64, float32, float64,
		gojay.MarshalerJSONObject, gojay.MarshalerJSONArray:
		enc.AddInterfaceKey(key, value)
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		enc.StringKey(key, fmt.Sprintf("%v", value))
		return
	}
	embedded := gojay.EmbeddedJSON(data)
	enc.AddEmbeddedJSONKey(key, &embedded)
}

// IsNil returns true for a nil result
func (r *Result) IsNil() bool {
	return r == nil
}

// MarshalJSON encodes result as JSON object
func (r *Result) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONObject(r)
}
