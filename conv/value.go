package conv

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the variant carried by a Value
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindDate
	KindClock
	KindDateTime
	KindCustom
)

var kindNames = [...]string{"text", "int", "float", "date", "time", "datetime", "custom"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Date represents a calendar date without clock or zone
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String returns date in YYYY-MM-DD form
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date at midnight UTC
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Clock represents a wall clock time without date or zone
type Clock struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// String returns clock in hh:mm:ss form
func (c Clock) String() string {
	if c.Nanosecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", c.Hour, c.Minute, c.Second, c.Nanosecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Duration returns clock as an offset from midnight
func (c Clock) Duration() time.Duration {
	return time.Duration(c.Hour)*time.Hour +
		time.Duration(c.Minute)*time.Minute +
		time.Duration(c.Second)*time.Second +
		time.Duration(c.Nanosecond)
}

// Value represents a converted field value
type Value struct {
	kind Kind
	data interface{}
}

// TextValue creates a text value
func TextValue(v string) Value { return Value{kind: KindText, data: v} }

// IntValue creates an integer value
func IntValue(v int64) Value { return Value{kind: KindInt, data: v} }

// FloatValue creates a float value
func FloatValue(v float64) Value { return Value{kind: KindFloat, data: v} }

// DateValue creates a calendar date value
func DateValue(v Date) Value { return Value{kind: KindDate, data: v} }

// ClockValue creates a wall clock value
func ClockValue(v Clock) Value { return Value{kind: KindClock, data: v} }

// DateTimeValue creates a date-time value, normalized to UTC
func DateTimeValue(v time.Time) Value { return Value{kind: KindDateTime, data: v.UTC()} }

// CustomValue wraps a value produced by a user converter
func CustomValue(v interface{}) Value { return Value{kind: KindCustom, data: v} }

// Kind returns value kind
func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns underlying value
func (v Value) Interface() interface{} {
	return v.data
}

// Int returns integer value, false for other kinds
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	ret, ok := v.data.(int64)
	return ret, ok
}

// Float returns float value, false for other kinds
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	ret, ok := v.data.(float64)
	return ret, ok
}

// Text returns text value, false for other kinds or a zero Value
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	ret, ok := v.data.(string)
	return ret, ok
}

// Date returns calendar date value, false for other kinds
func (v Value) Date() (Date, bool) {
	if v.kind != KindDate {
		return Date{}, false
	}
	ret, ok := v.data.(Date)
	return ret, ok
}

// Clock returns wall clock value, false for other kinds
func (v Value) Clock() (Clock, bool) {
	if v.kind != KindClock {
		return Clock{}, false
	}
	ret, ok := v.data.(Clock)
	return ret, ok
}

// DateTime returns UTC date-time value, false for other kinds
func (v Value) DateTime() (time.Time, bool) {
	if v.kind != KindDateTime {
		return time.Time{}, false
	}
	ret, ok := v.data.(time.Time)
	return ret, ok
}

// Custom returns value produced by a user converter
func (v Value) Custom() (interface{}, bool) {
	if v.kind != KindCustom {
		return nil, false
	}
	return v.data, true
}

// String returns textual form of the value
func (v Value) String() string {
	switch actual := v.data.(type) {
	case nil:
		return ""
	case string:
		return actual
	case int64:
		return strconv.FormatInt(actual, 10)
	case float64:
		return strconv.FormatFloat(actual, 'g', -1, 64)
	case time.Time:
		return actual.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return actual.String()
	}
	return fmt.Sprintf("%v", v.data)
}

// As returns the value as T when the underlying value has that type
func As[T any](v Value) (T, bool) {
	ret, ok := v.data.(T)
	return ret, ok
}
