package time

import (
	"fmt"
	"strings"
	"time"
)

var iso20220715DateFormatToRfc3339TimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"EEEE", "Monday",
	"EEE", "Mon",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"H", "15",
	"KK", "03",
	"K", "3",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".999",
	".SS", ".99",
	".S", ".9",
	"-hh", "Z07",
	"Z", "Z07:00",
	"a", "PM",
)

// DateFormatToTimeLayout converts ISO 2022-07-15 date format to RFC3339 time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return iso20220715DateFormatToRfc3339TimeLayoutReplacer.Replace(dateFormat)
}

// Kind describes which calendar parts a layout carries
type Kind int

const (
	//KindDateTime layout carries both date and clock parts
	KindDateTime Kind = iota
	//KindDate layout carries date parts only
	KindDate
	//KindClock layout carries clock parts only
	KindClock
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindClock:
		return "time"
	}
	return "datetime"
}

// Layout represents a candidate date format with its go layout
type Layout struct {
	Format string
	Layout string
	Kind   Kind
}

// NewLayout creates a layout for supplied date format
func NewLayout(dateFormat string) Layout {
	return Layout{
		Format: dateFormat,
		Layout: DateFormatToTimeLayout(dateFormat),
		Kind:   kindOf(dateFormat),
	}
}

// NewLayouts creates layouts for supplied date formats, keeping their order
func NewLayouts(dateFormats ...string) []Layout {
	var result = make([]Layout, 0, len(dateFormats))
	for _, dateFormat := range dateFormats {
		result = append(result, NewLayout(dateFormat))
	}
	return result
}

func kindOf(dateFormat string) Kind {
	//offset tokens use h/m but are not clock parts
	bare := dateFormat
	for _, offset := range []string{"+hh:mm", "-hh:mm", "+hhmm", "-hhmm", "+hh", "-hh"} {
		bare = strings.ReplaceAll(bare, offset, "")
	}
	hasDate := strings.ContainsAny(bare, "YMDE")
	hasClock := strings.ContainsAny(bare, "hHKms")
	switch {
	case hasDate && !hasClock:
		return KindDate
	case hasClock && !hasDate:
		return KindClock
	}
	return KindDateTime
}

// ParseAny parses value with the first matching layout. Date-time layouts are tried first,
// then date layouts, then clock layouts, each group in declaration order.
func ParseAny(layouts []Layout, value string) (time.Time, Kind, error) {
	value = normalizeMeridiem(value)
	for _, kind := range []Kind{KindDateTime, KindDate, KindClock} {
		for _, candidate := range layouts {
			if candidate.Kind != kind {
				continue
			}
			if ts, err := time.ParseInLocation(candidate.Layout, value, time.UTC); err == nil {
				return ts, kind, nil
			}
		}
	}
	return time.Time{}, KindDateTime, fmt.Errorf("no layout matches %q", value)
}

// normalizeMeridiem upper-cases the first am/pm marker following a clock digit and separates it with one space
func normalizeMeridiem(value string) string {
	for i := 1; i+2 <= len(value); i++ {
		marker := strings.ToUpper(value[i : i+2])
		if marker != "AM" && marker != "PM" {
			continue
		}
		if i+2 < len(value) && isLetter(value[i+2]) {
			continue
		}
		head := strings.TrimRight(value[:i], " \t")
		if head == "" || head[len(head)-1] < '0' || head[len(head)-1] > '9' {
			continue
		}
		return head + " " + marker + value[i+2:]
	}
	return value
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	//adjust T fragment
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		if len(value) > len(layout) {
			value = value[:len(layout)]
			t, err = time.Parse(layout, value)
		} else {
			layout = layout[:len(value)]
			t, err = time.Parse(layout, value)
		}
	}
	return t, err
}
