package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		layout      string
		input       string
		expect      time.Time
	}{
		{
			description: "iso time",
			layout:      "2006-01-02 15:04:05",
			input:       "2023-01-02 01:22:19",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
		{
			description: "rfc time",
			input:       "2023-01-02T01:22:19Z",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
		{
			description: "date",
			input:       "2023-01-02",
			expect:      time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, testCase := range testCases {
		ts, err := Parse(testCase.layout, testCase.input)
		require.Nil(t, err, testCase.description)
		assert.True(t, testCase.expect.Equal(ts), testCase.description)
	}
}

func TestDateFormatToTimeLayout(t *testing.T) {
	var testCases = []struct {
		description string
		format      string
		expect      string
	}{
		{description: "day first", format: "D/M/YYYY hh:mm:ss", expect: "2/1/2006 15:04:05"},
		{description: "12 hour clock", format: "K:mm a", expect: "3:04 PM"},
		{description: "email", format: "EEE, D MMM YYYY hh:mm:ss +hhmm", expect: "Mon, 2 Jan 2006 15:04:05 Z0700"},
		{description: "http log", format: "DD/MMM/YYYY:hh:mm:ss +hhmm", expect: "02/Jan/2006:15:04:05 Z0700"},
		{description: "iso", format: "YYYY-M-DThh:mm:ss.SSS+hh:mm", expect: "2006-1-2T15:04:05.999Z07:00"},
		{description: "long month", format: "MMMM D, YYYY", expect: "January 2, 2006"},
		{description: "compact", format: "YYYYMMDD", expect: "20060102"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, DateFormatToTimeLayout(testCase.format), testCase.description)
	}
}

func TestNewLayout_Kind(t *testing.T) {
	var testCases = []struct {
		format string
		expect Kind
	}{
		{format: "D/M/YYYY hh:mm:ss", expect: KindDateTime},
		{format: "D/M/YYYY", expect: KindDate},
		{format: "MMM D, YYYY", expect: KindDate},
		{format: "hh:mm:ss", expect: KindClock},
		{format: "hh:mm:ss +hhmm", expect: KindClock},
		{format: "K:mm a", expect: KindClock},
		{format: "YYYY-M-D", expect: KindDate},
		{format: "DD/MMM/YYYY:hh:mm:ss +hhmm", expect: KindDateTime},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, NewLayout(testCase.format).Kind, testCase.format)
	}
}

func TestParseAny(t *testing.T) {
	layouts := NewLayouts(
		"D/M/YYYY hh:mm:ss",
		"D/M/YYYY K:mm a",
		"D/M/YYYY",
		"hh:mm:ss",
		"K:mm a",
		"K:mm:ss a +hhmm",
	)
	var testCases = []struct {
		description string
		input       string
		kind        Kind
		expect      time.Time
		hasError    bool
	}{
		{
			description: "date time",
			input:       "27/12/2024 19:57:55",
			kind:        KindDateTime,
			expect:      time.Date(2024, 12, 27, 19, 57, 55, 0, time.UTC),
		},
		{
			description: "noon",
			input:       "1/2/2011 12:15 PM",
			kind:        KindDateTime,
			expect:      time.Date(2011, 2, 1, 12, 15, 0, 0, time.UTC),
		},
		{
			description: "midnight",
			input:       "1/2/2011 12:15 am",
			kind:        KindDateTime,
			expect:      time.Date(2011, 2, 1, 0, 15, 0, 0, time.UTC),
		},
		{
			description: "meridiem without space",
			input:       "7:05PM",
			kind:        KindClock,
			expect:      time.Date(0, 1, 1, 19, 5, 0, 0, time.UTC),
		},
		{
			description: "date only",
			input:       "27/12/2024",
			kind:        KindDate,
			expect:      time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "clock only",
			input:       "19:57:55",
			kind:        KindClock,
			expect:      time.Date(0, 1, 1, 19, 57, 55, 0, time.UTC),
		},
		{
			description: "lower case meridiem before offset",
			input:       "07:57:55 pm +0100",
			kind:        KindClock,
			expect:      time.Date(0, 1, 1, 18, 57, 55, 0, time.UTC),
		},
		{
			description: "invalid day",
			input:       "32/12/2024",
			hasError:    true,
		},
	}
	for _, testCase := range testCases {
		ts, kind, err := ParseAny(layouts, testCase.input)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.kind, kind, testCase.description)
		assert.True(t, testCase.expect.Equal(ts), testCase.description+": "+ts.String())
	}
}
