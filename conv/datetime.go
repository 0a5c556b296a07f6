package conv

import (
	"time"

	ftime "github.com/viant/parsefmt/format/time"
)

// Date/time tags
const (
	TagGeneric  = "tg"
	TagAmerican = "ta"
	TagEmail    = "te"
	TagHTTP     = "th"
	TagSyslog   = "ts"
	TagISO      = "ti"
)

const (
	meridiemExpr = `(?:\s*[AaPp][Mm])?`
	clockExpr    = `\d{1,2}:\d{2}(?::\d{2})?` + meridiemExpr

	dayFirstExpr  = `\d{1,2}/\d{1,2}/\d{4}(?:\s+` + clockExpr + `)?`
	yearFirstExpr = `\d{4}/\d{1,2}/\d{1,2}(?:\s+` + clockExpr + `)?`

	genericExpr  = dayFirstExpr + `|` + yearFirstExpr + `|` + clockExpr
	americanExpr = dayFirstExpr
	emailExpr    = `(?:[A-Za-z]{3},\s+)?\d{1,2}\s+[A-Za-z]{3}\s+\d{4}(?:\s+\d{2}:\d{2}:\d{2}\s+[-+]\d{4})?`
	httpExpr     = `\d{2}/[A-Za-z]{3}/\d{4}:\d{2}:\d{2}:\d{2}\s+[-+]\d{4}`
	syslogExpr   = `[A-Za-z]{3}\s+\d{1,2}\s+\d{4}\s+\d{2}:\d{2}:\d{2}`
	isoExpr      = `\d{4}-\d{1,2}-\d{1,2}(?:T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})?)?`

	dateExpr = `(?:(?:19|20)\d\d[-/](?:0[1-9]|1[0-2])[-/](?:0[1-9]|[12]\d|3[01])` +
		`|(?:0[1-9]|[12]\d|3[01])[-/](?:0[1-9]|1[0-2])[-/](?:19|20)\d\d` +
		`|(?:0[1-9]|[12]\d|3[01])(?:\s+|-)?(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)(?:\s*,\s*|\s+|-)?(?:19|20)\d\d` +
		`|(?:19|20)\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01]))`
	timeExpr = `(?:[01]\d|2[0-3]):[0-5]\d(?::[0-5]\d)?(?:\s*[AaPp][Mm])?(?:\s*[-+]\d{2}:?\d{2})?`
)

var (
	genericFormats = []string{
		"D/M/YYYY hh:mm:ss", "D/M/YYYY hh:mm", "D/M/YYYY K:mm:ss a", "D/M/YYYY K:mm a",
		"YYYY/M/D hh:mm:ss", "YYYY/M/D hh:mm", "YYYY/M/D K:mm:ss a", "YYYY/M/D K:mm a",
		"D/M/YYYY", "YYYY/M/D",
		"hh:mm:ss", "hh:mm", "K:mm:ss a", "K:mm a",
	}
	americanFormats = []string{
		"M/D/YYYY K:mm:ss a", "M/D/YYYY K:mm a", "M/D/YYYY hh:mm:ss", "M/D/YYYY hh:mm", "M/D/YYYY",
	}
	emailFormats = []string{
		"EEE, D MMM YYYY hh:mm:ss +hhmm", "D MMM YYYY hh:mm:ss +hhmm", "EEE, D MMM YYYY", "D MMM YYYY",
	}
	httpFormats    = []string{"DD/MMM/YYYY:hh:mm:ss +hhmm"}
	syslogFormats  = []string{"MMM D YYYY hh:mm:ss"}
	isoFormats     = []string{"YYYY-M-DThh:mm:ss.SSS+hh:mm", "YYYY-M-DThh:mm:ss.SSS", "YYYY-M-D"}
	dateFormats    = []string{
		"YYYY-M-D", "YYYY/M/D", "D/M/YYYY", "D-M-YYYY", "M/D/YYYY", "M-D-YYYY",
		"D MMM YYYY", "D MMMM YYYY", "MMM D, YYYY", "MMMM D, YYYY", "D-MMM-YYYY", "YYYYMMDD",
	}
	timeFormats = []string{
		"hh:mm:ss", "hh:mm", "K:mm:ss a", "K:mm a",
		"hh:mm:ss +hhmm", "hh:mm:ss +hh:mm", "K:mm:ss a +hhmm", "K:mm:ss a +hh:mm",
	}
)

type dateTime struct {
	tag     string
	expr    string
	layouts []ftime.Layout
}

func (d *dateTime) Pattern() string {
	return d.expr
}

// Convert tries date-time layouts first, then date only, then clock only layouts
func (d *dateTime) Convert(text string) (Value, error) {
	ts, kind, err := ftime.ParseAny(d.layouts, text)
	if err != nil {
		return Value{}, NewError(d.tag, text, err)
	}
	switch kind {
	case ftime.KindDate:
		return DateValue(dateOf(ts)), nil
	case ftime.KindClock:
		return ClockValue(Clock{Hour: ts.Hour(), Minute: ts.Minute(), Second: ts.Second(), Nanosecond: ts.Nanosecond()}), nil
	}
	return DateTimeValue(ts), nil
}

// NewDateTime creates a date/time converter for the supplied expression fragment and
// candidate date formats (i.e. "DD/MM/YYYY hh:mm:ss"), tried in declaration order within
// each kind. tag is only used to describe conversion errors.
func NewDateTime(tag, expr string, formats ...string) Converter {
	return &dateTime{tag: tag, expr: expr, layouts: ftime.NewLayouts(formats...)}
}

// NewDate creates a broad date only converter
func NewDate() Converter {
	return NewDateTime("date", dateExpr, dateFormats...)
}

// NewTime creates a broad clock only converter
func NewTime() Converter {
	return NewDateTime("time", timeExpr, timeFormats...)
}

func dateTimeBuiltins() map[string]Converter {
	return map[string]Converter{
		TagGeneric:  NewDateTime(TagGeneric, genericExpr, genericFormats...),
		TagAmerican: NewDateTime(TagAmerican, americanExpr, americanFormats...),
		TagEmail:    NewDateTime(TagEmail, emailExpr, emailFormats...),
		TagHTTP:     NewDateTime(TagHTTP, httpExpr, httpFormats...),
		TagSyslog:   NewDateTime(TagSyslog, syslogExpr, syslogFormats...),
		TagISO:      NewDateTime(TagISO, isoExpr, isoFormats...),
	}
}

// dateOf returns calendar date of t
func dateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}
