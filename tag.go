package parsefmt

import (
	"reflect"
	"strings"

	ftime "github.com/viant/parsefmt/format/time"
	"github.com/viant/parsefmt/pattern"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
)

const (
	//TagName defines struct tag mapping a field identifier, i.e. `parse:"user.name"`
	TagName = "parse"
	//SetMarkerTag defines struct tag of a field holding decoded field flags
	SetMarkerTag = "setMarker"
)

// IsSetMarker returns true if tag marks a set marker holder
func IsSetMarker(tag reflect.StructTag) bool {
	return tag.Get(SetMarkerTag) == "true"
}

type fieldTag struct {
	names      []string
	ignore     bool
	timeLayout string
}

// newFieldTag resolves identifiers a struct field accepts, parse tag wins over format tag name
func newFieldTag(field reflect.StructField) *fieldTag {
	ret := &fieldTag{}
	fTag, _ := format.Parse(field.Tag)
	if fTag != nil {
		ret.ignore = fTag.Ignore
		ret.timeLayout = fTag.TimeLayout
		if ret.timeLayout == "" && fTag.DateFormat != "" {
			ret.timeLayout = ftime.DateFormatToTimeLayout(fTag.DateFormat)
		}
	}
	if name, ok := field.Tag.Lookup(TagName); ok {
		if name == "-" {
			ret.ignore = true
			return ret
		}
		ret.names = append(ret.names, pattern.Normalize(name))
		return ret
	}
	if fTag != nil && fTag.Name != "" {
		ret.names = append(ret.names, pattern.Normalize(fTag.Name))
		return ret
	}
	ret.names = append(ret.names, field.Name)
	if name := lowerUnderscore(field.Name); name != field.Name {
		ret.names = append(ret.names, name)
	}
	return ret
}

func lowerUnderscore(name string) string {
	if name == "ID" {
		return "id"
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, text.CaseFormatLowerUnderscore)
}

func nameKey(name string) string {
	return strings.ToLower(name)
}
