package parsefmt

import (
	"reflect"
	"time"

	"github.com/viant/parsefmt/conv"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	dateType     = reflect.TypeOf(conv.Date{})
	clockType    = reflect.TypeOf(conv.Clock{})
	valueType    = reflect.TypeOf(conv.Value{})
)

// isValueType returns true for struct types decoded as a single value
func isValueType(candidate reflect.Type) bool {
	switch ensureStruct(candidate) {
	case timeType, dateType, clockType, valueType:
		return true
	}
	return false
}

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}
