package parsefmt

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
	"unsafe"

	"github.com/viant/parsefmt/conv"
	ftime "github.com/viant/parsefmt/format/time"
	"github.com/viant/xunsafe"
)

type (
	// Setter assigns value to a destination field pointer
	Setter func(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error

	setterOptions struct {
		rType      reflect.Type
		timeLayout string
	}
)

func (o *setterOptions) layout() string {
	if o.timeLayout == "" {
		return time.RFC3339
	}
	return o.timeLayout
}

func textToString(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	*xunsafe.AsStringPtr(ptr) = value.String()
	return nil
}

func dateTimeToString(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	ts, _ := value.DateTime()
	*xunsafe.AsStringPtr(ptr) = ts.Format(opts.layout())
	return nil
}

func dateToString(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	date, _ := value.Date()
	if opts.timeLayout == "" {
		*xunsafe.AsStringPtr(ptr) = date.String()
		return nil
	}
	*xunsafe.AsStringPtr(ptr) = date.Time().Format(opts.timeLayout)
	return nil
}

func intToInt(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	v, _ := value.Int()
	return setInt(ptr, opts.rType, v)
}

func floatToInt(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	v, _ := value.Float()
	return setInt(ptr, opts.rType, int64(v))
}

func textToInt(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	text, _ := value.Text()
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return err
	}
	return setInt(ptr, opts.rType, v)
}

func clockToDuration(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	clock, _ := value.Clock()
	*xunsafe.AsInt64Ptr(ptr) = int64(clock.Duration())
	return nil
}

func setInt(ptr unsafe.Pointer, rType reflect.Type, v int64) error {
	switch rType.Kind() {
	case reflect.Int:
		if v < math.MinInt || v > math.MaxInt {
			return fmt.Errorf("number out of range for int: %d", v)
		}
		*xunsafe.AsIntPtr(ptr) = int(v)
	case reflect.Int8:
		if v < math.MinInt8 || v > math.MaxInt8 {
			return fmt.Errorf("number out of range for int8: %d", v)
		}
		*xunsafe.AsInt8Ptr(ptr) = int8(v)
	case reflect.Int16:
		if v < math.MinInt16 || v > math.MaxInt16 {
			return fmt.Errorf("number out of range for int16: %d", v)
		}
		*xunsafe.AsInt16Ptr(ptr) = int16(v)
	case reflect.Int32:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return fmt.Errorf("number out of range for int32: %d", v)
		}
		*xunsafe.AsInt32Ptr(ptr) = int32(v)
	case reflect.Int64:
		*xunsafe.AsInt64Ptr(ptr) = v
	default:
		return fmt.Errorf("unsupported int type: %s", rType.String())
	}
	return nil
}

func intToUint(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	v, _ := value.Int()
	if v < 0 {
		return fmt.Errorf("negative number for %s: %d", opts.rType.String(), v)
	}
	return setUint(ptr, opts.rType, uint64(v))
}

func textToUint(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	text, _ := value.Text()
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return err
	}
	return setUint(ptr, opts.rType, v)
}

func setUint(ptr unsafe.Pointer, rType reflect.Type, v uint64) error {
	switch rType.Kind() {
	case reflect.Uint:
		if uint64(uint(v)) != v {
			return fmt.Errorf("number out of range for uint: %d", v)
		}
		*xunsafe.AsUintPtr(ptr) = uint(v)
	case reflect.Uint8:
		if v > math.MaxUint8 {
			return fmt.Errorf("number out of range for uint8: %d", v)
		}
		*xunsafe.AsUint8Ptr(ptr) = uint8(v)
	case reflect.Uint16:
		if v > math.MaxUint16 {
			return fmt.Errorf("number out of range for uint16: %d", v)
		}
		*xunsafe.AsUint16Ptr(ptr) = uint16(v)
	case reflect.Uint32:
		if v > math.MaxUint32 {
			return fmt.Errorf("number out of range for uint32: %d", v)
		}
		*xunsafe.AsUint32Ptr(ptr) = uint32(v)
	case reflect.Uint64:
		*xunsafe.AsUint64Ptr(ptr) = v
	default:
		return fmt.Errorf("unsupported uint type: %s", rType.String())
	}
	return nil
}

func floatToFloat(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	v, _ := value.Float()
	return setFloat(ptr, opts.rType, v)
}

func intToFloat(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	v, _ := value.Int()
	return setFloat(ptr, opts.rType, float64(v))
}

func textToFloat(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	text, _ := value.Text()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return err
	}
	return setFloat(ptr, opts.rType, v)
}

func setFloat(ptr unsafe.Pointer, rType reflect.Type, v float64) error {
	if rType.Kind() == reflect.Float32 {
		*xunsafe.AsFloat32Ptr(ptr) = float32(v)
		return nil
	}
	*xunsafe.AsFloat64Ptr(ptr) = v
	return nil
}

func textToBool(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	text, _ := value.Text()
	v, err := strconv.ParseBool(text)
	if err != nil {
		return err
	}
	*xunsafe.AsBoolPtr(ptr) = v
	return nil
}

func intToBool(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	v, _ := value.Int()
	*xunsafe.AsBoolPtr(ptr) = v != 0
	return nil
}

func dateTimeToTime(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	*xunsafe.AsTimePtr(ptr), _ = value.DateTime()
	return nil
}

func dateToTime(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	date, _ := value.Date()
	*xunsafe.AsTimePtr(ptr) = date.Time()
	return nil
}

func clockToTime(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	clock, _ := value.Clock()
	*xunsafe.AsTimePtr(ptr) = time.Date(0, 1, 1, clock.Hour, clock.Minute, clock.Second, clock.Nanosecond, time.UTC)
	return nil
}

func textToTime(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	text, _ := value.Text()
	ts, err := ftime.Parse(opts.layout(), text)
	if err != nil {
		return err
	}
	*xunsafe.AsTimePtr(ptr) = ts
	return nil
}

func dateToDate(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	*(*conv.Date)(ptr), _ = value.Date()
	return nil
}

func dateTimeToDate(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	ts, _ := value.DateTime()
	*(*conv.Date)(ptr) = conv.Date{Year: ts.Year(), Month: ts.Month(), Day: ts.Day()}
	return nil
}

func clockToClock(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	*(*conv.Clock)(ptr), _ = value.Clock()
	return nil
}

func dateTimeToClock(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	ts, _ := value.DateTime()
	*(*conv.Clock)(ptr) = conv.Clock{Hour: ts.Hour(), Minute: ts.Minute(), Second: ts.Second(), Nanosecond: ts.Nanosecond()}
	return nil
}

func valueToValue(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	*(*conv.Value)(ptr) = value
	return nil
}

func anyToInterface(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	src := reflect.ValueOf(value.Interface())
	if !src.IsValid() {
		return nil
	}
	if !src.Type().AssignableTo(opts.rType) {
		return fmt.Errorf("%s does not implement %s", src.Type().String(), opts.rType.String())
	}
	reflect.NewAt(opts.rType, ptr).Elem().Set(src)
	return nil
}

func anyToAny(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
	src := reflect.ValueOf(value.Interface())
	if !src.IsValid() {
		return nil
	}
	dest := reflect.NewAt(opts.rType, ptr).Elem()
	switch {
	case src.Type().AssignableTo(opts.rType):
		dest.Set(src)
	case src.Type().ConvertibleTo(opts.rType) && src.Kind() == opts.rType.Kind():
		dest.Set(src.Convert(opts.rType))
	default:
		return fmt.Errorf("unable to assign %v value %s to %s", value.Kind(), src.Type().String(), opts.rType.String())
	}
	return nil
}

// pointerSetter allocates pointer target when nil and delegates to elem setter
func pointerSetter(elem Setter, elemType reflect.Type) Setter {
	return func(value conv.Value, ptr unsafe.Pointer, opts *setterOptions) error {
		next := (*unsafe.Pointer)(ptr)
		if *next == nil {
			alloc := reflect.New(elemType)
			*next = unsafe.Pointer(alloc.Pointer())
		}
		elemOpts := *opts
		elemOpts.rType = elemType
		return elem(value, *next, &elemOpts)
	}
}

// LookupSetter returns setter assigning value of kind to dest type
func LookupSetter(kind conv.Kind, dest reflect.Type) Setter {
	switch dest {
	case valueType:
		return valueToValue
	case timeType:
		switch kind {
		case conv.KindDateTime:
			return dateTimeToTime
		case conv.KindDate:
			return dateToTime
		case conv.KindClock:
			return clockToTime
		case conv.KindText:
			return textToTime
		}
	case dateType:
		switch kind {
		case conv.KindDate:
			return dateToDate
		case conv.KindDateTime:
			return dateTimeToDate
		}
	case clockType:
		switch kind {
		case conv.KindClock:
			return clockToClock
		case conv.KindDateTime:
			return dateTimeToClock
		}
	case durationType:
		if kind == conv.KindClock {
			return clockToDuration
		}
	}
	if kind == conv.KindCustom {
		if dest.Kind() == reflect.Interface {
			return anyToInterface
		}
		return anyToAny
	}
	switch dest.Kind() {
	case reflect.Interface:
		return anyToInterface
	case reflect.String:
		switch kind {
		case conv.KindDateTime:
			return dateTimeToString
		case conv.KindDate:
			return dateToString
		}
		return textToString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch kind {
		case conv.KindInt:
			return intToInt
		case conv.KindFloat:
			return floatToInt
		case conv.KindText:
			return textToInt
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch kind {
		case conv.KindInt:
			return intToUint
		case conv.KindText:
			return textToUint
		}
	case reflect.Float32, reflect.Float64:
		switch kind {
		case conv.KindFloat:
			return floatToFloat
		case conv.KindInt:
			return intToFloat
		case conv.KindText:
			return textToFloat
		}
	case reflect.Bool:
		switch kind {
		case conv.KindText:
			return textToBool
		case conv.KindInt:
			return intToBool
		}
	case reflect.Ptr:
		return pointerSetter(LookupSetter(kind, dest.Elem()), dest.Elem())
	}
	return anyToAny
}
