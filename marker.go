package parsefmt

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// marker sets bool flags of a `setMarker:"true"` holder for decoded struct fields
type marker struct {
	holder *xunsafe.Field
	flags  map[string]*xunsafe.Field
}

func (m *marker) set(structPtr unsafe.Pointer, fieldName string) {
	if m == nil {
		return
	}
	flag, ok := m.flags[fieldName]
	if !ok {
		return
	}
	holderPtr := m.holder.Pointer(structPtr)
	if m.holder.Type.Kind() == reflect.Ptr {
		next := (*unsafe.Pointer)(holderPtr)
		if *next == nil {
			alloc := reflect.New(m.holder.Type.Elem())
			*next = unsafe.Pointer(alloc.Pointer())
		}
		holderPtr = *next
	}
	flag.SetBool(holderPtr, true)
}

// newMarker returns marker for struct type or nil when the type has no holder
func newMarker(t reflect.Type) *marker {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !IsSetMarker(field.Tag) {
			continue
		}
		holderType := ensureStruct(field.Type)
		if holderType == nil {
			return nil
		}
		ret := &marker{holder: xunsafe.NewField(field), flags: map[string]*xunsafe.Field{}}
		for j := 0; j < holderType.NumField(); j++ {
			flag := holderType.Field(j)
			if flag.Type.Kind() == reflect.Bool {
				ret.flags[flag.Name] = xunsafe.NewField(flag)
			}
		}
		return ret
	}
	return nil
}
