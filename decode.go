package parsefmt

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

type (
	fieldPlan struct {
		path    string
		rType   reflect.Type
		options setterOptions
		resolve func(structPtr unsafe.Pointer) unsafe.Pointer
		//flag is the top level struct field name marked as set
		flag string
	}

	decodePlan struct {
		fields map[string]*fieldPlan
		marker *marker
	}
)

var decodePlans = newSyncMap[reflect.Type, *decodePlan]()

func (p *decodePlan) lookup(name string) *fieldPlan {
	return p.fields[nameKey(name)]
}

// Decode assigns matched values to dest struct fields. A field accepts an identifier matching
// its `parse` tag, its format tag name, its Go name or lower_underscore Go name, case-insensitively;
// flattened identifiers like user__name descend into nested structs. Identifiers without
// a corresponding struct field are ignored.
func (r *Result) Decode(dest interface{}) error {
	rType := reflect.TypeOf(dest)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("invalid decode destination: expected struct pointer, but had %T", dest)
	}
	structPtr := xunsafe.AsPointer(dest)
	if structPtr == nil {
		return fmt.Errorf("invalid decode destination: nil %T", dest)
	}
	plan := decodePlans.GetOrPut(rType.Elem(), func() *decodePlan {
		return newDecodePlan(rType.Elem())
	})
	for i, field := range r.pattern.Fields {
		fp := plan.lookup(field.Name)
		if fp == nil {
			continue
		}
		value := r.values[i]
		setter := LookupSetter(value.Kind(), fp.rType)
		if err := setter(value, fp.resolve(structPtr), &fp.options); err != nil {
			return fmt.Errorf("failed to decode field %v into %v: %w", field.Name, fp.path, err)
		}
		plan.marker.set(structPtr, fp.flag)
	}
	return nil
}

func newDecodePlan(t reflect.Type) *decodePlan {
	ret := &decodePlan{fields: map[string]*fieldPlan{}, marker: newMarker(t)}
	ret.collect(t, nil, "", "", map[reflect.Type]bool{t: true})
	return ret
}

// collect registers leaf fields; struct types already on the current path are not descended again
func (p *decodePlan) collect(t reflect.Type, parent []*xunsafe.Field, prefix, flag string, path map[reflect.Type]bool) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" || IsSetMarker(sf.Tag) {
			continue
		}
		tag := newFieldTag(sf)
		if tag.ignore {
			continue
		}
		fieldFlag := flag
		if fieldFlag == "" {
			fieldFlag = sf.Name
		}
		chain := append(append([]*xunsafe.Field{}, parent...), xunsafe.NewField(sf))
		if structType := ensureStruct(sf.Type); structType != nil && !isValueType(sf.Type) {
			if path[structType] {
				continue
			}
			path[structType] = true
			if sf.Anonymous {
				p.collect(structType, chain, prefix, fieldFlag, path)
			} else {
				for _, name := range tag.names {
					p.collect(structType, chain, prefix+name+"__", fieldFlag, path)
				}
			}
			delete(path, structType)
			continue
		}
		fp := &fieldPlan{
			path:    sf.Name,
			rType:   sf.Type,
			options: setterOptions{rType: sf.Type, timeLayout: tag.timeLayout},
			resolve: resolver(chain),
			flag:    fieldFlag,
		}
		for _, name := range tag.names {
			key := nameKey(prefix + name)
			if _, ok := p.fields[key]; ok {
				continue
			}
			p.fields[key] = fp
		}
	}
}

// resolver returns function locating leaf field pointer, allocating nil intermediate struct pointers
func resolver(chain []*xunsafe.Field) func(unsafe.Pointer) unsafe.Pointer {
	return func(root unsafe.Pointer) unsafe.Pointer {
		current := root
		for i, field := range chain {
			ptr := field.Pointer(current)
			if i == len(chain)-1 {
				return ptr
			}
			if field.Type.Kind() == reflect.Ptr {
				next := (*unsafe.Pointer)(ptr)
				if *next == nil {
					alloc := reflect.New(field.Type.Elem())
					*next = unsafe.Pointer(alloc.Pointer())
				}
				current = *next
			} else {
				current = ptr
			}
		}
		return current
	}
}
