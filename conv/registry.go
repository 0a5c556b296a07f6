package conv

import "sort"

// Registry represents an immutable tag to converter mapping
type Registry struct {
	converters map[string]Converter
}

// Lookup returns converter for supplied tag
func (r *Registry) Lookup(tag string) (Converter, bool) {
	if r == nil {
		return nil, false
	}
	ret, ok := r.converters[tag]
	return ret, ok
}

// Tags returns sorted registered tags
func (r *Registry) Tags() []string {
	if r == nil {
		return nil
	}
	var result = make([]string, 0, len(r.converters))
	for tag := range r.converters {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}

// Len returns number of registered converters
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.converters)
}

// Builtins returns a fresh registry with the built-in converters
func Builtins() *Registry {
	converters := map[string]Converter{
		TagInt:   NewInt(),
		TagFloat: NewFloat(),
		TagWord:  NewWord(),
	}
	for tag, converter := range dateTimeBuiltins() {
		converters[tag] = converter
	}
	return &Registry{converters: converters}
}

// Merge returns a new registry with base converters and overrides, override wins on tag collision.
// Nil overrides are skipped; base is not modified.
func Merge(base *Registry, overrides map[string]Converter) *Registry {
	converters := make(map[string]Converter, base.Len()+len(overrides))
	if base != nil {
		for tag, converter := range base.converters {
			converters[tag] = converter
		}
	}
	for tag, converter := range overrides {
		if converter == nil {
			continue
		}
		converters[tag] = converter
	}
	return &Registry{converters: converters}
}

// NewRegistry returns built-in converters merged with overrides
func NewRegistry(overrides map[string]Converter) *Registry {
	return Merge(Builtins(), overrides)
}
