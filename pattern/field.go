package pattern

import (
	"strconv"
	"strings"
)

// Field represents a template placeholder
type Field struct {
	//Name is the field identifier, flattened explicit name or declaration ordinal
	Name string
	//Type is the converter tag, empty for untyped fields
	Type string
	//Expr is the expression fragment captured by the field group
	Expr string
	//Group is the 1-based capture group index
	Group int
	//Ordinal is the 0-based declaration position
	Ordinal   int
	Anonymous bool
}

var nameReplacer = strings.NewReplacer(".", "__", "[", "__", "]", "")

// Normalize flattens dotted and indexed names, i.e. a.b[0] becomes a__b__0
func Normalize(name string) string {
	return nameReplacer.Replace(name)
}

// newField creates field from {name:type} body
func newField(body string, ordinal int) *Field {
	name, typeTag := body, ""
	if index := strings.IndexByte(body, ':'); index != -1 {
		name, typeTag = body[:index], body[index+1:]
	}
	name = strings.TrimSpace(name)
	ret := &Field{
		Name:    Normalize(name),
		Type:    strings.TrimSpace(typeTag),
		Group:   ordinal + 1,
		Ordinal: ordinal,
	}
	if name == "" {
		ret.Anonymous = true
		ret.Name = strconv.Itoa(ordinal)
	}
	return ret
}
