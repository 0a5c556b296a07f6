// Package parsefmt extracts typed values from text using compact format templates.
//
// A template such as "Name: {name:w}, Age: {age:d}" is compiled once into a Matcher,
// which then parses whole inputs, searches for the first occurrence or finds all
// non-overlapping occurrences. Each match yields a Result exposing converted values by
// declaration position or field name.
//
//	m, err := parsefmt.Compile("Name: {name:w}, Age: {age:d}", true)
//	if err != nil {
//		return err
//	}
//	result, err := m.Parse("Name: Alice, Age: 25")
//	age, _ := parsefmt.Lookup[int64](result, "age")
//
// Built-in type tags are d (integer), f (float), w (word) and the date/time family
// tg, ta, te, th, ts and ti; custom converters are supplied with CompileWithTypes.
// A Matcher is immutable and safe for concurrent use.
package parsefmt
