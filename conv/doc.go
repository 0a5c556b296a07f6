// Package conv provides typed field converters used by template matching.
//
// A Converter pairs a regular-expression fragment, describing what a field may look like,
// with a function turning the matched text into a Value. Built-in converters cover integers,
// floats, words and a family of date/time notations. Converters are collected into an
// immutable Registry; callers extend the built-ins with Merge or NewRegistry.
//
// Converters may be shared by many matchers across goroutines, so a Converter must not
// carry shared mutable state.
package conv
