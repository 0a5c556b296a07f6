// Package regex abstracts the regular-expression engine used to run compiled templates.
package regex

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/wasilibs/go-re2"
)

// Engine names
const (
	Native = "native"
	RE2    = "re2"
)

// Expr represents a compiled expression
type Expr interface {
	String() string
	NumSubexp() int
	MatchString(s string) bool
	FindStringSubmatchIndex(s string) []int
	FindAllStringSubmatchIndex(s string, n int) [][]int
}

// CompileFn compiles an expression
type CompileFn func(expr string) (Expr, error)

var engines = map[string]CompileFn{
	Native: func(expr string) (Expr, error) { return regexp.Compile(expr) },
	RE2:    func(expr string) (Expr, error) { return re2.Compile(expr) },
}

// Compile compiles expr with the named engine, empty name uses Native
func Compile(engine string, expr string) (Expr, error) {
	if engine == "" {
		engine = Native
	}
	fn, ok := engines[engine]
	if !ok {
		return nil, fmt.Errorf("unsupported regex engine: %v", engine)
	}
	return fn(expr)
}

// Engines returns supported engine names
func Engines() []string {
	var result = make([]string, 0, len(engines))
	for name := range engines {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// IsSupported returns true if engine is known
func IsSupported(engine string) bool {
	if engine == "" {
		return true
	}
	_, ok := engines[engine]
	return ok
}
