package parsefmt

import (
	"github.com/viant/parsefmt/conv"
	"github.com/viant/parsefmt/pattern"
	"github.com/viant/parsefmt/regex"
)

type options struct {
	engine         string
	defaultPattern string
	registry       *conv.Registry
	converters     map[string]conv.Converter
	logger         *Logger
}

// Option matcher option
type Option func(o *options)

// Options represents matcher options
type Options []Option

// Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

// WithEngine sets regex engine, regex.Native by default
func WithEngine(engine string) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithDefaultPattern sets pattern used by untyped fields
func WithDefaultPattern(expr string) Option {
	return func(o *options) {
		o.defaultPattern = expr
	}
}

// WithRegistry replaces built-in converters registry
func WithRegistry(registry *conv.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithConverters merges converters into the registry, overriding tags already registered
func WithConverters(converters map[string]conv.Converter) Option {
	return func(o *options) {
		if o.converters == nil {
			o.converters = map[string]conv.Converter{}
		}
		for tag, converter := range converters {
			o.converters[tag] = converter
		}
	}
}

// WithLogger sets verbose logger
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	ret := &options{engine: regex.Native, defaultPattern: pattern.DefaultPattern}
	Options(opts).Apply(ret)
	if ret.registry == nil {
		ret.registry = conv.Builtins()
	}
	if len(ret.converters) > 0 {
		ret.registry = conv.Merge(ret.registry, ret.converters)
	}
	if ret.logger == nil {
		ret.logger = NewLogger(false)
	}
	return ret
}
