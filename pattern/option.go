package pattern

// DefaultPattern is used by untyped fields and converters without own pattern
const DefaultPattern = `.+?`

type options struct {
	defaultPattern string
	caseSensitive  bool
}

// Option compile option
type Option func(o *options)

// Options represents compile options
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

// WithDefaultPattern overrides DefaultPattern
func WithDefaultPattern(expr string) Option {
	return func(o *options) {
		o.defaultPattern = expr
	}
}

// WithCaseSensitive sets case sensitivity, templates are case-sensitive by default
func WithCaseSensitive(flag bool) Option {
	return func(o *options) {
		o.caseSensitive = flag
	}
}

func newOptions(opts []Option) *options {
	ret := &options{defaultPattern: DefaultPattern, caseSensitive: true}
	Options(opts).Apply(ret)
	if ret.defaultPattern == "" {
		ret.defaultPattern = DefaultPattern
	}
	return ret
}
