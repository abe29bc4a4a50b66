package propdef

import "github.com/rs/zerolog"

// Options bundles synthesis settings.
type Options struct {
	Delimiter  rune
	StrictTags bool // Report words outside the tag vocabulary as unknown_tag.
	FailFast   bool // Stop at the first issue.
	Logger     zerolog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithDelimiter sets the separator between base names and tags.
func WithDelimiter(r rune) Option { return func(o *Options) { o.Delimiter = r } }

// WithStrictTags rejects unknown tag words instead of ignoring them.
func WithStrictTags() Option { return func(o *Options) { o.StrictTags = true } }

// WithFailFast stops collecting issues after the first one.
func WithFailFast() Option { return func(o *Options) { o.FailFast = true } }

// WithLogger sets the logger used for debug tracing.
func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.Logger = l } }

// ResolveOptions applies opts over the defaults.
func ResolveOptions(opts ...Option) Options {
	o := Options{Delimiter: DefaultDelimiter, Logger: zerolog.Nop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Delimiter == 0 {
		o.Delimiter = DefaultDelimiter
	}
	return o
}
