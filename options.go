package urlify

import (
	"log/slog"

	"github.com/ismailceylan/urlify/internal/log"
	"github.com/ismailceylan/urlify/tld"
)

// Options holds the configuration of a [URL].
type Options struct {
	// AutoScheme prepends "http://" to a schemeless input before parsing.
	AutoScheme bool
	// Registry resolves scheme names; nil means [DefaultSchemeRegistry].
	Registry *SchemeRegistry
	// TLDs is the suffix table used for host decomposition; nil means
	// [tld.Default].
	TLDs *tld.Set
	// Logger receives debug-level parse tracing; nil disables it.
	Logger *slog.Logger
}

// Option customizes a [URL].
type Option func(*Options)

// WithAutoScheme toggles auto-prepending of "http://" for schemeless input.
func WithAutoScheme(enabled bool) Option {
	return func(o *Options) { o.AutoScheme = enabled }
}

// WithSchemeRegistry binds the URL's scheme component to the given registry
// instead of [DefaultSchemeRegistry].
func WithSchemeRegistry(reg *SchemeRegistry) Option {
	return func(o *Options) { o.Registry = reg }
}

// WithTLDSet binds the URL's host component to the given suffix table
// instead of [tld.Default].
func WithTLDSet(set *tld.Set) Option {
	return func(o *Options) { o.TLDs = set }
}

// WithLogger enables debug-level parse tracing on the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func newOptions(opts []Option) Options {
	o := Options{Logger: log.Noop}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.Noop
	}
	return o
}
