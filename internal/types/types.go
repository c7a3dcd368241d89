// Package types contains common types used across the urlify package.
package types

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// Compact omits redundant output: an explicit port equal to the scheme
	// default and the bare "/" path of a pathless URL.
	Compact bool `json:"compact,omitempty"`
}

// Equalable is implemented by component types comparable via Equal.
type Equalable interface {
	Equal(val any) bool
}
