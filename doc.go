// Package urlify decomposes URL strings into independently addressable
// components and reconstructs them into canonical URL strings.
//
// A parsed [URL] owns one instance of every component: scheme, auth, host,
// port, path, query and fragment. Each component is a value type that can be
// parsed, mutated and serialized on its own; the orchestrator concatenates
// the current component states in fixed order.
//
//	u, err := urlify.Parse("https://www.example.co.uk/a/../b?x=1#top")
//	if err != nil { ... }
//	tld, _ := u.Host.TopLevelDomain() // "co.uk"
//	u.Query.Set("x", "2")
//	s := u.String() // "https://www.example.co.uk/b?x=2#top"
//
// The parser is pragmatic: it targets web-style HTTP(S)-like URLs, not full
// RFC 3986 compliance.
package urlify

//go:generate go tool errtrace -w .

import (
	"github.com/ismailceylan/urlify/internal/errorutil"
	"github.com/ismailceylan/urlify/internal/types"
)

// RenderOptions contains options for rendering components.
type RenderOptions = types.RenderOptions

// Renderer is an interface that is used to render a component to a string or
// a writer.
type Renderer = types.Renderer

// Equalable is implemented by every component type.
type Equalable = types.Equalable

var (
	// ErrInvalidInput is returned when a URL string fails the generic
	// syntactic validity check. Parsing is all-or-nothing: no component is
	// mutated when this error is returned.
	ErrInvalidInput error = errorutil.ErrInvalidInput
	// ErrUnresolvableDomain is returned when no suffix of a host name
	// matches the top-level domain table.
	ErrUnresolvableDomain error = errorutil.ErrUnresolvableDomain
	// ErrIndexOutOfRange is returned when a resolved index lands outside the
	// permitted range of a segment collection.
	ErrIndexOutOfRange error = errorutil.ErrIndexOutOfRange
	// ErrInvalidArgument is returned when an argument is out of its domain,
	// e.g. a port beyond 65535.
	ErrInvalidArgument error = errorutil.ErrInvalidArgument
)
