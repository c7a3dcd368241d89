package urlify

import (
	"encoding/json"
	"strings"

	"braces.dev/errtrace"
)

// Fragment represents the fragment component of a URL. A fragment that looks
// like a query string can be reinterpreted as a [Query].
type Fragment struct {
	value string
	has   bool
}

// NewFragment creates an empty Fragment.
func NewFragment() *Fragment { return &Fragment{} }

// Set replaces the fragment value.
func (f *Fragment) Set(value string) *Fragment {
	f.value = value
	f.has = true
	return f
}

// Clear removes the fragment.
func (f *Fragment) Clear() *Fragment {
	f.value = ""
	f.has = false
	return f
}

// Value returns the fragment value and a flag indicating whether it is set.
func (f *Fragment) Value() (string, bool) {
	if f == nil {
		return "", false
	}
	return f.value, f.has
}

// IsZero reports whether no fragment is set.
func (f *Fragment) IsZero() bool { return f == nil || !f.has }

// AsQuery reinterprets the fragment as a Query with the given options,
// regardless of its content.
func (f *Fragment) AsQuery(opts ...QueryOption) *Query {
	if f == nil {
		return nil
	}
	return ParseQuery(f.value, opts...)
}

// Query returns the fragment parsed as a Query when it contains the default
// separator character, nil otherwise.
func (f *Fragment) Query() *Query {
	if f.IsZero() || !strings.ContainsRune(f.value, defaultSeparator) {
		return nil
	}
	return ParseQuery(f.value)
}

// String returns "#" followed by the fragment value, or the empty string
// when no fragment is set.
func (f *Fragment) String() string {
	if f.IsZero() {
		return ""
	}
	return "#" + f.value
}

// Clone returns a copy of the fragment.
func (f *Fragment) Clone() *Fragment {
	if f == nil {
		return nil
	}
	f2 := *f
	return &f2
}

// Equal compares this fragment with another for equality.
func (f *Fragment) Equal(val any) bool {
	var other *Fragment
	switch v := val.(type) {
	case Fragment:
		other = &v
	case *Fragment:
		other = v
	default:
		return false
	}

	if f == other {
		return true
	} else if f == nil || other == nil {
		return false
	}
	return f.value == other.value && f.has == other.has
}

type fragmentData struct {
	Fragment *string `json:"fragment"`
	AsQuery  *Query  `json:"asQuery"`
}

// MarshalJSON implements [json.Marshaler]. AsQuery is null unless the
// fragment contains a separator character.
func (f *Fragment) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	var fd fragmentData
	if f.has {
		fd.Fragment = &f.value
	}
	fd.AsQuery = f.Query()
	return errtrace.Wrap2(json.Marshal(fd))
}
