package urlify

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ismailceylan/urlify/internal/ioutil"
	"github.com/ismailceylan/urlify/internal/util"
)

// QueryEntry is one key-value-or-flag triplet of a query string.
// A flag entry carries presence-only semantics: its raw token had no equals
// character and its value is empty.
type QueryEntry struct {
	Key    string
	Value  string
	IsFlag bool
}

// Flag returns a QueryEntry carrying presence-only semantics.
func Flag(key string) QueryEntry { return QueryEntry{Key: key, IsFlag: true} }

// KeyValue returns a non-flag QueryEntry with the given key and value.
func KeyValue(key, value string) QueryEntry { return QueryEntry{Key: key, Value: value} }

// Equal compares this entry with another for equality.
func (e QueryEntry) Equal(val any) bool {
	var other QueryEntry
	switch v := val.(type) {
	case QueryEntry:
		other = v
	case *QueryEntry:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return e.Key == other.Key && e.Value == other.Value && e.IsFlag == other.IsFlag
}

// render writes the token form of the entry using the given equals character.
func (e QueryEntry) render(eq byte) string {
	if e.IsFlag {
		return e.Key
	}
	return e.Key + string(eq) + e.Value
}

// String returns the token form of the entry with the default "=" character.
func (e QueryEntry) String() string { return e.render(defaultEquals) }

const (
	defaultSeparator = '&'
	defaultEquals    = '='
)

// QueryOption customizes the separator and equals characters of a Query.
type QueryOption func(*Query)

// WithSeparator sets the character that separates query entries.
func WithSeparator(sep byte) QueryOption {
	return func(q *Query) { q.sep = sep }
}

// WithEquals sets the character that separates a key from its value.
func WithEquals(eq byte) QueryOption {
	return func(q *Query) { q.eq = eq }
}

// Query is an ordered sequence of query entries. Multiple entries may share a
// key; lookup is last-write-wins while GetAll exposes every value in
// insertion order.
type Query struct {
	entries []QueryEntry
	sep     byte
	eq      byte
}

// NewQuery creates an empty Query.
func NewQuery(opts ...QueryOption) *Query {
	q := &Query{sep: defaultSeparator, eq: defaultEquals}
	for _, o := range opts {
		o(q)
	}
	return q
}

// ParseQuery creates a Query from a raw query string.
func ParseQuery(raw string, opts ...QueryOption) *Query {
	q := NewQuery(opts...)
	return q.Parse(raw)
}

// Parse tokenizes the raw string and fully replaces the entries.
// Tokens without the equals character become flag entries; tokens with it are
// cut on its first occurrence, so "foo=" is a non-flag empty-value entry
// distinct from the flag "foo".
func (q *Query) Parse(raw string) *Query {
	q.entries = q.entries[:0]
	if raw == "" {
		return q
	}
	for _, token := range strings.Split(raw, string(q.sep)) {
		key, value, found := strings.Cut(token, string(q.eq))
		if !found {
			q.entries = append(q.entries, Flag(key))
			continue
		}
		q.entries = append(q.entries, KeyValue(key, value))
	}
	return q
}

// Len returns the number of entries.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.entries)
}

// IsEmpty reports whether the query has no entries.
func (q *Query) IsEmpty() bool { return q.Len() == 0 }

// Entries returns a copy of the entries in insertion order.
func (q *Query) Entries() []QueryEntry {
	if q == nil {
		return nil
	}
	return slices.Clone(q.entries)
}

// Get returns the value of the last entry matching the key, or the empty
// string when the key is absent.
func (q *Query) Get(key string) string {
	v, _ := q.Lookup(key)
	return v
}

// Lookup returns the value of the last entry matching the key and a flag
// indicating whether any entry matched.
func (q *Query) Lookup(key string) (string, bool) {
	if q == nil {
		return "", false
	}
	for i := len(q.entries) - 1; i >= 0; i-- {
		if q.entries[i].Key == key {
			return q.entries[i].Value, true
		}
	}
	return "", false
}

// GetAll returns every value for the key in insertion order.
func (q *Query) GetAll(key string) []string {
	if q == nil {
		return nil
	}
	var out []string
	for _, e := range q.entries {
		if e.Key == key {
			out = append(out, e.Value)
		}
	}
	return out
}

// Has reports whether any entry matches the key.
func (q *Query) Has(key string) bool {
	_, ok := q.Lookup(key)
	return ok
}

// Add appends a non-flag entry without deduplication.
func (q *Query) Add(key, value string) *Query {
	q.entries = append(q.entries, KeyValue(key, value))
	return q
}

// AddFlag appends a flag entry without deduplication.
func (q *Query) AddFlag(key string) *Query {
	q.entries = append(q.entries, Flag(key))
	return q
}

// AddEntry appends the entry as-is.
func (q *Query) AddEntry(e QueryEntry) *Query {
	q.entries = append(q.entries, e)
	return q
}

// Set removes every existing entry for the key, then appends one new non-flag
// entry at the end. This changes both the value and the position of the key.
func (q *Query) Set(key, value string) *Query {
	q.Remove(key)
	return q.Add(key, value)
}

// Remove deletes every entry matching the key.
func (q *Query) Remove(key string) *Query {
	q.entries = slices.DeleteFunc(q.entries, func(e QueryEntry) bool { return e.Key == key })
	return q
}

// Keys returns the unique keys in first-occurrence order.
func (q *Query) Keys() []string {
	if q == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool, len(q.entries))
	for _, e := range q.entries {
		if seen[e.Key] {
			continue
		}
		seen[e.Key] = true
		out = append(out, e.Key)
	}
	return out
}

// AllKeys returns every key including duplicates, in insertion order.
func (q *Query) AllKeys() []string {
	if q == nil {
		return nil
	}
	out := make([]string, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.Key
	}
	return out
}

// All returns a map from key to all of its values, grouped.
func (q *Query) All() map[string][]string {
	if q == nil {
		return nil
	}
	out := make(map[string][]string, len(q.entries))
	for _, e := range q.entries {
		out[e.Key] = append(out[e.Key], e.Value)
	}
	return out
}

// Merge appends all of other's entries. Duplicate keys coexist.
func (q *Query) Merge(other *Query) *Query {
	if other == nil {
		return q
	}
	q.entries = append(q.entries, other.entries...)
	return q
}

// Filter returns a new Query holding the entries for which the predicate
// returned true, in their original order.
func (q *Query) Filter(pred func(e QueryEntry, index int) bool) *Query {
	out := NewQuery(WithSeparator(q.sep), WithEquals(q.eq))
	for i, e := range q.entries {
		if pred(e, i) {
			out.entries = append(out.entries, e)
		}
	}
	return out
}

// Map returns a new Query whose entries are the transform of the originals.
// The transform may change an entry's content but not its position.
func (q *Query) Map(fn func(e QueryEntry, index int) QueryEntry) *Query {
	out := NewQuery(WithSeparator(q.sep), WithEquals(q.eq))
	out.entries = make([]QueryEntry, len(q.entries))
	for i, e := range q.entries {
		out.entries[i] = fn(e, i)
	}
	return out
}

// GetAsQuery reparses the last value of the key as a nested Query with its
// own separator and equals characters.
func (q *Query) GetAsQuery(key string, opts ...QueryOption) (*Query, bool) {
	v, ok := q.Lookup(key)
	if !ok {
		return nil, false
	}
	return ParseQuery(v, opts...), true
}

// RenderTo writes the query string, including its leading "?", to the
// provided writer. A fully empty query writes nothing.
func (q *Query) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if q.IsEmpty() {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("?")
	for i, e := range q.entries {
		if i > 0 {
			cw.Fprint(string(q.sep))
		}
		cw.Fprint(e.render(q.eq))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the query string form, including its leading "?".
func (q *Query) Render(opts *RenderOptions) string {
	if q == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	q.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the query string form, including its leading "?".
func (q *Query) String() string {
	if q == nil {
		return ""
	}
	return q.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the query.
func (q *Query) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, q.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(q.String()))
		return
	default:
		type hideMethods Query
		type Query hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Query)(q))
		return
	}
}

// Clone returns a deep copy of the query.
func (q *Query) Clone() *Query {
	if q == nil {
		return nil
	}
	q2 := *q
	q2.entries = slices.Clone(q.entries)
	return &q2
}

// Equal compares this query with another for equality, including entry order.
func (q *Query) Equal(val any) bool {
	var other *Query
	switch v := val.(type) {
	case Query:
		other = &v
	case *Query:
		other = v
	default:
		return false
	}

	if q == other {
		return true
	} else if q == nil || other == nil {
		return false
	}
	return slices.EqualFunc(q.entries, other.entries,
		func(a, b QueryEntry) bool { return a.Equal(b) })
}

// MarshalJSON implements [json.Marshaler]. The query is exported as a map
// from key to the array of all of its values.
func (q *Query) MarshalJSON() ([]byte, error) {
	if q == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(q.All()))
}
