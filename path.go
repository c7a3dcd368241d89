package urlify

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ismailceylan/urlify/internal/ioutil"
	"github.com/ismailceylan/urlify/internal/util"
)

// Path represents the path component of a URL. It owns an ordered segment
// collection created by splitting the raw path string on "/".
type Path struct {
	segments Segments
}

// ParsePath creates a Path from a raw path string.
func ParsePath(raw string) *Path {
	p := &Path{}
	return p.Set(raw)
}

// Set fully replaces the segment collection from a raw path string.
func (p *Path) Set(raw string) *Path {
	p.segments = ParseSegments(raw)
	return p
}

// Segments returns a copy of the raw, unsanitized segment collection.
func (p *Path) Segments() Segments {
	if p == nil {
		return nil
	}
	return p.segments.Clone()
}

// IsEmpty reports whether the path has no segments at all.
func (p *Path) IsEmpty() bool { return p == nil || len(p.segments) == 0 }

// IsAbsolute reports whether the raw path starts with "/", i.e. its first
// unsanitized segment is the empty variant.
func (p *Path) IsAbsolute() bool {
	return p != nil && len(p.segments) > 0 && p.segments[0].Kind == SegmentEmpty
}

// Append classifies the token and appends it to the path.
func (p *Path) Append(token string) *Path {
	p.segments.Append(token)
	return p
}

// Prepend classifies the token and inserts it at the front of the path.
func (p *Path) Prepend(token string) *Path {
	p.segments.Prepend(token)
	return p
}

// InsertAt inserts the token at the given index, which may be negative.
func (p *Path) InsertAt(index int, token string) error {
	return errtrace.Wrap(p.segments.InsertAt(index, token))
}

// ReplaceAt replaces the segment at the given index, which may be negative.
func (p *Path) ReplaceAt(index int, token string) error {
	return errtrace.Wrap(p.segments.ReplaceAt(index, token))
}

// RemoveAt removes the segment at the given index, which may be negative.
func (p *Path) RemoveAt(index int) error {
	return errtrace.Wrap(p.segments.RemoveAt(index))
}

// Slice returns a new Path holding the raw segments in [from, to).
// Both bounds may be negative; to may equal the segment count.
func (p *Path) Slice(from, to int) (*Path, error) {
	i, err := util.ResolveIndex(from, len(p.segments))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	j, err := util.ResolveInsertIndex(to, len(p.segments))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if j < i {
		j = i
	}
	return &Path{segments: p.segments[i:j].Clone()}, nil
}

// Segment returns the segment at the given index of the non-empty segment
// list. Negative indices count from the end.
func (p *Path) Segment(index int) (Segment, error) {
	return errtrace.Wrap2(p.segments.NotEmpty().At(index))
}

// SegmentAsQuery fetches the un-normalized, non-empty segment at the given
// index and parses it as a Query. Separator and equals characters default to
// "&" and "=" and can be overridden with query options.
func (p *Path) SegmentAsQuery(index int, opts ...QueryOption) (*Query, error) {
	seg, err := p.Segment(index)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ParseQuery(seg.String(), opts...), nil
}

// Sanitized returns the segments with empty and current tokens removed.
func (p *Path) Sanitized() Segments {
	if p == nil {
		return nil
	}
	return p.segments.Sanitized()
}

// Normalized returns the segments after ".." resolution.
func (p *Path) Normalized() Segments {
	if p == nil {
		return nil
	}
	return p.segments.Normalized()
}

// IsPrefixOf reports whether this path's sanitized string form is a prefix of
// the other path's sanitized string form.
func (p *Path) IsPrefixOf(other *Path) bool {
	if p == nil || other == nil {
		return false
	}
	return strings.HasPrefix(other.segments.Sanitized().String(), p.segments.Sanitized().String())
}

// RenderTo writes the canonical path form to the provided writer.
func (p *Path) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if p == nil {
		return 0, nil
	}

	norm := p.segments.Normalized()
	if len(norm) == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, s := range norm {
		cw.Fprint("/", s.String())
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the canonical path form: empty for an empty path, otherwise
// "/" followed by the normalized segments joined with "/".
func (p *Path) Render(opts *RenderOptions) string {
	if p == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the canonical path form.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	return p.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the path.
func (p *Path) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		type hideMethods Path
		type Path hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Path)(p))
		return
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	return &Path{segments: p.segments.Clone()}
}

// Equal compares this path with another for equality on the raw segments.
func (p *Path) Equal(val any) bool {
	var other *Path
	switch v := val.(type) {
	case Path:
		other = &v
	case *Path:
		other = v
	default:
		return false
	}

	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.segments.Equal(other.segments)
}

type pathData struct {
	RawSegments      []string `json:"rawSegments"`
	ResolvedSegments []string `json:"resolvedSegments"`
}

// MarshalJSON implements [json.Marshaler]. The path is exported as its raw
// and resolved segment lists.
func (p *Path) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(pathData{
		RawSegments:      p.segments.Strings(),
		ResolvedSegments: p.segments.Normalized().Strings(),
	}))
}
