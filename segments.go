package urlify

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ismailceylan/urlify/internal/util"
)

// Segments is an ordered collection of path segments.
// Insertion order is path order. Index arguments of the mutating methods may
// be negative, counting from the end; a resolved index outside the permitted
// range yields [ErrIndexOutOfRange].
type Segments []Segment

// ParseSegments splits a raw path string on "/" and classifies every token.
// An empty string yields a nil collection.
func ParseSegments(raw string) Segments {
	if raw == "" {
		return nil
	}
	tokens := strings.Split(raw, "/")
	segs := make(Segments, len(tokens))
	for i, t := range tokens {
		segs[i] = ClassifySegment(t)
	}
	return segs
}

// Append classifies the token and appends it to the collection.
func (segs *Segments) Append(token string) {
	*segs = append(*segs, ClassifySegment(token))
}

// Prepend classifies the token and inserts it at the front of the collection.
func (segs *Segments) Prepend(token string) {
	*segs = slices.Insert(*segs, 0, ClassifySegment(token))
}

// InsertAt classifies the token and inserts it at the given index.
// The index is resolved against the pre-insertion length; the length itself
// is a valid index and means append.
func (segs *Segments) InsertAt(index int, token string) error {
	i, err := util.ResolveInsertIndex(index, len(*segs))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*segs = slices.Insert(*segs, i, ClassifySegment(token))
	return nil
}

// ReplaceAt classifies the token and replaces the segment at the given index.
func (segs *Segments) ReplaceAt(index int, token string) error {
	i, err := util.ResolveIndex(index, len(*segs))
	if err != nil {
		return errtrace.Wrap(err)
	}
	(*segs)[i] = ClassifySegment(token)
	return nil
}

// RemoveAt removes the segment at the given index.
func (segs *Segments) RemoveAt(index int) error {
	i, err := util.ResolveIndex(index, len(*segs))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*segs = slices.Delete(*segs, i, i+1)
	return nil
}

// At returns the segment at the given index, which may be negative.
func (segs Segments) At(index int) (Segment, error) {
	i, err := util.ResolveIndex(index, len(segs))
	if err != nil {
		return Segment{}, errtrace.Wrap(err)
	}
	return segs[i], nil
}

// Sanitized returns a new collection with empty and current (".") segments
// removed. This is the input of normalization.
func (segs Segments) Sanitized() Segments {
	out := make(Segments, 0, len(segs))
	for _, s := range segs {
		if s.Kind == SegmentEmpty || s.Kind == SegmentCurrent {
			continue
		}
		out = append(out, s)
	}
	return out
}

// NotEmpty returns a new collection with only the empty segments removed.
func (segs Segments) NotEmpty() Segments {
	out := make(Segments, 0, len(segs))
	for _, s := range segs {
		if s.Kind == SegmentEmpty {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Normalized resolves ".." segments against the sanitized collection.
// A parent segment pops a preceding normal segment; a parent segment with
// nothing to pop is discarded, it cannot navigate above the root.
// Normalization is idempotent.
func (segs Segments) Normalized() Segments {
	san := segs.Sanitized()
	out := make(Segments, 0, len(san))
	for _, s := range san {
		if s.Kind == SegmentParent {
			if n := len(out); n > 0 && out[n-1].Kind == SegmentNormal {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// Strings returns the raw token form of every segment.
func (segs Segments) Strings() []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.String()
	}
	return out
}

// Clone returns a copy of the collection.
func (segs Segments) Clone() Segments {
	return slices.Clone(segs)
}

// String joins the raw token forms with "/".
func (segs Segments) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, s := range segs {
		if i > 0 {
			sb.WriteString("/")
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Equal compares this collection with another for equality.
func (segs Segments) Equal(val any) bool {
	var other Segments
	switch v := val.(type) {
	case Segments:
		other = v
	case *Segments:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(segs, other, func(a, b Segment) bool { return a.Equal(b) })
}
