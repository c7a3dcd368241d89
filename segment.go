package urlify

//go:generate go tool errtrace -w .

// SegmentKind classifies a single path token by its navigational role.
type SegmentKind uint8

const (
	// SegmentNormal is a plain path token.
	SegmentNormal SegmentKind = iota
	// SegmentEmpty is an empty token produced by redundant or
	// leading/trailing slashes.
	SegmentEmpty
	// SegmentCurrent is the "." token.
	SegmentCurrent
	// SegmentParent is the ".." token.
	SegmentParent
)

// String returns the name of the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentNormal:
		return "normal"
	case SegmentEmpty:
		return "empty"
	case SegmentCurrent:
		return "current"
	case SegmentParent:
		return "parent"
	default:
		return "unknown"
	}
}

// Segment is one "/"-delimited token of a URL path. It is an immutable value;
// Value is set only for [SegmentNormal] segments.
type Segment struct {
	Kind  SegmentKind
	Value string
}

// ClassifySegment classifies a raw path token into a Segment.
// The classification is total: exactly one kind matches any token.
func ClassifySegment(token string) Segment {
	switch token {
	case "":
		return Segment{Kind: SegmentEmpty}
	case ".":
		return Segment{Kind: SegmentCurrent}
	case "..":
		return Segment{Kind: SegmentParent}
	default:
		return Segment{Kind: SegmentNormal, Value: token}
	}
}

// IsNavigational reports whether the segment participates in relative path
// resolution, i.e. it is a "." or ".." token.
func (s Segment) IsNavigational() bool {
	return s.Kind == SegmentCurrent || s.Kind == SegmentParent
}

// String returns the raw token form of the segment.
func (s Segment) String() string {
	switch s.Kind {
	case SegmentCurrent:
		return "."
	case SegmentParent:
		return ".."
	case SegmentNormal:
		return s.Value
	default:
		return ""
	}
}

// Equal compares this Segment with another for equality.
func (s Segment) Equal(val any) bool {
	var other Segment
	switch v := val.(type) {
	case Segment:
		other = v
	case *Segment:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return s.Kind == other.Kind && s.Value == other.Value
}
