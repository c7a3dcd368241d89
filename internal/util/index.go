package util

import (
	"braces.dev/errtrace"

	"github.com/ismailceylan/urlify/internal/errorutil"
)

// ResolveIndex translates a possibly negative index into a position within
// [0, length). Negative indices count from the end, Python style.
func ResolveIndex(index, length int) (int, error) {
	if index < 0 {
		index += length
	}
	if index < 0 || index >= length {
		return 0, errtrace.Wrap(errorutil.NewIndexOutOfRangeError("index %d, length %d", index, length))
	}
	return index, nil
}

// ResolveInsertIndex translates a possibly negative index into an insertion
// position within [0, length]. Unlike [ResolveIndex] the length itself is a
// valid result and means "append".
func ResolveInsertIndex(index, length int) (int, error) {
	if index < 0 {
		index += length
	}
	if index < 0 || index > length {
		return 0, errtrace.Wrap(errorutil.NewIndexOutOfRangeError("index %d, length %d", index, length))
	}
	return index, nil
}
