// Package tld provides the static top-level domain suffix table consumed by
// host decomposition. A [Set] is a plain membership table: it knows nothing
// about registration policies and performs no network lookups.
package tld

//go:generate go tool errtrace -w .

import (
	"bufio"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/afero"

	"github.com/ismailceylan/urlify/internal/util"
)

// Set is a membership table of domain suffixes. Suffix matching is
// case-insensitive. The zero value is an empty usable set.
type Set struct {
	m map[string]struct{}
}

// New creates a Set containing the given suffixes.
func New(suffixes ...string) *Set {
	s := &Set{m: make(map[string]struct{}, len(suffixes))}
	for _, sfx := range suffixes {
		s.Add(sfx)
	}
	return s
}

// Add inserts a suffix into the set. Leading dots are stripped, so ".co.uk"
// and "co.uk" are the same entry.
func (s *Set) Add(suffix string) *Set {
	suffix = util.LCase(strings.TrimPrefix(util.TrimSP(suffix), "."))
	if suffix == "" {
		return s
	}
	if s.m == nil {
		s.m = make(map[string]struct{})
	}
	s.m[suffix] = struct{}{}
	return s
}

// Has reports whether the suffix is a member of the set.
func (s *Set) Has(suffix string) bool {
	if s == nil || s.m == nil {
		return false
	}
	_, ok := s.m[util.LCase(suffix)]
	return ok
}

// Len returns the number of suffixes in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// ParseList reads a suffix list in the public-suffix-list text format:
// one suffix per line, blank lines and lines starting with "//" are skipped.
func ParseList(r io.Reader) (*Set, error) {
	s := New()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := util.TrimSP(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		s.Add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return s, nil
}

// FromFile loads a suffix list file from the given filesystem.
func FromFile(fsys afero.Fs, name string) (*Set, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer f.Close()
	return errtrace.Wrap2(ParseList(f))
}
