// Package grammar provides the pragmatic URL grammar used for syntactic
// validation and the raw component split.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/abnf"

	"github.com/ismailceylan/urlify/internal/constraints"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrNodeNotFound Error = "node not found"
	ErrUnexpectNode Error = "unexpected node"
)

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// IsScheme reports whether s is a syntactically valid scheme name.
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Scheme([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsHost reports whether s is a syntactically valid host name.
func IsHost[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Host([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
