package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ismailceylan/urlify/internal/constraints"
	"github.com/ismailceylan/urlify/internal/errorutil"
)

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// RawURL holds the five-way raw split of a URL string. All fields keep the
// exact substrings of the input, without any normalization.
type RawURL struct {
	Scheme      string
	Suffix      string
	User        string
	Password    string
	HasUser     bool
	HasPassword bool
	Host        string
	Port        string
	HasPort     bool
	Path        string
	Query       string
	HasQuery    bool
	Fragment    string
	HasFragment bool
}

// ParseURL validates s against the URL grammar and splits it into raw
// components. The scheme and host are mandatory; everything else is optional.
func ParseURL[T constraints.Byteseq](s T) (RawURL, error) {
	var raw RawURL

	if len(s) == 0 {
		return raw, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := URL([]byte(s), ns); err != nil {
		return raw, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return raw, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}

	raw.Scheme = MustGetNode(n, "scheme").String()
	raw.Suffix = MustGetNode(n, "scheme-suffix").String()
	if un, ok := n.GetNode("user"); ok {
		raw.User = un.String()
		raw.HasUser = true
	}
	// presence is keyed on the group nodes: the value parts may match zero
	// characters, the groups always contain their punctuation
	if _, ok := n.GetNode("password-group"); ok {
		raw.HasPassword = true
		if pn, ok := n.GetNode("password"); ok {
			raw.Password = pn.String()
		}
	}
	raw.Host = MustGetNode(n, "host").String()
	if pn, ok := n.GetNode("port"); ok {
		raw.Port = pn.String()
		raw.HasPort = true
	}
	if pn, ok := n.GetNode("path"); ok {
		raw.Path = pn.String()
	}
	if _, ok := n.GetNode("query-group"); ok {
		raw.HasQuery = true
		if qn, ok := n.GetNode("query"); ok {
			raw.Query = qn.String()
		}
	}
	if _, ok := n.GetNode("fragment-group"); ok {
		raw.HasFragment = true
		if fn, ok := n.GetNode("fragment"); ok {
			raw.Fragment = fn.String()
		}
	}
	return raw, nil
}
