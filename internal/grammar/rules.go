package grammar

import "github.com/ghettovoice/abnf"

// Character classes. The grammar is deliberately pragmatic: it targets
// web-style URLs, not full RFC 3986 compliance. Bytes above 0x7F are accepted
// everywhere so that UTF-8 host names and path segments pass validation.
var (
	alpha = abnf.Alt("alpha",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5a}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7a}),
	)
	digit = abnf.Range("digit", []byte{0x30}, []byte{0x39})

	// any visible char except "#" "/" ":" "?" "@"
	regChar = abnf.Alt("reg-char",
		abnf.Range("%x21-22", []byte{0x21}, []byte{0x22}),
		abnf.Range("%x24-2E", []byte{0x24}, []byte{0x2e}),
		digit,
		abnf.Range("%x3B-3E", []byte{0x3b}, []byte{0x3e}),
		abnf.Range("%x41-7E", []byte{0x41}, []byte{0x7e}),
		abnf.Range("%x80-FF", []byte{0x80}, []byte{0xff}),
	)

	// any visible char except "#" "/" "?"
	segChar = abnf.Alt("seg-char",
		abnf.Range("%x21-22", []byte{0x21}, []byte{0x22}),
		abnf.Range("%x24-2E", []byte{0x24}, []byte{0x2e}),
		abnf.Range("%x30-3E", []byte{0x30}, []byte{0x3e}),
		abnf.Range("%x40-7E", []byte{0x40}, []byte{0x7e}),
		abnf.Range("%x80-FF", []byte{0x80}, []byte{0xff}),
	)

	// any visible char except "#"
	queryChar = abnf.Alt("query-char",
		abnf.Range("%x21-22", []byte{0x21}, []byte{0x22}),
		abnf.Range("%x24-7E", []byte{0x24}, []byte{0x7e}),
		abnf.Range("%x80-FF", []byte{0x80}, []byte{0xff}),
	)

	// any visible char
	fragChar = abnf.Alt("frag-char",
		abnf.Range("%x21-7E", []byte{0x21}, []byte{0x7e}),
		abnf.Range("%x80-FF", []byte{0x80}, []byte{0xff}),
	)
)

var (
	// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
	scheme = abnf.Concat("scheme",
		alpha,
		abnf.Repeat0Inf("scheme-tail", abnf.Alt("scheme-char",
			alpha,
			digit,
			abnf.LiteralCS("+", []byte("+")),
			abnf.LiteralCS("-", []byte("-")),
			abnf.LiteralCS(".", []byte(".")),
		)),
	)

	// scheme-part = scheme ( "://" / ":" )
	schemePart = abnf.Concat("scheme-part",
		scheme,
		abnf.AltFirst("scheme-suffix",
			abnf.LiteralCS("://", []byte("://")),
			abnf.LiteralCS(":", []byte(":")),
		),
	)

	// userinfo = user [ ":" password ] "@"
	userinfo = abnf.Concat("userinfo",
		abnf.Repeat1Inf("user", regChar),
		abnf.Optional("password-part", abnf.Concat("password-group",
			abnf.LiteralCS(":", []byte(":")),
			abnf.Repeat0Inf("password", regChar),
		)),
		abnf.LiteralCS("@", []byte("@")),
	)

	host = abnf.Repeat1Inf("host", regChar)

	port = abnf.Repeat1Inf("port", digit)

	// path = 1*( "/" *seg-char )
	path = abnf.Repeat1Inf("path", abnf.Concat("path-seg",
		abnf.LiteralCS("/", []byte("/")),
		abnf.Repeat0Inf("seg", segChar),
	))

	query = abnf.Repeat0Inf("query", queryChar)

	fragment = abnf.Repeat0Inf("fragment", fragChar)

	// url = scheme-part [ userinfo ] host [ ":" port ]
	//       [ path ] [ "?" query ] [ "#" fragment ]
	url = abnf.Concat("url",
		schemePart,
		abnf.Optional("userinfo-part", userinfo),
		host,
		abnf.Optional("port-part", abnf.Concat("port-group",
			abnf.LiteralCS(":", []byte(":")),
			port,
		)),
		abnf.Optional("path-part", path),
		abnf.Optional("query-part", abnf.Concat("query-group",
			abnf.LiteralCS("?", []byte("?")),
			query,
		)),
		abnf.Optional("fragment-part", abnf.Concat("fragment-group",
			abnf.LiteralCS("#", []byte("#")),
			fragment,
		)),
	)
)

// URL matches a complete URL with a mandatory scheme and host.
func URL(s []byte, ns *abnf.Nodes) error {
	return url(s, 0, ns) //errtrace:skip
}

// Scheme matches a scheme name.
func Scheme(s []byte, ns *abnf.Nodes) error {
	return scheme(s, 0, ns) //errtrace:skip
}

// Host matches a host name.
func Host(s []byte, ns *abnf.Nodes) error {
	return host(s, 0, ns) //errtrace:skip
}
