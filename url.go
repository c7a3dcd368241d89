package urlify

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ismailceylan/urlify/internal/errorutil"
	"github.com/ismailceylan/urlify/internal/grammar"
	"github.com/ismailceylan/urlify/internal/ioutil"
	"github.com/ismailceylan/urlify/internal/log"
	"github.com/ismailceylan/urlify/internal/util"
)

// URL aggregates one instance of every URL component. All components are
// always non-nil after construction; absence of a component is represented
// by the component's own empty state.
type URL struct {
	Scheme   *Scheme
	Auth     *Auth
	Host     *Host
	Port     *Port
	Path     *Path
	Query    *Query
	Fragment *Fragment

	opts Options
}

// New creates an empty URL in builder mode.
func New(opts ...Option) *URL {
	u := &URL{opts: newOptions(opts)}
	u.reset()
	return u
}

func (u *URL) reset() {
	u.Scheme = NewScheme(u.opts.Registry)
	u.Auth = &Auth{}
	u.Host = NewHost(u.opts.TLDs)
	u.Port = NewPort(u.Scheme)
	u.Path = &Path{}
	u.Query = NewQuery()
	u.Fragment = NewFragment()
}

// Parse creates a URL from a raw URL string.
func Parse(raw string, opts ...Option) (*URL, error) {
	u := New(opts...)
	if err := u.Parse(raw); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(raw string, opts ...Option) *URL {
	u, err := Parse(raw, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

var schemeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

var (
	_ Renderer = (*URL)(nil)
	_ Renderer = (*Path)(nil)
	_ Renderer = (*Query)(nil)

	_ Equalable = (*URL)(nil)
	_ Equalable = (*Scheme)(nil)
	_ Equalable = (*Host)(nil)
)

// Parse resets every component and repopulates it from the raw URL string.
// Parsing is all-or-nothing: on [ErrInvalidInput] no component is mutated.
// With the auto-scheme option enabled, a schemeless input gets "http://"
// prepended before validation.
func (u *URL) Parse(raw string) error {
	if u.opts.AutoScheme && !schemeRe.MatchString(raw) {
		raw = "http://" + raw
	}

	u.opts.Logger.Debug("parse url", "raw", raw)

	split, err := grammar.ParseURL(raw)
	if err != nil {
		return errtrace.Wrap(errorutil.NewInvalidInputError(err))
	}
	if split.HasPort {
		// the grammar guarantees digits, the range still needs a check
		if _, err := strconv.ParseUint(split.Port, 10, 16); err != nil {
			return errtrace.Wrap(errorutil.NewInvalidInputError("port %q out of range", split.Port))
		}
	}

	u.reset()
	u.Scheme.Set(split.Scheme)
	if split.HasUser {
		u.Auth.SetUser(split.User)
	}
	if split.HasPassword {
		u.Auth.SetPassword(split.Password)
	}
	u.Host.Set(split.Host)
	if split.HasPort {
		port, _ := strconv.Atoi(split.Port)
		u.Port.Set(port) //nolint:errcheck
	}
	u.Path.Set(split.Path)
	if split.HasQuery {
		u.Query.Parse(split.Query)
	}
	if split.HasFragment {
		u.Fragment.Set(split.Fragment)
	}

	u.opts.Logger.Debug("url split",
		"scheme", split.Scheme,
		"host", split.Host,
		"path", split.Path,
		"query", split.Query,
		"fragment", split.Fragment,
		"url", log.CalcValue(func() any { return u.String() }),
	)
	return nil
}

// IsValid reports whether the URL has a syntactically valid scheme and host.
func (u *URL) IsValid() bool {
	return u != nil && u.Scheme.IsValid() && u.Host.IsValid()
}

// SetScheme replaces the scheme name.
func (u *URL) SetScheme(name string) *URL {
	u.Scheme.Set(name)
	return u
}

// SetAuth replaces both credentials at once.
func (u *URL) SetAuth(user, pass string) *URL {
	u.Auth.SetUser(user).SetPassword(pass)
	return u
}

// SetUser replaces the username.
func (u *URL) SetUser(user string) *URL {
	u.Auth.SetUser(user)
	return u
}

// SetPassword replaces the password.
func (u *URL) SetPassword(pass string) *URL {
	u.Auth.SetPassword(pass)
	return u
}

// SetHost replaces the raw host name.
func (u *URL) SetHost(name string) *URL {
	u.Host.Set(name)
	return u
}

// SetPort replaces the explicit port value. Out-of-range values are ignored.
func (u *URL) SetPort(value int) *URL {
	u.Port.Set(value) //nolint:errcheck
	return u
}

// SetPath replaces the path from a raw path string.
func (u *URL) SetPath(raw string) *URL {
	u.Path.Set(raw)
	return u
}

// SetQuery replaces the query from a raw query string.
func (u *URL) SetQuery(raw string) *URL {
	u.Query.Parse(raw)
	return u
}

// SetFragment replaces the fragment value.
func (u *URL) SetFragment(value string) *URL {
	u.Fragment.Set(value)
	return u
}

// BuildPath passes the path component to the given function and returns the
// URL for continued chaining.
func (u *URL) BuildPath(fn func(p *Path)) *URL {
	fn(u.Path)
	return u
}

// BuildQuery passes the query component to the given function and returns
// the URL for continued chaining.
func (u *URL) BuildQuery(fn func(q *Query)) *URL {
	fn(u.Query)
	return u
}

// BuildHost passes the host component to the given function and returns the
// URL for continued chaining.
func (u *URL) BuildHost(fn func(h *Host)) *URL {
	fn(u.Host)
	return u
}

// BuildAuth passes the auth component to the given function and returns the
// URL for continued chaining.
func (u *URL) BuildAuth(fn func(a *Auth)) *URL {
	fn(u.Auth)
	return u
}

// RenderTo writes the canonical URL form to the provided writer.
// Components are concatenated in fixed order, each rendering its own leading
// punctuation. For hierarchical ("://") schemes a set host with an otherwise
// empty path yields a bare "/" in the path slot. Compact rendering omits that
// bare "/" and any explicit port equal to the scheme default.
func (u *URL) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	compact := opts != nil && opts.Compact

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(u.Scheme.String(), u.Auth.String(), u.Host.String())
	if !(compact && u.Port.IsDefault()) {
		cw.Fprint(u.Port.String())
	}
	if path := u.Path.Render(opts); path != "" {
		cw.Fprint(path)
	} else if !compact && !u.Host.IsZero() && u.Scheme.Suffix() == "://" {
		cw.Fprint("/")
	}
	cw.Call(func(w io.Writer) (int, error) { return u.Query.RenderTo(w, opts) })
	cw.Fprint(u.Fragment.String())
	return errtrace.Wrap2(cw.Result())
}

// Render returns the canonical URL string.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the canonical URL string.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := &URL{
		Scheme:   u.Scheme.Clone(),
		Auth:     u.Auth.Clone(),
		Host:     u.Host.Clone(),
		Path:     u.Path.Clone(),
		Query:    u.Query.Clone(),
		Fragment: u.Fragment.Clone(),
		opts:     u.opts,
	}
	u2.Port = u.Port.Clone(u2.Scheme)
	return u2
}

// Equal compares this URL with another component by component.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.Scheme.Equal(other.Scheme) &&
		u.Auth.Equal(other.Auth) &&
		u.Host.Equal(other.Host) &&
		u.Port.Equal(other.Port) &&
		u.Path.Equal(other.Path) &&
		u.Query.Equal(other.Query) &&
		u.Fragment.Equal(other.Fragment)
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u2, err := Parse(string(text))
	if err != nil {
		*u = *New()
		return errtrace.Wrap(err)
	}
	*u = *u2
	return nil
}

// ToJSON exports the URL as a flat map keyed scheme, user, pass, host, port,
// path, query and fragment. Every value is bare: the ":", "?" and "#"
// punctuation of the rendered URL is not included, the scheme is its name
// without the suffix, and the path keeps its canonical leading "/".
func (u *URL) ToJSON() ([]byte, error) {
	if u == nil {
		return []byte("null"), nil
	}
	pass, _ := u.Auth.Password()
	var port string
	if v, ok := u.Port.Value(); ok {
		port = strconv.Itoa(v)
	}
	frag, _ := u.Fragment.Value()
	flat := map[string]string{
		"scheme":   u.Scheme.Name(),
		"user":     u.Auth.Username(),
		"pass":     pass,
		"host":     u.Host.String(),
		"port":     port,
		"path":     u.Path.String(),
		"query":    strings.TrimPrefix(u.Query.String(), "?"),
		"fragment": frag,
	}
	return errtrace.Wrap2(json.Marshal(flat))
}

type urlData struct {
	Scheme   *Scheme   `json:"scheme"`
	Auth     *Auth     `json:"auth"`
	Host     *Host     `json:"host"`
	Port     *Port     `json:"port"`
	Path     *Path     `json:"path"`
	Query    *Query    `json:"query"`
	Fragment *Fragment `json:"fragment"`
}

// ToStructuredJSON exports the URL as a nested form built from the
// per-component JSON shapes. Host decomposition runs as part of the export
// and its error propagates.
func (u *URL) ToStructuredJSON() ([]byte, error) {
	if u == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(urlData{
		Scheme:   u.Scheme,
		Auth:     u.Auth,
		Host:     u.Host,
		Port:     u.Port,
		Path:     u.Path,
		Query:    u.Query,
		Fragment: u.Fragment,
	}))
}
