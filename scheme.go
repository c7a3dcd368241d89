package urlify

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"braces.dev/errtrace"

	"github.com/ismailceylan/urlify/internal/grammar"
	"github.com/ismailceylan/urlify/internal/util"
)

// SchemeInfo describes a registered scheme: the suffix it serializes with
// ("://" or ":"), whether it implies a secure transport and its default port.
// A DefaultPort of zero means the scheme has no default port.
type SchemeInfo struct {
	Suffix      string
	Secure      bool
	DefaultPort int
}

// SchemeRegistry maps scheme names to their [SchemeInfo]. It is safe for
// concurrent use. Scheme values hold a reference to the registry they were
// created against; a nil reference falls back to [DefaultSchemeRegistry].
type SchemeRegistry struct {
	mu      sync.RWMutex
	schemes map[string]SchemeInfo
}

// NewSchemeRegistry creates a registry seeded with the builtin scheme list.
func NewSchemeRegistry() *SchemeRegistry {
	return &SchemeRegistry{schemes: map[string]SchemeInfo{
		"http":   {Suffix: "://", DefaultPort: 80},
		"https":  {Suffix: "://", Secure: true, DefaultPort: 443},
		"ftp":    {Suffix: "://", DefaultPort: 21},
		"ftps":   {Suffix: "://", Secure: true, DefaultPort: 990},
		"sftp":   {Suffix: "://", Secure: true, DefaultPort: 22},
		"ssh":    {Suffix: "://", Secure: true, DefaultPort: 22},
		"ws":     {Suffix: "://", DefaultPort: 80},
		"wss":    {Suffix: "://", Secure: true, DefaultPort: 443},
		"file":   {Suffix: "://"},
		"mailto": {Suffix: ":"},
		"tel":    {Suffix: ":"},
		"sms":    {Suffix: ":"},
	}}
}

// Register adds or replaces a scheme in the registry.
func (r *SchemeRegistry) Register(name string, info SchemeInfo) *SchemeRegistry {
	if info.Suffix == "" {
		info.Suffix = "://"
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.schemes == nil {
		r.schemes = make(map[string]SchemeInfo)
	}
	r.schemes[util.LCase(name)] = info
	return r
}

// Lookup returns the info registered for the scheme name.
func (r *SchemeRegistry) Lookup(name string) (SchemeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.schemes[util.LCase(name)]
	return info, ok
}

// DefaultSchemeRegistry is the registry used by Scheme values that were not
// bound to an explicit registry.
var DefaultSchemeRegistry = NewSchemeRegistry()

// RegisterScheme registers a scheme in [DefaultSchemeRegistry]. This mutates
// process-wide state: every Scheme value without an explicit registry, and
// every one created afterward, observes the registration.
func RegisterScheme(name string, info SchemeInfo) {
	DefaultSchemeRegistry.Register(name, info)
}

// Scheme represents the scheme component of a URL, resolved against a scheme
// registry. Unknown schemes are permitted; they report IsKnown false,
// IsSecure false and serialize with the "://" suffix.
type Scheme struct {
	name string
	reg  *SchemeRegistry
}

// NewScheme creates a Scheme bound to the given registry. A nil registry
// means [DefaultSchemeRegistry].
func NewScheme(reg *SchemeRegistry) *Scheme { return &Scheme{reg: reg} }

// Set replaces the scheme name. The name is lowercased.
func (s *Scheme) Set(name string) *Scheme {
	s.name = util.LCase(name)
	return s
}

// Clear resets the scheme to its empty state.
func (s *Scheme) Clear() *Scheme {
	s.name = ""
	return s
}

// Name returns the lowercased scheme name, empty when unset.
func (s *Scheme) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// IsZero reports whether no scheme name is set.
func (s *Scheme) IsZero() bool { return s == nil || s.name == "" }

// IsValid checks whether the scheme name is syntactically valid.
func (s *Scheme) IsValid() bool { return s != nil && grammar.IsScheme(s.name) }

func (s *Scheme) registry() *SchemeRegistry {
	if s != nil && s.reg != nil {
		return s.reg
	}
	return DefaultSchemeRegistry
}

func (s *Scheme) info() (SchemeInfo, bool) {
	if s.IsZero() {
		return SchemeInfo{}, false
	}
	return s.registry().Lookup(s.name)
}

// IsKnown reports whether the scheme name is present in the registry.
func (s *Scheme) IsKnown() bool {
	_, ok := s.info()
	return ok
}

// IsSecure reports whether the registry classifies the scheme as secure.
// Unknown schemes are never secure.
func (s *Scheme) IsSecure() bool {
	info, ok := s.info()
	return ok && info.Secure
}

// Suffix returns the serialization suffix of the scheme. Unknown schemes
// always get the "://" form.
func (s *Scheme) Suffix() string {
	info, ok := s.info()
	if !ok {
		return "://"
	}
	return info.Suffix
}

// DefaultPort returns the registered default port of the scheme and a flag
// indicating whether one exists.
func (s *Scheme) DefaultPort() (int, bool) {
	info, ok := s.info()
	if !ok || info.DefaultPort == 0 {
		return 0, false
	}
	return info.DefaultPort, true
}

// String returns the scheme with its suffix, e.g. "https://" or "mailto:".
// An unset scheme returns the empty string.
func (s *Scheme) String() string {
	if s.IsZero() {
		return ""
	}
	return s.name + s.Suffix()
}

// Format implements fmt.Formatter for custom formatting of the scheme.
func (s *Scheme) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, s.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(s.String()))
		return
	default:
		type hideMethods Scheme
		type Scheme hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Scheme)(s))
		return
	}
}

// Clone returns a copy of the scheme sharing the same registry reference.
func (s *Scheme) Clone() *Scheme {
	if s == nil {
		return nil
	}
	s2 := *s
	return &s2
}

// Equal compares this scheme with another for name equality.
func (s *Scheme) Equal(val any) bool {
	var other *Scheme
	switch v := val.(type) {
	case Scheme:
		other = &v
	case *Scheme:
		other = v
	default:
		return false
	}

	if s == other {
		return true
	} else if s == nil || other == nil {
		return false
	}
	return s.name == other.name
}

type schemeData struct {
	Name     string `json:"name"`
	IsSecure bool   `json:"isSecure"`
	IsKnown  bool   `json:"isKnown"`
	Suffix   string `json:"suffix"`
}

// MarshalJSON implements [json.Marshaler].
func (s *Scheme) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(schemeData{
		Name:     s.name,
		IsSecure: s.IsSecure(),
		IsKnown:  s.IsKnown(),
		Suffix:   s.Suffix(),
	}))
}
