package urlify

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"

	"github.com/ismailceylan/urlify/internal/errorutil"
	"github.com/ismailceylan/urlify/internal/grammar"
	"github.com/ismailceylan/urlify/internal/util"
	"github.com/ismailceylan/urlify/tld"
)

// Host represents the host component of a URL, decomposed against a
// top-level domain suffix table into subdomains, a primary domain name and a
// top-level domain name.
//
// Decomposition is lazy: it runs on the first accessor call and its result is
// cached. A field mutator first decomposes any pending raw name so it touches
// only its own field; on an empty or unresolvable name it starts from a blank
// decomposition, so a Host can still be built field by field without any
// table match.
type Host struct {
	name     string
	subs     []string
	primary  string
	tldName  string
	resolved bool
	set      *tld.Set
}

// NewHost creates an empty Host bound to the given suffix set. A nil set
// means [tld.Default].
func NewHost(set *tld.Set) *Host { return &Host{set: set} }

// ParseHost creates a Host from a raw host name bound to the given suffix
// set. The name is not decomposed until a decomposed accessor is called.
func ParseHost(name string, set *tld.Set) *Host {
	h := NewHost(set)
	return h.Set(name)
}

// Set replaces the raw host name and discards any cached decomposition.
func (h *Host) Set(name string) *Host {
	h.name = name
	h.subs = nil
	h.primary = ""
	h.tldName = ""
	h.resolved = false
	return h
}

// IsZero reports whether the host is completely empty.
func (h *Host) IsZero() bool {
	return h == nil || (h.name == "" && !h.resolved)
}

// IsValid checks whether the raw host name is syntactically valid.
func (h *Host) IsValid() bool { return h != nil && grammar.IsHost(h.name) }

func (h *Host) table() *tld.Set {
	if h.set != nil {
		return h.set
	}
	return tld.Default()
}

// Decompose matches the raw host name against the suffix table and fills the
// subdomain, primary domain and top-level domain fields. The longest known
// dotted suffix wins; a match must leave at least one label for the primary
// domain name. Non-ASCII names are NFC-normalized and converted with IDNA
// ToASCII first.
func (h *Host) Decompose() error {
	name := util.LCase(util.TrimSP(h.name))
	if name == "" {
		return errtrace.Wrap(errorutil.NewUnresolvableDomainError("empty host"))
	}
	if !isASCII(name) {
		ascii, err := idna.ToASCII(norm.NFC.String(name))
		if err != nil {
			return errtrace.Wrap(errorutil.NewUnresolvableDomainError(err))
		}
		name = ascii
	}

	labels := strings.Split(name, ".")
	for i := 1; i < len(labels); i++ {
		suffix := strings.Join(labels[i:], ".")
		if !h.table().Has(suffix) {
			continue
		}
		h.tldName = suffix
		h.primary = labels[i-1]
		h.subs = append([]string(nil), labels[:i-1]...)
		h.resolved = true
		return nil
	}
	return errtrace.Wrap(errorutil.NewUnresolvableDomainError("host %q", h.name))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func (h *Host) resolve() error {
	if h.resolved {
		return nil
	}
	return errtrace.Wrap(h.Decompose())
}

// Subdomains returns the subdomain labels in left-to-right order.
func (h *Host) Subdomains() ([]string, error) {
	if err := h.resolve(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return append([]string(nil), h.subs...), nil
}

// SubdomainName returns the dot-joined subdomain labels, empty when none.
func (h *Host) SubdomainName() (string, error) {
	if err := h.resolve(); err != nil {
		return "", errtrace.Wrap(err)
	}
	return strings.Join(h.subs, "."), nil
}

// PrimaryDomain returns the label immediately preceding the top-level domain.
func (h *Host) PrimaryDomain() (string, error) {
	if err := h.resolve(); err != nil {
		return "", errtrace.Wrap(err)
	}
	return h.primary, nil
}

// TopLevelDomain returns the matched suffix, e.g. "com" or "co.uk".
func (h *Host) TopLevelDomain() (string, error) {
	if err := h.resolve(); err != nil {
		return "", errtrace.Wrap(err)
	}
	return h.tldName, nil
}

// RootDomain returns the primary domain joined with the top-level domain,
// e.g. "example.co.uk".
func (h *Host) RootDomain() (string, error) {
	if err := h.resolve(); err != nil {
		return "", errtrace.Wrap(err)
	}
	return h.rootDomain(), nil
}

func (h *Host) rootDomain() string {
	switch {
	case h.primary == "":
		return h.tldName
	case h.tldName == "":
		return h.primary
	default:
		return h.primary + "." + h.tldName
	}
}

// materialize decomposes a pending raw name so that a field mutator touches
// only its own field. A name with no known suffix contributes nothing; the
// mutated field then starts from a blank decomposition.
func (h *Host) materialize() {
	if h.resolved || h.name == "" {
		return
	}
	h.Decompose() //nolint:errcheck
	h.resolved = true
}

// SetSubdomain replaces every subdomain label, leaving the other fields of a
// parsed name intact. The name may contain dots.
func (h *Host) SetSubdomain(name string) *Host {
	h.materialize()
	if name == "" {
		h.subs = nil
	} else {
		h.subs = strings.Split(name, ".")
	}
	h.resolved = true
	return h
}

// AppendSubdomain appends a label to the subdomain list, closest to the root
// domain.
func (h *Host) AppendSubdomain(label string) *Host {
	h.materialize()
	h.subs = append(h.subs, label)
	h.resolved = true
	return h
}

// PrependSubdomain inserts a label at the front of the subdomain list,
// farthest from the root domain.
func (h *Host) PrependSubdomain(label string) *Host {
	h.materialize()
	h.subs = append([]string{label}, h.subs...)
	h.resolved = true
	return h
}

// SetPrimaryDomain replaces the primary domain name, leaving the other fields
// of a parsed name intact.
func (h *Host) SetPrimaryDomain(name string) *Host {
	h.materialize()
	h.primary = name
	h.resolved = true
	return h
}

// SetTopLevelDomain replaces the top-level domain name, leaving the other
// fields of a parsed name intact.
func (h *Host) SetTopLevelDomain(name string) *Host {
	h.materialize()
	h.tldName = strings.TrimPrefix(name, ".")
	h.resolved = true
	return h
}

// String recomposes the host from the decomposed fields once resolved,
// otherwise it returns the raw name.
func (h *Host) String() string {
	if h == nil {
		return ""
	}
	if !h.resolved {
		return h.name
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for _, s := range h.subs {
		sb.WriteString(s)
		sb.WriteString(".")
	}
	sb.WriteString(h.rootDomain())
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the host.
func (h *Host) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, h.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
		return
	default:
		type hideMethods Host
		type Host hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Host)(h))
		return
	}
}

// Clone returns a deep copy of the host sharing the same suffix set.
func (h *Host) Clone() *Host {
	if h == nil {
		return nil
	}
	h2 := *h
	h2.subs = append([]string(nil), h.subs...)
	return &h2
}

// Equal compares this host with another by case-insensitive string form.
func (h *Host) Equal(val any) bool {
	var other *Host
	switch v := val.(type) {
	case Host:
		other = &v
	case *Host:
		other = v
	default:
		return false
	}

	if h == other {
		return true
	} else if h == nil || other == nil {
		return false
	}
	return util.EqFold(h.String(), other.String())
}

type hostData struct {
	Subdomains    []string `json:"subdomains"`
	SubdomainName string   `json:"subdomainName"`
	PrimaryDomain string   `json:"primaryDomainName"`
	TopLevel      string   `json:"topLevelDomain"`
	RootDomain    string   `json:"rootDomain"`
}

// MarshalJSON implements [json.Marshaler]. Marshaling forces decomposition;
// hosts whose name has no known suffix fail with [ErrUnresolvableDomain].
func (h *Host) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("null"), nil
	}
	if err := h.resolve(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	subName, _ := h.SubdomainName()
	return errtrace.Wrap2(json.Marshal(hostData{
		Subdomains:    append([]string{}, h.subs...),
		SubdomainName: subName,
		PrimaryDomain: h.primary,
		TopLevel:      h.tldName,
		RootDomain:    h.rootDomain(),
	}))
}
