package urlify

import (
	"encoding/json"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ismailceylan/urlify/internal/errorutil"
)

// Port represents the port component of a URL.
// It is paired by reference with its owning Scheme so that the effective port
// can fall back to the scheme's registered default.
type Port struct {
	value  int
	has    bool
	scheme *Scheme
}

// NewPort creates an empty Port paired with the given scheme reference.
func NewPort(scheme *Scheme) *Port { return &Port{scheme: scheme} }

// Set replaces the explicit port value. Values outside 0-65535 are rejected.
func (p *Port) Set(value int) error {
	if value < 0 || value > 65535 {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("port %d out of range", value))
	}
	p.value = value
	p.has = true
	return nil
}

// Clear removes the explicit port value.
func (p *Port) Clear() *Port {
	p.value = 0
	p.has = false
	return p
}

// Value returns the explicit port value and a flag indicating whether one is
// set.
func (p *Port) Value() (int, bool) {
	if p == nil {
		return 0, false
	}
	return p.value, p.has
}

// IsZero reports whether no explicit port value is set.
func (p *Port) IsZero() bool { return p == nil || !p.has }

// Effective returns the explicit port if set, otherwise the scheme's
// registered default port.
func (p *Port) Effective() (int, bool) {
	if p == nil {
		return 0, false
	}
	if p.has {
		return p.value, true
	}
	return p.scheme.DefaultPort()
}

// IsDefault reports whether an explicit port is set and equals the scheme's
// registered default.
func (p *Port) IsDefault() bool {
	if p.IsZero() {
		return false
	}
	def, ok := p.scheme.DefaultPort()
	return ok && def == p.value
}

// String returns ":" followed by the explicit port, or the empty string when
// no explicit port is set.
func (p *Port) String() string {
	if p.IsZero() {
		return ""
	}
	return ":" + strconv.Itoa(p.value)
}

// Clone returns a copy of the port paired with the given scheme reference.
func (p *Port) Clone(scheme *Scheme) *Port {
	if p == nil {
		return nil
	}
	p2 := *p
	p2.scheme = scheme
	return &p2
}

// Equal compares this port with another on the explicit value only.
func (p *Port) Equal(val any) bool {
	var other *Port
	switch v := val.(type) {
	case Port:
		other = &v
	case *Port:
		other = v
	default:
		return false
	}

	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return p.value == other.value && p.has == other.has
}

type portData struct {
	Address   *int `json:"address"`
	Effective *int `json:"effective"`
}

// MarshalJSON implements [json.Marshaler]. Address is the explicit value and
// effective is the resolved one; both are null when unavailable.
func (p *Port) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var pd portData
	if v, ok := p.Value(); ok {
		pd.Address = &v
	}
	if v, ok := p.Effective(); ok {
		pd.Effective = &v
	}
	return errtrace.Wrap2(json.Marshal(pd))
}
