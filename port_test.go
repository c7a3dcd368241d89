package urlify_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ismailceylan/urlify"
)

func TestPort_SetBounds(t *testing.T) {
	t.Parallel()

	p := urlify.NewPort(nil)
	for _, v := range []int{0, 80, 65535} {
		if err := p.Set(v); err != nil {
			t.Errorf("Set(%d) error = %v", v, err)
		}
	}
	for _, v := range []int{-1, 65536, 100000} {
		if err := p.Set(v); !errors.Is(err, urlify.ErrInvalidArgument) {
			t.Errorf("Set(%d) error = %v, want ErrInvalidArgument", v, err)
		}
	}
}

func TestPort_Effective(t *testing.T) {
	t.Parallel()

	scheme := urlify.NewScheme(nil).Set("https")
	p := urlify.NewPort(scheme)

	if got, ok := p.Effective(); !ok || got != 443 {
		t.Errorf("Effective() = %v, %v, want 443, true", got, ok)
	}
	if got := p.String(); got != "" {
		t.Errorf(`String() = %q, want ""`, got)
	}

	if err := p.Set(8080); err != nil {
		t.Fatalf("Set(8080) error = %v", err)
	}
	if got, ok := p.Effective(); !ok || got != 8080 {
		t.Errorf("Effective() = %v, %v, want 8080, true", got, ok)
	}
	if got := p.String(); got != ":8080" {
		t.Errorf("String() = %q, want %q", got, ":8080")
	}

	p.Clear()
	if got, ok := p.Effective(); !ok || got != 443 {
		t.Errorf("after Clear, Effective() = %v, %v, want 443, true", got, ok)
	}

	// A scheme without a registered default has no effective port either.
	p2 := urlify.NewPort(urlify.NewScheme(nil).Set("file"))
	if _, ok := p2.Effective(); ok {
		t.Error("Effective() ok = true, want false")
	}
}

func TestPort_IsDefault(t *testing.T) {
	t.Parallel()

	scheme := urlify.NewScheme(nil).Set("https")
	p := urlify.NewPort(scheme)
	if p.IsDefault() {
		t.Error("IsDefault() with no explicit port = true, want false")
	}

	if err := p.Set(443); err != nil {
		t.Fatalf("Set(443) error = %v", err)
	}
	if !p.IsDefault() {
		t.Error("IsDefault() = false, want true")
	}

	if err := p.Set(8443); err != nil {
		t.Fatalf("Set(8443) error = %v", err)
	}
	if p.IsDefault() {
		t.Error("IsDefault() = true, want false")
	}
}

func TestPort_MarshalJSON(t *testing.T) {
	t.Parallel()

	scheme := urlify.NewScheme(nil).Set("https")

	var data struct {
		Address   *int `json:"address"`
		Effective *int `json:"effective"`
	}

	b, err := json.Marshal(urlify.NewPort(scheme))
	if err != nil {
		t.Fatalf("json.Marshal error = %v", err)
	}
	if err := json.Unmarshal(b, &data); err != nil {
		t.Fatalf("json.Unmarshal error = %v", err)
	}
	if data.Address != nil {
		t.Errorf("address = %v, want null", *data.Address)
	}
	if data.Effective == nil || *data.Effective != 443 {
		t.Errorf("effective = %v, want 443", data.Effective)
	}
}

func TestFragment_Basics(t *testing.T) {
	t.Parallel()

	f := urlify.NewFragment()
	if !f.IsZero() {
		t.Error("IsZero() = false, want true")
	}
	if got := f.String(); got != "" {
		t.Errorf(`String() = %q, want ""`, got)
	}

	f.Set("section-2")
	if got := f.String(); got != "#section-2" {
		t.Errorf("String() = %q, want %q", got, "#section-2")
	}
	if v, ok := f.Value(); !ok || v != "section-2" {
		t.Errorf("Value() = %q, %v, want %q, true", v, ok, "section-2")
	}

	f.Clear()
	if !f.IsZero() {
		t.Error("after Clear, IsZero() = false, want true")
	}
}

func TestFragment_Query(t *testing.T) {
	t.Parallel()

	plain := urlify.NewFragment().Set("section-2")
	if q := plain.Query(); q != nil {
		t.Errorf("Query() = %v, want nil", q)
	}
	// AsQuery reinterprets unconditionally.
	if got := plain.AsQuery().AllKeys(); len(got) != 1 || got[0] != "section-2" {
		t.Errorf("AsQuery().AllKeys() = %v, want [section-2]", got)
	}

	qlike := urlify.NewFragment().Set("tab=detail&lang=en")
	q := qlike.Query()
	if q == nil {
		t.Fatal("Query() = nil, want parsed query")
	}
	if got := q.Get("lang"); got != "en" {
		t.Errorf(`Get("lang") = %q, want %q`, got, "en")
	}
}
