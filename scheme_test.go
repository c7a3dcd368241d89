package urlify_test

import (
	"testing"

	"github.com/ismailceylan/urlify"
)

func TestScheme_KnownSchemes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		secure     bool
		port       int
		hasPort    bool
		serialized string
	}{
		{name: "http", port: 80, hasPort: true, serialized: "http://"},
		{name: "https", secure: true, port: 443, hasPort: true, serialized: "https://"},
		{name: "ftp", port: 21, hasPort: true, serialized: "ftp://"},
		{name: "ssh", secure: true, port: 22, hasPort: true, serialized: "ssh://"},
		{name: "wss", secure: true, port: 443, hasPort: true, serialized: "wss://"},
		{name: "file", serialized: "file://"},
		{name: "mailto", serialized: "mailto:"},
		{name: "tel", serialized: "tel:"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			s := urlify.NewScheme(nil).Set(c.name)
			if !s.IsKnown() {
				t.Errorf("IsKnown() = false, want true")
			}
			if got := s.IsSecure(); got != c.secure {
				t.Errorf("IsSecure() = %v, want %v", got, c.secure)
			}
			if port, ok := s.DefaultPort(); port != c.port || ok != c.hasPort {
				t.Errorf("DefaultPort() = %v, %v, want %v, %v", port, ok, c.port, c.hasPort)
			}
			if got := s.String(); got != c.serialized {
				t.Errorf("String() = %q, want %q", got, c.serialized)
			}
		})
	}
}

func TestScheme_Unknown(t *testing.T) {
	t.Parallel()

	s := urlify.NewScheme(nil).Set("gopher")
	if s.IsKnown() {
		t.Error("IsKnown() = true, want false")
	}
	if s.IsSecure() {
		t.Error("IsSecure() = true, want false")
	}
	if _, ok := s.DefaultPort(); ok {
		t.Error("DefaultPort() ok = true, want false")
	}
	if got := s.String(); got != "gopher://" {
		t.Errorf("String() = %q, want %q", got, "gopher://")
	}
}

func TestScheme_SetLowercases(t *testing.T) {
	t.Parallel()

	s := urlify.NewScheme(nil).Set("HTTPS")
	if got := s.Name(); got != "https" {
		t.Errorf("Name() = %q, want %q", got, "https")
	}
	if !s.IsSecure() {
		t.Error("IsSecure() = false, want true")
	}
}

func TestScheme_CustomRegistry(t *testing.T) {
	t.Parallel()

	reg := urlify.NewSchemeRegistry().
		Register("redis", urlify.SchemeInfo{DefaultPort: 6379}).
		Register("news", urlify.SchemeInfo{Suffix: ":"})

	s := urlify.NewScheme(reg).Set("redis")
	if port, ok := s.DefaultPort(); !ok || port != 6379 {
		t.Errorf("DefaultPort() = %v, %v, want 6379, true", port, ok)
	}
	if got := s.String(); got != "redis://" {
		t.Errorf("String() = %q, want %q", got, "redis://")
	}

	if got := urlify.NewScheme(reg).Set("news").String(); got != "news:" {
		t.Errorf("String() = %q, want %q", got, "news:")
	}

	if urlify.NewScheme(nil).Set("redis").IsKnown() {
		t.Error("custom registration leaked into the default registry")
	}
}

func TestRegisterScheme(t *testing.T) {
	t.Parallel()

	// The name is scoped to this test so the process-global registration
	// cannot collide with the schemes other tests look up.
	urlify.RegisterScheme("zmq", urlify.SchemeInfo{Secure: true, DefaultPort: 5555})

	s := urlify.NewScheme(nil).Set("zmq")
	if !s.IsKnown() {
		t.Error("IsKnown() = false, want true")
	}
	if !s.IsSecure() {
		t.Error("IsSecure() = false, want true")
	}
	if port, ok := s.DefaultPort(); !ok || port != 5555 {
		t.Errorf("DefaultPort() = %v, %v, want 5555, true", port, ok)
	}
	if got := s.String(); got != "zmq://" {
		t.Errorf("String() = %q, want %q", got, "zmq://")
	}

	// Parsed URLs without an explicit registry pick up the registration
	// through the default one.
	if port, ok := urlify.MustParse("zmq://broker.example.com").Port.Effective(); !ok || port != 5555 {
		t.Errorf("Port.Effective() = %v, %v, want 5555, true", port, ok)
	}
}

func TestScheme_IsValid(t *testing.T) {
	t.Parallel()

	if !urlify.NewScheme(nil).Set("http").IsValid() {
		t.Error(`IsValid("http") = false, want true`)
	}
	if !urlify.NewScheme(nil).Set("x+y-1.z").IsValid() {
		t.Error(`IsValid("x+y-1.z") = false, want true`)
	}
	if urlify.NewScheme(nil).Set("1http").IsValid() {
		t.Error(`IsValid("1http") = true, want false`)
	}
	if urlify.NewScheme(nil).IsValid() {
		t.Error("IsValid(empty) = true, want false")
	}
}

func TestScheme_ClearAndZero(t *testing.T) {
	t.Parallel()

	s := urlify.NewScheme(nil).Set("http")
	if s.IsZero() {
		t.Error("IsZero() = true, want false")
	}
	s.Clear()
	if !s.IsZero() {
		t.Error("after Clear, IsZero() = false, want true")
	}
	if got := s.String(); got != "" {
		t.Errorf(`after Clear, String() = %q, want ""`, got)
	}
}
