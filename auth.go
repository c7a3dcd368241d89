package urlify

import (
	"encoding/json"

	"braces.dev/errtrace"

	"github.com/ismailceylan/urlify/internal/util"
)

// Auth is a container for the user credentials of a URL's authority part.
// The empty state means neither a username nor a password is set.
type Auth struct {
	user, pass       string
	hasUser, hasPass bool
}

// User returns an Auth containing the provided username and no password.
func User(user string) *Auth {
	return &Auth{user: user, hasUser: true}
}

// UserPassword returns an Auth containing the provided username and password.
func UserPassword(user, pass string) *Auth {
	return &Auth{user: user, pass: pass, hasUser: true, hasPass: true}
}

// SetUser replaces the username.
func (a *Auth) SetUser(user string) *Auth {
	a.user = user
	a.hasUser = true
	return a
}

// SetPassword replaces the password.
func (a *Auth) SetPassword(pass string) *Auth {
	a.pass = pass
	a.hasPass = true
	return a
}

// Clear resets the credentials to the empty state.
func (a *Auth) Clear() *Auth {
	*a = Auth{}
	return a
}

// Username returns the username.
func (a *Auth) Username() string {
	if a == nil {
		return ""
	}
	return a.user
}

// Password returns the password, in case it is set, and a bool flag
// indicating whether it is set.
func (a *Auth) Password() (string, bool) {
	if a == nil {
		return "", false
	}
	return a.pass, a.hasPass
}

// IsZero reports whether neither a username nor a password is set.
func (a *Auth) IsZero() bool {
	return a == nil || (!a.hasUser && !a.hasPass)
}

// String returns the credentials with their trailing "@" separator,
// e.g. "user@" or "user:pass@". The empty state returns the empty string.
func (a *Auth) String() string {
	if a.IsZero() {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(a.user)
	if a.hasPass {
		sb.WriteString(":")
		sb.WriteString(a.pass)
	}
	sb.WriteString("@")
	return sb.String()
}

// Clone returns a copy of the credentials.
func (a *Auth) Clone() *Auth {
	if a == nil {
		return nil
	}
	a2 := *a
	return &a2
}

// Equal compares these credentials with others for equality.
func (a *Auth) Equal(val any) bool {
	var other *Auth
	switch v := val.(type) {
	case Auth:
		other = &v
	case *Auth:
		other = v
	default:
		return false
	}

	if a == other {
		return true
	} else if a == nil || other == nil {
		return false
	}
	return a.user == other.user && a.pass == other.pass &&
		a.hasUser == other.hasUser && a.hasPass == other.hasPass
}

type authData struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// MarshalJSON implements [json.Marshaler].
func (a *Auth) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(authData{User: a.user, Pass: a.pass}))
}
