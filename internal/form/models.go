package form

import (
	"fmt"
	"strings"
)

// Mode selects between Login and Sign-Up semantics.
type Mode int

const (
	// ModeLogin shows email and password only
	ModeLogin Mode = iota
	// ModeSignUp adds the confirm password field and its check
	ModeSignUp
)

// String returns the title shown for the mode
func (m Mode) String() string {
	switch m {
	case ModeLogin:
		return "Login"
	case ModeSignUp:
		return "Sign Up"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Other returns the mode the switch link leads to.
func (m Mode) Other() Mode {
	if m == ModeSignUp {
		return ModeLogin
	}
	return ModeSignUp
}

// ParseMode parses a mode name as accepted on the command line and in the
// config file.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "login":
		return ModeLogin, nil
	case "signup", "sign-up", "sign up":
		return ModeSignUp, nil
	default:
		return ModeLogin, fmt.Errorf("unknown mode %q (expected 'login' or 'signup')", s)
	}
}

// Field identifies one of the form's text inputs.
type Field int

const (
	FieldEmail Field = iota
	FieldPassword
	FieldConfirmPassword
)

// AllFields lists the fields in display order.
var AllFields = []Field{FieldEmail, FieldPassword, FieldConfirmPassword}

// String returns the field key used in the error map
func (f Field) String() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	case FieldConfirmPassword:
		return "confirmPassword"
	default:
		return fmt.Sprintf("Field(%d)", f)
	}
}

// Label returns the text shown above the input
func (f Field) Label() string {
	switch f {
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm Password"
	default:
		return f.String()
	}
}

// Placeholder returns the hint shown in an empty input
func (f Field) Placeholder() string {
	switch f {
	case FieldEmail:
		return "Enter your email"
	case FieldPassword:
		return "Enter your password"
	case FieldConfirmPassword:
		return "Confirm your password"
	default:
		return ""
	}
}

// Secret reports whether the input should be masked.
func (f Field) Secret() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

// Values holds the three text inputs.
type Values struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Get returns the value of a field
func (v Values) Get(f Field) string {
	switch f {
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	default:
		return ""
	}
}

// Credentials is what the submission collaborator receives.
// The confirmation is never forwarded.
type Credentials struct {
	Email    string
	Password string
}

// Errors maps a failing field to its inline message. A missing key means
// the field is valid.
type Errors map[Field]string

// Keys returns the failing fields in display order.
func (e Errors) Keys() []Field {
	var keys []Field
	for _, f := range AllFields {
		if _, ok := e[f]; ok {
			keys = append(keys, f)
		}
	}
	return keys
}

// Clone returns an independent copy of the map.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
