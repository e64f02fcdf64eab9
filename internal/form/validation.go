package form

import (
	"regexp"
	"unicode/utf16"
)

// MinPasswordLength is the shortest password accepted.
const MinPasswordLength = 8

// emailPattern is local@domain.tld where no part contains whitespace or '@'.
// The class spells out the Unicode spaces so that the check does not
// depend on RE2's ASCII-only \s.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+@[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+\.[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+$`)

// ValidateEmail checks the email field.
// Returns nil when valid.
func ValidateEmail(email string) *FieldError {
	if email == "" {
		return newFieldError(FieldEmail, KindRequiredField, MsgEmailRequired)
	}
	if !emailPattern.MatchString(email) {
		return newFieldError(FieldEmail, KindInvalidFormat, MsgEmailInvalid)
	}
	return nil
}

// ValidatePassword checks the password field. Length is counted in UTF-16
// code units, so a character outside the Basic Multilingual Plane (an
// emoji, say) counts as two.
func ValidatePassword(password string) *FieldError {
	if password == "" {
		return newFieldError(FieldPassword, KindRequiredField, MsgPasswordRequired)
	}
	if utf16Len(password) < MinPasswordLength {
		return newFieldError(FieldPassword, KindLengthTooShort, MsgPasswordTooShort)
	}
	return nil
}

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		// Invalid UTF-8 decodes to U+FFFD, one unit
		n += utf16.RuneLen(r)
	}
	return n
}

// ValidateConfirmation checks that the confirmation equals the password.
// Equality is the only test: two empty strings match.
func ValidateConfirmation(password, confirm string) *FieldError {
	if password != confirm {
		return newFieldError(FieldConfirmPassword, KindMismatchedConfirmation, MsgPasswordsMismatch)
	}
	return nil
}

// ValidateValuesDetailed runs every rule that applies to mode and returns
// the failures in display order. Each field yields at most one error.
func ValidateValuesDetailed(mode Mode, values Values) []*FieldError {
	var errs []*FieldError

	if err := ValidateEmail(values.Email); err != nil {
		errs = append(errs, err)
	}

	if err := ValidatePassword(values.Password); err != nil {
		errs = append(errs, err)
	}

	// Confirmation only exists in Sign Up
	if mode == ModeSignUp {
		if err := ValidateConfirmation(values.Password, values.ConfirmPassword); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// ValidateValues is the pure validation pass: it returns a fresh error
// map holding exactly the failing fields.
func ValidateValues(mode Mode, values Values) Errors {
	errs := make(Errors)
	for _, fe := range ValidateValuesDetailed(mode, values) {
		errs[fe.Field] = fe.Message
	}
	return errs
}
