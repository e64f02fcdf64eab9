package form

import "fmt"

// ErrorKind represents the category of a validation failure
type ErrorKind int

const (
	// KindRequiredField indicates an empty field that must be filled in
	KindRequiredField ErrorKind = iota
	// KindInvalidFormat indicates a value that does not match the expected shape
	KindInvalidFormat
	// KindLengthTooShort indicates a value below the minimum length
	KindLengthTooShort
	// KindMismatchedConfirmation indicates the confirmation differs from the password
	KindMismatchedConfirmation
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindRequiredField:
		return "Required Field"
	case KindInvalidFormat:
		return "Invalid Format"
	case KindLengthTooShort:
		return "Length Too Short"
	case KindMismatchedConfirmation:
		return "Mismatched Confirmation"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Messages shown inline next to the offending field.
const (
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Invalid email format"
	MsgPasswordRequired  = "Password is required"
	MsgPasswordTooShort  = "Password must be at least 8 characters"
	MsgPasswordsMismatch = "Passwords do not match"
)

// FieldError is a single validation failure attached to one field.
// It is a value to be displayed, never a failure to be logged or retried.
type FieldError struct {
	Field   Field     // Offending field
	Kind    ErrorKind // Category of failure
	Message string    // Inline message shown to the user
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newFieldError(field Field, kind ErrorKind, message string) *FieldError {
	return &FieldError{Field: field, Kind: kind, Message: message}
}
