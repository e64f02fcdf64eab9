package form

import (
	"go.uber.org/zap"
)

// Submitter receives validated credentials. It is invoked at most once per
// successful validation and its outcome is not tracked.
type Submitter interface {
	Submit(creds Credentials)
}

// SubmitterFunc adapts a plain function to the Submitter interface.
type SubmitterFunc func(creds Credentials)

// Submit calls f(creds).
func (f SubmitterFunc) Submit(creds Credentials) {
	f(creds)
}

// Option configures a Controller.
type Option func(*Controller)

// WithMode sets the starting mode.
func WithMode(mode Mode) Option {
	return func(c *Controller) {
		c.mode = mode
	}
}

// WithLogger attaches a logger. Only modes, field keys and the email are
// ever logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller holds the form's view state: the mode, the three values and
// the error map from the last validation pass.
//
// It is not safe for concurrent use; it is meant to be owned by a single
// UI event loop.
type Controller struct {
	mode      Mode
	values    Values
	errors    Errors
	submitter Submitter
	logger    *zap.Logger
}

// NewController creates a controller in Login mode with empty values.
// A nil submitter is allowed; successful submits then do nothing.
func NewController(submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		mode:      ModeLogin,
		errors:    make(Errors),
		submitter: submitter,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Values returns the current field values.
func (c *Controller) Values() Values {
	return c.values
}

// Value returns a single field value.
func (c *Controller) Value(f Field) string {
	return c.values.Get(f)
}

// Errors returns a copy of the error map from the last validation pass.
func (c *Controller) Errors() Errors {
	return c.errors.Clone()
}

// Error returns the inline message for a field, if it is failing.
func (c *Controller) Error(f Field) (string, bool) {
	msg, ok := c.errors[f]
	return msg, ok
}

// ShowsConfirmPassword reports whether the confirm password input is part
// of the form in the current mode.
func (c *Controller) ShowsConfirmPassword() bool {
	return c.mode == ModeSignUp
}

// VisibleFields returns the inputs shown in the current mode.
func (c *Controller) VisibleFields() []Field {
	if c.ShowsConfirmPassword() {
		return []Field{FieldEmail, FieldPassword, FieldConfirmPassword}
	}
	return []Field{FieldEmail, FieldPassword}
}

// SetMode switches the mode. It always discards in-progress input: every
// value is reset to "" and the error map is cleared, even when newMode
// equals the current mode.
func (c *Controller) SetMode(newMode Mode) {
	c.logger.Debug("Form mode changed",
		zap.Stringer("from", c.mode),
		zap.Stringer("to", newMode),
	)
	c.mode = newMode
	c.values = Values{}
	c.errors = make(Errors)
}

// ToggleMode switches between Login and Sign Up.
func (c *Controller) ToggleMode() {
	c.SetMode(c.mode.Other())
}

// SetField overwrites one value. It does not validate.
func (c *Controller) SetField(f Field, value string) {
	switch f {
	case FieldEmail:
		c.values.Email = value
	case FieldPassword:
		c.values.Password = value
	case FieldConfirmPassword:
		c.values.ConfirmPassword = value
	}
}

// Validate runs a full validation pass over the current state, replacing
// the error map. Returns true iff no field failed.
func (c *Controller) Validate() bool {
	c.errors = ValidateValues(c.mode, c.values)

	if len(c.errors) > 0 {
		keys := make([]string, 0, len(c.errors))
		for _, f := range c.errors.Keys() {
			keys = append(keys, f.String())
		}
		c.logger.Debug("Form validation failed",
			zap.Stringer("mode", c.mode),
			zap.Strings("fields", keys),
		)
		return false
	}

	c.logger.Debug("Form validation passed", zap.Stringer("mode", c.mode))
	return true
}

// Submit validates and, when the form is valid, hands {email, password}
// to the submitter exactly once. On failure the error map is left in place
// for display and nothing else happens.
func (c *Controller) Submit() bool {
	if !c.Validate() {
		return false
	}

	if c.submitter != nil {
		c.submitter.Submit(Credentials{
			Email:    c.values.Email,
			Password: c.values.Password,
		})
	}
	return true
}
