// Package logging provides structured logging for authscreen.
//
// This package wraps zap logger with convenience functions for the few
// events the screen produces. Logging is silent unless a level is passed
// on the command line, set in the config file, or given through the
// AUTHSCREEN_LOG_LEVEL environment variable.
//
// # Output
//
// Entries go to stderr or to a file (AUTHSCREEN_LOG_FILE / --log-file).
// Stdout is never used because the terminal UI draws there.
//
// # Sensitive Data
//
// Passwords are never logged. Validation entries only carry field keys,
// and submissions carry a masked email:
//
//	logging.LogSubmission("Login", "jane@example.com")
//	// INFO  Form submitted  {"mode": "Login", "email": "j***@example.com"}
package logging
