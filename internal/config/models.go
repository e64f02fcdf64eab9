package config

import (
	"fmt"

	"github.com/muurk/authscreen/internal/form"
)

// CurrentVersion is the only config file version understood.
const CurrentVersion = 1

// File represents the entire user configuration file.
// It stores screen preferences only; credentials are never written.
type File struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	StartMode string `yaml:"start_mode"`          // "login" or "signup"
	LogLevel  string `yaml:"log_level,omitempty"` // Empty keeps logging silent
	LogFile   string `yaml:"log_file,omitempty"`  // Defaults to stderr
	ShowHelp  bool   `yaml:"show_help"`           // Show key help under the form
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{
		StartMode: "login",
		ShowHelp:  true,
	}
}

// New creates a new File with default values.
func New() *File {
	return &File{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
	}
}

// Mode returns the parsed start mode.
func (p *Preferences) Mode() (form.Mode, error) {
	if p == nil || p.StartMode == "" {
		return form.ModeLogin, nil
	}
	return form.ParseMode(p.StartMode)
}

// Validate checks the file for values the application cannot use.
func (f *File) Validate() error {
	if f.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", f.Version, CurrentVersion)
	}
	if f.Preferences == nil {
		return nil
	}
	if _, err := f.Preferences.Mode(); err != nil {
		return fmt.Errorf("preferences.start_mode: %w", err)
	}
	switch f.Preferences.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("preferences.log_level: unknown level %q", f.Preferences.LogLevel)
	}
	return nil
}
