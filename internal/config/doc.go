// Package config provides user preferences for authscreen.
//
// Preferences live in a small YAML file in the OS configuration directory:
//   - Linux: $XDG_CONFIG_HOME/authscreen/config.yaml or $HOME/.config/authscreen/config.yaml
//   - macOS: $HOME/.config/authscreen/config.yaml
//   - Windows: %LOCALAPPDATA%\authscreen\config.yaml
//
// IMPORTANT: This package NEVER stores credentials. Emails and passwords
// only exist in memory while the screen is open.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mode, _ := cfg.Preferences.Mode()
package config
