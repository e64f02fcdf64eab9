// Package ui renders the one-shot output of the non-interactive commands.
//
// Unlike the interactive screen in package tui, these components render a
// block of styled text and return: a Header naming the command and its
// inputs, and a Result box reporting success or listing field errors.
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Form Validation", "authscreen validate",
//	    ui.Param{Key: "Mode", Value: "Sign Up"})
//	p.PrintFailure("Form is invalid",
//	    ui.Param{Key: "Confirm Password", Value: "Passwords do not match"})
package ui
