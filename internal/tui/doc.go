// Package tui implements the Login/Sign Up screen as a Bubble Tea model.
//
// The screen is a single card: a title, the email and password inputs, a
// confirm password input in Sign Up mode, inline error text under each
// failing input, a submit button and a link that switches modes.
//
// All form state lives in a form.Controller. The model only owns the
// bubbles/textinput widgets and focus; every keystroke that changes an
// input is written through Controller.SetField, and validation runs only
// when the form is submitted.
//
// # Key Bindings
//
//   - tab/↓, shift+tab/↑: move focus (wraps around)
//   - enter: next input, or submit from the last input or the button;
//     switch modes on the link
//   - ctrl+t: switch modes from anywhere
//   - esc, ctrl+c: quit
//
// Switching modes always clears every input and every error.
//
// # Usage Example
//
//	ctrl := form.NewController(auth.LogSubmitter{})
//	model := tui.NewAuthModel(ctrl, tui.Options{ShowHelp: true})
//	if _, err := tea.NewProgram(model).Run(); err != nil {
//	    log.Fatal(err)
//	}
package tui
