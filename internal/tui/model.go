package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/authscreen/internal/form"
)

// StatusSubmitted is shown after a successful submit.
const StatusSubmitted = "Form submitted"

// Options configures the auth screen.
type Options struct {
	ShowHelp     bool // Show key help under the card
	QuitOnSubmit bool // Exit the program after a successful submit
}

// focus targets after the visible inputs
const (
	focusSubmit = iota
	focusSwitch
	focusExtra // number of non-input targets
)

// AuthModel is the Login/Sign Up screen. It owns the text inputs and mirrors
// every keystroke into the form controller, which holds the real state.
type AuthModel struct {
	controller *form.Controller
	inputs     [3]textinput.Model // indexed by form.Field

	focus     int // index into visible inputs, then submit, then switch
	status    string
	submitted int
	quitting  bool

	opts Options

	Width  int
	Height int

	keys authKeyMap
	help help.Model
}

// NewAuthModel creates the screen around an existing controller.
func NewAuthModel(controller *form.Controller, opts Options) AuthModel {
	m := AuthModel{
		controller: controller,
		opts:       opts,
		keys:       newAuthKeyMap(),
		help:       help.New(),
	}

	for _, f := range form.AllFields {
		in := textinput.New()
		in.Placeholder = f.Placeholder()
		in.Prompt = ""
		if f.Secret() {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		in.SetValue(controller.Value(f))
		m.inputs[f] = in
	}

	m.setFocus(0)
	return m
}

// Init initializes the screen
func (m AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Controller returns the form controller backing the screen.
func (m AuthModel) Controller() *form.Controller {
	return m.controller
}

// Submissions returns how many successful submits happened.
func (m AuthModel) Submissions() int {
	return m.submitted
}

// Status returns the status line text.
func (m AuthModel) Status() string {
	return m.status
}

// Quitting reports whether the user asked to leave.
func (m AuthModel) Quitting() bool {
	return m.quitting
}

// Update handles all messages
func (m AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			return m.toggleMode()

		case key.Matches(msg, m.keys.Next):
			cmd := m.setFocus(m.focus + 1)
			return m, cmd

		case key.Matches(msg, m.keys.Prev):
			cmd := m.setFocus(m.focus - 1)
			return m, cmd

		case key.Matches(msg, m.keys.Enter):
			return m.activate()
		}
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput passes the message to the focused input and copies its
// value into the controller.
func (m AuthModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	field, ok := m.focusedField()
	if !ok {
		return m, nil
	}

	before := m.inputs[field].Value()
	var cmd tea.Cmd
	m.inputs[field], cmd = m.inputs[field].Update(msg)

	if value := m.inputs[field].Value(); value != before {
		m.controller.SetField(field, value)
		m.status = ""
	}
	return m, cmd
}

// activate handles enter on the focused target
func (m AuthModel) activate() (tea.Model, tea.Cmd) {
	fields := m.controller.VisibleFields()

	switch {
	case m.focus < len(fields)-1:
		// Enter on an input moves on, except on the last one
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	case m.focus < len(fields), m.focus == len(fields)+focusSubmit:
		return m.submit()
	case m.focus == len(fields)+focusSwitch:
		return m.toggleMode()
	}
	return m, nil
}

func (m AuthModel) submit() (tea.Model, tea.Cmd) {
	if !m.controller.Submit() {
		// Inline errors come from the controller's error map
		m.status = ""
		return m, nil
	}

	m.submitted++
	m.status = StatusSubmitted
	if m.opts.QuitOnSubmit {
		return m, tea.Quit
	}
	return m, nil
}

// toggleMode switches between Login and Sign Up, discarding all input.
func (m AuthModel) toggleMode() (tea.Model, tea.Cmd) {
	m.controller.ToggleMode()
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.status = ""
	cmd := m.setFocus(0)
	return m, cmd
}

// focusCount is the number of focusable targets in the current mode
func (m AuthModel) focusCount() int {
	return len(m.controller.VisibleFields()) + focusExtra
}

// focusedField returns the input under focus, if any
func (m AuthModel) focusedField() (form.Field, bool) {
	fields := m.controller.VisibleFields()
	if m.focus >= 0 && m.focus < len(fields) {
		return fields[m.focus], true
	}
	return 0, false
}

// setFocus moves focus, wrapping around at both ends.
func (m *AuthModel) setFocus(i int) tea.Cmd {
	n := m.focusCount()
	m.focus = ((i % n) + n) % n

	for f := range m.inputs {
		m.inputs[f].Blur()
	}
	if field, ok := m.focusedField(); ok {
		return m.inputs[field].Focus()
	}
	return nil
}

// View renders the screen
func (m AuthModel) View() string {
	if m.quitting {
		return ""
	}

	width := clampWidth(m.Width)
	inner := width - CardStyle.GetHorizontalFrameSize()
	mode := m.controller.Mode()

	var sections []string
	sections = append(sections, TitleStyle.Width(inner).Render(mode.String()))

	fields := m.controller.VisibleFields()
	for i, f := range fields {
		sections = append(sections, m.renderField(f, i == m.focus, inner))
	}

	button := ButtonStyle
	if m.focus == len(fields)+focusSubmit {
		button = FocusedButtonStyle
	}
	sections = append(sections, button.Width(inner).Render(mode.String()))

	link := LinkStyle
	if m.focus == len(fields)+focusSwitch {
		link = FocusedLinkStyle
	}
	sections = append(sections, link.Width(inner).Render(SwitchText(mode)))

	if m.status != "" {
		sections = append(sections, StatusStyle.Render("✓ "+m.status))
	}

	card := CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	var b strings.Builder
	b.WriteString(card)
	if m.opts.ShowHelp {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// renderField renders the label, input box and inline error of one field
func (m AuthModel) renderField(f form.Field, focused bool, width int) string {
	box := InputStyle
	if focused {
		box = FocusedInputStyle
	}

	in := m.inputs[f]
	in.Width = width - box.GetHorizontalFrameSize() - 1

	lines := []string{
		LabelStyle.Render(f.Label()),
		box.Width(width).Render(in.View()),
	}
	if msg, ok := m.controller.Error(f); ok {
		lines = append(lines, InlineErrorStyle.Render(msg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// SwitchText returns the label of the link that flips the mode.
func SwitchText(mode form.Mode) string {
	if mode == form.ModeLogin {
		return "Need an account? Sign up"
	}
	return "Already have an account? Login"
}
