package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/muurk/authscreen/internal/auth"
	"github.com/muurk/authscreen/internal/form"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestModel(mode form.Mode, opts Options) (AuthModel, *auth.Recorder) {
	rec := &auth.Recorder{}
	ctrl := form.NewController(rec, form.WithMode(mode))
	return NewAuthModel(ctrl, opts), rec
}

func update(m AuthModel, msg tea.Msg) (AuthModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AuthModel), cmd
}

func typeText(m AuthModel, s string) AuthModel {
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m AuthModel, t tea.KeyType) (AuthModel, tea.Cmd) {
	return update(m, tea.KeyMsg{Type: t})
}

func TestInitialLoginView(t *testing.T) {
	m, _ := newTestModel(form.ModeLogin, Options{})

	view := m.View()
	require.Contains(t, view, "Login")
	require.Contains(t, view, "Email")
	require.Contains(t, view, "Password")
	require.NotContains(t, view, "Confirm Password")
	require.Contains(t, view, "Need an account? Sign up")
	require.Equal(t, 0, m.focus)
}

func TestSignUpViewShowsConfirm(t *testing.T) {
	m, _ := newTestModel(form.ModeSignUp, Options{})

	view := m.View()
	require.Contains(t, view, "Sign Up")
	require.Contains(t, view, "Confirm Password")
	require.Contains(t, view, "Already have an account? Login")
}

func TestTypingWritesThroughToController(t *testing.T) {
	m, _ := newTestModel(form.ModeLogin, Options{})

	m = typeText(m, "x@y.com")
	require.Equal(t, "x@y.com", m.Controller().Value(form.FieldEmail))

	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "abcdefgh")
	require.Equal(t, "abcdefgh", m.Controller().Value(form.FieldPassword))

	// Typing never validates
	require.Empty(t, m.Controller().Errors())
}

func TestSubmitEmptyLoginShowsInlineErrors(t *testing.T) {
	m, rec := newTestModel(form.ModeLogin, Options{})

	// Move to the submit button and press it
	m, _ = press(m, tea.KeyTab)
	m, _ = press(m, tea.KeyTab)
	m, cmd := press(m, tea.KeyEnter)
	require.Nil(t, cmd)

	require.Empty(t, rec.Calls())
	view := m.View()
	require.Contains(t, view, form.MsgEmailRequired)
	require.Contains(t, view, form.MsgPasswordRequired)
	require.Empty(t, m.Status())
}

func TestEnterOnLastInputSubmits(t *testing.T) {
	m, rec := newTestModel(form.ModeLogin, Options{})

	m = typeText(m, "x@y.com")
	m, _ = press(m, tea.KeyEnter) // moves to password
	m = typeText(m, "abcdefgh")
	m, _ = press(m, tea.KeyEnter) // submits

	require.Equal(t, []form.Credentials{{Email: "x@y.com", Password: "abcdefgh"}}, rec.Calls())
	require.Equal(t, 1, m.Submissions())
	require.Equal(t, StatusSubmitted, m.Status())
	require.Contains(t, m.View(), StatusSubmitted)
}

func TestSignUpMismatchBlocksSubmit(t *testing.T) {
	m, rec := newTestModel(form.ModeSignUp, Options{})

	m = typeText(m, "x@y.com")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "abcdefgh")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "different")
	m, _ = press(m, tea.KeyEnter)

	require.Empty(t, rec.Calls())
	require.Equal(t, form.Errors{form.FieldConfirmPassword: form.MsgPasswordsMismatch}, m.Controller().Errors())
	require.Contains(t, m.View(), form.MsgPasswordsMismatch)
}

func TestSignUpSubmitForwardsOnlyEmailAndPassword(t *testing.T) {
	m, rec := newTestModel(form.ModeSignUp, Options{})

	m = typeText(m, "x@y.com")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "abcdefgh")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "abcdefgh")
	m, _ = press(m, tea.KeyEnter)

	require.Equal(t, []form.Credentials{{Email: "x@y.com", Password: "abcdefgh"}}, rec.Calls())
}

func TestToggleResetsInputsAndErrors(t *testing.T) {
	m, _ := newTestModel(form.ModeLogin, Options{})

	m = typeText(m, "bad")
	m, _ = press(m, tea.KeyTab)
	m, _ = press(m, tea.KeyEnter)
	require.NotEmpty(t, m.Controller().Errors())

	m, _ = press(m, tea.KeyCtrlT)

	require.Equal(t, form.ModeSignUp, m.Controller().Mode())
	require.Equal(t, form.Values{}, m.Controller().Values())
	require.Empty(t, m.Controller().Errors())
	for _, in := range m.inputs {
		require.Empty(t, in.Value())
	}
	require.Equal(t, 0, m.focus)
	require.Contains(t, m.View(), "Confirm Password")
	require.NotContains(t, m.View(), form.MsgEmailInvalid)
}

func TestEnterOnSwitchLinkToggles(t *testing.T) {
	m, _ := newTestModel(form.ModeSignUp, Options{})

	// Reverse from the first input wraps to the switch link
	m, _ = press(m, tea.KeyShiftTab)
	require.Equal(t, m.focusCount()-1, m.focus)

	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, form.ModeLogin, m.Controller().Mode())
	require.NotContains(t, m.View(), "Confirm Password")
}

func TestFocusWraps(t *testing.T) {
	m, _ := newTestModel(form.ModeLogin, Options{})
	count := m.focusCount()
	require.Equal(t, 4, count)

	for i := 0; i < count; i++ {
		m, _ = press(m, tea.KeyTab)
	}
	require.Equal(t, 0, m.focus)

	m, _ = press(m, tea.KeyDown)
	require.Equal(t, 1, m.focus)
	m, _ = press(m, tea.KeyUp)
	require.Equal(t, 0, m.focus)
}

func TestTypingOnButtonIsIgnored(t *testing.T) {
	m, _ := newTestModel(form.ModeLogin, Options{})
	m, _ = press(m, tea.KeyTab)
	m, _ = press(m, tea.KeyTab)

	m = typeText(m, "zzz")
	require.Equal(t, form.Values{}, m.Controller().Values())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(form.ModeLogin, Options{})

	m, cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, m.Quitting())
	require.Empty(t, m.View())
}

func TestQuitOnSubmit(t *testing.T) {
	m, _ := newTestModel(form.ModeLogin, Options{QuitOnSubmit: true})

	m = typeText(m, "x@y.com")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "abcdefgh")
	_, cmd := press(m, tea.KeyEnter)

	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTypingClearsStatus(t *testing.T) {
	m, _ := newTestModel(form.ModeLogin, Options{})
	m = typeText(m, "x@y.com")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "abcdefgh")
	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, StatusSubmitted, m.Status())

	m = typeText(m, "9")
	require.Empty(t, m.Status())
}

func TestWindowSizeAndHelp(t *testing.T) {
	m, _ := newTestModel(form.ModeLogin, Options{ShowHelp: true})

	m, cmd := update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Nil(t, cmd)
	require.Equal(t, 120, m.Width)
	require.Equal(t, 40, m.Height)
	require.Contains(t, m.View(), "quit")
}

func TestClampWidth(t *testing.T) {
	require.Equal(t, DefaultFormWidth, clampWidth(0))
	require.Equal(t, MinFormWidth, clampWidth(10))
	require.Equal(t, MaxFormWidth, clampWidth(500))
	require.Equal(t, 50, clampWidth(50))
}

func TestSwitchText(t *testing.T) {
	require.Equal(t, "Need an account? Sign up", SwitchText(form.ModeLogin))
	require.Equal(t, "Already have an account? Login", SwitchText(form.ModeSignUp))
}
