package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants for responsive terminal width
const (
	MinFormWidth     = 40 // Narrowest the card is drawn
	MaxFormWidth     = 64 // Widest the card is drawn
	DefaultFormWidth = 52 // Used before the first WindowSizeMsg
)

// Color palette
var (
	PrimaryColor    = lipgloss.Color("#2563EB") // Blue - buttons, links
	ErrorColor      = lipgloss.Color("#DC2626") // Red - inline errors
	SuccessColor    = lipgloss.Color("#43BF6D") // Green - submitted status
	TextColor       = lipgloss.Color("#333333") // Dark gray - title, labels
	SubtleColor     = lipgloss.Color("#626262") // Gray - placeholders, help
	BorderColor     = lipgloss.Color("#DDDDDD") // Light gray - input borders
	ButtonTextColor = lipgloss.Color("#FFFFFF") // White - button label
)

var (
	// Card around the whole form
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedInputStyle = InputStyle.
				BorderForeground(PrimaryColor)

	InlineErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ButtonTextColor).
			Background(PrimaryColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1).
			MarginTop(1)

	FocusedButtonStyle = ButtonStyle.
				Underline(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Align(lipgloss.Center).
			MarginTop(1)

	FocusedLinkStyle = LinkStyle.
				Bold(true).
				Underline(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true).
			MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)
)

// clampWidth keeps the card within its supported range.
func clampWidth(width int) int {
	if width <= 0 {
		return DefaultFormWidth
	}
	if width < MinFormWidth {
		return MinFormWidth
	}
	if width > MaxFormWidth {
		return MaxFormWidth
	}
	return width
}
