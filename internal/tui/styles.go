package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sepgen/sepgen/internal/version"
)

// Application branding constants
const (
	AppName   = "SEPGEN - CISCO 8945 CONFIG GENERATOR"
	GitHubURL = "github.com/sepgen/sepgen"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 72 // Minimum supported terminal width
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Field label style (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Field label style (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Mandatory field marker style
	MandatoryStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// Field value style
	ValueStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Focused value style
	FocusedValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// Help/description text style
	HelpTextStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Status line styles
	StatusOKStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// Picker option style (unselected)
	OptionStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(TextColor)

	// Picker option style (selected)
	SelectedOptionStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(HighlightColor).
				Bold(true)

	// Picker container style
	PickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps a screen in the standard full-terminal
// frame: header with app name and version, the content, and a footer with
// context-sensitive help text pinned to the bottom.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	header := BuildHeaderContent()
	footer := lipgloss.NewStyle().Foreground(SubtleColor).Render(footerText)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}
