package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	FieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			Width(32)

	FocusedFieldStyle = FieldStyle.
				BorderForeground(ColorPrimary)

	CursorStyle = lipgloss.NewStyle().
			Reverse(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
