package regions

import "github.com/charmbracelet/lipgloss"

var (
	logoColor   lipgloss.Color = "#89b4fa"
	textColor   lipgloss.Color = "#cdd6f4"
	mutedColor  lipgloss.Color = "#a6adc8"
	accentColor lipgloss.Color = "#89b4fa"
	errColor    lipgloss.Color = "#f38ba8"
	okColor     lipgloss.Color = "#a6e3a1"
	barColor    lipgloss.Color = "#313244"

	headingStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	boldStyle    = lipgloss.NewStyle().Foreground(textColor).Bold(true)
	italicStyle  = lipgloss.NewStyle().Foreground(textColor).Italic(true)
	plainStyle   = lipgloss.NewStyle().Foreground(textColor)

	selectedItemStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	itemStyle         = lipgloss.NewStyle().Foreground(textColor)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(accentColor)
	staffStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	noteStyle   = lipgloss.NewStyle().Foreground(textColor)

	statusTextStyle  = lipgloss.NewStyle().Foreground(okColor).Background(barColor)
	statusErrStyle   = lipgloss.NewStyle().Foreground(errColor).Background(barColor).Bold(true)
	statusInputStyle = lipgloss.NewStyle().Foreground(textColor).Background(barColor)
)
