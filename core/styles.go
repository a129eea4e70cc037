package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
