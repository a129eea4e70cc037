package core

import "github.com/charmbracelet/lipgloss"

var (
	colorText   lipgloss.Color = "#cdd6f4"
	colorMuted  lipgloss.Color = "#a6adc8"
	colorMantle lipgloss.Color = "#181825"
	colorAccent lipgloss.Color = "#89b4fa"
)
