package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	inputStyle    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
	hexStyle      = lipgloss.NewStyle().Bold(true)
	hslStyle      = lipgloss.NewStyle().Width(22).Faint(true)
	paletteStyle  = lipgloss.NewStyle().Faint(true)
	emptyStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	statusStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)
)
