package tui

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/amonks/colorhash/internal/color"
)

func (m *Model) View() string {
	if !m.didInit || !m.gotSize {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderInput(),
		m.renderHistory(),
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderHeader() string {
	return headerStyle.Render("colorhash") +
		subtitleStyle.Render("  deterministic string → color")
}

func (m *Model) renderInput() string {
	view := m.input.View()
	if v := m.input.Value(); v != "" {
		// Live preview of the color the pending input would get.
		e := m.derive(v)
		rgb := e.color.RGB()
		view = lipgloss.JoinHorizontal(lipgloss.Top,
			view, "  ", color.Swatch(rgb), " ", hexStyle.Render("#"+rgb.Hex()))
	}
	return inputStyle.Render(view)
}

func (m *Model) renderHistory() string {
	if len(m.history) == 0 {
		return emptyStyle.Render("derived colors will appear here")
	}

	visible := m.height - 6
	if visible < 1 {
		visible = 1
	}
	var rows []string
	for i, e := range m.history {
		if i == visible {
			break
		}
		rows = append(rows, zone.Mark(historyZone(i), m.renderEntry(e)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderEntry(e entry) string {
	rgb := e.color.RGB()
	cells := []string{
		color.Swatch(rgb),
		"  ",
		hexStyle.Render("#" + rgb.Hex()),
		"  ",
		hslStyle.Render(e.color.String()),
		color.Foreground(rgb).Render(e.input),
	}
	if e.palette != "" {
		cells = append(cells, "  ", paletteStyle.Render("["+e.palette+"]"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
