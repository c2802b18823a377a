// Package color adapts derived colorhash values for terminal rendering
// with lipgloss.
package color

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/colorhash"
)

// FromRGB returns a lipgloss color for a derived value. Lipgloss
// downsamples to the terminal's color profile as needed.
func FromRGB(c colorhash.RGB) lipgloss.TerminalColor {
	return lipgloss.Color("#" + c.Hex())
}

// Foreground returns a style that renders text in the derived color.
func Foreground(c colorhash.RGB) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(FromRGB(c))
}

// Swatch renders a block of the derived color.
func Swatch(c colorhash.RGB) string {
	return Foreground(c).Render("██")
}
