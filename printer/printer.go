// Package printer renders derived colors as swatch lines on a terminal
// or as plain text on a pipe.
package printer

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/colorhash"
	"github.com/amonks/colorhash/internal/color"
)

// A Printer writes one line per identifier: a swatch of the derived
// color, its hex and HSL forms, the identifier rendered in its own
// color, and the palette that produced it, if any. Printers are safe for
// concurrent use.
type Printer struct {
	mu     sync.Mutex
	stdout io.Writer
	plain  bool
}

var (
	hexStyle     = lipgloss.NewStyle().Bold(true)
	hslStyle     = lipgloss.NewStyle().Width(22).Faint(true)
	paletteStyle = lipgloss.NewStyle().Faint(true)
)

func New(stdout io.Writer) *Printer {
	return &Printer{stdout: stdout}
}

// NewPlain returns a Printer that emits no escape sequences, for pipes
// and files.
func NewPlain(stdout io.Writer) *Printer {
	return &Printer{stdout: stdout, plain: true}
}

// Print writes the line for one identifier. The palette name may be
// empty.
func (p *Printer) Print(input string, c colorhash.HSL, palette string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stdout == nil {
		panic("nil stdout in printer")
	}

	rgb := c.RGB()
	if p.plain {
		line := fmt.Sprintf("%s  %-22s%s", rgb.Hex(), c.String(), input)
		if palette != "" {
			line += "  [" + palette + "]"
		}
		fmt.Fprintln(p.stdout, strings.TrimRight(line, " "))
		return
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		color.Swatch(rgb),
		"  ",
		hexStyle.Render("#"+rgb.Hex()),
		"  ",
		hslStyle.Render(c.String()),
		color.Foreground(rgb).Render(input),
	)
	if palette != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, "  ", paletteStyle.Render("["+palette+"]"))
	}
	fmt.Fprintln(p.stdout, line)
}
