package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amonks/colorhash"
)

type entry struct {
	input   string
	palette string
	color   colorhash.HSL
}

type Model struct {
	opts Options

	input   textinput.Model
	history []entry // newest first

	width   int
	height  int
	didInit bool
	gotSize bool

	status string
}

func (m *Model) Init() tea.Cmd {
	m.input = textinput.New()
	m.input.Placeholder = "type an identifier"
	m.input.Prompt = "> "
	m.input.Focus()
	m.didInit = true
	return textinput.Blink
}

func (m *Model) derive(input string) entry {
	ch, palette := m.opts.Hash, ""
	if m.opts.Palettes != nil {
		ch, palette = m.opts.Palettes.For(input)
	}
	return entry{input: input, palette: palette, color: ch.HSL(input)}
}

// rederive recolors the whole history, for palette reloads.
func (m *Model) rederive() {
	for i, e := range m.history {
		m.history[i] = m.derive(e.input)
	}
}
