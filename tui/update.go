package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// History older than this is dropped rather than scrolled; the demo is
// about the most recent derivations.
const maxHistory = 500

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = msg.Width - 4
		m.gotSize = true
		return m, nil

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i := range m.history {
			if zone.Get(historyZone(i)).InBounds(msg) {
				m.input.SetValue(m.history[i].input)
				m.input.CursorEnd()
				return m, nil
			}
		}
		return m, nil

	case tea.KeyMsg:
		if !m.didInit || !m.gotSize {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if v := m.input.Value(); v != "" {
				m.history = append([]entry{m.derive(v)}, m.history...)
				if len(m.history) > maxHistory {
					m.history = m.history[:maxHistory]
				}
				m.input.SetValue("")
			}
			return m, nil
		}

	case msgPalettesReloaded:
		m.opts.Palettes = msg.palettes
		m.rederive()
		m.status = "palettes reloaded"
		return m, nil

	case msgReloadError:
		m.status = msg.err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func historyZone(i int) string { return "history:" + strconv.Itoa(i) }
