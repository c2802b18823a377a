// Package tui is an interactive playground for colorhash: type an
// identifier to see its derived color, press enter to pin it to the
// history, click a history row to bring it back. With a palette file
// loaded, edits to the file are picked up live and the whole history
// re-colorizes.
package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/amonks/colorhash"
	"github.com/amonks/colorhash/internal/watcher"
	"github.com/amonks/colorhash/palettefile"
)

// Options configure a session.
type Options struct {
	// Hash derives colors when no palette file is loaded. The zero
	// value is the default configuration.
	Hash colorhash.ColorHash

	// Palettes, if set, routes identifiers to configurations instead
	// of Hash.
	Palettes *palettefile.Palettefile

	// PalettesPath is the file Palettes was loaded from.
	PalettesPath string

	// Watch reloads PalettesPath whenever it changes.
	Watch bool
}

// Start runs the TUI until the user quits or ctx is canceled.
func Start(ctx context.Context, stdin io.Reader, stdout io.Writer, opts Options) error {
	zone.NewGlobal()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		&Model{opts: opts},
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
	)

	if opts.Watch && opts.PalettesPath != "" {
		events, stop, err := watcher.Watch(opts.PalettesPath)
		if err != nil {
			return err
		}
		defer stop()
		go func() {
			for range events {
				pf, err := palettefile.Load(opts.PalettesPath)
				if err != nil {
					p.Send(msgReloadError{err})
					continue
				}
				p.Send(msgPalettesReloaded{&pf})
			}
		}()
	}

	if _, err := p.Run(); err != nil && err != tea.ErrProgramKilled {
		return err
	}
	return nil
}

type (
	msgPalettesReloaded struct{ palettes *palettefile.Palettefile }
	msgReloadError      struct{ err error }
)
