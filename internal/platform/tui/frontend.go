package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/poke-the-dots/internal/registry"
)

// ID is the registry id of the terminal frontend.
const ID = "tui"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend plays the game in the local terminal with Bubble Tea.
type Frontend struct{}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return ID }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Terminal (Bubble Tea, mouse + keyboard)" }

// Terminal implements registry.Frontend.
func (f *Frontend) Terminal() bool { return true }

// Run starts the Bubble Tea program and blocks until the session is closed.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 0, 0
	}

	model, err := NewModel(opts, RuntimeConfig(opts, width, height), nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report button releases
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
