package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// KeyMap holds the key bindings of the terminal frontend and translates
// Bubble Tea messages to game events. It implements help.KeyMap.
type KeyMap struct {
	Teleport   key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Teleport: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("click/space", "teleport"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Teleport, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Teleport, k.Quit},
		{k.Screenshot, k.Help},
	}
}

// MapKey translates a key message to a game event.
// Returns false for keys the game does not react to.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.CloseRequested(), true
	case key.Matches(msg, k.Teleport):
		return core.PointerReleased(), true
	}
	return core.Event{}, false
}

// MapMouse translates a mouse message to a game event.
// Any button release counts; some terminals report releases without a button.
func (k KeyMap) MapMouse(msg tea.MouseMsg) (core.Event, bool) {
	if msg.Action == tea.MouseActionRelease {
		return core.PointerReleased(), true
	}
	return core.Event{}, false
}
