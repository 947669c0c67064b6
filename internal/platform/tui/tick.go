// Package tui provides the Bubble Tea frontend for Poke the Dots.
// It maps terminal input to game events, rasterizes the playfield into cells,
// and can serve sessions over SSH via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/poke-the-dots/internal/clock"
)

// TickMsg is sent to trigger one game loop frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(clock.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
