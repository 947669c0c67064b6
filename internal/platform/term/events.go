package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// pointerButtons are the buttons whose release teleports the dots.
const pointerButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// Events implements loop.EventSource over a channel fed by pump.
// tcell reports mouse state, not clicks, so releases are derived from
// button transitions between consecutive mouse events.
type Events struct {
	ch      <-chan tcell.Event
	buttons tcell.ButtonMask
	resize  func(width, height int)
}

// NewEvents reads from ch. resize is called for terminal size changes and may be nil.
func NewEvents(ch <-chan tcell.Event, resize func(width, height int)) *Events {
	return &Events{ch: ch, resize: resize}
}

// PollEvents drains every pending event without blocking.
func (e *Events) PollEvents() ([]core.Event, error) {
	var out []core.Event
	for {
		select {
		case ev := <-e.ch:
			if got, ok := e.Translate(ev); ok {
				out = append(out, got)
			}
		default:
			return out, nil
		}
	}
}

// Translate maps one tcell event to a game event.
// Returns false for events the game does not react to.
func (e *Events) Translate(ev tcell.Event) (core.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return core.CloseRequested(), true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return core.CloseRequested(), true
			case ' ':
				return core.PointerReleased(), true
			}
		}

	case *tcell.EventMouse:
		held := ev.Buttons() & pointerButtons
		released := e.buttons &^ held
		e.buttons = held
		if released != 0 {
			return core.PointerReleased(), true
		}

	case *tcell.EventResize:
		if e.resize != nil {
			w, h := ev.Size()
			e.resize(w, h)
		}
	}
	return core.Event{}, false
}

// pump forwards screen events to ch until the screen is finalized or done is closed.
func pump(s tcell.Screen, ch chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case ch <- ev:
		case <-done:
			return
		}
	}
}
