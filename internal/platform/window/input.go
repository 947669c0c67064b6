package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// mouseButtons are all buttons ebiten reports.
var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButton0,
	ebiten.MouseButton1,
	ebiten.MouseButton2,
	ebiten.MouseButton3,
	ebiten.MouseButton4,
}

// inputState is the part of ebiten's input API the frontend reads.
type inputState struct {
	buttonReleased func(ebiten.MouseButton) bool
	keyPressed     func(ebiten.Key) bool
	closing        func() bool
}

func ebitenInput() inputState {
	return inputState{
		buttonReleased: inpututil.IsMouseButtonJustReleased,
		keyPressed:     inpututil.IsKeyJustPressed,
		closing:        ebiten.IsWindowBeingClosed,
	}
}

// Input turns ebiten's per-tick input state into game events.
type Input struct {
	state inputState
	queue core.EventQueue
}

// NewInput reads input from ebiten.
func NewInput() *Input {
	return &Input{state: ebitenInput()}
}

// Collect samples input for the current tick. Call it once per Update,
// before the loop frame runs.
func (in *Input) Collect() {
	for _, b := range mouseButtons {
		if in.state.buttonReleased(b) {
			in.queue.Push(core.PointerReleased())
		}
	}
	if in.state.closing() || in.state.keyPressed(ebiten.KeyEscape) {
		in.queue.Push(core.CloseRequested())
	}
}

// RequestClose queues a close request.
func (in *Input) RequestClose() {
	in.queue.Push(core.CloseRequested())
}

// PollEvents implements loop.EventSource.
func (in *Input) PollEvents() ([]core.Event, error) {
	return in.queue.PollEvents()
}
