package loop

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/poke-the-dots/internal/core"
	"github.com/vovakirdan/poke-the-dots/internal/game"
)

// Status is the state of the loop's state machine.
type Status int

const (
	StatusRunning    Status = iota
	StatusTerminated        // terminal, entered only on a close request
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Deps bundles the collaborators a Controller drives.
type Deps struct {
	Canvas Canvas
	Events EventSource
	Clock  Clock
	Random game.Random

	// Logger is optional; a nil Logger discards output.
	Logger *log.Logger
}

// Controller orchestrates one session. It is driven from a single goroutine.
type Controller struct {
	state  *game.State
	canvas Canvas
	events EventSource
	clock  Clock
	rng    game.Random
	logger *log.Logger
	frames uint64
}

// NewController wires a session state to its collaborators.
func NewController(state *game.State, deps Deps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		state:  state,
		canvas: deps.Canvas,
		events: deps.Events,
		clock:  deps.Clock,
		rng:    deps.Random,
		logger: logger,
	}
}

// State returns the session state. Callers must not mutate it while the loop runs.
func (c *Controller) State() *game.State {
	return c.state
}

// Status returns the current state machine state.
func (c *Controller) Status() Status {
	if c.state.Terminated() {
		return StatusTerminated
	}
	return StatusRunning
}

// Frames returns the number of fully completed frames.
func (c *Controller) Frames() uint64 {
	return c.frames
}

// bounds returns the current playfield size from the canvas.
func (c *Controller) bounds() core.Size {
	return core.Size{W: c.canvas.Width(), H: c.canvas.Height()}
}

// Frame runs one iteration: handle events, render, move, tick, rescore.
// After a close request the rest of the iteration is skipped and later calls do
// nothing. Collaborator errors are returned wrapped; callers treat them as fatal.
func (c *Controller) Frame() error {
	if c.state.Terminated() {
		return nil
	}

	evs, err := c.events.PollEvents()
	if err != nil {
		return fmt.Errorf("loop: poll events: %w", err)
	}
	if c.handleEvents(evs) {
		return nil
	}

	if err := Render(c.canvas, c.state); err != nil {
		return err
	}

	c.state.Move(c.bounds())
	c.clock.Tick(c.state.FrameRate)
	c.state.UpdateScore(c.clock.ElapsedMillis())
	c.frames++
	return nil
}

// handleEvents applies evs in order and reports whether the session terminated.
func (c *Controller) handleEvents(evs []core.Event) bool {
	for _, ev := range evs {
		switch ev.Kind {
		case core.EventCloseRequested:
			c.terminate("close requested")
			return true
		case core.EventPointerReleased:
			c.state.Teleport(c.bounds(), c.rng)
			c.logger.Debug("teleport",
				"small", c.state.Small.Center,
				"big", c.state.Big.Center,
			)
		}
	}
	return false
}

func (c *Controller) terminate(reason string) {
	c.state.Terminate()
	c.logger.Info("session terminated",
		"reason", reason,
		"score", c.state.Score,
		"frames", c.frames,
	)
}

// Run calls Frame until the session terminates. A cancelled ctx is handled like a
// close request at the start of the next iteration.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Info("session started",
		"playfield", c.bounds(),
		"fps", c.state.FrameRate,
	)
	for !c.state.Terminated() {
		if ctx.Err() != nil {
			c.terminate("context cancelled")
			break
		}
		if err := c.Frame(); err != nil {
			return err
		}
	}
	return nil
}
