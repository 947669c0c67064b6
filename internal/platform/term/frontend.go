// Package term is a tcell frontend that runs the game loop directly:
// poll, render, move, sleep until the next frame, rescore.
package term

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/poke-the-dots/internal/canvas"
	"github.com/vovakirdan/poke-the-dots/internal/clock"
	"github.com/vovakirdan/poke-the-dots/internal/game"
	"github.com/vovakirdan/poke-the-dots/internal/loop"
	"github.com/vovakirdan/poke-the-dots/internal/registry"
)

// ID is the registry id of the tcell frontend.
const ID = "term"

// eventBuffer is the capacity of the input channel between frames.
const eventBuffer = 100

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend plays in the terminal with tcell.
type Frontend struct{}

func (f *Frontend) ID() string     { return ID }
func (f *Frontend) Title() string  { return "Terminal (tcell, blocking frame loop)" }
func (f *Frontend) Terminal() bool { return true }

// Run takes over the terminal and blocks until the session is closed.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	s, err := newSession(screen, opts, clock.New())
	if err != nil {
		return err
	}
	return s.run(ctx)
}

// session is one game played on a tcell screen.
type session struct {
	screen tcell.Screen
	cells  *canvas.Cells
	events chan tcell.Event
	ctrl   *loop.Controller
}

func newSession(screen tcell.Screen, opts registry.Options, clk loop.Clock) (*session, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := game.NewRandom(opts.Seed)
	state, err := game.New(cfg.GameOptions(), rng)
	if err != nil {
		return nil, err
	}

	cols, rows := screen.Size()
	p := newPresenter(screen, cfg.Window.Background)
	cells := canvas.NewCells(cfg.Bounds(), cols, rows, cfg.Font.Color, p.present)
	ch := make(chan tcell.Event, eventBuffer)

	events := NewEvents(ch, func(w, h int) {
		cells.Resize(w, h)
		screen.Sync()
	})

	return &session{
		screen: screen,
		cells:  cells,
		events: ch,
		ctrl: loop.NewController(state, loop.Deps{
			Canvas: cells,
			Events: events,
			Clock:  clk,
			Random: rng,
			Logger: logger,
		}),
	}, nil
}

// run pumps screen events in the background and runs the loop on the
// calling goroutine.
func (s *session) run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go pump(s.screen, s.events, done)

	return s.ctrl.Run(ctx)
}
