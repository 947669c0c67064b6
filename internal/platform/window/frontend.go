// Package window is the default frontend: a real window drawn with Ebitengine.
package window

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/poke-the-dots/internal/clock"
	"github.com/vovakirdan/poke-the-dots/internal/game"
	"github.com/vovakirdan/poke-the-dots/internal/loop"
	"github.com/vovakirdan/poke-the-dots/internal/registry"
)

// ID is the registry id of the window frontend.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend opens a desktop window.
type Frontend struct{}

func (f *Frontend) ID() string     { return ID }
func (f *Frontend) Title() string  { return "Desktop window (Ebitengine)" }
func (f *Frontend) Terminal() bool { return false }

// Game adapts a loop.Controller to ebiten.Game. Ebiten calls Update at the
// configured TPS, and each Update runs one loop frame.
type Game struct {
	ctx    context.Context
	ctrl   *loop.Controller
	input  *Input
	canvas *Canvas
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.input.Collect()
	if g.ctx.Err() != nil {
		g.input.RequestClose()
	}

	if err := g.ctrl.Frame(); err != nil {
		return err
	}
	if g.ctrl.Status() == loop.StatusTerminated {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Front(), nil)
}

// Layout implements ebiten.Game. The playfield has a fixed size and ebiten
// scales it when the window is resized.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.canvas.Width(), g.canvas.Height()
}

// Run opens the window and blocks until it is closed.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	face, err := LoadFace(cfg.Font.Name, cfg.Font.Size)
	if err != nil {
		return err
	}

	rng := game.NewRandom(opts.Seed)
	state, err := game.New(cfg.GameOptions(), rng)
	if err != nil {
		return err
	}

	input := NewInput()
	canvas := NewCanvas(cfg.Bounds(), face, cfg.Window.Background, cfg.Font.Color)
	g := &Game{
		ctx:    ctx,
		input:  input,
		canvas: canvas,
		ctrl: loop.NewController(state, loop.Deps{
			Canvas: canvas,
			Events: input,
			Clock:  clock.NewHostPaced(),
			Random: rng,
			Logger: logger,
		}),
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.FrameRate)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("opening window", "size", cfg.Bounds(), "fps", cfg.FrameRate)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
