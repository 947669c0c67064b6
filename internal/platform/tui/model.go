package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/poke-the-dots/internal/canvas"
	"github.com/vovakirdan/poke-the-dots/internal/clock"
	"github.com/vovakirdan/poke-the-dots/internal/core"
	"github.com/vovakirdan/poke-the-dots/internal/game"
	"github.com/vovakirdan/poke-the-dots/internal/loop"
	"github.com/vovakirdan/poke-the-dots/internal/registry"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

// Model is the Bubble Tea model for one game session.
// Each TickMsg runs exactly one loop frame.
type Model struct {
	ctrl     *loop.Controller
	queue    *core.EventQueue
	cells    *canvas.Cells
	palette  *Palette
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	title    string
	config   core.RuntimeConfig
	shotDir  string
	err      error
	quitting bool
}

// RuntimeConfig builds the per-session settings for a terminal of the given size.
func RuntimeConfig(opts registry.Options, width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if width > 0 && height > 0 {
		rc.ScreenW, rc.ScreenH = width, height
	}
	rc.TickRate = opts.Config.FrameRate
	rc.Seed = opts.Seed
	return rc
}

// NewModel creates a new session model. renderer may be nil for the local terminal.
func NewModel(opts registry.Options, rc core.RuntimeConfig, renderer *lipgloss.Renderer) (Model, error) {
	cfg := opts.Config
	cfg.FrameRate = rc.TickRate

	rng := game.NewRandom(rc.Seed)
	state, err := game.New(cfg.GameOptions(), rng)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	queue := &core.EventQueue{}
	cells := canvas.NewCells(cfg.Bounds(), rc.ScreenW, playfieldRows(rc.ScreenH), cfg.Font.Color, nil)
	ctrl := loop.NewController(state, loop.Deps{
		Canvas: cells,
		Events: queue,
		Clock:  clock.NewHostPaced(),
		Random: rng,
		Logger: logger,
	})

	return Model{
		ctrl:    ctrl,
		queue:   queue,
		cells:   cells,
		palette: NewPalette(renderer, cfg.Window.Background),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		title:   cfg.Window.Title,
		config:  rc,
		shotDir: defaultScreenshotDir(),
	}, nil
}

func playfieldRows(height int) int {
	return core.Max(height-helpRows, 0)
}

// Init sets the terminal title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.title),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keys.MapMouse(msg); ok {
			m.queue.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game events are queued for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if ev, ok := m.keys.MapKey(msg); ok {
		m.queue.Push(ev)
	}
	return m, nil
}

// handleResize rescales the cell grid. The logical playfield is unchanged,
// so the session continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.cells.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one loop frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.ctrl.Frame(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if m.ctrl.Status() == loop.StatusTerminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the last rendered frame as plain text.
func (m *Model) saveScreenshot() {
	path, err := writeScreenshot(m.shotDir, m.cells.Screen(), time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pokedots", "screenshots")
}

// writeScreenshot saves s under dir with a timestamped name and returns the path.
func writeScreenshot(dir string, s *core.Screen, now time.Time) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("pokedots_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the last frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.cells.Screen(), m.palette) + "\n" + m.help.View(m.keys)
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Controller exposes the session's loop controller.
func (m Model) Controller() *loop.Controller {
	return m.ctrl
}
