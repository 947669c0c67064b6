package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/poke-the-dots/internal/config"
	"github.com/vovakirdan/poke-the-dots/internal/core"
	"github.com/vovakirdan/poke-the-dots/internal/loop"
	"github.com/vovakirdan/poke-the-dots/internal/registry"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := registry.Options{Config: config.DefaultConfig(), Seed: 1}
	m, err := NewModel(opts, RuntimeConfig(opts, 50, 21), lipgloss.NewRenderer(io.Discard))
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	m.shotDir = t.TempDir()
	// Keep the dots clear of the score text
	m.ctrl.State().Small.Center = core.Pt(250, 200)
	m.ctrl.State().Big.Center = core.Pt(400, 300)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestRuntimeConfig(t *testing.T) {
	opts := registry.Options{Config: config.DefaultConfig(), Seed: 42}

	rc := RuntimeConfig(opts, 120, 40)
	if rc.ScreenW != 120 || rc.ScreenH != 40 || rc.TickRate != 90 || rc.Seed != 42 {
		t.Errorf("RuntimeConfig() = %+v", rc)
	}

	// Unknown terminal size falls back to the defaults
	rc = RuntimeConfig(opts, 0, 0)
	if rc.ScreenW != 80 || rc.ScreenH != 24 {
		t.Errorf("RuntimeConfig(0,0) size = %dx%d, expected 80x24", rc.ScreenW, rc.ScreenH)
	}
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dots.Big.Radius = 1000
	opts := registry.Options{Config: cfg}

	if _, err := NewModel(opts, RuntimeConfig(opts, 80, 24), nil); err == nil {
		t.Error("NewModel() with oversized dot expected error")
	}
}

func TestNewModelReservesHelpRow(t *testing.T) {
	m := newTestModel(t)

	if m.cells.Screen().Width() != 50 || m.cells.Screen().Height() != 20 {
		t.Errorf("playfield = %dx%d, expected 50x20", m.cells.Screen().Width(), m.cells.Screen().Height())
	}
	if m.cells.Width() != 500 || m.cells.Height() != 400 {
		t.Errorf("logical playfield = %dx%d, expected 500x400", m.cells.Width(), m.cells.Height())
	}
}

func TestTickRunsOneFrame(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if m.Controller().Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", m.Controller().Frames())
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("a running session should schedule the next tick")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Errorf("View() should show the score:\n%s", m.View())
	}
}

func TestQuitKeyEndsSessionOnNextTick(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		t.Error("quit key should only queue a close request")
	}

	m, cmd = update(t, m, TickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Error("tick after close request should quit")
	}
	if m.Controller().Status() != loop.StatusTerminated {
		t.Errorf("Status() = %v, expected Terminated", m.Controller().Status())
	}
	if m.Controller().Frames() != 0 {
		t.Errorf("no frame should render after close, Frames() = %d", m.Controller().Frames())
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, expected nil", m.Err())
	}
}

func TestMouseReleaseQueuesTeleport(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.queue.Len() != 0 {
		t.Error("press should not queue an event")
	}

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.queue.Len() != 1 {
		t.Fatalf("queue length = %d, expected 1", m.queue.Len())
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	for _, d := range m.Controller().State().Dots() {
		// Teleported inside, then moved by one frame
		minX, maxX := d.Radius-abs(d.Velocity.X), 500-d.Radius+abs(d.Velocity.X)
		minY, maxY := d.Radius-abs(d.Velocity.Y), 400-d.Radius+abs(d.Velocity.Y)
		if d.Center.X < minX || d.Center.X > maxX || d.Center.Y < minY || d.Center.Y > maxY {
			t.Errorf("dot at %v left the playfield after teleport", d.Center)
		}
	}
	if m.queue.Len() != 0 {
		t.Error("frame should drain the queue")
	}
}

func TestResizeKeepsLogicalPlayfield(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))
	before := m.Controller().State().Small.Center

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})
	if m.cells.Screen().Width() != 100 || m.cells.Screen().Height() != 30 {
		t.Errorf("playfield = %dx%d, expected 100x30", m.cells.Screen().Width(), m.cells.Screen().Height())
	}
	if m.Controller().State().Small.Center != before {
		t.Error("resize should not touch game state")
	}
	if m.Controller().Status() != loop.StatusRunning {
		t.Error("resize should not end the session")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	if !strings.Contains(m.View(), "screenshot") {
		t.Error("full help should list the screenshot binding")
	}
}

func TestScreenshotKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("screenshot files = %d, expected 1", len(files))
	}
	data, err := os.ReadFile(filepath.Join(m.shotDir, files[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Score: 0") {
		t.Errorf("screenshot should start with the score, got %q", string(data)[:20])
	}
}

func TestWriteScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc", core.ColorRed)
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	path, err := writeScreenshot(dir, s, now)
	if err != nil {
		t.Fatalf("writeScreenshot() error: %v", err)
	}
	if filepath.Base(path) != "pokedots_20260304_050607.txt" {
		t.Errorf("filename = %q", filepath.Base(path))
	}
	data, _ := os.ReadFile(path)
	if string(data) != "abc\n   " {
		t.Errorf("content = %q, expected %q", data, "abc\n   ")
	}

	if _, err := writeScreenshot("", s, now); err == nil {
		t.Error("writeScreenshot() without directory expected error")
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
