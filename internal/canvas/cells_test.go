package canvas

import (
	"errors"
	"testing"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// 50x20 cells over a 500x400 playfield: each cell is 10x20 pixels.
func newTestCells() *Cells {
	return NewCells(core.Sz(500, 400), 50, 20, core.ColorWhite, nil)
}

func TestLogicalSize(t *testing.T) {
	c := newTestCells()
	c.Resize(120, 40)

	if c.Width() != 500 || c.Height() != 400 {
		t.Errorf("size = %dx%d, expected 500x400 regardless of cells", c.Width(), c.Height())
	}
	if c.Screen().Width() != 120 || c.Screen().Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", c.Screen().Width(), c.Screen().Height())
	}
}

func TestCellAt(t *testing.T) {
	c := newTestCells()

	tests := []struct {
		p        core.Point
		col, row int
	}{
		{core.Pt(0, 0), 0, 0},
		{core.Pt(9, 19), 0, 0},
		{core.Pt(10, 20), 1, 1},
		{core.Pt(250, 200), 25, 10},
		{core.Pt(499, 399), 49, 19},
		{core.Pt(-1, -1), -1, -1},
	}

	for _, tc := range tests {
		col, row := c.CellAt(tc.p)
		if col != tc.col || row != tc.row {
			t.Errorf("CellAt(%v) = (%d,%d), expected (%d,%d)", tc.p, col, row, tc.col, tc.row)
		}
	}
}

func TestDrawFilledCircle(t *testing.T) {
	c := newTestCells()
	c.DrawFilledCircle(core.ColorRed, core.Pt(250, 200), 30)

	s := c.Screen()
	// Cell centers at y=190 and y=210 are 10px away; the band is |dx| <= 28
	for col := 22; col <= 27; col++ {
		for _, row := range []int{9, 10} {
			if cell := s.GetCell(col, row); cell.Rune != Block || cell.Color != core.ColorRed {
				t.Errorf("cell (%d,%d) = %+v, expected red block", col, row, cell)
			}
		}
	}

	for _, p := range [][2]int{{21, 9}, {28, 10}, {25, 8}, {25, 11}} {
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("cell %v should be blank", p)
		}
	}
}

func TestDrawTinyCircleMarksCenterCell(t *testing.T) {
	c := newTestCells()
	c.DrawFilledCircle(core.ColorBlue, core.Pt(3, 3), 1)

	if cell := c.Screen().GetCell(0, 0); cell.Rune != Block || cell.Color != core.ColorBlue {
		t.Errorf("cell (0,0) = %+v, expected blue block", cell)
	}
}

func TestDrawCircleClipped(t *testing.T) {
	c := newTestCells()

	// Mostly off the playfield; must not panic and must draw the visible part
	c.DrawFilledCircle(core.ColorRed, core.Pt(-20, -20), 40)
	if c.Screen().Get(0, 0) != Block {
		t.Error("visible part of the circle should be drawn")
	}

	c.Clear()
	c.DrawFilledCircle(core.ColorRed, core.Pt(5000, 5000), 40)
	if c.Screen().String() != NewCells(core.Sz(500, 400), 50, 20, core.ColorWhite, nil).Screen().String() {
		t.Error("circle far outside the playfield should draw nothing")
	}
}

func TestDrawOnEmptyScreen(t *testing.T) {
	c := NewCells(core.Sz(500, 400), 0, 0, core.ColorWhite, nil)

	// Nothing to draw on, nothing should break
	c.DrawFilledCircle(core.ColorRed, core.Pt(250, 200), 30)
	c.DrawText("Score: 1", 0, 0)
	if err := c.Present(); err != nil {
		t.Errorf("Present() error: %v", err)
	}
}

func TestDrawText(t *testing.T) {
	c := newTestCells()
	c.DrawText("Score: 4", 0, 0)

	if got := c.Screen().Row(0)[:8]; got != "Score: 4" {
		t.Errorf("row 0 = %q, expected score text", got)
	}
	if cell := c.Screen().GetCell(0, 0); cell.Color != core.ColorWhite {
		t.Errorf("text color = %v, expected white", cell.Color)
	}

	c.DrawText("x", 100, 100)
	if c.Screen().Get(10, 5) != 'x' {
		t.Error("text at (100,100) should start at cell (10,5)")
	}
}

func TestClear(t *testing.T) {
	c := newTestCells()
	c.DrawFilledCircle(core.ColorRed, core.Pt(250, 200), 30)
	c.DrawText("Score: 9", 0, 0)
	c.Clear()

	blank := NewCells(core.Sz(500, 400), 50, 20, core.ColorWhite, nil).Screen().String()
	if c.Screen().String() != blank {
		t.Error("Clear() should blank every cell")
	}
}

func TestPresent(t *testing.T) {
	var got *core.Screen
	c := NewCells(core.Sz(500, 400), 10, 10, core.ColorWhite, func(s *core.Screen) error {
		got = s
		return nil
	})

	if err := c.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}
	if got != c.Screen() {
		t.Error("Present() should pass the backing screen")
	}

	sentinel := errors.New("terminal closed")
	c.present = func(*core.Screen) error { return sentinel }
	if err := c.Present(); !errors.Is(err, sentinel) {
		t.Errorf("Present() = %v, expected %v", err, sentinel)
	}
}
