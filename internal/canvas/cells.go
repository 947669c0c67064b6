// Package canvas provides a character-cell drawing surface for terminal frontends.
//
// The game keeps its logical pixel playfield on every frontend. Cells scales that
// playfield onto whatever grid the terminal currently has, so physics and bounce
// behave the same in a terminal as in a window.
package canvas

import (
	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// Block is the rune used to fill dot cells.
const Block = '█'

// PresentFunc displays a finished frame.
type PresentFunc func(*core.Screen) error

// Cells implements loop.Canvas on top of a core.Screen.
type Cells struct {
	screen    *core.Screen
	logical   core.Size
	textColor core.Color
	present   PresentFunc
}

// NewCells creates a canvas for a logical playfield drawn onto cols x rows cells.
// present may be nil when frames are pulled through Screen instead.
func NewCells(logical core.Size, cols, rows int, textColor core.Color, present PresentFunc) *Cells {
	return &Cells{
		screen:    core.NewScreen(cols, rows),
		logical:   logical,
		textColor: textColor,
		present:   present,
	}
}

// Width returns the logical playfield width.
func (c *Cells) Width() int { return c.logical.W }

// Height returns the logical playfield height.
func (c *Cells) Height() int { return c.logical.H }

// Screen returns the backing cell buffer.
func (c *Cells) Screen() *core.Screen { return c.screen }

// Resize changes the cell grid. The logical playfield is unchanged.
func (c *Cells) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
}

// Clear blanks every cell. Blank cells show the frontend's background.
func (c *Cells) Clear() {
	c.screen.Clear()
}

// CellAt maps a logical pixel to the cell containing it.
func (c *Cells) CellAt(p core.Point) (col, row int) {
	if c.logical.Empty() {
		return 0, 0
	}
	return floorDiv(p.X*c.screen.Width(), c.logical.W), floorDiv(p.Y*c.screen.Height(), c.logical.H)
}

// cellCenter returns the logical pixel at the middle of a cell.
func (c *Cells) cellCenter(col, row int) (float64, float64) {
	sx := float64(c.logical.W) / float64(c.screen.Width())
	sy := float64(c.logical.H) / float64(c.screen.Height())
	return (float64(col) + 0.5) * sx, (float64(row) + 0.5) * sy
}

// DrawFilledCircle fills every cell whose center lies within the circle. A circle
// smaller than a cell still marks the cell holding its center.
func (c *Cells) DrawFilledCircle(col core.Color, center core.Point, radius int) {
	if c.screen.Width() == 0 || c.screen.Height() == 0 || c.logical.Empty() {
		return
	}

	c0, r0 := c.CellAt(core.Pt(center.X-radius, center.Y-radius))
	c1, r1 := c.CellAt(core.Pt(center.X+radius, center.Y+radius))
	c0, r0 = core.Max(c0, 0), core.Max(r0, 0)
	c1, r1 = core.Min(c1, c.screen.Width()-1), core.Min(r1, c.screen.Height()-1)

	rr := float64(radius) * float64(radius)
	filled := false
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			px, py := c.cellCenter(x, y)
			dx, dy := px-float64(center.X), py-float64(center.Y)
			if dx*dx+dy*dy <= rr {
				c.screen.Set(x, y, Block, col)
				filled = true
			}
		}
	}

	if !filled {
		x, y := c.CellAt(center)
		c.screen.Set(x, y, Block, col)
	}
}

// DrawText writes s starting at the cell that contains (x, y).
func (c *Cells) DrawText(s string, x, y int) {
	col, row := c.CellAt(core.Pt(x, y))
	c.screen.DrawText(col, row, s, c.textColor)
}

// Present hands the finished frame to the frontend.
func (c *Cells) Present() error {
	if c.present == nil {
		return nil
	}
	return c.present(c.screen)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
