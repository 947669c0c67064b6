package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// Canvas implements loop.Canvas with two offscreen images. The loop draws into
// the back image during Update; Present copies it to the front image that Draw
// shows, so a frame is never displayed half drawn.
type Canvas struct {
	back       *ebiten.Image
	front      *ebiten.Image
	face       *text.GoTextFace
	background color.RGBA
	textColor  color.RGBA
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(size core.Size, face *text.GoTextFace, background, textColor core.Color) *Canvas {
	return &Canvas{
		back:       ebiten.NewImage(size.W, size.H),
		front:      ebiten.NewImage(size.W, size.H),
		face:       face,
		background: background.RGBA(),
		textColor:  textColor.RGBA(),
	}
}

func (c *Canvas) Width() int  { return c.back.Bounds().Dx() }
func (c *Canvas) Height() int { return c.back.Bounds().Dy() }

// Clear fills the back image with the background color.
func (c *Canvas) Clear() {
	c.back.Fill(c.background)
}

func (c *Canvas) DrawFilledCircle(col core.Color, center core.Point, radius int) {
	vector.DrawFilledCircle(c.back, float32(center.X), float32(center.Y), float32(radius), col.RGBA(), true)
}

// DrawText draws s with its top-left corner at (x, y).
func (c *Canvas) DrawText(s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.textColor)
	text.Draw(c.back, s, c.face, op)
}

// Present publishes the back image.
func (c *Canvas) Present() error {
	c.front.Clear()
	c.front.DrawImage(c.back, nil)
	return nil
}

// Front returns the last presented frame.
func (c *Canvas) Front() *ebiten.Image {
	return c.front
}
