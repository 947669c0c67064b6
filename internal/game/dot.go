// Package game implements the Poke the Dots state model: two dots bouncing inside a
// fixed playfield, teleported on demand, scored by elapsed time.
// It has no knowledge of windows, terminals or clocks.
package game

import (
	"fmt"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// Dot is a colored circle that moves by a fixed velocity every frame.
type Dot struct {
	Color    core.Color
	Center   core.Point // logical pixels
	Radius   int        // logical pixels, positive
	Velocity core.Point // pixels per frame
}

// Bounce advances the dot by one frame and reflects it off the playfield edges.
//
// Each axis is handled independently: the center moves by the velocity, then the
// velocity component is negated if the dot now extends past that axis's edge.
// The position is not corrected, so a dot may overshoot an edge by up to one
// frame's velocity before the reflected velocity brings it back.
func (d *Dot) Bounce(bounds core.Size) {
	d.Center.X, d.Velocity.X = reflect(d.Center.X, d.Velocity.X, d.Radius, bounds.W)
	d.Center.Y, d.Velocity.Y = reflect(d.Center.Y, d.Velocity.Y, d.Radius, bounds.H)
}

func reflect(pos, vel, radius, bound int) (int, int) {
	pos += vel
	if pos < radius || pos+radius > bound {
		vel = -vel
	}
	return pos, vel
}

// Randomize moves the dot to a uniformly random position where it lies fully
// inside the playfield. Velocity is left untouched.
//
// The caller must ensure Fits(bounds) holds; the range is invalid otherwise.
func (d *Dot) Randomize(bounds core.Size, rng Random) {
	d.Center.X = rng.IntRange(d.Radius, bounds.W-d.Radius)
	d.Center.Y = rng.IntRange(d.Radius, bounds.H-d.Radius)
}

// Inside reports whether the whole dot lies within bounds.
func (d *Dot) Inside(bounds core.Size) bool {
	return d.Center.X >= d.Radius && d.Center.X <= bounds.W-d.Radius &&
		d.Center.Y >= d.Radius && d.Center.Y <= bounds.H-d.Radius
}

// Fits checks that the dot can be placed inside bounds at all.
func (d *Dot) Fits(bounds core.Size) error {
	if d.Radius <= 0 {
		return fmt.Errorf("%w: radius %d must be positive", ErrInvalidConfig, d.Radius)
	}
	if bounds.W < 2*d.Radius || bounds.H < 2*d.Radius {
		return fmt.Errorf("%w: radius %d does not fit playfield %v", ErrInvalidConfig, d.Radius, bounds)
	}
	return nil
}
