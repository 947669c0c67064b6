// Package core provides fundamental types shared by the game, the loop and the
// frontends. It contains no external dependencies (especially no UI toolkit) to keep
// game logic pure and testable.
package core

import "fmt"

// Point is an integer 2D vector in logical pixels.
// It is used both for positions and for per-frame velocities.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul scales both components by n.
func (p Point) Mul(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size holds playfield dimensions in logical pixels.
type Size struct {
	W, H int
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
