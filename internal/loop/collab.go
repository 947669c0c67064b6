// Package loop runs Poke the Dots frame by frame: poll input, render, move, wait for
// the next frame, rescore. Frontends supply the collaborators declared here.
package loop

import "github.com/vovakirdan/poke-the-dots/internal/core"

//go:generate go tool mockgen -destination=./mocks/collab_mock.go -package=mocks . Canvas,EventSource,Clock

// Canvas is the drawing surface of a frontend. Styling (background, font, title) is
// fixed when the frontend opens it. Coordinates are logical pixels.
type Canvas interface {
	// Width and Height return the playfield size used for physics.
	Width() int
	Height() int

	// Clear fills the surface with the background color.
	Clear()

	DrawFilledCircle(c core.Color, center core.Point, radius int)

	// DrawText draws s with its top-left corner at (x, y) using the canvas font.
	DrawText(s string, x, y int)

	// Present makes everything drawn since Clear visible.
	Present() error
}

// EventSource delivers the input events that arrived since the previous call.
type EventSource interface {
	PollEvents() ([]core.Event, error)
}

// Clock paces frames and measures session time.
type Clock interface {
	// Tick blocks until 1/frameRate seconds have passed since the previous Tick.
	Tick(frameRate int)

	// ElapsedMillis returns milliseconds since the session started.
	ElapsedMillis() int64
}
