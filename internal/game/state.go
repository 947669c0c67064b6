package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// ErrInvalidConfig is wrapped by every error New returns for bad parameters.
var ErrInvalidConfig = errors.New("game: invalid configuration")

// DotSpec describes a dot at creation time. Its center is always randomized.
type DotSpec struct {
	Color    core.Color
	Radius   int
	Velocity core.Point
}

// Options are the fixed parameters of a session.
type Options struct {
	Bounds    core.Size // playfield used for the initial placement
	FrameRate int
	Small     DotSpec
	Big       DotSpec
}

// State aggregates everything that changes during a session.
// It is owned by a single loop and is not safe for concurrent use.
type State struct {
	Small Dot
	Big   Dot

	// FrameRate is the target frames per second, fixed for the session.
	FrameRate int

	// Score is the number of whole seconds since the session started.
	Score int

	terminated bool
}

// New validates opts and creates a session with both dots at random positions.
func New(opts Options, rng Random) (*State, error) {
	if opts.Bounds.Empty() {
		return nil, fmt.Errorf("%w: playfield %v must be positive", ErrInvalidConfig, opts.Bounds)
	}
	if opts.FrameRate <= 0 {
		return nil, fmt.Errorf("%w: frame rate %d must be positive", ErrInvalidConfig, opts.FrameRate)
	}

	s := &State{
		Small:     newDot(opts.Small),
		Big:       newDot(opts.Big),
		FrameRate: opts.FrameRate,
	}
	names := [2]string{"small", "big"}
	for i, d := range s.Dots() {
		if err := d.Fits(opts.Bounds); err != nil {
			return nil, fmt.Errorf("%s dot: %w", names[i], err)
		}
		if d.Velocity.X == 0 || d.Velocity.Y == 0 {
			return nil, fmt.Errorf("%w: %s dot velocity %v has a zero component", ErrInvalidConfig, names[i], d.Velocity)
		}
	}

	s.Small.Randomize(opts.Bounds, rng)
	s.Big.Randomize(opts.Bounds, rng)
	return s, nil
}

func newDot(spec DotSpec) Dot {
	return Dot{
		Color:    spec.Color,
		Radius:   spec.Radius,
		Velocity: spec.Velocity,
	}
}

// Dots returns both dots in draw order: small first, then big.
func (s *State) Dots() [2]*Dot {
	return [2]*Dot{&s.Small, &s.Big}
}

// Teleport randomizes both dots independently. The two new positions are not
// checked against each other and may overlap.
func (s *State) Teleport(bounds core.Size, rng Random) {
	s.Small.Randomize(bounds, rng)
	s.Big.Randomize(bounds, rng)
}

// Move advances both dots by one frame.
func (s *State) Move(bounds core.Size) {
	s.Small.Bounce(bounds)
	s.Big.Bounce(bounds)
}

// UpdateScore sets the score from the elapsed session time.
func (s *State) UpdateScore(elapsedMillis int64) {
	s.Score = int(elapsedMillis / 1000)
}

// Terminate marks the session as closed. It cannot be undone.
func (s *State) Terminate() {
	s.terminated = true
}

// Terminated reports whether a close request has been handled.
func (s *State) Terminated() bool {
	return s.terminated
}
