// Package config provides YAML-based configuration loading and validation for
// Poke the Dots.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/poke-the-dots/internal/core"
	"github.com/vovakirdan/poke-the-dots/internal/game"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config contains the complete game configuration.
type Config struct {
	Window    WindowConfig `yaml:"window"`
	Font      FontConfig   `yaml:"font"`
	FrameRate int          `yaml:"frame_rate"`
	Dots      DotsConfig   `yaml:"dots"`
}

// WindowConfig describes the playfield window.
type WindowConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Background core.Color `yaml:"background"`
}

// FontConfig describes the score font.
type FontConfig struct {
	Name  string     `yaml:"name"`
	Size  float64    `yaml:"size"`
	Color core.Color `yaml:"color"`
}

// DotsConfig holds the two dots of the game.
type DotsConfig struct {
	Small DotConfig `yaml:"small"`
	Big   DotConfig `yaml:"big"`
}

// DotConfig describes one dot. Positions are always randomized at start.
type DotConfig struct {
	Color    core.Color `yaml:"color"`
	Radius   int        `yaml:"radius"`
	Velocity [2]int     `yaml:"velocity,flow"`
}

// Bounds returns the playfield size.
func (c Config) Bounds() core.Size {
	return core.Sz(c.Window.Width, c.Window.Height)
}

// GameOptions converts the configuration to the options game.New expects.
func (c Config) GameOptions() game.Options {
	return game.Options{
		Bounds:    c.Bounds(),
		FrameRate: c.FrameRate,
		Small:     c.Dots.Small.dotSpec(),
		Big:       c.Dots.Big.dotSpec(),
	}
}

func (d DotConfig) dotSpec() game.DotSpec {
	return game.DotSpec{
		Color:    d.Color,
		Radius:   d.Radius,
		Velocity: core.Pt(d.Velocity[0], d.Velocity[1]),
	}
}

// Validate reports the first problem that would make the game impossible to start.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate %d must be positive", ErrInvalid, c.FrameRate)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("%w: font size %v must be positive", ErrInvalid, c.Font.Size)
	}
	names := [2]string{"small", "big"}
	for i, d := range [2]DotConfig{c.Dots.Small, c.Dots.Big} {
		name := names[i]
		if d.Radius <= 0 {
			return fmt.Errorf("%w: dots.%s.radius %d must be positive", ErrInvalid, name, d.Radius)
		}
		if 2*d.Radius > c.Window.Width || 2*d.Radius > c.Window.Height {
			return fmt.Errorf("%w: dots.%s.radius %d does not fit a %dx%d window",
				ErrInvalid, name, d.Radius, c.Window.Width, c.Window.Height)
		}
		if d.Velocity[0] == 0 || d.Velocity[1] == 0 {
			return fmt.Errorf("%w: dots.%s.velocity %v has a zero component", ErrInvalid, name, d.Velocity)
		}
	}
	return nil
}
