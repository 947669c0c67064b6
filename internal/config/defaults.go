package config

import (
	_ "embed"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

//go:embed defaults/pokedots.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:      "Poke the Dots",
			Width:      500,
			Height:     400,
			Background: core.ColorBlack,
		},
		Font: FontConfig{
			Name:  "goregular",
			Size:  64,
			Color: core.ColorWhite,
		},
		FrameRate: 90,
		Dots: DotsConfig{
			Small: DotConfig{Color: core.ColorRed, Radius: 30, Velocity: [2]int{1, 2}},
			Big:   DotConfig{Color: core.ColorBlue, Radius: 40, Velocity: [2]int{2, 1}},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
