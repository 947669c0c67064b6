package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is an opaque renderable color identifier.
// Frontends map it to RGBA (pixel window) or an ANSI 256-color index (terminal).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

type colorInfo struct {
	name string
	rgba color.RGBA
	ansi uint8
}

// Palette values follow the X11 color names the game configuration uses.
var palette = map[Color]colorInfo{
	ColorDefault: {"default", color.RGBA{R: 255, G: 255, B: 255, A: 255}, 7},
	ColorBlack:   {"black", color.RGBA{A: 255}, 16},
	ColorRed:     {"red", color.RGBA{R: 255, A: 255}, 196},
	ColorGreen:   {"green", color.RGBA{G: 255, A: 255}, 46},
	ColorYellow:  {"yellow", color.RGBA{R: 255, G: 255, A: 255}, 226},
	ColorBlue:    {"blue", color.RGBA{B: 255, A: 255}, 21},
	ColorMagenta: {"magenta", color.RGBA{R: 255, B: 255, A: 255}, 201},
	ColorCyan:    {"cyan", color.RGBA{G: 255, B: 255, A: 255}, 51},
	ColorWhite:   {"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}, 231},
	ColorOrange:  {"orange", color.RGBA{R: 255, G: 165, A: 255}, 214},
	ColorGray:    {"gray", color.RGBA{R: 190, G: 190, B: 190, A: 255}, 250},
}

// ParseColor resolves a color name (case-insensitive). "grey" is accepted for gray.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "grey" {
		n = "gray"
	}
	for c, info := range palette {
		if info.name == n {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// String returns the configuration name of the color.
func (c Color) String() string {
	if info, ok := palette[c]; ok {
		return info.name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// RGBA returns the color for pixel-based frontends.
func (c Color) RGBA() color.RGBA {
	if info, ok := palette[c]; ok {
		return info.rgba
	}
	return palette[ColorDefault].rgba
}

// ANSI returns the xterm 256-color index for terminal frontends.
func (c Color) ANSI() uint8 {
	if info, ok := palette[c]; ok {
		return info.ansi
	}
	return palette[ColorDefault].ansi
}

// MarshalText implements encoding.TextMarshaler so colors round-trip through YAML.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
