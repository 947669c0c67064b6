package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// Palette maps core.Color to lipgloss styles drawn over a fixed background.
// Styles are created on first use.
type Palette struct {
	renderer   *lipgloss.Renderer
	background core.Color
	styles     map[core.Color]lipgloss.Style
}

// NewPalette creates a palette for renderer. A nil renderer uses the default one.
func NewPalette(renderer *lipgloss.Renderer, background core.Color) *Palette {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &Palette{
		renderer:   renderer,
		background: background,
		styles:     make(map[core.Color]lipgloss.Style),
	}
}

// Style returns the style for cells of color c.
func (p *Palette) Style(c core.Color) lipgloss.Style {
	if style, ok := p.styles[c]; ok {
		return style
	}
	style := p.renderer.NewStyle().Background(ansi(p.background))
	if c != core.ColorDefault {
		style = style.Foreground(ansi(c))
	}
	p.styles[c] = style
	return style
}

func ansi(c core.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c.ANSI())))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p *Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
