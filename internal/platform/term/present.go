package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

// presenter copies finished cell frames to a tcell screen.
type presenter struct {
	screen     tcell.Screen
	background core.Color
	styles     map[core.Color]tcell.Style
}

func newPresenter(screen tcell.Screen, background core.Color) *presenter {
	return &presenter{
		screen:     screen,
		background: background,
		styles:     make(map[core.Color]tcell.Style),
	}
}

func (p *presenter) style(c core.Color) tcell.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	st := tcell.StyleDefault.Background(tcell.PaletteColor(int(p.background.ANSI())))
	if c != core.ColorDefault {
		st = st.Foreground(tcell.PaletteColor(int(c.ANSI())))
	}
	p.styles[c] = st
	return st
}

// present implements canvas.PresentFunc.
func (p *presenter) present(s *core.Screen) error {
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			p.screen.SetContent(x, y, cell.Rune, nil, p.style(cell.Color))
		}
	}
	p.screen.Show()
	return nil
}
