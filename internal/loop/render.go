package loop

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/poke-the-dots/internal/game"
)

// ScoreText formats the score label drawn in the top-left corner.
func ScoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

// Render draws one frame of s onto dst and presents it.
// It only reads s.
func Render(dst Canvas, s *game.State) error {
	dst.Clear()
	dst.DrawText(ScoreText(s.Score), 0, 0)
	for _, d := range s.Dots() {
		dst.DrawFilledCircle(d.Color, d.Center, d.Radius)
	}
	if err := dst.Present(); err != nil {
		return fmt.Errorf("loop: present: %w", err)
	}
	return nil
}
