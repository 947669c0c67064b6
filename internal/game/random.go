package game

import (
	"math/rand/v2"
)

// Random is the source of teleport positions.
type Random interface {
	// IntRange returns a uniform integer in [lo, hi], both inclusive.
	// It panics if hi < lo.
	IntRange(lo, hi int) int
}

// NewRandom returns a Random for a session.
// A zero seed uses the process-wide generator, which is seeded from system entropy.
func NewRandom(seed int64) Random {
	if seed == 0 {
		return globalRandom{}
	}
	return &seededRandom{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

type globalRandom struct{}

func (globalRandom) IntRange(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

type seededRandom struct {
	r *rand.Rand
}

func (s *seededRandom) IntRange(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}
