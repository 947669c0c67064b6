package core

// RuntimeConfig contains per-session settings resolved by the platform layer.
// Terminal frontends use ScreenW/ScreenH to size their cell canvas.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal frontends only)
	ScreenH  int   // Screen height in characters (terminal frontends only)
	TickRate int   // Frames per second
	Seed     int64 // RNG seed, 0 means seed from system entropy
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 90,
		Seed:     0,
	}
}
