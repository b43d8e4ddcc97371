package core

// RuntimeConfig contains configuration passed by the platform at startup.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (0 when unknown)
	ScreenH  int   // Terminal height in characters (0 when unknown)
	TickRate int   // Frames per second polled while a game is running
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
