package core

import "time"

// RuntimeConfig carries the front-end settings for one play session.
type RuntimeConfig struct {
	ScreenW  int    // Terminal width in cells
	ScreenH  int    // Terminal height in cells
	TickRate int    // Frames per second
	Seed     int64  // Obstacle RNG seed, 0 picks one from the clock
	Player   string // Name the high score is stored under
	Muted    bool
}

// DefaultRuntime returns a RuntimeConfig for an 80x24 terminal at 60 FPS.
func DefaultRuntime() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Player:   "player",
	}
}

// TickInterval returns the wall-clock duration of one frame.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
