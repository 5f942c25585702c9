package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/yamabird.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/yamabird.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:        400,
			Height:       600,
			GroundHeight: 50,
			GroundSpeed:  115,
		},
		Physics: PhysicsConfig{
			Gravity:       -13,
			UnitsPerMeter: 150,
			FlapImpulse:   540,
			CellSize:      100,
		},
		Player: PlayerConfig{
			Width:         34,
			Height:        24,
			MaxTilt:       0.5,
			TiltDivisor:   300,
			TiltSmoothing: 0.1,
		},
		Obstacles: ObstacleConfig{
			Gap:            150,
			Width:          60,
			MinHeight:      100,
			ScoreZoneWidth: 1,
			SpawnPeriod:    2 * time.Second,
			TraversalTime:  4 * time.Second,
		},
		Death: DeathConfig{
			Freeze:         1500 * time.Millisecond,
			Fall:           3 * time.Second,
			SpinPeriod:     500 * time.Millisecond,
			GameOverDelay:  2 * time.Second,
			GameOverSound:  1500 * time.Millisecond,
			RestartWidth:   120,
			RestartHeight:  36,
			RestartOffsetY: 77.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
