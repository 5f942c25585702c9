// Package config provides YAML-based tuning for the game: playfield
// geometry, physics constants, obstacle layout and death sequence timing.
package config

import "time"

// Config contains all tunable parameters of a game session.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Death     DeathConfig     `yaml:"death"`
}

// PlayfieldConfig defines the world-space playfield.
type PlayfieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
	GroundSpeed  float64 `yaml:"ground_speed"` // Ground scroll speed in units/s
}

// PhysicsConfig defines the physics world.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`         // World gravity, negative is down
	UnitsPerMeter float64 `yaml:"units_per_meter"` // Scale from gravity units to playfield units
	FlapImpulse   float64 `yaml:"flap_impulse"`    // Upward velocity given by a flap (unit mass)
	CellSize      float64 `yaml:"cell_size"`       // Broad-phase grid cell size
}

// ScaledGravity returns gravity in playfield units per second squared.
func (p PhysicsConfig) ScaledGravity() float64 {
	return p.Gravity * p.UnitsPerMeter
}

// PlayerConfig defines the player body and its tilt behaviour.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MaxTilt       float64 `yaml:"max_tilt"`       // Radians
	TiltDivisor   float64 `yaml:"tilt_divisor"`   // Velocity per radian of target tilt
	TiltSmoothing float64 `yaml:"tilt_smoothing"` // Fraction of the target applied per frame
}

// ObstacleConfig defines obstacle pair geometry and timing.
type ObstacleConfig struct {
	Gap            float64       `yaml:"gap"`
	Width          float64       `yaml:"width"`
	MinHeight      float64       `yaml:"min_height"`
	ScoreZoneWidth float64       `yaml:"score_zone_width"`
	SpawnPeriod    time.Duration `yaml:"spawn_period"`
	TraversalTime  time.Duration `yaml:"traversal_time"` // Time to cross playfield width + obstacle width
}

// Speed returns the leftward obstacle speed for a playfield of the given width.
func (o ObstacleConfig) Speed(playfieldWidth float64) float64 {
	return (playfieldWidth + o.Width) / o.TraversalTime.Seconds()
}

// DeathConfig defines the death sequence.
type DeathConfig struct {
	Freeze         time.Duration `yaml:"freeze"`          // Pause before the fall
	Fall           time.Duration `yaml:"fall"`            // Duration of the eased fall
	SpinPeriod     time.Duration `yaml:"spin_period"`     // One full turn while falling
	GameOverDelay  time.Duration `yaml:"game_over_delay"` // Fatal contact to game over screen
	GameOverSound  time.Duration `yaml:"game_over_sound"` // Fatal contact to game over cue
	RestartWidth   float64       `yaml:"restart_width"`
	RestartHeight  float64       `yaml:"restart_height"`
	RestartOffsetY float64       `yaml:"restart_offset_y"` // Restart control center below playfield center
}
