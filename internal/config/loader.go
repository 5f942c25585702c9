package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.yamabird/config.yaml -> ./configs/yamabird.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/yamabird.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".yamabird", filename)
}

// Validate reports every invalid field. Invalid tuning is a programming
// error for the game, which refuses to start with it.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("playfield.ground_height", c.Playfield.GroundHeight)
	if c.Playfield.GroundSpeed < 0 {
		errs = append(errs, fmt.Errorf("playfield.ground_speed must not be negative, got %v", c.Playfield.GroundSpeed))
	}

	if c.Physics.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be negative, got %v", c.Physics.Gravity))
	}
	positive("physics.units_per_meter", c.Physics.UnitsPerMeter)
	positive("physics.flap_impulse", c.Physics.FlapImpulse)
	positive("physics.cell_size", c.Physics.CellSize)

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	if c.Player.MaxTilt < 0 {
		errs = append(errs, fmt.Errorf("player.max_tilt must not be negative, got %v", c.Player.MaxTilt))
	}
	positive("player.tilt_divisor", c.Player.TiltDivisor)
	if c.Player.TiltSmoothing < 0 || c.Player.TiltSmoothing > 1 {
		errs = append(errs, fmt.Errorf("player.tilt_smoothing must be within [0, 1], got %v", c.Player.TiltSmoothing))
	}

	positive("obstacles.gap", c.Obstacles.Gap)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.min_height", c.Obstacles.MinHeight)
	positive("obstacles.score_zone_width", c.Obstacles.ScoreZoneWidth)
	if c.Obstacles.SpawnPeriod <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_period must be positive, got %v", c.Obstacles.SpawnPeriod))
	}
	if c.Obstacles.TraversalTime <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.traversal_time must be positive, got %v", c.Obstacles.TraversalTime))
	}
	if room := c.Playfield.Height - c.Obstacles.Gap - 2*c.Obstacles.MinHeight; room < 0 {
		errs = append(errs, fmt.Errorf("playfield.height %v cannot fit gap %v plus two pipes of min_height %v",
			c.Playfield.Height, c.Obstacles.Gap, c.Obstacles.MinHeight))
	}

	if c.Death.Freeze < 0 {
		errs = append(errs, fmt.Errorf("death.freeze must not be negative, got %v", c.Death.Freeze))
	}
	if c.Death.GameOverSound < 0 {
		errs = append(errs, fmt.Errorf("death.game_over_sound must not be negative, got %v", c.Death.GameOverSound))
	}
	if c.Death.Fall <= 0 {
		errs = append(errs, fmt.Errorf("death.fall must be positive, got %v", c.Death.Fall))
	}
	if c.Death.SpinPeriod <= 0 {
		errs = append(errs, fmt.Errorf("death.spin_period must be positive, got %v", c.Death.SpinPeriod))
	}
	if c.Death.GameOverDelay <= 0 {
		errs = append(errs, fmt.Errorf("death.game_over_delay must be positive, got %v", c.Death.GameOverDelay))
	}
	positive("death.restart_width", c.Death.RestartWidth)
	positive("death.restart_height", c.Death.RestartHeight)

	return errors.Join(errs...)
}

// MustValidate panics if the configuration is invalid.
func (c Config) MustValidate() {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("config: invalid configuration: %v", err))
	}
}
