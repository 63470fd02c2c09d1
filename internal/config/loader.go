package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flappy.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Physics.Impulse <= 0:
		return fmt.Errorf("%w: physics.impulse must be positive", ErrInvalidConfig)
	case c.Bird.Radius <= 0:
		return fmt.Errorf("%w: bird.radius must be positive", ErrInvalidConfig)
	case c.Bird.MinRotation > c.Bird.MaxRotation:
		return fmt.Errorf("%w: bird.min_rotation exceeds bird.max_rotation", ErrInvalidConfig)
	case c.Pipes.Width <= 0:
		return fmt.Errorf("%w: pipes.width must be positive", ErrInvalidConfig)
	case c.Pipes.Gap <= 0:
		return fmt.Errorf("%w: pipes.gap must be positive", ErrInvalidConfig)
	case c.Pipes.Interval <= 0:
		return fmt.Errorf("%w: pipes.interval must be positive", ErrInvalidConfig)
	case c.Pipes.CrossTime <= 0:
		return fmt.Errorf("%w: pipes.cross_time must be positive", ErrInvalidConfig)
	case c.Items.Enabled && c.Items.Interval <= 0:
		return fmt.Errorf("%w: items.interval must be positive", ErrInvalidConfig)
	case c.Items.Effect != ItemEffectCollect && c.Items.Effect != ItemEffectNone:
		return fmt.Errorf("%w: items.effect %q is not one of collect, none", ErrInvalidConfig, c.Items.Effect)
	case c.Ground.Height < 0:
		return fmt.Errorf("%w: ground.height must not be negative", ErrInvalidConfig)
	case c.GameOver.FlashRepeats < 0 || c.GameOver.FlashHalfPeriod < 0:
		return fmt.Errorf("%w: game_over flash settings must not be negative", ErrInvalidConfig)
	}
	return nil
}
