package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hard-coded default configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: PhysicsConfig{
			Gravity: -60,
			Impulse: 18,
		},
		Bird: BirdConfig{
			Radius:      0.9,
			StartX:      0.4,
			StartY:      0.5,
			FallFactor:  0.05,
			RiseFactor:  0.025,
			MinRotation: -1.0,
			MaxRotation: 0.5,
			SpinFactor:  0.1,
			SpinTime:    1.0,
		},
		Pipes: PipesConfig{
			Width:       4,
			Gap:         8,
			Interval:    2.0,
			CrossTime:   4.0,
			SpawnMargin: 8,
		},
		Items: ItemsConfig{
			Enabled:  true,
			Interval: 4.0,
			Effect:   ItemEffectCollect,
		},
		Ground: GroundConfig{
			Height: 2,
		},
		GameOver: GameOverConfig{
			FlashRepeats:    4,
			FlashHalfPeriod: 0.05,
			PulseScale:      1.5,
			PulseTime:       0.1,
			ShowEndScreen:   true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
