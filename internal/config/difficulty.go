package config

import "fmt"

// ParsePreset converts a CLI value into a preset. The empty string means
// "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyFlappyPreset adjusts the config for a difficulty preset. Presets only
// change static values: scroll speed stays constant for the whole run.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pipes.Gap += 2
		cfg.Pipes.Interval *= 1.25
		cfg.Pipes.CrossTime *= 1.25
	case DifficultyHard:
		cfg.Pipes.Gap = max(cfg.Pipes.Gap-2, cfg.Bird.Radius*4)
		cfg.Pipes.Interval *= 0.8
		cfg.Pipes.CrossTime *= 0.8
	}
}
