// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Bird     BirdConfig     `yaml:"bird"`
	Pipes    PipesConfig    `yaml:"pipes"`
	Items    ItemsConfig    `yaml:"items"`
	Ground   GroundConfig   `yaml:"ground"`
	GameOver GameOverConfig `yaml:"game_over"`
}

// PhysicsConfig defines world physics in screen cells and seconds. The world
// is y-up: negative gravity pulls the bird toward the ground.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
	Impulse float64 `yaml:"impulse"` // vertical velocity set by a tap
}

// BirdConfig defines the bird's size, start point and cosmetic rotation.
type BirdConfig struct {
	Radius      float64 `yaml:"radius"`
	StartX      float64 `yaml:"start_x"` // fraction of screen width
	StartY      float64 `yaml:"start_y"` // fraction of screen height
	FallFactor  float64 `yaml:"fall_factor"`
	RiseFactor  float64 `yaml:"rise_factor"`
	MinRotation float64 `yaml:"min_rotation"`
	MaxRotation float64 `yaml:"max_rotation"`
	SpinFactor  float64 `yaml:"spin_factor"` // death spin angle is π·y·SpinFactor
	SpinTime    float64 `yaml:"spin_time"`
}

// PipesConfig defines pipe geometry and scheduling.
type PipesConfig struct {
	Width       float64 `yaml:"width"`
	Gap         float64 `yaml:"gap"`
	Interval    float64 `yaml:"interval"`     // seconds between spawns
	CrossTime   float64 `yaml:"cross_time"`   // seconds to scroll screen width + 2 pipe widths
	SpawnMargin float64 `yaml:"spawn_margin"` // cells beyond the right edge
}

// ItemEffect selects what picking up an item does.
type ItemEffect string

const (
	// ItemEffectCollect removes the item and counts it.
	ItemEffectCollect ItemEffect = "collect"
	// ItemEffectNone leaves the item alone; contacts are classified but ignored.
	ItemEffectNone ItemEffect = "none"
)

// ItemsConfig defines collectible items.
type ItemsConfig struct {
	Enabled  bool       `yaml:"enabled"`
	Interval float64    `yaml:"interval"`
	Effect   ItemEffect `yaml:"effect"`
}

// GroundConfig defines the ground strip at the bottom of the screen.
type GroundConfig struct {
	Height float64 `yaml:"height"`
}

// GameOverConfig defines the fatal-collision sequence.
type GameOverConfig struct {
	FlashRepeats    int     `yaml:"flash_repeats"`
	FlashHalfPeriod float64 `yaml:"flash_half_period"`
	PulseScale      float64 `yaml:"pulse_scale"`
	PulseTime       float64 `yaml:"pulse_time"`
	ShowEndScreen   bool    `yaml:"show_end_screen"`
}

// FlashDuration returns the total length of the flash sequence.
func (c GameOverConfig) FlashDuration() float64 {
	return float64(c.FlashRepeats) * 2 * c.FlashHalfPeriod
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
