package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig() disagree:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestLoadFlappyCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("pipes:\n  gap: 11\nitems:\n  effect: none\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Pipes.Gap != 11 {
		t.Errorf("Pipes.Gap = %v, expected 11", cfg.Pipes.Gap)
	}
	if cfg.Items.Effect != ItemEffectNone {
		t.Errorf("Items.Effect = %q, expected none", cfg.Items.Effect)
	}
	if cfg.Pipes.Interval != DefaultFlappyConfig().Pipes.Interval {
		t.Errorf("unspecified keys should keep defaults, got interval %v", cfg.Pipes.Interval)
	}
}

func TestLoadFlappyErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pipes: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("pipes:\n  interval: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFlappy(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero interval should be ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		ok     bool
	}{
		{"defaults", func(*FlappyConfig) {}, true},
		{"zero impulse", func(c *FlappyConfig) { c.Physics.Impulse = 0 }, false},
		{"zero gap", func(c *FlappyConfig) { c.Pipes.Gap = 0 }, false},
		{"zero cross time", func(c *FlappyConfig) { c.Pipes.CrossTime = 0 }, false},
		{"inverted rotation range", func(c *FlappyConfig) { c.Bird.MinRotation = 1 }, false},
		{"unknown item effect", func(c *FlappyConfig) { c.Items.Effect = "bonus" }, false},
		{"disabled items ignore interval", func(c *FlappyConfig) { c.Items.Enabled = false; c.Items.Interval = 0 }, true},
		{"negative flash", func(c *FlappyConfig) { c.GameOver.FlashRepeats = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestFlashDuration(t *testing.T) {
	cfg := DefaultFlappyConfig()
	if got := cfg.GameOver.FlashDuration(); got < 0.399 || got > 0.401 {
		t.Errorf("FlashDuration() = %v, expected 0.4", got)
	}
}

func TestPresets(t *testing.T) {
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}

	base := DefaultFlappyConfig()

	easy := DefaultFlappyConfig()
	ApplyFlappyPreset(&easy, DifficultyEasy)
	if easy.Pipes.Gap <= base.Pipes.Gap || easy.Pipes.CrossTime <= base.Pipes.CrossTime {
		t.Errorf("easy should widen the gap and slow scrolling: %+v", easy.Pipes)
	}

	hard := DefaultFlappyConfig()
	ApplyFlappyPreset(&hard, DifficultyHard)
	if hard.Pipes.Gap >= base.Pipes.Gap || hard.Pipes.Interval >= base.Pipes.Interval {
		t.Errorf("hard should narrow the gap and spawn faster: %+v", hard.Pipes)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	normal := DefaultFlappyConfig()
	ApplyFlappyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}
