package scene

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Director owns the current scene, steps it at a fixed rate and applies the
// transitions it requests.
type Director struct {
	registry *Registry
	current  Scene
	config   core.RuntimeConfig
	logger   *log.Logger
	entered  int64

	// OnGameOver is called with the outcome of a finished run before the
	// end scene is created. The returned outcome is what the end scene sees.
	OnGameOver func(Outcome) Outcome
}

// NewDirector creates a director and enters the first scene. A zero seed is
// replaced by a time-based one.
func NewDirector(reg *Registry, first ID, cfg core.RuntimeConfig, logger *log.Logger) (*Director, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	d := &Director{registry: reg, config: cfg, logger: logger}

	s, err := reg.Create(first, Outcome{})
	if err != nil {
		return nil, err
	}
	s.Enter(d.enterConfig())
	d.current = s
	return d, nil
}

// enterConfig returns the config for the next Enter call. Every entered scene
// gets its own seed, base seed plus the number of earlier entries, so each
// run lays out differently while a fixed base seed stays reproducible.
func (d *Director) enterConfig() core.RuntimeConfig {
	cfg := d.config
	cfg.Seed += d.entered
	d.entered++
	return cfg
}

// Current returns the active scene.
func (d *Director) Current() Scene {
	return d.current
}

// Config returns the base runtime config. Scenes see it with a per-entry seed.
func (d *Director) Config() core.RuntimeConfig {
	return d.config
}

// Tick advances the current scene by one fixed step and applies any
// transition it requests. It reports whether the scene changed.
func (d *Director) Tick(in core.InputFrame) bool {
	t := d.current.Update(d.config.TickDuration(), in)
	if t == nil {
		return false
	}
	return d.switchTo(*t)
}

func (d *Director) switchTo(t Transition) bool {
	o := t.Outcome
	if t.To == End && o.Available {
		d.logger.Info("game over", "score", o.Score, "items", o.Items)
		if d.OnGameOver != nil {
			o = d.OnGameOver(o)
		}
	}

	next, err := d.registry.Create(t.To, o)
	if err != nil {
		d.logger.Warn("scene transition skipped", "from", d.current.ID(), "to", t.To, "err", err)
		return false
	}
	next.Enter(d.enterConfig())
	d.logger.Debug("scene changed", "from", d.current.ID(), "to", t.To)
	d.current = next
	return true
}

// Resize re-enters the current scene with the new screen size.
func (d *Director) Resize(w, h int) {
	d.config.ScreenW = w
	d.config.ScreenH = h
	d.current.Enter(d.enterConfig())
}

// Render draws the current scene.
func (d *Director) Render(dst *core.Screen) {
	dst.Clear()
	d.current.Render(dst)
}
