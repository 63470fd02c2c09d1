// Package flappy implements a Flappy Bird-style game.
// The player taps to keep a falling bird airborne and steers it through the
// gaps of scrolling pipes. Scenes for the title, the run itself and the
// game-over screen are registered with the scene registry.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/scene"
	"github.com/vovakirdan/tui-flappy/internal/timeline"
)

// State is the phase of a run.
type State int

const (
	// Running means the world scrolls and taps flap.
	Running State = iota
	// Frozen means a fatal contact happened and the flash is playing. Taps
	// are ignored.
	Frozen
	// Restartable means the flash finished and a tap starts a new run.
	Restartable
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Frozen:
		return "Frozen"
	case Restartable:
		return "Restartable"
	default:
		return "Unknown"
	}
}

// Timeline keys for the effects that can be cancelled.
const (
	flashKey = "flash"
	pulseKey = "pulse"
	spinKey  = "spin"
)

// PlayScene owns a live run.
type PlayScene struct {
	cfg    config.FlappyConfig
	config core.RuntimeConfig
	rng    *rand.Rand
	seed   int64

	world     *physics.World
	ground    *physics.Body
	bird      *Bird
	obstacles *ObstacleManager
	effects   *timeline.Timeline

	state      State
	score      int
	items      int
	paused     bool
	flashing   bool
	background core.Color
	labelScale float64

	pending *scene.Transition
}

// NewPlayScene creates a play scene. Enter must be called before Update.
func NewPlayScene(cfg config.FlappyConfig) *PlayScene {
	return &PlayScene{cfg: cfg}
}

// ID returns scene.Play.
func (p *PlayScene) ID() scene.ID {
	return scene.Play
}

// Enter builds the world for the screen size and starts a fresh run.
func (p *PlayScene) Enter(rc core.RuntimeConfig) {
	p.config = rc
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p.seed = seed
	p.rng = rand.New(rand.NewSource(seed))

	w := float64(rc.ScreenW)
	p.world = physics.NewWorld(p.cfg.Physics.Gravity)
	p.world.OnContact = p.handleContact

	gh := p.cfg.Ground.Height
	p.ground = physics.NewRect(physics.CategoryWorld, w/2, gh/2, w, gh)
	p.world.Add(p.ground)

	p.bird = newBird(p.cfg.Bird)
	p.world.Add(p.bird.Body)

	p.obstacles = NewObstacleManager(p.world, p.rng, &p.cfg, rc.ScreenW, rc.ScreenH)
	p.effects = timeline.New()

	p.reset()
}

// reset starts a new run: bird back at the start point, obstacles cleared,
// spawners restarted and counters zeroed.
func (p *PlayScene) reset() {
	p.bird.Reset(p.startPoint())
	p.obstacles.Reset()
	p.effects.Clear()

	p.state = Running
	p.score = 0
	p.items = 0
	p.paused = false
	p.flashing = false
	p.background = core.ColorSky
	p.labelScale = 1
	p.pending = nil
}

func (p *PlayScene) startPoint() (float64, float64) {
	return p.cfg.Bird.StartX * float64(p.config.ScreenW), p.cfg.Bird.StartY * float64(p.config.ScreenH)
}

// Update advances the run by dt seconds: input, physics, contacts, timed
// actions, then the bird's tilt.
func (p *PlayScene) Update(dt float64, in core.InputFrame) *scene.Transition {
	if in.Has(core.ActionPause) && p.state == Running {
		p.paused = !p.paused
	}
	if p.paused {
		return nil
	}

	if in.Has(core.ActionTap) {
		p.handleTap()
	}

	p.world.Step(dt)

	p.obstacles.Update(dt)
	p.effects.Update(dt)

	if !p.effects.Has(spinKey) && !p.bird.Frozen {
		p.bird.UpdateRotation()
	}

	t := p.pending
	p.pending = nil
	return t
}

// handleTap flaps while running and restarts once the flash is over.
func (p *PlayScene) handleTap() {
	switch p.state {
	case Running:
		p.bird.Flap(p.cfg.Physics.Impulse)
	case Restartable:
		p.reset()
	case Frozen:
		// ignored until the flash completes
	}
}

// handleContact applies a begin-contact event. Contacts only matter while
// the run is live.
func (p *PlayScene) handleContact(c physics.Contact) {
	if p.state != Running {
		return
	}

	switch Classify(c) {
	case ContactScore:
		p.score++
		p.pulse()
	case ContactItem:
		p.collect(c.Body(physics.CategoryItem))
	case ContactFatal:
		p.die()
	}
}

// pulse grows the score label and shrinks it back.
func (p *PlayScene) pulse() {
	scale := p.cfg.GameOver.PulseScale
	d := p.cfg.GameOver.PulseTime
	p.effects.Run(pulseKey, timeline.Sequence(
		timeline.Tween(d, func(t float64) { p.labelScale = 1 + (scale-1)*t }),
		timeline.Tween(d, func(t float64) { p.labelScale = scale - (scale-1)*t }),
	))
}

// collect applies the configured item effect.
func (p *PlayScene) collect(body *physics.Body) {
	if p.cfg.Items.Effect != config.ItemEffectCollect || body == nil {
		return
	}
	if it, ok := body.Owner.(*Item); ok {
		p.obstacles.RemoveItem(it)
		p.items++
	}
}

// die freezes the world, drops the bird to the ground and starts the flash.
func (p *PlayScene) die() {
	p.state = Frozen
	p.obstacles.SetSpeed(0)
	p.bird.Body.CollideWith = physics.NewCategorySet(physics.CategoryWorld)

	start := p.bird.Rotation
	angle := p.bird.spinAngle()
	p.effects.Run(spinKey, timeline.Sequence(
		timeline.Tween(p.cfg.Bird.SpinTime, func(t float64) { p.bird.Rotation = start + angle*t }),
		timeline.Run(func() { p.bird.Frozen = true }),
	))

	p.startFlash()
}

// startFlash alternates the background red and sky, then makes the run
// restartable. A flash already in flight is cancelled first.
func (p *PlayScene) startFlash() {
	if p.flashing {
		p.effects.Remove(flashKey)
	}
	p.flashing = true

	half := p.cfg.GameOver.FlashHalfPeriod
	p.effects.Run(flashKey, timeline.Sequence(
		timeline.Repeat(p.cfg.GameOver.FlashRepeats, timeline.Sequence(
			timeline.Run(func() { p.background = core.ColorRed }),
			timeline.Wait(half),
			timeline.Run(func() { p.background = core.ColorSky }),
			timeline.Wait(half),
		)),
		timeline.Run(p.finishFlash),
	))
}

func (p *PlayScene) finishFlash() {
	p.flashing = false
	p.background = core.ColorSky
	p.state = Restartable
	if p.cfg.GameOver.ShowEndScreen {
		p.pending = &scene.Transition{
			To:      scene.End,
			Outcome: scene.Outcome{Score: p.score, Items: p.items, Available: true},
		}
	}
}

// State returns the phase of the run.
func (p *PlayScene) State() State { return p.state }

// Seed returns the seed the run's spawn offsets are drawn from.
func (p *PlayScene) Seed() int64 { return p.seed }

// Score returns the number of pipe pairs passed this run.
func (p *PlayScene) Score() int { return p.score }

// Items returns the number of items collected this run.
func (p *PlayScene) Items() int { return p.items }

// Paused reports whether the run is paused.
func (p *PlayScene) Paused() bool { return p.paused }

// Flashing reports whether the game-over flash is playing.
func (p *PlayScene) Flashing() bool { return p.flashing }

// Bird returns the bird.
func (p *PlayScene) Bird() *Bird { return p.bird }

// Obstacles returns the obstacle manager.
func (p *PlayScene) Obstacles() *ObstacleManager { return p.obstacles }

// Background returns the current sky color.
func (p *PlayScene) Background() core.Color { return p.background }
