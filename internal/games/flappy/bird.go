package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Bird is the player-controlled body.
type Bird struct {
	Body     *physics.Body
	Rotation float64 // radians, cosmetic only
	Frozen   bool    // set when the death spin finishes

	cfg config.BirdConfig
}

// aliveCollisions is the set the bird rests against while the run is live.
var aliveCollisions = physics.NewCategorySet(physics.CategoryWorld, physics.CategoryPipe)

func newBird(cfg config.BirdConfig) *Bird {
	body := physics.NewCircle(physics.CategoryBird, 0, 0, cfg.Radius)
	body.Dynamic = true
	body.ContactWith = physics.NewCategorySet(
		physics.CategoryWorld,
		physics.CategoryPipe,
		physics.CategoryScore,
		physics.CategoryItem,
	)
	return &Bird{Body: body, cfg: cfg}
}

// Reset puts the bird at (x, y) with no motion and full collisions.
func (b *Bird) Reset(x, y float64) {
	b.Body.X, b.Body.Y = x, y
	b.Body.VX, b.Body.VY = 0, 0
	b.Body.CollideWith = aliveCollisions
	b.Rotation = 0
	b.Frozen = false
}

// Flap clears the vertical velocity and applies the impulse, so repeated
// taps never stack.
func (b *Bird) Flap(impulse float64) {
	b.Body.VY = 0
	b.Body.VY += impulse
}

// UpdateRotation tilts the bird according to its vertical velocity.
func (b *Bird) UpdateRotation() {
	vy := b.Body.VY
	factor := b.cfg.RiseFactor
	if vy < 0 {
		factor = b.cfg.FallFactor
	}
	b.Rotation = core.ClampF(vy*factor, b.cfg.MinRotation, b.cfg.MaxRotation)
}

// Glyph returns the rune drawn for the bird's head.
func (b *Bird) Glyph() rune {
	switch {
	case b.Frozen:
		return 'x'
	case b.Rotation > 0.2:
		return '▲'
	case b.Rotation < -0.4:
		return '▼'
	default:
		return '▶'
	}
}

// spinAngle is the death spin for the bird's current height.
func (b *Bird) spinAngle() float64 {
	return math.Pi * b.Body.Y * b.cfg.SpinFactor
}
