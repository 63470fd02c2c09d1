package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/timeline"
)

// PipePair is an upper and lower pipe with a fixed gap between them and an
// invisible score trigger just behind.
type PipePair struct {
	X      float64 // horizontal centre of both pipes
	Offset float64 // top of the lower pipe
	Gap    float64
	Width  float64

	Lower   *physics.Body
	Upper   *physics.Body
	Trigger *physics.Body
}

// GapTop returns the bottom edge of the upper pipe.
func (p *PipePair) GapTop() float64 {
	return p.Offset + p.Gap
}

func (p *PipePair) moveTo(x float64) {
	dx := x - p.X
	p.X = x
	p.Lower.X += dx
	p.Upper.X += dx
	p.Trigger.X += dx
}

func (p *PipePair) bodies() []*physics.Body {
	return []*physics.Body{p.Lower, p.Upper, p.Trigger}
}

// Item is a collectible floating at a random height.
type Item struct {
	X      float64
	Offset float64 // vertical centre
	Body   *physics.Body
}

func (it *Item) moveTo(x float64) {
	it.X = x
	it.Body.X = x
}

// ObstacleManager spawns, scrolls and removes pipes and items. Spawners and
// scroll motions run on the manager's timeline, so setting its speed to zero
// freezes all of them at once.
type ObstacleManager struct {
	world      *physics.World
	timeline   *timeline.Timeline
	rng        *rand.Rand
	cfg        *config.FlappyConfig
	screenW    float64
	screenH    float64
	birdRadius float64

	pipes []*PipePair
	items []*Item
}

// NewObstacleManager creates a manager for a screen of the given size.
func NewObstacleManager(world *physics.World, rng *rand.Rand, cfg *config.FlappyConfig, screenW, screenH int) *ObstacleManager {
	return &ObstacleManager{
		world:      world,
		timeline:   timeline.New(),
		rng:        rng,
		cfg:        cfg,
		screenW:    float64(screenW),
		screenH:    float64(screenH),
		birdRadius: cfg.Bird.Radius,
		pipes:      make([]*PipePair, 0, 8),
	}
}

// Start schedules the periodic spawners. The first pipe and item appear
// immediately.
func (om *ObstacleManager) Start() {
	om.timeline.Run("spawn-pipes", timeline.Every(om.cfg.Pipes.Interval, func() {
		om.SpawnPipes()
	}))
	if om.cfg.Items.Enabled {
		om.timeline.Run("spawn-items", timeline.Every(om.cfg.Items.Interval, func() {
			om.SpawnItem()
		}))
	}
}

// Reset removes every pipe and item, cancels all motion and restarts the
// spawners at normal speed.
func (om *ObstacleManager) Reset() {
	om.timeline.Clear()
	for _, p := range om.pipes {
		for _, b := range p.bodies() {
			om.world.Remove(b)
		}
	}
	for _, it := range om.items {
		om.world.Remove(it.Body)
	}
	om.pipes = om.pipes[:0]
	om.items = om.items[:0]
	om.timeline.Speed = 1
	om.Start()
}

// Update advances spawners and scroll motions by dt seconds.
func (om *ObstacleManager) Update(dt float64) {
	om.timeline.Update(dt)
}

// SetSpeed scales spawning and scrolling. Zero freezes both.
func (om *ObstacleManager) SetSpeed(s float64) {
	om.timeline.Speed = s
}

// Speed returns the current speed scale.
func (om *ObstacleManager) Speed() float64 {
	return om.timeline.Speed
}

// Distance is how far every obstacle travels before it is removed.
func (om *ObstacleManager) Distance() float64 {
	return om.screenW + 2*om.cfg.Pipes.Width
}

// ScrollSpeed returns the horizontal speed in cells per second. It depends on
// the screen width so the crossing time is the same on every screen.
func (om *ObstacleManager) ScrollSpeed() float64 {
	return om.Distance() / om.cfg.Pipes.CrossTime
}

// SpawnX is where new obstacles appear, just past the right edge.
func (om *ObstacleManager) SpawnX() float64 {
	return om.screenW + om.cfg.Pipes.SpawnMargin
}

// PipeOffset picks the top of a lower pipe in [H/4, H/2).
func (om *ObstacleManager) PipeOffset() float64 {
	return randomBand(om.rng, int(om.screenH)/4)
}

// ItemOffset picks an item height in [H/3, 2H/3).
func (om *ObstacleManager) ItemOffset() float64 {
	return randomBand(om.rng, int(om.screenH)/3)
}

// randomBand returns band + rand[0, band). A band narrower than one cell
// collapses to its floor.
func randomBand(rng *rand.Rand, band int) float64 {
	if band < 1 {
		return float64(band)
	}
	return float64(band + rng.Intn(band))
}

// SpawnPipes creates a pipe pair past the right edge and starts it scrolling.
func (om *ObstacleManager) SpawnPipes() *PipePair {
	w := om.cfg.Pipes.Width
	gap := om.cfg.Pipes.Gap
	x := om.SpawnX()
	offset := om.PipeOffset()

	// The upper pipe reaches well above the screen so the bird can't fly over it.
	upperTop := 2 * om.screenH
	upperH := upperTop - (offset + gap)

	p := &PipePair{
		X:      x,
		Offset: offset,
		Gap:    gap,
		Width:  w,
		Lower:  physics.NewRect(physics.CategoryPipe, x, offset/2, w, offset),
		Upper:  physics.NewRect(physics.CategoryPipe, x, offset+gap+upperH/2, w, upperH),
		Trigger: physics.NewRect(physics.CategoryScore,
			x+w+om.birdRadius, om.screenH/2, w, om.screenH),
	}
	for _, b := range p.bodies() {
		b.ContactWith = physics.NewCategorySet(physics.CategoryBird)
		b.Owner = p
		om.world.Add(b)
	}
	om.pipes = append(om.pipes, p)

	om.scroll(x, p.moveTo, func() { om.removePipes(p) })
	return p
}

// SpawnItem creates an item past the right edge and starts it scrolling.
func (om *ObstacleManager) SpawnItem() *Item {
	x := om.SpawnX()
	offset := om.ItemOffset()

	it := &Item{
		X:      x,
		Offset: offset,
		Body:   physics.NewCircle(physics.CategoryItem, x, offset, om.birdRadius),
	}
	it.Body.ContactWith = physics.NewCategorySet(physics.CategoryBird)
	it.Body.Owner = it
	om.world.Add(it.Body)
	om.items = append(om.items, it)

	om.scroll(x, it.moveTo, func() { om.RemoveItem(it) })
	return it
}

// scroll moves an object left by Distance over the crossing time and then
// removes it. This is the only way obstacles leave the world.
func (om *ObstacleManager) scroll(startX float64, moveTo func(x float64), remove func()) {
	dist := om.Distance()
	om.timeline.Run("", timeline.Sequence(
		timeline.Tween(om.cfg.Pipes.CrossTime, func(progress float64) {
			moveTo(startX - dist*progress)
		}),
		timeline.Run(remove),
	))
}

func (om *ObstacleManager) removePipes(p *PipePair) {
	for i, q := range om.pipes {
		if q == p {
			om.pipes = append(om.pipes[:i], om.pipes[i+1:]...)
			break
		}
	}
	for _, b := range p.bodies() {
		om.world.Remove(b)
	}
}

// RemoveItem takes an item out of the world. Removing it twice is a no-op.
func (om *ObstacleManager) RemoveItem(it *Item) {
	for i, q := range om.items {
		if q == it {
			om.items = append(om.items[:i], om.items[i+1:]...)
			break
		}
	}
	om.world.Remove(it.Body)
}

// Pipes returns the pipe pairs currently in the world.
func (om *ObstacleManager) Pipes() []*PipePair {
	return om.pipes
}

// Items returns the items currently in the world.
func (om *ObstacleManager) Items() []*Item {
	return om.items
}
