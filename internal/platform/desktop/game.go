//go:build ebiten

package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/scene"
)

// Game implements ebiten.Game on top of a scene director.
type Game struct {
	opts     Options
	director *scene.Director
	screen   *core.Screen
	frame    core.InputFrame
	touchIDs []ebiten.TouchID
}

// NewGame creates a window game positioned on the start scene.
func NewGame(opts Options) (*Game, error) {
	opts = opts.withDefaults()
	d, err := scene.NewDirector(opts.Registry, scene.Start, opts.Config, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}
	d.OnGameOver = platform.RunRecorder(opts.Store, opts.Player, opts.Logger)

	return &Game{
		opts:     opts,
		director: d,
		screen:   core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		frame:    core.NewInputFrame(),
	}, nil
}

// Update reads input and advances the director by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.readInput()
	g.director.Tick(g.frame)
	g.frame.Clear()
	return nil
}

func (g *Game) readInput() {
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(k) {
			g.frame.Set(core.ActionTap)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.frame.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.frame.Set(core.ActionBack)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.frame.Set(core.ActionPause)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.tapAt(ebiten.CursorPosition())
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		g.tapAt(ebiten.TouchPosition(id))
	}
}

func (g *Game) tapAt(px, py int) {
	x, y, ok := cellAt(px, py, g.opts.CellW, g.opts.CellH, g.screen.Width(), g.screen.Height())
	if !ok {
		g.frame.Set(core.ActionTap)
		return
	}
	g.frame.SetTap(x, y)
}

// Draw paints every cell as a background block with its glyph on top.
// Glyphs outside the debug font are drawn as an inset block.
func (g *Game) Draw(dst *ebiten.Image) {
	g.director.Render(g.screen)

	cw, ch := float64(g.opts.CellW), float64(g.opts.CellH)
	for y := 0; y < g.screen.Height(); y++ {
		for x := 0; x < g.screen.Width(); x++ {
			c := g.screen.GetCell(x, y)
			px, py := float64(x)*cw, float64(y)*ch
			ebitenutil.DrawRect(dst, px, py, cw, ch, RGBA(c.Bg))

			switch {
			case c.Rune == 0 || c.Rune == ' ':
			case isASCII(c.Rune):
				ebitenutil.DebugPrintAt(dst, string(c.Rune), int(px), int(py))
			default:
				ebitenutil.DrawRect(dst, px+1, py+ch/4, cw-2, ch/2, RGBA(c.Fg))
			}
		}
	}
}

// Layout keeps the logical size fixed to the cell grid.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screen.Width() * g.opts.CellW, g.screen.Height() * g.opts.CellH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.opts.Title)
	if tps := g.opts.Config.TickRate; tps > 0 {
		ebiten.SetTPS(tps)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
