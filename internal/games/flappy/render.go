package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBodyChar  = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	GroundFill    = '░'
	ItemChar      = '◆'
)

// toRow converts a world y (y-up, cells) to a screen row.
func toRow(y float64, screenH int) int {
	return screenH - 1 - int(math.Floor(y))
}

func toCol(x float64) int {
	return int(math.Floor(x))
}

// Render draws the run: sky, pipes, items, ground, bird and score.
func (p *PlayScene) Render(dst *core.Screen) {
	h := dst.Height()
	dst.FillBackground(p.background)

	for _, pp := range p.obstacles.Pipes() {
		p.drawPipes(dst, pp)
	}

	for _, it := range p.obstacles.Items() {
		dst.SetColored(toCol(it.X), toRow(it.Offset, h), ItemChar, core.ColorBrightYellow)
	}

	p.drawGround(dst)

	bx, by := toCol(p.bird.Body.X), toRow(p.bird.Body.Y, h)
	dst.SetColored(bx-1, by, BirdBodyChar, core.ColorYellow)
	dst.SetColored(bx, by, p.bird.Glyph(), core.ColorOrange)

	// Score label sits at three quarters of the screen height.
	scoreRow := toRow(0.75*float64(h), h)
	label := fmt.Sprintf("%d", p.score)
	if p.labelScale > 1.2 {
		dst.DrawTextCenteredColored(scoreRow, "« "+label+" »", core.ColorBrightYellow)
	} else {
		dst.DrawTextCenteredColored(scoreRow, label, core.ColorBrightWhite)
	}
	if p.items > 0 {
		dst.DrawTextColored(1, 0, fmt.Sprintf("%c %d", ItemChar, p.items), core.ColorBrightYellow)
	}

	switch {
	case p.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case p.state == Restartable:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Tap to restart", p.score))
	}
}

// drawPipes renders both pipes of a pair, row by row.
func (p *PlayScene) drawPipes(dst *core.Screen, pp *PipePair) {
	h := dst.Height()
	left := toCol(pp.X - pp.Width/2)
	width := int(math.Round(pp.Width))
	lowerTop := toRow(pp.Offset-0.5, h)
	upperBottom := toRow(pp.GapTop()+0.5, h)

	for row := 0; row < h; row++ {
		var r rune
		switch {
		case row == lowerTop:
			r = PipeCapTop
		case row > lowerTop:
			r = PipeChar
		case row == upperBottom:
			r = PipeCapBottom
		case row < upperBottom:
			r = PipeChar
		default:
			continue
		}
		for dx := 0; dx < width; dx++ {
			dst.SetColored(left+dx, row, r, core.ColorGreen)
		}
	}
}

func (p *PlayScene) drawGround(dst *core.Screen) {
	h := dst.Height()
	gh := int(math.Round(p.cfg.Ground.Height))
	if gh <= 0 {
		return
	}
	top := h - gh
	dst.FillRect(core.NewRect(0, top, dst.Width(), gh), core.Cell{Rune: GroundFill, Fg: core.ColorBrightYellow, Bg: core.ColorSand})
	dst.FillRect(core.NewRect(0, top, dst.Width(), 1), core.Cell{Rune: GroundChar, Fg: core.ColorGreen, Bg: core.ColorSand})
}

// drawCenteredMessage draws a two-line message box in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	centerY := dst.Height() / 2

	boxW := max(len([]rune(subtitle))+4, len([]rune(title))+4)
	boxH := 4
	box := core.NewRect((dst.Width()-boxW)/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' ', Bg: core.ColorBlack})
	dst.DrawBox(box)
	dst.DrawTextCenteredColored(centerY-1, title, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(centerY, subtitle, core.ColorWhite)
}
