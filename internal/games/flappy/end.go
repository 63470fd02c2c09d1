package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/scene"
)

// EndScene shows the result of a run and a back button.
type EndScene struct {
	outcome scene.Outcome
	button  core.Rect
	config  core.RuntimeConfig
}

// NewEndScene creates the game-over scene for a finished run.
func NewEndScene(o scene.Outcome) *EndScene {
	return &EndScene{outcome: o}
}

// ID returns scene.End.
func (e *EndScene) ID() scene.ID { return scene.End }

// Enter lays out the back button for the screen size.
func (e *EndScene) Enter(rc core.RuntimeConfig) {
	e.config = rc
	e.button = backButton(rc.ScreenW, rc.ScreenH)
}

// backButton returns the button rectangle in screen cells. It is centred
// horizontally and lifted a fifth of the free space off the bottom.
func backButton(w, h int) core.Rect {
	bw := max(w/8, 4)
	bh := core.Clamp(w/15, 1, 3)
	bottom := (h - bh) / 5
	return core.NewRect((w-bw)/2, h-bottom-bh, bw, bh)
}

// Button returns the back button's rectangle.
func (e *EndScene) Button() core.Rect { return e.button }

// Score returns the displayed score; zero when no run finished.
func (e *EndScene) Score() int {
	if !e.outcome.Available {
		return 0
	}
	return e.outcome.Score
}

// Update requests the start scene when the back button is tapped, or on
// Enter or Back. Taps outside the button do nothing.
func (e *EndScene) Update(_ float64, in core.InputFrame) *scene.Transition {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
		return &scene.Transition{To: scene.Start}
	}
	if x, y, ok := in.TapLocation(); ok && e.button.Contains(x, y) {
		return &scene.Transition{To: scene.Start}
	}
	return nil
}

// Render draws the result and the button.
func (e *EndScene) Render(dst *core.Screen) {
	dst.FillBackground(core.ColorOrange)
	mid := dst.Height() / 3

	dst.DrawTextCenteredColored(mid, "Game Over", core.ColorBrightWhite)
	dst.DrawTextCenteredColored(mid+2, fmt.Sprintf("score : %d", e.Score()), core.ColorBrightWhite)

	row := mid + 3
	if e.outcome.Items > 0 {
		dst.DrawTextCenteredColored(row, fmt.Sprintf("items : %d", e.outcome.Items), core.ColorBrightYellow)
		row++
	}
	if e.outcome.Best > 0 {
		dst.DrawTextCenteredColored(row, fmt.Sprintf("best : %d", e.outcome.Best), core.ColorWhite)
	}

	b := e.button
	dst.FillRect(b, core.Cell{Rune: ' ', Fg: core.ColorBlack, Bg: core.ColorWhite})
	label := "back"
	dst.DrawTextColored(b.X+(b.W-len(label))/2, b.Y+b.H/2, label, core.ColorBlack)
}
