package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/scene"
)

// StartScene is the title card.
type StartScene struct {
	config core.RuntimeConfig
	blink  float64
}

// NewStartScene creates the title scene.
func NewStartScene() *StartScene {
	return &StartScene{}
}

// ID returns scene.Start.
func (s *StartScene) ID() scene.ID { return scene.Start }

// Enter records the screen size.
func (s *StartScene) Enter(rc core.RuntimeConfig) {
	s.config = rc
}

// Update requests the play scene on a tap or Enter.
func (s *StartScene) Update(dt float64, in core.InputFrame) *scene.Transition {
	s.blink += dt
	if in.Has(core.ActionTap) || in.Has(core.ActionConfirm) {
		return &scene.Transition{To: scene.Play}
	}
	return nil
}

// Render draws the title.
func (s *StartScene) Render(dst *core.Screen) {
	dst.FillBackground(core.ColorSky)
	mid := dst.Height() / 2

	dst.DrawTextCenteredColored(mid-3, "F L A P P Y", core.ColorBrightWhite)
	dst.DrawTextCenteredColored(mid-1, string([]rune{BirdBodyChar, '▶'}), core.ColorYellow)

	// Prompt blinks at 1 Hz.
	if int(s.blink*2)%2 == 0 {
		dst.DrawTextCenteredColored(mid+1, "Tap or press Enter to start", core.ColorWhite)
	}
	dst.DrawTextCenteredColored(mid+3, "Space/Up: flap   P: pause   Q: quit", core.ColorGray)
}
