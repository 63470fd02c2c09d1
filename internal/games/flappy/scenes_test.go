package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/scene"
)

func tapAt(x, y int) core.InputFrame {
	in := core.NewInputFrame()
	in.SetTap(x, y)
	return in
}

func TestBackButtonLayout(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want core.Rect
	}{
		{"80x24", 80, 24, core.NewRect(35, 17, 10, 3)},
		{"wide clamps height", 200, 50, core.NewRect(87, 38, 25, 3)},
		{"narrow keeps one row", 20, 10, core.NewRect(8, 8, 4, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, backButton(tc.w, tc.h))
		})
	}
}

func TestEndSceneBackButton(t *testing.T) {
	e := NewEndScene(scene.Outcome{Score: 7, Available: true})
	e.Enter(testRuntime)
	b := e.Button()

	assert.Nil(t, e.Update(0, tapAt(0, 0)), "tap outside the button")
	assert.Nil(t, e.Update(0, tapFrame()), "keyboard tap has no location")
	assert.Nil(t, e.Update(0, none()))

	tr := e.Update(0, tapAt(b.X, b.Y))
	require.NotNil(t, tr)
	assert.Equal(t, scene.Start, tr.To)

	tr = e.Update(0, tapAt(b.Right()-1, b.Bottom()-1))
	require.NotNil(t, tr)
	assert.Nil(t, e.Update(0, tapAt(b.Right(), b.Y)), "right edge is outside")

	for _, a := range []core.Action{core.ActionConfirm, core.ActionBack} {
		in := none()
		in.Set(a)
		tr := e.Update(0, in)
		require.NotNil(t, tr, a.String())
		assert.Equal(t, scene.Start, tr.To)
	}
}

func TestEndSceneScore(t *testing.T) {
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	e := NewEndScene(scene.Outcome{Score: 7, Items: 2, Best: 12, Available: true})
	e.Enter(testRuntime)
	e.Render(screen)
	out := screen.String()
	assert.Equal(t, 7, e.Score())
	assert.Contains(t, out, "Game Over")
	assert.Contains(t, out, "score : 7")
	assert.Contains(t, out, "items : 2")
	assert.Contains(t, out, "best : 12")
	assert.Contains(t, out, "back")
	assert.Equal(t, core.ColorOrange, screen.Background())

	missing := NewEndScene(scene.Outcome{Score: 99})
	missing.Enter(testRuntime)
	screen.Clear()
	missing.Render(screen)
	assert.Equal(t, 0, missing.Score())
	assert.Contains(t, screen.String(), "score : 0")
	assert.NotContains(t, screen.String(), "best")
}

func TestStartScene(t *testing.T) {
	s := NewStartScene()
	s.Enter(testRuntime)

	assert.Nil(t, s.Update(1.0/60.0, none()))

	tr := s.Update(1.0/60.0, tapFrame())
	require.NotNil(t, tr)
	assert.Equal(t, scene.Play, tr.To)

	in := none()
	in.Set(core.ActionConfirm)
	require.NotNil(t, s.Update(1.0/60.0, in))

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	s.Render(screen)
	assert.Contains(t, screen.String(), "F L A P P Y")
}

func TestRegisterAndFullLoop(t *testing.T) {
	reg := scene.NewRegistry()
	cfg := config.DefaultFlappyConfig()
	Register(reg, cfg)
	assert.Equal(t, []scene.ID{scene.Start, scene.Play, scene.End}, reg.List())

	d, err := scene.NewDirector(reg, scene.Start, testRuntime, nil)
	require.NoError(t, err)

	var finished []scene.Outcome
	d.OnGameOver = func(o scene.Outcome) scene.Outcome {
		finished = append(finished, o)
		o.Best = 5
		return o
	}

	require.True(t, d.Tick(tapFrame()))
	play, ok := d.Current().(*PlayScene)
	require.True(t, ok)

	// Let the bird fall onto the ground without flapping.
	for i := 0; i < 600 && d.Current().ID() == scene.Play; i++ {
		d.Tick(none())
	}
	assert.Equal(t, Restartable, play.State())
	require.Equal(t, scene.End, d.Current().ID())
	require.Len(t, finished, 1)

	end := d.Current().(*EndScene)
	assert.Equal(t, play.Score(), end.Score())
	assert.Equal(t, 5, end.outcome.Best)

	b := end.Button()
	require.True(t, d.Tick(tapAt(b.X, b.Y)))
	assert.Equal(t, scene.Start, d.Current().ID())
}
