package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/scene"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func testRegistry() *scene.Registry {
	reg := scene.NewRegistry()
	flappy.Register(reg, config.DefaultFlappyConfig())
	return reg
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		Registry: testRegistry(),
		Store:    store,
		Player:   "tester",
		Config:   core.RuntimeConfig{ScreenW: 60, ScreenH: 21, TickRate: 60, Seed: 7},
	})
	require.NoError(t, err)
	return m
}

func step(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestKeyMapping(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTap},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionTap},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionTap},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, keys.MapKey(tc.msg), tc.msg.String())
	}
}

func TestMouseTap(t *testing.T) {
	frame := core.NewInputFrame()
	assert.False(t, MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame))
	assert.False(t, frame.Has(core.ActionTap))

	assert.True(t, MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame))
	x, y, ok := frame.TapLocation()
	assert.True(t, ok)
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
}

func TestModelStartsOnTitleAndReservesHelpRow(t *testing.T) {
	m := newTestModel(t, nil)
	assert.Equal(t, scene.Start, m.Scene().ID())

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 21)
	assert.Contains(t, view, "F L A P P Y")
	assert.Contains(t, lines[len(lines)-1], "flap")
}

func TestModelPlaysAndSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "flappy.db"))
	require.NoError(t, err)
	defer store.Close()

	m := newTestModel(t, store)

	m = step(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(m, TickMsg{})
	require.Equal(t, scene.Play, m.Scene().ID())

	// No flapping: the bird falls, hits the ground and the run ends.
	for i := 0; i < 600 && m.Scene().ID() == scene.Play; i++ {
		m = step(m, TickMsg{})
	}
	require.Equal(t, scene.End, m.Scene().ID())
	assert.Contains(t, m.View(), "score : 0")

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "tester", runs[0].Player)

	m = step(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = step(m, TickMsg{})
	assert.Equal(t, scene.Start, m.Scene().ID())
}

func TestModelResizeAndQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m = step(m, tea.WindowSizeMsg{Width: 100, Height: 31})
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 30, m.screen.Height())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.FillBackground(core.ColorSky)
	s.DrawTextColored(1, 0, "hi", core.ColorRed)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	assert.Contains(t, out, "hi")
	assert.Contains(t, out, "plain")
	assert.Equal(t, 2, len(strings.Split(out, "\n")))
}

func TestEachGameGetsItsOwnLayout(t *testing.T) {
	m, err := NewModel(Options{
		Registry: testRegistry(),
		Player:   "tester",
		Config:   core.RuntimeConfig{ScreenW: 60, ScreenH: 21, TickRate: 60},
	})
	require.NoError(t, err)

	var seeds []int64
	var layouts [][]float64
	for game := 0; game < 2; game++ {
		m = step(m, tea.KeyMsg{Type: tea.KeyEnter})
		m = step(m, TickMsg{})
		play, ok := m.Scene().(*flappy.PlayScene)
		require.True(t, ok, "game %d should be playing", game)

		seeds = append(seeds, play.Seed())
		var offsets []float64
		for i := 0; i < 8; i++ {
			offsets = append(offsets, play.Obstacles().PipeOffset())
		}
		layouts = append(layouts, offsets)

		for i := 0; i < 600 && m.Scene().ID() == scene.Play; i++ {
			m = step(m, TickMsg{})
		}
		require.Equal(t, scene.End, m.Scene().ID())
		m = step(m, tea.KeyMsg{Type: tea.KeyEsc})
		m = step(m, TickMsg{})
		require.Equal(t, scene.Start, m.Scene().ID())
	}

	assert.NotEqual(t, seeds[0], seeds[1])
	assert.NotEqual(t, layouts[0], layouts[1])
}
