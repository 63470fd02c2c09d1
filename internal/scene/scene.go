// Package scene defines the screens of the game and how control passes
// between them. Scenes contain pure logic with no platform dependencies:
// the platform feeds them fixed ticks and input frames, and draws the screen
// buffer they render into.
package scene

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ID identifies a scene. Scenes are looked up by ID, never by name.
type ID int

const (
	Start ID = iota
	Play
	End
)

// String returns the scene name.
func (id ID) String() string {
	switch id {
	case Start:
		return "start"
	case Play:
		return "play"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Outcome carries the result of a run into the scene that is created next.
// Available is false when no run has finished, in which case the end screen
// shows a score of zero.
type Outcome struct {
	Score     int
	Items     int
	Available bool
	Best      int // best stored score, filled in by the platform when known
}

// Transition is a request to replace the current scene.
type Transition struct {
	To      ID
	Outcome Outcome
}

// Scene is a single screen of the game.
type Scene interface {
	// ID returns the scene's identifier.
	ID() ID

	// Enter sets up the scene for the given screen and seed. It is called
	// once after creation and again whenever the screen is resized.
	Enter(cfg core.RuntimeConfig)

	// Update advances the scene by dt seconds. A non-nil result asks the
	// director to switch scenes.
	Update(dt float64, in core.InputFrame) *Transition

	// Render draws the scene into dst. The screen is pre-cleared.
	Render(dst *core.Screen)
}
