package core

// Action represents a semantic input action, abstracted from physical key
// presses, mouse clicks and touches.
type Action int

const (
	ActionNone    Action = iota
	ActionTap            // Space, Up, W, left click, touch - flap / restart / press button
	ActionConfirm        // Enter - confirm on start and end screens
	ActionBack           // B, Escape - back button on the end screen
	ActionPause          // P - pause/unpause while running
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Tap location in screen cells, valid only when HasLocation is true.
	// Keyboard taps carry no location.
	TapX, TapY  int
	HasLocation bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetTap records a pointer tap at the given screen cell.
func (f *InputFrame) SetTap(x, y int) {
	f.Set(ActionTap)
	f.TapX, f.TapY = x, y
	f.HasLocation = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// TapLocation returns the pointer location of this frame's tap, if any.
func (f InputFrame) TapLocation() (x, y int, ok bool) {
	if !f.HasLocation || !f.Has(ActionTap) {
		return 0, 0, false
	}
	return f.TapX, f.TapY, true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.TapX, f.TapY = 0, 0
	f.HasLocation = false
}
