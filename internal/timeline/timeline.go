package timeline

// entry is a scheduled action, optionally keyed.
type entry struct {
	key     string
	action  Action
	removed bool
}

// Timeline runs actions against simulated time. Speed scales dt; a speed of
// zero freezes everything on this timeline.
type Timeline struct {
	Speed float64

	entries  []*entry
	updating bool
}

// New creates an empty timeline running at normal speed.
func New() *Timeline {
	return &Timeline{Speed: 1}
}

// Run schedules an action. A non-empty key replaces any action already
// running under that key.
func (t *Timeline) Run(key string, a Action) {
	if key != "" {
		t.Remove(key)
	}
	t.entries = append(t.entries, &entry{key: key, action: a})
}

// Remove cancels the action running under key. It reports whether one was found.
func (t *Timeline) Remove(key string) bool {
	found := false
	for _, e := range t.entries {
		if e.key == key && !e.removed {
			e.removed = true
			found = true
		}
	}
	if !t.updating {
		t.compact()
	}
	return found
}

// Has reports whether an action is running under key.
func (t *Timeline) Has(key string) bool {
	for _, e := range t.entries {
		if e.key == key && !e.removed {
			return true
		}
	}
	return false
}

// Len returns the number of live actions.
func (t *Timeline) Len() int {
	n := 0
	for _, e := range t.entries {
		if !e.removed {
			n++
		}
	}
	return n
}

// Clear cancels every action.
func (t *Timeline) Clear() {
	for _, e := range t.entries {
		e.removed = true
	}
	if !t.updating {
		t.compact()
	}
}

// Update advances all actions by dt scaled by Speed. Actions scheduled from
// inside a callback start on the next Update.
func (t *Timeline) Update(dt float64) {
	scaled := dt * t.Speed
	if scaled <= 0 {
		return
	}

	t.updating = true
	current := t.entries
	n := len(current)
	for i := 0; i < n; i++ {
		e := current[i]
		if e.removed {
			continue
		}
		if _, done := e.action.advance(scaled); done {
			e.removed = true
		}
	}
	t.updating = false
	t.compact()
}

func (t *Timeline) compact() {
	live := t.entries[:0]
	for _, e := range t.entries {
		if !e.removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(t.entries); i++ {
		t.entries[i] = nil
	}
	t.entries = live
}
