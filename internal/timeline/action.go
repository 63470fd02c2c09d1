// Package timeline schedules timed actions (waits, tweens, callbacks,
// sequences and repeats) advanced by simulated time rather than wall clock.
package timeline

// Action is a unit of timed work. Actions are built with the constructors in
// this package and run by a Timeline.
type Action interface {
	// advance consumes up to dt seconds and returns the unused remainder and
	// whether the action finished.
	advance(dt float64) (rest float64, done bool)
	// restart rewinds the action so it can run again (used by Repeat).
	restart()
}

type waitAction struct {
	duration float64
	elapsed  float64
}

// Wait does nothing for the given number of seconds.
func Wait(seconds float64) Action {
	return &waitAction{duration: seconds}
}

func (a *waitAction) advance(dt float64) (float64, bool) {
	need := a.duration - a.elapsed
	if dt < need {
		a.elapsed += dt
		return 0, false
	}
	a.elapsed = a.duration
	return dt - need, true
}

func (a *waitAction) restart() { a.elapsed = 0 }

type runAction struct {
	fn func()
}

// Run calls fn once, instantly.
func Run(fn func()) Action {
	return &runAction{fn: fn}
}

func (a *runAction) advance(dt float64) (float64, bool) {
	a.fn()
	return dt, true
}

func (a *runAction) restart() {}

type tweenAction struct {
	duration float64
	elapsed  float64
	fn       func(progress float64)
}

// Tween calls fn with the progress in [0, 1] every time it advances, ending
// with exactly 1.
func Tween(seconds float64, fn func(progress float64)) Action {
	return &tweenAction{duration: seconds, fn: fn}
}

func (a *tweenAction) advance(dt float64) (float64, bool) {
	need := a.duration - a.elapsed
	if dt < need {
		a.elapsed += dt
		a.fn(a.elapsed / a.duration)
		return 0, false
	}
	a.elapsed = a.duration
	a.fn(1)
	return dt - need, true
}

func (a *tweenAction) restart() { a.elapsed = 0 }

type sequenceAction struct {
	actions []Action
	index   int
}

// Sequence runs actions one after another. Time left over by one action is
// handed to the next within the same advance.
func Sequence(actions ...Action) Action {
	return &sequenceAction{actions: actions}
}

func (a *sequenceAction) advance(dt float64) (float64, bool) {
	for a.index < len(a.actions) {
		rest, done := a.actions[a.index].advance(dt)
		if !done {
			return 0, false
		}
		a.index++
		dt = rest
	}
	return dt, true
}

func (a *sequenceAction) restart() {
	a.index = 0
	for _, act := range a.actions {
		act.restart()
	}
}

type repeatAction struct {
	body  Action
	count int // negative means forever
	done  int
}

// Repeat runs body count times.
func Repeat(count int, body Action) Action {
	return &repeatAction{body: body, count: count}
}

// Forever runs body until the action is removed.
func Forever(body Action) Action {
	return &repeatAction{body: body, count: -1}
}

// Every calls fn immediately and then every interval seconds.
func Every(interval float64, fn func()) Action {
	return Forever(Sequence(Run(fn), Wait(interval)))
}

func (a *repeatAction) advance(dt float64) (float64, bool) {
	if a.count == 0 {
		return dt, true
	}
	for {
		rest, done := a.body.advance(dt)
		if !done {
			return 0, false
		}
		a.done++
		if a.count > 0 && a.done >= a.count {
			return rest, true
		}
		a.body.restart()
		if rest == dt && a.count < 0 {
			// zero-length body: run it once per advance
			return 0, false
		}
		dt = rest
	}
}

func (a *repeatAction) restart() {
	a.done = 0
	a.body.restart()
}
