package minesweeper

import "time"

// Clock supplies the current time. Only differences between readings are
// used, so any monotonic source works.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// TimerState is the phase of the round timer.
type TimerState uint8

const (
	TimerStopped TimerState = iota
	TimerRunning
	TimerFrozen
)

func (s TimerState) String() string {
	switch s {
	case TimerRunning:
		return "running"
	case TimerFrozen:
		return "frozen"
	default:
		return "stopped"
	}
}

// Timer measures the duration of a round: Stopped, then Running after Start,
// then Frozen after Stop until Clear.
type Timer struct {
	clock  Clock
	state  TimerState
	start  time.Time
	frozen time.Duration
}

// NewTimer returns a stopped timer reading the given clock. A nil clock
// uses time.Now.
func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = systemClock{}
	}
	return &Timer{clock: clock}
}

// State returns the timer phase.
func (t *Timer) State() TimerState { return t.state }

// Start records the start instant and begins running.
func (t *Timer) Start() {
	t.start = t.clock.Now()
	t.state = TimerRunning
}

// Stop freezes the elapsed time at its current value.
func (t *Timer) Stop() {
	d, _ := t.Elapsed()
	t.frozen = d
	t.state = TimerFrozen
}

// Clear returns the timer to Stopped.
func (t *Timer) Clear() {
	t.start = time.Time{}
	t.frozen = 0
	t.state = TimerStopped
}

// Elapsed returns the running duration while Running, the frozen snapshot
// while Frozen, and false while Stopped.
func (t *Timer) Elapsed() (time.Duration, bool) {
	switch t.state {
	case TimerFrozen:
		return t.frozen, true
	case TimerRunning:
		return t.clock.Now().Sub(t.start), true
	default:
		return 0, false
	}
}
