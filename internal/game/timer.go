// internal/game/timer.go
//
// Countdown timer driven by an external tick.
// The host calls Tick on its own schedule (nominally once per second);
// the timer never spawns goroutines or reads the wall clock on its own
// except through the injected Clock, which only feeds the elapsed display.

package game

import (
	"fmt"
	"time"
)

// Clock abstracts time.Now for deterministic tests.
type Clock interface {
	Now() time.Time
}

// RealClock is the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Timer is a whole-second countdown.
//
// Invariants:
//   - remaining never goes below zero.
//   - A running timer that reaches zero stops and reports expiry exactly once;
//     ticks after that are no-ops until Start/Restart.
type Timer struct {
	clock     Clock
	remaining int
	running   bool
	since     time.Time     // start of the current running interval
	frozen    time.Duration // elapsed at the last pause
}

// NewTimer returns a stopped timer at zero. A nil clock means RealClock.
func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = RealClock{}
	}
	return &Timer{clock: clock}
}

// Start sets the countdown to initial seconds and runs it.
func (t *Timer) Start(initial int) {
	if initial < 0 {
		initial = 0
	}
	t.remaining = initial
	t.running = true
	t.since = t.clock.Now()
	t.frozen = 0
}

// Restart is Start under the name used when a new round replaces a running one.
func (t *Timer) Restart(initial int) { t.Start(initial) }

// Tick advances the countdown by one second. It returns true only on the tick
// that takes a running timer to zero.
func (t *Timer) Tick() (expired bool) {
	if !t.running {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.Pause()
		return true
	}
	return false
}

// Extend adds bonus seconds while time remains. An expired timer is not
// resurrected. It reports whether the bonus was applied.
func (t *Timer) Extend(bonus int) bool {
	if t.remaining <= 0 || bonus <= 0 {
		return false
	}
	t.remaining += bonus
	return true
}

// Pause stops ticking without touching the remaining time.
func (t *Timer) Pause() {
	if !t.running {
		return
	}
	t.frozen = t.clock.Now().Sub(t.since)
	t.running = false
}

// Resume continues a paused countdown. Resuming at zero does nothing.
func (t *Timer) Resume() {
	if t.running || t.remaining <= 0 {
		return
	}
	t.running = true
	t.since = t.clock.Now()
	t.frozen = 0
}

// Remaining is the number of whole seconds left.
func (t *Timer) Remaining() int { return t.remaining }

// Running reports whether ticks currently count down.
func (t *Timer) Running() bool { return t.running }

// Elapsed is the time since the current running interval began. It holds
// still while paused and is zero before the timer has ever run.
func (t *Timer) Elapsed() time.Duration {
	if !t.running {
		return t.frozen
	}
	return t.clock.Now().Sub(t.since)
}

// Display formats Elapsed as seconds with two decimals, e.g. "12.34".
func (t *Timer) Display() string {
	return fmt.Sprintf("%.2f", t.Elapsed().Seconds())
}

// State returns a copy of the timer state.
func (t *Timer) State() TimerState {
	return TimerState{Remaining: t.remaining, Running: t.running, Elapsed: t.Elapsed()}
}
