package component

import "math"

// Timer accumulates frame deltas. A repeating timer wraps around and keeps
// the overshoot; a one-shot timer stops at Duration.
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool

	completed int
	done      bool
}

func NewRepeatingTimer(seconds float64) Timer {
	return Timer{Duration: seconds, Repeating: true}
}

func NewTimer(seconds float64) Timer {
	return Timer{Duration: seconds}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.completed = 0
	if dt < 0 {
		dt = 0
	}
	if !t.Repeating && t.done {
		return
	}
	if t.Duration <= 0 {
		t.completed = 1
		t.done = true
		return
	}

	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return
	}
	if !t.Repeating {
		t.Elapsed = t.Duration
		t.completed = 1
		t.done = true
		return
	}
	periods := math.Floor(t.Elapsed / t.Duration)
	t.completed = int(periods)
	t.Elapsed -= periods * t.Duration
}

// Finished reports whether the last Tick completed at least one period.
func (t *Timer) Finished() bool {
	return t.completed > 0
}

// TimesFinished is the number of periods completed by the last Tick. A long
// frame can complete more than one.
func (t *Timer) TimesFinished() int {
	return t.completed
}

// Done reports whether a one-shot timer has run out.
func (t *Timer) Done() bool {
	return !t.Repeating && t.done
}

// SetDuration changes the period without restarting the timer. Progress
// past the new period is capped so the next Tick completes exactly one.
func (t *Timer) SetDuration(seconds float64) {
	t.Duration = seconds
	if t.Elapsed > seconds {
		t.Elapsed = math.Max(seconds, 0)
	}
}

func (t *Timer) Reset() {
	t.Elapsed = 0
	t.completed = 0
	t.done = false
}
