package common

import "time"

// Timer counts elapsed time toward a fixed duration. A repeating timer wraps
// and reports JustFinished on the tick it wraps. A paused timer ignores Tick.
type Timer struct {
	duration  time.Duration
	elapsed   time.Duration
	repeating bool
	paused    bool
	finished  bool
	just      bool
}

func NewTimer(d time.Duration, repeating bool) Timer {
	return Timer{duration: d, repeating: repeating}
}

// NewFinishedTimer returns a one-shot timer that is already exhausted.
func NewFinishedTimer(d time.Duration) Timer {
	t := NewTimer(d, false)
	t.Exhaust()
	return t
}

func (t *Timer) Tick(d time.Duration) {
	if t == nil {
		return
	}
	t.just = false
	if t.paused || d <= 0 {
		return
	}
	if t.finished && !t.repeating {
		return
	}

	t.elapsed += d
	if t.elapsed < t.duration {
		return
	}

	t.finished = true
	t.just = true
	if !t.repeating {
		t.elapsed = t.duration
		return
	}
	if t.duration <= 0 {
		t.elapsed = 0
		return
	}
	t.elapsed %= t.duration
}

// Finished reports whether the timer has reached its duration. For repeating
// timers it is true only on the tick that wrapped.
func (t *Timer) Finished() bool {
	if t == nil {
		return false
	}
	if t.repeating {
		return t.just
	}
	return t.finished
}

func (t *Timer) JustFinished() bool {
	return t != nil && t.just
}

func (t *Timer) Pause() {
	if t != nil {
		t.paused = true
	}
}

func (t *Timer) Unpause() {
	if t != nil {
		t.paused = false
	}
}

func (t *Timer) Paused() bool {
	return t != nil && t.paused
}

// Reset rewinds elapsed time to zero. The paused flag is kept.
func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.elapsed = 0
	t.finished = false
	t.just = false
}

// Exhaust jumps straight to the finished state.
func (t *Timer) Exhaust() {
	if t == nil {
		return
	}
	t.elapsed = t.duration
	t.finished = true
	t.just = false
}

func (t *Timer) Duration() time.Duration {
	if t == nil {
		return 0
	}
	return t.duration
}

func (t *Timer) SetDuration(d time.Duration) {
	if t == nil {
		return
	}
	t.duration = d
	if !t.repeating && t.elapsed >= d {
		t.elapsed = d
		t.finished = true
	}
}

func (t *Timer) Elapsed() time.Duration {
	if t == nil {
		return 0
	}
	return t.elapsed
}

func (t *Timer) Remaining() time.Duration {
	if t == nil {
		return 0
	}
	if r := t.duration - t.elapsed; r > 0 {
		return r
	}
	return 0
}

func (t *Timer) Repeating() bool {
	return t != nil && t.repeating
}
