package core

import "time"

// DefaultInterval is the time between generations when none is configured.
const DefaultInterval = 100 * time.Millisecond

// FixedStep paces generations from a frame loop that runs faster than the
// simulation, such as ebiten's Update.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the pace. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval returns the configured time between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart forgets accumulated time so the next step is a full interval away.
// Call it when resuming from pause.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog after a stall instead of replaying generations in a burst.
		if f.accumulator > f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
