package core

import "time"

const maxBurst = 4

// FixedStep paces simulation updates at a steady steps-per-second rate that is
// independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(sps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(sps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(sps int) {
	if sps <= 0 {
		sps = 60
	}
	f.step = time.Second / time.Duration(sps)
}

// Due advances the controller to now and returns how many steps are owed.
// After a long stall at most maxBurst steps are returned and the backlog is
// dropped.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	if n > maxBurst {
		f.accumulator = 0
		return maxBurst
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}
