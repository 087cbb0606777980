package core

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidRate is returned for tick rates that are not positive and finite.
var ErrInvalidRate = errors.New("invalid tick rate")

// TickInterval converts a ticks-per-second rate into the time between ticks.
// A rate of exactly 1 maps to one second.
func TickInterval(rate float64) (time.Duration, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	if rate == 1 {
		return time.Second, nil
	}
	d := time.Duration(float64(time.Second) / rate)
	if d <= 0 {
		d = 1
	}
	return d, nil
}

// FixedStep helps run simulation updates at a steady rate independent of the
// frame rate of the caller.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller for the given interval. The
// first poll always reports one due step.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetStep(step)
	fs.accumulator = fs.step
	return fs
}

// SetStep changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = time.Second / 60
	}
	f.step = step
}

// Step returns the configured interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// Pending reports how many ticks are due at now, at most limit. Time owed
// beyond limit ticks is dropped so a stalled caller does not spiral.
func (f *FixedStep) Pending(now time.Time, limit int) int {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	n := 0
	for f.accumulator >= f.step && n < limit {
		f.accumulator -= f.step
		n++
	}
	if n == limit && f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}
