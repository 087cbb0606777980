package core

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	cases := []struct {
		rate float64
		want time.Duration
	}{
		{1, time.Second},
		{2, 500 * time.Millisecond},
		{30, time.Second / 30},
		{0.5, 2 * time.Second},
	}
	for _, tc := range cases {
		got, err := TickInterval(tc.rate)
		if err != nil {
			t.Fatalf("TickInterval(%v): %v", tc.rate, err)
		}
		if got != tc.want {
			t.Fatalf("TickInterval(%v) = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}

func TestTickIntervalRejectsInvalidRates(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := TickInterval(rate); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("TickInterval(%v) error = %v, expected ErrInvalidRate", rate, err)
		}
	}
}

func TestFixedStepPending(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	start := time.Unix(1000, 0)

	if n := fs.Pending(start, 4); n != 1 {
		t.Fatalf("first poll should report one due step, got %d", n)
	}
	if n := fs.Pending(start.Add(50*time.Millisecond), 4); n != 0 {
		t.Fatalf("expected no step after half an interval, got %d", n)
	}
	if n := fs.Pending(start.Add(100*time.Millisecond), 4); n != 1 {
		t.Fatalf("expected one step after a full interval, got %d", n)
	}
	if n := fs.Pending(start.Add(350*time.Millisecond), 4); n != 2 {
		t.Fatalf("expected two steps after 250ms, got %d", n)
	}
}

func TestFixedStepPendingDropsBacklog(t *testing.T) {
	fs := NewFixedStep(10 * time.Millisecond)
	start := time.Unix(0, 0)
	fs.Pending(start, 1)
	if n := fs.Pending(start.Add(time.Second), 3); n != 3 {
		t.Fatalf("expected capped step count 3, got %d", n)
	}
	if n := fs.Pending(start.Add(time.Second+time.Millisecond), 3); n != 0 {
		t.Fatalf("backlog should have been dropped, got %d due steps", n)
	}
}
