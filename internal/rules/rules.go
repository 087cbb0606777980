// Package rules enumerates the outer-totalistic birth/survival rules the life
// engine can run.
package rules

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRule is returned when a rule name or notation cannot be resolved.
var ErrUnknownRule = errors.New("unknown rule")

// Counts is a set of neighbor counts. Bit k is set when count k belongs to
// the set; only counts 0..8 can ever occur.
type Counts uint16

const maxNeighbors = 8

// CountsOf builds a set from the given counts. Values outside 0..8 are
// dropped since no cell can have that many neighbors.
func CountsOf(ns ...int) Counts {
	var c Counts
	for _, n := range ns {
		if n < 0 || n > maxNeighbors {
			continue
		}
		c |= 1 << n
	}
	return c
}

// Has reports whether n is in the set.
func (c Counts) Has(n int) bool {
	if n < 0 || n > maxNeighbors {
		return false
	}
	return c&(1<<n) != 0
}

// Values lists the members in ascending order.
func (c Counts) Values() []int {
	var out []int
	for n := 0; n <= maxNeighbors; n++ {
		if c.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

func (c Counts) digits() string {
	var b strings.Builder
	for _, n := range c.Values() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// Rule holds the neighbor counts under which a live cell survives and a dead
// cell is born.
type Rule struct {
	Survival Counts
	Birth    Counts
}

// Next returns the state of a cell with the given number of live neighbors
// in the following generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survival.Has(neighbors)
	}
	return r.Birth.Has(neighbors)
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	return "B" + r.Birth.digits() + "/S" + r.Survival.digits()
}

// Parse reads a rule in B/S notation. Both halves are required; their order
// and letter case are free, so "B36/S23" and "s23/b36" are the same rule.
func Parse(s string) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q is not in B/S notation", ErrUnknownRule, s)
	}
	var r Rule
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("%w: %q has an empty half", ErrUnknownRule, s)
		}
		counts, err := parseDigits(part[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q: %v", ErrUnknownRule, s, err)
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return Rule{}, fmt.Errorf("%w: %q repeats B", ErrUnknownRule, s)
			}
			seenB = true
			r.Birth = counts
		case 'S', 's':
			if seenS {
				return Rule{}, fmt.Errorf("%w: %q repeats S", ErrUnknownRule, s)
			}
			seenS = true
			r.Survival = counts
		default:
			return Rule{}, fmt.Errorf("%w: %q: half must start with B or S", ErrUnknownRule, s)
		}
	}
	return r, nil
}

func parseDigits(s string) (Counts, error) {
	var c Counts
	for _, ch := range s {
		if ch < '0' || ch > '0'+maxNeighbors {
			return 0, fmt.Errorf("invalid neighbor count %q", ch)
		}
		c |= 1 << (ch - '0')
	}
	return c, nil
}
