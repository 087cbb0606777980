// Package patterns holds named seed shapes that can be stamped onto a grid.
package patterns

import (
	"errors"
	"fmt"
	"strings"

	"life-ca/internal/core"
)

// ErrUnknownPattern is returned when a pattern name cannot be resolved.
var ErrUnknownPattern = errors.New("unknown pattern")

// Offset is a cell position relative to the stamp anchor.
type Offset struct{ DX, DY int }

// ID names one of the built-in patterns. The zero value is Single.
type ID int

const (
	Single ID = iota
	Glider
	Blinker
	Toad
	Beacon
	Pulsar
	Block

	count
)

type entry struct {
	name    string
	offsets []Offset
}

var catalog = [count]entry{
	Single:  {"single", []Offset{{0, 0}}},
	Glider:  {"glider", []Offset{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
	Blinker: {"blinker", []Offset{{0, 1}, {1, 1}, {2, 1}}},
	Toad:    {"toad", []Offset{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}},
	Beacon:  {"beacon", []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 2}, {3, 2}, {2, 3}, {3, 3}}},
	Pulsar:  {"pulsar", pulsar()},
	Block:   {"block", []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
}

// pulsar builds the period-3 oscillator from one quadrant mirrored four ways.
func pulsar() []Offset {
	quadrant := []Offset{
		{2, 0}, {3, 0}, {4, 0},
		{0, 2}, {5, 2},
		{0, 3}, {5, 3},
		{0, 4}, {5, 4},
		{2, 5}, {3, 5}, {4, 5},
	}
	out := make([]Offset, 0, 4*len(quadrant))
	for _, flipY := range []bool{false, true} {
		for _, flipX := range []bool{false, true} {
			for _, o := range quadrant {
				if flipX {
					o.DX = 12 - o.DX
				}
				if flipY {
					o.DY = 12 - o.DY
				}
				out = append(out, o)
			}
		}
	}
	return out
}

// Len returns the number of built-in patterns.
func Len() int { return int(count) }

// IDs lists every built-in pattern in navigation order.
func IDs() []ID {
	out := make([]ID, count)
	for i := range out {
		out[i] = ID(i)
	}
	return out
}

// Offsets returns a copy of the pattern's offset table.
func Offsets(id ID) []Offset {
	src := catalog[id.norm()].offsets
	out := make([]Offset, len(src))
	copy(out, src)
	return out
}

// Stamp marks the pattern's cells alive with its origin at (x, y). Cells that
// fall outside the grid are skipped rather than wrapped. Existing live cells
// and activation counts are left alone. It returns how many cells landed.
func Stamp(id ID, g *core.Grid, x, y int) int {
	placed := 0
	for _, o := range catalog[id.norm()].offsets {
		if g.SetAlive(x+o.DX, y+o.DY) {
			placed++
		}
	}
	return placed
}

// Bounds returns the width and height of the pattern's bounding box.
func Bounds(id ID) (int, int) {
	w, h := 0, 0
	for _, o := range catalog[id.norm()].offsets {
		w = max(w, o.DX+1)
		h = max(h, o.DY+1)
	}
	return w, h
}

// Next returns the pattern following id, wrapping after the last one.
func (id ID) Next() ID { return (id.norm() + 1) % count }

// Previous returns the pattern preceding id, wrapping before the first one.
func (id ID) Previous() ID { return (id.norm() + count - 1) % count }

// String returns the pattern name.
func (id ID) String() string { return catalog[id.norm()].name }

func (id ID) norm() ID {
	return ((id % count) + count) % count
}

// ParseID resolves a pattern name, ignoring case.
func ParseID(name string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, e := range catalog {
		if e.name == key {
			return ID(i), nil
		}
	}
	return Single, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// Names lists the built-in pattern names in navigation order.
func Names() []string {
	out := make([]string, count)
	for i, e := range catalog {
		out[i] = e.name
	}
	return out
}
