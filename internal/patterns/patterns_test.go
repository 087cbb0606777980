package patterns

import (
	"errors"
	"testing"

	"life-ca/internal/core"
)

func aliveSet(g *core.Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y).Alive {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestStampPlacesOffsetsAtAnchor(t *testing.T) {
	g := core.NewGrid(20, 20)
	if n := Stamp(Glider, g, 5, 7); n != 5 {
		t.Fatalf("expected 5 cells placed, got %d", n)
	}
	expects := map[[2]int]bool{
		{5, 8}: true, {6, 9}: true, {7, 7}: true, {7, 8}: true, {7, 9}: true,
	}
	got := aliveSet(g)
	if len(got) != len(expects) {
		t.Fatalf("expected %d alive cells, got %d", len(expects), len(got))
	}
	for k := range expects {
		if !got[k] {
			t.Fatalf("cell %v should be alive", k)
		}
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	g := core.NewGrid(10, 10)
	n := Stamp(Beacon, g, 8, 8)
	if n != 4 {
		t.Fatalf("expected only the in-bounds block of the beacon, placed %d", n)
	}
	expects := map[[2]int]bool{{8, 8}: true, {9, 8}: true, {8, 9}: true, {9, 9}: true}
	got := aliveSet(g)
	if len(got) != len(expects) {
		t.Fatalf("expected %d alive cells, got %v", len(expects), got)
	}
	for k := range expects {
		if !got[k] {
			t.Fatalf("cell %v should be alive", k)
		}
	}
	if g.W != 10 || g.H != 10 || len(g.Cells()) != 100 {
		t.Fatal("stamping must not change grid dimensions")
	}
}

func TestStampOutOfBoundsAnchor(t *testing.T) {
	g := core.NewGrid(8, 8)
	if n := Stamp(Pulsar, g, 8, 3); n != 0 {
		t.Fatalf("anchor past the right edge placed %d cells", n)
	}
	if n := Stamp(Block, g, 3, 100); n != 0 {
		t.Fatalf("anchor past the bottom edge placed %d cells", n)
	}
	if g.Population() != 0 {
		t.Fatalf("grid should stay empty, population %d", g.Population())
	}
}

func TestStampKeepsExistingCells(t *testing.T) {
	g := core.NewGrid(10, 10)
	g.SetAlive(0, 0)
	g.Cells()[g.Index(5, 5)].Activations = 4
	Stamp(Block, g, 5, 5)
	if !g.At(0, 0).Alive {
		t.Fatal("stamp cleared an unrelated live cell")
	}
	if c := g.At(5, 5); !c.Alive || c.Activations != 4 {
		t.Fatalf("stamp must not touch activation counts, got %+v", c)
	}
	if c := g.At(6, 6); c.Activations != 0 {
		t.Fatalf("stamp must not increment activation counts, got %+v", c)
	}
}

func TestPulsarTable(t *testing.T) {
	offs := Offsets(Pulsar)
	if len(offs) != 48 {
		t.Fatalf("pulsar should have 48 cells, got %d", len(offs))
	}
	seen := map[Offset]bool{}
	for _, o := range offs {
		if seen[o] {
			t.Fatalf("duplicate offset %v", o)
		}
		seen[o] = true
	}
	for _, want := range []Offset{{2, 0}, {10, 0}, {12, 2}, {7, 4}, {5, 8}, {0, 10}, {8, 12}} {
		if !seen[want] {
			t.Fatalf("pulsar missing offset %v", want)
		}
	}
	if w, h := Bounds(Pulsar); w != 13 || h != 13 {
		t.Fatalf("pulsar bounds %dx%d, expected 13x13", w, h)
	}
}

func TestOffsetsReturnsCopy(t *testing.T) {
	offs := Offsets(Single)
	offs[0] = Offset{DX: 3, DY: 3}
	g := core.NewGrid(4, 4)
	Stamp(Single, g, 0, 0)
	if !g.At(0, 0).Alive || g.At(3, 3).Alive {
		t.Fatal("mutating Offsets result changed the catalog")
	}
}

func TestCatalogCycle(t *testing.T) {
	for _, start := range IDs() {
		id := start
		for i := 0; i < Len(); i++ {
			id = id.Next()
		}
		if id != start {
			t.Fatalf("%d Next calls from %v ended at %v", Len(), start, id)
		}
		if start.Next().Previous() != start {
			t.Fatalf("Previous does not undo Next for %v", start)
		}
	}
	if Single.Previous() != Block {
		t.Fatal("catalog must wrap from the first pattern to the last")
	}
}

func TestParseID(t *testing.T) {
	for _, id := range IDs() {
		got, err := ParseID(id.String())
		if err != nil || got != id {
			t.Fatalf("ParseID(%q) = %v, %v", id.String(), got, err)
		}
	}
	if _, err := ParseID("spaceship"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}
