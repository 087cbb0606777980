package core

import "testing"

func TestWrapCoversAllEdges(t *testing.T) {
	g := NewGrid(7, 5)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, -1, 6, 4},
		{7, 5, 0, 0},
		{-1, 2, 6, 2},
		{3, -1, 3, 4},
		{7, 2, 0, 2},
		{3, 5, 3, 0},
		{-15, 11, 6, 1},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestSetAliveIgnoresOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)
	if g.SetAlive(4, 0) || g.SetAlive(0, -1) {
		t.Fatal("out-of-bounds SetAlive must report false")
	}
	if g.Population() != 0 {
		t.Fatalf("expected empty grid, got population %d", g.Population())
	}
	g.Cells()[g.Index(1, 2)].Activations = 3
	if !g.SetAlive(1, 2) {
		t.Fatal("in-bounds SetAlive must report true")
	}
	c := g.At(1, 2)
	if !c.Alive || c.Activations != 3 {
		t.Fatalf("unexpected cell after SetAlive: %+v", c)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetAlive(1, 1)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone must equal original")
	}
	c.SetAlive(0, 0)
	if c.Equal(g) {
		t.Fatal("mutating the clone must not affect the original")
	}
	if g.At(0, 0).Alive {
		t.Fatal("original changed through clone")
	}
}

func TestClearResetsCells(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetAlive(0, 1)
	g.Cells()[0].Activations = 9
	g.Clear()
	for i, c := range g.Cells() {
		if c != (Cell{}) {
			t.Fatalf("cell %d not cleared: %+v", i, c)
		}
	}
}

func TestFillRandomDeterministic(t *testing.T) {
	a := NewGrid(32, 32)
	b := NewGrid(32, 32)
	NewRNG(7).FillRandom(a, 0.2)
	NewRNG(7).FillRandom(b, 0.2)
	if !a.Equal(b) {
		t.Fatal("same seed must produce the same fill")
	}
	if a.Population() == 0 || a.Population() == 32*32 {
		t.Fatalf("implausible population %d for density 0.2", a.Population())
	}
}
