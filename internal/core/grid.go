package core

// Cell is a single site of a binary automaton.
type Cell struct {
	Alive bool
	// Activations counts dead->alive transitions made by Step. It wraps on
	// overflow.
	Activations uint32
}

// Grid stores a fixed-size toroidal field of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read cells directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// In reports whether (x, y) lies inside [0,W) x [0,H).
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at the wrapped coordinates.
func (g *Grid) At(x, y int) Cell {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// SetAlive marks (x, y) alive without touching its activation count.
// Coordinates outside the grid are ignored and reported as false.
func (g *Grid) SetAlive(x, y int) bool {
	if !g.In(x, y) {
		return false
	}
	g.data[g.Index(x, y)].Alive = true
	return true
}

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.data {
		if g.data[i].Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell and zeroes the activation counters.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Cell{}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same size and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
