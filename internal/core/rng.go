package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillRandom marks each cell alive with probability density. Cells that are
// not chosen are left as they are.
func (r *RNG) FillRandom(g *Grid, density float64) {
	if density <= 0 {
		return
	}
	cells := g.Cells()
	for i := range cells {
		if r.Chance(density) {
			cells[i].Alive = true
		}
	}
}
