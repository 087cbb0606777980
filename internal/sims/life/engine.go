package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"life-ca/internal/core"
	"life-ca/internal/rules"
)

// TickStats summarizes the transitions made by one generation.
type TickStats struct {
	Births     int
	Deaths     int
	Population int
}

// Engine advances a grid by whole generations. The grid is split into row
// bands that are processed concurrently; the decide phase for every band
// finishes before any band commits, so each cell's next state depends only on
// the previous generation.
type Engine struct {
	workers int
	next    []bool
	stats   []TickStats
}

// NewEngine returns an engine using up to workers goroutines per phase. A
// value of zero or less uses one goroutine per CPU.
func NewEngine(workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{workers: workers}
}

// Workers reports the configured parallelism.
func (e *Engine) Workers() int { return e.workers }

// Tick advances g by one generation under r.
func (e *Engine) Tick(g *core.Grid, r rules.Rule) TickStats {
	cells := g.Cells()
	if len(e.next) != len(cells) {
		e.next = make([]bool, len(cells))
	}
	bands := e.bandCount(g.H)
	if len(e.stats) != bands {
		e.stats = make([]TickStats, bands)
	}

	e.forBands(g.H, bands, func(_, y0, y1 int) {
		e.decide(g, r, y0, y1)
	})
	e.forBands(g.H, bands, func(band, y0, y1 int) {
		e.stats[band] = e.commit(cells, y0*g.W, y1*g.W)
	})

	var total TickStats
	for _, s := range e.stats {
		total.Births += s.Births
		total.Deaths += s.Deaths
		total.Population += s.Population
	}
	return total
}

func (e *Engine) bandCount(h int) int {
	return max(1, min(e.workers, h))
}

// forBands runs fn over contiguous row ranges and returns once all of them
// are done.
func (e *Engine) forBands(h, bands int, fn func(band, y0, y1 int)) {
	if bands == 1 {
		fn(0, 0, h)
		return
	}
	var eg errgroup.Group
	for b := 0; b < bands; b++ {
		y0 := b * h / bands
		y1 := (b + 1) * h / bands
		eg.Go(func() error {
			fn(b, y0, y1)
			return nil
		})
	}
	_ = eg.Wait()
}

// decide counts the eight wrapped neighbors of every cell in rows [y0,y1)
// and records the rule's verdict in the next-state buffer. It only reads g.
func (e *Engine) decide(g *core.Grid, r rules.Rule, y0, y1 int) {
	w, h := g.W, g.H
	cells := g.Cells()
	for y := y0; y < y1; y++ {
		up := ((y - 1 + h) % h) * w
		row := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			n := alive(cells[up+left]) + alive(cells[up+x]) + alive(cells[up+right]) +
				alive(cells[row+left]) + alive(cells[row+right]) +
				alive(cells[down+left]) + alive(cells[down+x]) + alive(cells[down+right])
			e.next[row+x] = r.Next(cells[row+x].Alive, n)
		}
	}
}

// commit copies the next-state buffer into cells [lo,hi).
func (e *Engine) commit(cells []core.Cell, lo, hi int) TickStats {
	var s TickStats
	for i := lo; i < hi; i++ {
		c := &cells[i]
		next := e.next[i]
		switch {
		case next && !c.Alive:
			c.Activations++
			s.Births++
		case !next && c.Alive:
			s.Deaths++
		}
		c.Alive = next
		if next {
			s.Population++
		}
	}
	return s
}

func alive(c core.Cell) int {
	if c.Alive {
		return 1
	}
	return 0
}
