// Package history persists per-generation statistics of simulation runs.
package history

import "context"

// Sample is the state of a run after one generation.
type Sample struct {
	Generation uint64 `json:"generation"`
	Population int    `json:"population"`
	Births     int    `json:"births"`
	Deaths     int    `json:"deaths"`
}

// Run describes one simulation run and its recorded samples.
type Run struct {
	ID      string   `json:"id"`
	Rule    string   `json:"rule"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Seed    int64    `json:"seed"`
	Density float64  `json:"density"`
	Samples []Sample `json:"samples"`
}

// Final returns the last recorded sample, or the zero Sample for an empty run.
func (r Run) Final() Sample {
	if len(r.Samples) == 0 {
		return Sample{}
	}
	return r.Samples[len(r.Samples)-1]
}

// Peak returns the largest recorded population.
func (r Run) Peak() int {
	peak := 0
	for _, s := range r.Samples {
		peak = max(peak, s.Population)
	}
	return peak
}

// Store defines persistence operations for recorded runs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]string, error)
}
