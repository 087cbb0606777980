package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"life-ca/internal/core"
	"life-ca/internal/history"
	"life-ca/internal/sims/life"
)

type sweepConfig struct {
	rules   []string
	steps   int
	workers int
	width   int
	height  int
	density float64
	seed    int64
}

type statsProvider interface {
	Generation() uint64
	LastStats() life.TickStats
}

// runRule plays one rule for cfg.steps generations on a seeded random grid.
func runRule(ctx context.Context, cfg sweepConfig, rule string) (history.Run, error) {
	factory, err := core.Lookup("life")
	if err != nil {
		return history.Run{}, err
	}
	sim, err := factory(map[string]string{
		"w":       strconv.Itoa(cfg.width),
		"h":       strconv.Itoa(cfg.height),
		"rule":    rule,
		"density": strconv.FormatFloat(cfg.density, 'f', -1, 64),
		"seed":    strconv.FormatInt(cfg.seed, 10),
		"workers": "1",
	})
	if err != nil {
		return history.Run{}, fmt.Errorf("rule %s: %w", rule, err)
	}
	stats, ok := sim.(statsProvider)
	if !ok {
		return history.Run{}, fmt.Errorf("sim %s does not report statistics", sim.Name())
	}

	sim.Reset(cfg.seed)
	run := history.Run{
		ID:      fmt.Sprintf("%s-%dx%d-%d", rule, cfg.width, cfg.height, cfg.seed),
		Rule:    rule,
		Width:   cfg.width,
		Height:  cfg.height,
		Seed:    cfg.seed,
		Density: cfg.density,
		Samples: make([]history.Sample, 0, cfg.steps),
	}
	for step := 0; step < cfg.steps; step++ {
		if err := ctx.Err(); err != nil {
			return run, err
		}
		sim.Step()
		s := stats.LastStats()
		run.Samples = append(run.Samples, history.Sample{
			Generation: stats.Generation(),
			Population: s.Population,
			Births:     s.Births,
			Deaths:     s.Deaths,
		})
	}
	return run, nil
}

// sweep runs every rule concurrently and stores each result. Runs are
// returned sorted by final population, largest first.
func sweep(ctx context.Context, cfg sweepConfig, store history.Store) ([]history.Run, error) {
	runs := make([]history.Run, len(cfg.rules))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, cfg.workers))
	for i, rule := range cfg.rules {
		eg.Go(func() error {
			run, err := runRule(ctx, cfg, rule)
			if err != nil {
				return err
			}
			if err := store.SaveRun(ctx, run); err != nil {
				return fmt.Errorf("save %s: %w", run.ID, err)
			}
			runs[i] = run
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Final().Population > runs[j].Final().Population
	})
	return runs, nil
}
