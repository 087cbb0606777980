package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"life-ca/internal/history"
	"life-ca/internal/rules"
)

func main() {
	steps := flag.Int("steps", 200, "generations to simulate per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "rules simulated in parallel")
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 128, "grid height")
	density := flag.Float64("density", 0.2, "initial random fill probability")
	seed := flag.Int64("seed", 1337, "seed for the initial fill")
	ruleList := flag.String("rules", strings.Join(rules.Names(), ","), "comma-separated rule names or B/S notations")
	storeKind := flag.String("store", "memory", "history backend: memory or sqlite")
	dbPath := flag.String("db", "life-history.db", "sqlite database path")
	flag.Parse()

	cfg := sweepConfig{
		rules:   splitList(*ruleList),
		steps:   *steps,
		workers: *workers,
		width:   *width,
		height:  *height,
		density: *density,
		seed:    *seed,
	}
	if len(cfg.rules) == 0 {
		log.Fatal("no rules selected")
	}

	ctx := context.Background()
	store, err := history.NewStore(*storeKind, *dbPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := store.Init(ctx); err != nil {
		log.Fatalf("init %s store: %v", *storeKind, err)
	}
	defer func() {
		if err := history.CloseIfSupported(store); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	log.Printf("sweeping %d rules (%d workers, %d steps, %dx%d)", len(cfg.rules), cfg.workers, cfg.steps, cfg.width, cfg.height)
	start := time.Now()
	runs, err := sweep(ctx, cfg, store)
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rule\tfinal\tpeak\tbirths\tdeaths")
	for _, run := range runs {
		final := run.Final()
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", run.Rule, final.Population, run.Peak(), final.Births, final.Deaths)
	}
	_ = tw.Flush()
	log.Printf("done in %s", time.Since(start).Round(time.Millisecond))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
