//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-ca/internal/app"
	"life-ca/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	step, _ := cfg.TickInterval()
	mode, _ := cfg.DisplayMode()

	sim, err := life.NewWithConfig(cfg.LifeConfig())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, app.Options{Scale: cfg.Scale, Seed: cfg.Seed, Step: step, Mode: mode})
	size := sim.Size()

	ebiten.SetWindowTitle("life-ca: " + sim.RuleName())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
