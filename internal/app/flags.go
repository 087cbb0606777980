package app

import (
	"flag"
	"fmt"
	"time"

	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rules   string
	Pattern string
	Speed   float64
	Mode    string
	Scale   int
	Seed    int64
	Width   int
	Height  int
	Density float64
	Workers int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Rules:   lc.Rule,
		Pattern: lc.Pattern,
		Speed:   30,
		Mode:    render.ModeColor.String(),
		Scale:   3,
		Seed:    lc.Seed,
		Width:   lc.Width,
		Height:  lc.Height,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rules, "rules", c.Rules, "rule name or B/S notation, e.g. highlife or B36/S23")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern stamped on click")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "simulation speed in ticks per second")
	fs.StringVar(&c.Mode, "mode", c.Mode, "display mode: color, image or heat")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.Float64Var(&c.Density, "density", c.Density, "random fill probability; 0 seeds the startup layout")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per tick; 0 uses every CPU")
}

// LifeConfig converts the flags into a simulation configuration.
func (c *Config) LifeConfig() life.Config {
	return life.Config{
		Width:   c.Width,
		Height:  c.Height,
		Rule:    c.Rules,
		Pattern: c.Pattern,
		Density: c.Density,
		Workers: c.Workers,
		Seed:    c.Seed,
	}
}

// TickInterval returns the time between simulation steps.
func (c *Config) TickInterval() (time.Duration, error) {
	return core.TickInterval(c.Speed)
}

// DisplayMode returns the parsed display mode.
func (c *Config) DisplayMode() (render.Mode, error) {
	return render.ParseMode(c.Mode)
}

// Validate reports every configuration error that would prevent startup.
func (c *Config) Validate() error {
	if _, err := c.TickInterval(); err != nil {
		return fmt.Errorf("speed: %w", err)
	}
	if _, err := c.DisplayMode(); err != nil {
		return err
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	return c.LifeConfig().Validate()
}
