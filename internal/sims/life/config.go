package life

import (
	"fmt"
	"strconv"

	"life-ca/internal/patterns"
	"life-ca/internal/rules"
)

// Config controls the Life simulation.
type Config struct {
	Width  int
	Height int

	// Rule is a catalog name or B/S notation.
	Rule    string
	Pattern string

	// Density is the probability a cell starts alive on Reset. Zero seeds the
	// curated startup layout instead.
	Density float64
	Workers int
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   250,
		Height:  250,
		Rule:    rules.Conway.String(),
		Pattern: patterns.Glider.String(),
		Seed:    42,
	}
}

// Validate reports configuration errors before a simulation is built.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if _, _, _, err := rules.Resolve(c.Rule); err != nil {
		return err
	}
	if _, err := patterns.ParseID(c.Pattern); err != nil {
		return err
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v must be within [0,1]", c.Density)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("w: %w", err)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("h: %w", err)
		}
		c.Height = parsed
	}
	if v, ok := cfg["rule"]; ok {
		c.Rule = v
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("density: %w", err)
		}
		c.Density = parsed
	}
	if v, ok := cfg["workers"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("workers: %w", err)
		}
		c.Workers = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("seed: %w", err)
		}
		c.Seed = parsed
	}
	return c, c.Validate()
}
