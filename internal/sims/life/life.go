// Package life runs binary outer-totalistic automata (Conway's Life and its
// birth/survival relatives) on a toroidal grid.
package life

import (
	"strconv"

	"life-ca/internal/core"
	"life-ca/internal/patterns"
	"life-ca/internal/rules"
)

// Life owns a grid together with the selected rule and seeding pattern.
type Life struct {
	cfg    Config
	grid   *core.Grid
	engine *Engine

	rule    rules.Rule
	ruleID  rules.ID
	custom  bool
	pattern patterns.ID

	generation uint64
	last       TickStats
}

// New returns a Conway simulation with the provided dimensions.
// Non-positive dimensions are clamped to one cell.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return newLife(cfg, rules.Of(rules.Conway), rules.Conway, true, patterns.Glider)
}

// NewWithConfig returns a simulation configured from the provided options.
// The grid starts empty; call Reset to seed it.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, id, builtin, _ := rules.Resolve(cfg.Rule)
	pat, _ := patterns.ParseID(cfg.Pattern)
	return newLife(cfg, rule, id, builtin, pat), nil
}

func newLife(cfg Config, rule rules.Rule, id rules.ID, builtin bool, pat patterns.ID) *Life {
	return &Life{
		cfg:     cfg,
		grid:    core.NewGrid(cfg.Width, cfg.Height),
		engine:  NewEngine(cfg.Workers),
		rule:    rule,
		ruleID:  id,
		custom:  !builtin,
		pattern: pat,
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Grid exposes the current cells. Callers must not read it during Step.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation returns the number of steps since the last Reset.
func (l *Life) Generation() uint64 { return l.generation }

// LastStats returns the transitions made by the most recent Step.
func (l *Life) LastStats() TickStats { return l.last }

// Reset clears the grid and seeds it. With a positive density cells are
// chosen at random from seed (zero falls back to the configured seed);
// otherwise the startup layout is stamped.
func (l *Life) Reset(seed int64) {
	l.grid.Clear()
	l.generation = 0
	l.last = TickStats{}
	if l.cfg.Density > 0 {
		if seed == 0 {
			seed = l.cfg.Seed
		}
		core.NewRNG(seed).FillRandom(l.grid, l.cfg.Density)
		return
	}
	for _, s := range startupLayout {
		patterns.Stamp(s.pattern, l.grid, s.x, s.y)
	}
}

var startupLayout = []struct {
	pattern patterns.ID
	x, y    int
}{
	{patterns.Single, 1, 3},
	{patterns.Single, 1, 4},
	{patterns.Single, 1, 5},
	{patterns.Single, 2, 3},
	{patterns.Pulsar, 10, 30},
}

// Clear kills every cell and resets activation history.
func (l *Life) Clear() {
	l.grid.Clear()
	l.generation = 0
	l.last = TickStats{}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.last = l.engine.Tick(l.grid, l.rule)
	l.generation++
}

// Rule returns the active rule.
func (l *Life) Rule() rules.Rule { return l.rule }

// RuleID returns the active catalog rule and whether the active rule is a
// catalog entry at all.
func (l *Life) RuleID() (rules.ID, bool) { return l.ruleID, !l.custom }

// RuleName returns the catalog name, or the B/S notation of a custom rule.
func (l *Life) RuleName() string {
	if l.custom {
		return l.rule.String()
	}
	return l.ruleID.String()
}

// SetRule selects a catalog rule.
func (l *Life) SetRule(id rules.ID) {
	l.ruleID = id
	l.rule = rules.Of(id)
	l.custom = false
}

// SetCustomRule selects a rule that is not part of the catalog.
func (l *Life) SetCustomRule(r rules.Rule) {
	l.rule = r
	l.custom = true
}

// NextRule moves to the following catalog rule. From a custom rule it
// returns to the catalog at the last selected entry.
func (l *Life) NextRule() {
	if l.custom {
		l.SetRule(l.ruleID)
		return
	}
	l.SetRule(l.ruleID.Next())
}

// PreviousRule moves to the preceding catalog rule.
func (l *Life) PreviousRule() {
	if l.custom {
		l.SetRule(l.ruleID)
		return
	}
	l.SetRule(l.ruleID.Previous())
}

// Pattern returns the pattern used by Stamp.
func (l *Life) Pattern() patterns.ID { return l.pattern }

// SetPattern selects the pattern used by Stamp.
func (l *Life) SetPattern(id patterns.ID) { l.pattern = id }

// NextPattern selects the following pattern.
func (l *Life) NextPattern() { l.pattern = l.pattern.Next() }

// PreviousPattern selects the preceding pattern.
func (l *Life) PreviousPattern() { l.pattern = l.pattern.Previous() }

// Stamp places the selected pattern with its origin at (x, y), clipping at
// the grid edges. It returns the number of cells placed.
func (l *Life) Stamp(x, y int) int {
	return patterns.Stamp(l.pattern, l.grid, x, y)
}

// Parameters reports the values shown on the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Selection",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: l.RuleName()},
				{Key: "notation", Label: "Notation", Type: core.ParamTypeString, Value: l.rule.String()},
				{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: l.pattern.String()},
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeString, Value: strconv.Itoa(l.grid.W) + "x" + strconv.Itoa(l.grid.H)},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(l.generation, 10)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(l.grid.Population())},
				{Key: "births", Label: "Births", Type: core.ParamTypeInt, Value: strconv.Itoa(l.last.Births)},
				{Key: "deaths", Label: "Deaths", Type: core.ParamTypeInt, Value: strconv.Itoa(l.last.Deaths)},
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
