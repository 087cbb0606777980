package rules

import (
	"fmt"
	"strings"
)

// ID names one of the built-in rules. The zero value is Conway.
type ID int

const (
	Conway ID = iota
	Highlife
	DayAndNight
	Seeds
	LifeWithoutDeath
	Maze
	Anneal
	Diamoeba
	TwoByTwo
	Morley
	Replicator
	Fredkin
	Stains

	count
)

type entry struct {
	name string
	rule Rule
}

var catalog = [count]entry{
	Conway:           {"conway", Rule{Survival: CountsOf(2, 3), Birth: CountsOf(3)}},
	Highlife:         {"highlife", Rule{Survival: CountsOf(2, 3), Birth: CountsOf(3, 6)}},
	DayAndNight:      {"day-and-night", Rule{Survival: CountsOf(3, 4, 6, 7, 8), Birth: CountsOf(3, 6, 7, 8)}},
	Seeds:            {"seeds", Rule{Birth: CountsOf(2)}},
	LifeWithoutDeath: {"life-without-death", Rule{Survival: CountsOf(1, 2, 3, 4, 5, 6, 7, 8), Birth: CountsOf(3)}},
	Maze:             {"maze", Rule{Survival: CountsOf(1, 2, 3, 4, 5), Birth: CountsOf(3)}},
	Anneal:           {"anneal", Rule{Survival: CountsOf(4, 6, 7, 8), Birth: CountsOf(3, 5, 6, 7, 8)}},
	Diamoeba:         {"diamoeba", Rule{Survival: CountsOf(5, 6, 7, 8), Birth: CountsOf(3, 5, 6, 7, 8)}},
	TwoByTwo:         {"two-by-two", Rule{Survival: CountsOf(1, 2, 5), Birth: CountsOf(3, 6)}},
	Morley:           {"morley", Rule{Survival: CountsOf(2, 4, 5), Birth: CountsOf(3, 6, 8)}},
	Replicator:       {"replicator", Rule{Survival: CountsOf(1, 3, 5, 7), Birth: CountsOf(1, 3, 5, 7)}},
	Fredkin:          {"fredkin", Rule{Survival: CountsOf(0, 2, 4, 6, 8), Birth: CountsOf(1, 3, 5, 7)}},
	Stains:           {"stains", Rule{Survival: CountsOf(2, 3, 5, 6), Birth: CountsOf(3, 6, 7, 8)}},
}

// Len returns the number of built-in rules.
func Len() int { return int(count) }

// IDs lists every built-in rule in navigation order.
func IDs() []ID {
	out := make([]ID, count)
	for i := range out {
		out[i] = ID(i)
	}
	return out
}

// Of returns the rule for id. Out-of-range ids wrap into the catalog.
func Of(id ID) Rule { return catalog[id.norm()].rule }

// Next returns the rule following id, wrapping after the last one.
func (id ID) Next() ID { return (id.norm() + 1) % count }

// Previous returns the rule preceding id, wrapping before the first one.
func (id ID) Previous() ID { return (id.norm() + count - 1) % count }

// String returns the kebab-case rule name.
func (id ID) String() string { return catalog[id.norm()].name }

func (id ID) norm() ID {
	return ((id % count) + count) % count
}

// ParseID resolves a rule name such as "day-and-night". Matching ignores
// case and accepts underscores in place of dashes.
func ParseID(name string) (ID, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, e := range catalog {
		if e.name == key {
			return ID(i), nil
		}
	}
	return Conway, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// Names lists the built-in rule names in navigation order.
func Names() []string {
	out := make([]string, count)
	for i, e := range catalog {
		out[i] = e.name
	}
	return out
}

// Resolve accepts either a catalog name or B/S notation. The returned bool
// reports whether the rule came from the catalog, in which case id is valid.
func Resolve(s string) (Rule, ID, bool, error) {
	if id, err := ParseID(s); err == nil {
		return Of(id), id, true, nil
	}
	r, err := Parse(s)
	if err != nil {
		return Rule{}, Conway, false, fmt.Errorf("%w: %q is neither a rule name nor B/S notation", ErrUnknownRule, s)
	}
	return r, Conway, false, nil
}
