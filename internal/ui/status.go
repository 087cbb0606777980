package ui

import (
	"strings"

	"life-ca/internal/core"
)

// StatusLines formats a parameter snapshot into HUD lines, one per group,
// followed by any extra lines supplied by the caller.
func StatusLines(snap core.ParameterSnapshot, extra ...string) []string {
	lines := make([]string, 0, len(snap.Groups)+len(extra))
	for _, g := range snap.Groups {
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			parts = append(parts, p.Label+": "+p.Value)
		}
		if len(parts) == 0 {
			continue
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	for _, e := range extra {
		if e != "" {
			lines = append(lines, e)
		}
	}
	return lines
}
