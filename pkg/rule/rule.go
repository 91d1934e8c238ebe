// Package rule defines the transformation rules a cellular automaton applies
// to its grid: stencil rules driven by a neighborhood window, pattern rules
// driven by search-and-replace templates, and sequential compositions of
// both.
package rule

import "gridca/pkg/cell"

// Rule transforms a grid into its next generation in place. A driver calls
// Transform once per simulation tick.
type Rule interface {
	Transform(g *cell.Grid)
}

// Multi applies its rules strictly in order within one tick, feeding each
// rule's output grid to the next.
type Multi struct {
	Rules []Rule
}

// Transform runs every contained rule in registration order.
func (m *Multi) Transform(g *cell.Grid) {
	for _, r := range m.Rules {
		r.Transform(g)
	}
}
