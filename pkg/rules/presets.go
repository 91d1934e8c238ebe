// Package rules bundles ready-made automaton rules: classic stencil
// automata and a falling-sand pattern set.
package rules

import (
	"gridca/pkg/cell"
	"gridca/pkg/rule"
)

// Cell values shared by the falling-sand preset.
var (
	SandCell   = cell.FromRune('X')
	FireCell   = cell.FromRune('F')
	AshCell    = cell.FromRune('A')
	SourceCell = cell.FromRune('S')
)

// GameOfLife returns Conway's Game of Life on a torus. Alive cells hold 1,
// dead cells 0.
func GameOfLife() *rule.Environment {
	return &rule.Environment{
		Up: 1, Right: 1, Down: 1, Left: 1,
		RowBoundary: rule.Periodic(),
		ColBoundary: rule.Periodic(),
		CellTransform: func(env *cell.Grid) cell.Cell {
			alive := 0
			for i, v := range env.Cells() {
				if i == 4 || v != 1 {
					continue
				}
				alive++
			}
			switch alive {
			case 2:
				return env.At(1, 1)
			case 3:
				return 1
			default:
				return 0
			}
		},
	}
}

func pat(chance, priority float64, before, after string) rule.Pattern {
	return rule.Pattern{
		Chance:   chance,
		Priority: priority,
		Before:   cell.FromString(before),
		After:    cell.FromString(after),
	}
}

// FallingSand returns a sand, fire and ash simulation as a pattern rule.
// Sand ('X') falls and collapses, fire ('F') drifts upward, ignites sand
// and decays to ash ('A'), and a source ('S') spawns fire above itself.
func FallingSand() (*rule.PatternRule, error) {
	return rule.FromPatterns([]rule.Pattern{
		// Sand falls by two or one cells.
		pat(0.9, 1, "X\n \n ", " \n \nX"),
		pat(1, 0.5, "X\n ", " \nX"),
		// Stacks of sand collapse to either side; the shuffle makes both
		// sides equally likely.
		pat(1, 0, "X \nX ", " *\n*X"),
		pat(1, 0, " X\n X", "* \nX*"),
		// 45-degree slopes collapse as well.
		pat(1, 0, "X  \nXX ", " **\n**X"),
		pat(1, 0, "  X\n XX", "** \nX**"),
		// Fire drifts upward, rarely sinks or slides sideways.
		pat(0.3, 0, " \nF", "F\n "),
		pat(0.1, 0, "F\n ", " \nF"),
		pat(0.1, 0, " F", "F "),
		pat(0.1, 0, "F ", " F"),
		// Fire ignites adjacent sand.
		pat(0.8, 0, "X\nF", "F\n*"),
		pat(0.8, 0, "F\nX", "*\nF"),
		pat(0.8, 0, "XF", "F*"),
		pat(0.8, 0, "FX", "*F"),
		// Diagonal ignition; wildcards keep the untouched corners intact.
		pat(0.8, 0, "X*\n*F", "F*\n**"),
		pat(0.8, 0, "*X\nF*", "*F\n**"),
		pat(0.8, 0, "*F\nX*", "**\nF*"),
		pat(0.8, 0, "F*\n*X", "**\n*F"),
		// Fire decays to ash.
		pat(0.03, 1, "F", "A"),
		// Ash falls slower than sand and collapses the same way.
		pat(1, 0, "A\n ", " \nA"),
		pat(1, 0, "A \nA ", " *\n*A"),
		pat(1, 0, " A\n A", "* \nA*"),
		// Fire passes upward through ash.
		pat(1, 0, "A\nF", "F\nA"),
		// Ash ignites sand from the four main directions.
		pat(1, 0, "A\nX", "*\nF"),
		pat(1, 0, "X\nA", "F\n*"),
		pat(1, 0, "AX", "*F"),
		pat(1, 0, "XA", "F*"),
		// The source spawns fire above itself.
		pat(0.5, 0, "*\nS", "F\nS"),
	}, rule.Sentinel(cell.Blank), rule.Sentinel(cell.Blank))
}

// Rule90 returns the elementary Rule 90 automaton rendered row by row: each
// row is the successor of the row above it, and the seed row keeps its
// value forever. Rows outside the grid read as the border sentinel.
func Rule90() *rule.Environment {
	return &rule.Environment{
		Up: 1, Right: 1, Down: 1, Left: 1,
		RowBoundary: rule.Sentinel(cell.Border),
		ColBoundary: rule.Sentinel(cell.Border),
		CellTransform: func(env *cell.Grid) cell.Cell {
			// The seed row sees the border sentinel above it.
			if env.At(0, 0) == cell.Border && env.At(0, 1) == cell.Border {
				return env.At(1, 1)
			}
			if (env.At(0, 0) == 1) != (env.At(0, 2) == 1) {
				return 1
			}
			return 0
		},
	}
}

// Labyrinth returns a maze-growth rule: hallways (1) creep outward from a
// seed cell through empty space (0), leaving walls (2) behind. The same
// seed replays the same growth.
func Labyrinth(seed int64) *rule.Environment {
	rng := rule.NewRNG(seed)
	return &rule.Environment{
		Up: 1, Right: 1, Down: 1, Left: 1,
		RowBoundary: rule.Periodic(),
		ColBoundary: rule.Periodic(),
		CellTransform: func(env *cell.Grid) cell.Cell {
			this := env.At(1, 1)
			hallways := 0
			for _, v := range env.Cells() {
				if v == 1 {
					hallways++
				}
			}
			switch this {
			case 0:
				// Exactly one orthogonal hallway neighbor extends the path.
				orth := int(env.At(0, 1)) + int(env.At(2, 1)) + int(env.At(1, 0)) + int(env.At(1, 2))
				if orth == 1 && rng.Float64() < 0.3 {
					return 1
				}
				switch hallways {
				case 2:
					if rng.Float64() < 0.2 {
						return 1
					}
					if rng.Float64() < 0.85 {
						return 2
					}
					return 0
				case 3:
					if rng.Float64() < 0.4 {
						return 1
					}
					return 0
				case 4:
					if rng.Float64() < 0.6 {
						return 1
					}
					return 0
				case 5, 6, 7, 8, 9:
					return 1
				default:
					return 0
				}
			case 2:
				// Clear free-standing pillars.
				if hallways >= 6 {
					return 1
				}
				return 2
			default:
				return this
			}
		},
	}
}

// RPS returns a four-state rock-paper-scissors automaton with cyclic
// dominance on a torus. The same seed replays the same evolution.
func RPS(seed int64) *rule.Environment {
	rng := rule.NewRNG(seed)
	return &rule.Environment{
		Up: 1, Right: 1, Down: 1, Left: 1,
		RowBoundary: rule.Periodic(),
		ColBoundary: rule.Periodic(),
		CellTransform: func(env *cell.Grid) cell.Cell {
			this := env.At(1, 1)
			evil := (this + 1) % 4
			neutral := (this + 2) % 4
			evilCount, neutralCount := 0, 0
			for _, v := range env.Cells() {
				switch v {
				case evil:
					evilCount++
				case neutral:
					neutralCount++
				}
			}
			if evilCount >= 3 && rng.Float64() < 0.7 {
				return evil
			}
			if neutralCount >= 6 && rng.Float64() < 0.7 {
				return neutral
			}
			return this
		},
	}
}
