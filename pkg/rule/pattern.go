package rule

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"golang.org/x/sync/errgroup"

	"gridca/pkg/cell"
)

// Pattern is a local rewrite: wherever Before matches the grid, After is
// written in its place. Wildcards in Before match any cell; wildcards in
// After leave the matched cell untouched.
type Pattern struct {
	// Chance is the probability in [0, 1] that a found match is applied.
	Chance float64
	// Priority orders conflicting matches; higher applies first. Ties are
	// broken uniformly at random each step.
	Priority float64
	Before   *cell.Grid
	After    *cell.Grid
}

func (p Pattern) validate() error {
	if p.Before == nil || p.After == nil {
		return fmt.Errorf("pattern requires before and after grids")
	}
	if p.Before.Rows() != p.After.Rows() || p.Before.Cols() != p.After.Cols() {
		return fmt.Errorf("pattern dimensions mismatch: before %dx%d, after %dx%d",
			p.Before.Rows(), p.Before.Cols(), p.After.Rows(), p.After.Cols())
	}
	if p.Chance < 0 || p.Chance > 1 {
		return fmt.Errorf("pattern chance %v outside [0, 1]", p.Chance)
	}
	return nil
}

// PatternRule searches the grid for all of its patterns each step and
// applies the non-conflicting matches, higher priority first.
type PatternRule struct {
	patterns    []Pattern
	rowBoundary Boundary
	colBoundary Boundary
	rng         *RNG
}

// NewPatternRule returns an empty rule with the given boundary pair,
// seeded from ambient entropy.
func NewPatternRule(rowB, colB Boundary) *PatternRule {
	return &PatternRule{rowBoundary: rowB, colBoundary: colB, rng: newEntropyRNG()}
}

// FromPatterns builds a rule from a pattern list, validating every pattern.
func FromPatterns(patterns []Pattern, rowB, colB Boundary) (*PatternRule, error) {
	r := NewPatternRule(rowB, colB)
	for i, p := range patterns {
		if err := r.Append(p); err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i, err)
		}
	}
	return r, nil
}

// Append adds a pattern to the end of the rule's search order.
func (pr *PatternRule) Append(p Pattern) error {
	if err := p.validate(); err != nil {
		return err
	}
	pr.patterns = append(pr.patterns, p)
	return nil
}

// WithSeed pins the rule's random source, making every subsequent step
// reproducible. It returns the rule for chaining.
func (pr *PatternRule) WithSeed(seed int64) *PatternRule {
	pr.rng = NewRNG(seed)
	return pr
}

// Patterns returns the rule's patterns in search order.
func (pr *PatternRule) Patterns() []Pattern { return pr.patterns }

// Boundaries returns the row and column boundary policies.
func (pr *PatternRule) Boundaries() (row, col Boundary) {
	return pr.rowBoundary, pr.colBoundary
}

// cellWrite is one approved cell replacement at absolute coordinates.
type cellWrite struct {
	row, col int
	value    cell.Cell
}

// replacementGroup is the set of writes produced by one pattern match. It
// is applied atomically or not at all.
type replacementGroup struct {
	priority float64
	writes   []cellWrite
}

// Transform performs one rewrite step: a parallel per-pattern scan of the
// unmodified grid, then a sequential conflict-resolution walk that applies
// approved groups in descending priority with random tie-breaks.
func (pr *PatternRule) Transform(g *cell.Grid) {
	rows, cols := g.Rows(), g.Cols()

	// Derive one deterministic stream per pattern before the fan-out so
	// results do not depend on goroutine scheduling.
	seeds := make([]uint64, len(pr.patterns))
	for i := range seeds {
		seeds[i] = pr.rng.Uint64()
	}

	// Matching reads a snapshot of the grid that is immutable until every
	// worker has joined, so the scans share no mutable state.
	results := make([][]replacementGroup, len(pr.patterns))
	var eg errgroup.Group
	for i := range pr.patterns {
		i := i
		eg.Go(func() error {
			results[i] = scanPattern(g, pr.patterns[i], pr.rowBoundary, pr.colBoundary,
				rand.New(rand.NewPCG(seeds[i], uint64(i)+1)))
			return nil
		})
	}
	_ = eg.Wait()

	groups := make([]replacementGroup, 0, len(pr.patterns))
	for _, partial := range results {
		groups = append(groups, partial...)
	}

	// Shuffle, then stable-sort by descending priority: the shuffle
	// randomizes tie-break order among equal priorities so no pattern or
	// anchor position is systematically favored.
	pr.rng.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
	})
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].priority > groups[j].priority
	})

	claimed := make([]bool, rows*cols)
	for _, group := range groups {
		free := true
		for _, w := range group.writes {
			if claimed[w.row*cols+w.col] {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		for _, w := range group.writes {
			claimed[w.row*cols+w.col] = true
			g.SetAt(w.row, w.col, w.value)
		}
	}
}

// scanPattern collects the replacement groups of every match of one pattern
// against the grid. Groups with no writes (all-wildcard After) are dropped:
// they can never claim a cell and would only be dead weight in the sort.
func scanPattern(g *cell.Grid, p Pattern, rowB, colB Boundary, rng *rand.Rand) []replacementGroup {
	rows, cols := g.Rows(), g.Cols()
	pRows, pCols := p.Before.Rows(), p.Before.Cols()

	// Sentinel boundaries exclude anchors whose window would leave the
	// grid; periodic boundaries scan every anchor and wrap.
	maxRow, maxCol := rows, cols
	if !rowB.IsPeriodic() {
		maxRow = rows - pRows + 1
	}
	if !colB.IsPeriodic() {
		maxCol = cols - pCols + 1
	}

	var groups []replacementGroup
	for r := 0; r < maxRow; r++ {
	anchors:
		for c := 0; c < maxCol; c++ {
			// Roll the chance before the template comparison; the draw is
			// independent per anchor.
			if rng.Float64() > p.Chance {
				continue
			}

			for dr := 0; dr < pRows; dr++ {
				for dc := 0; dc < pCols; dc++ {
					want := p.Before.At(dr, dc)
					if want == cell.Wildcard {
						continue
					}
					tr, tc := r+dr, c+dc
					if tr >= rows {
						tr %= rows
					}
					if tc >= cols {
						tc %= cols
					}
					if g.At(tr, tc) != want {
						continue anchors
					}
				}
			}

			var writes []cellWrite
			for dr := 0; dr < pRows; dr++ {
				for dc := 0; dc < pCols; dc++ {
					v := p.After.At(dr, dc)
					if v == cell.Wildcard {
						continue
					}
					tr, tc := r+dr, c+dc
					if tr >= rows {
						tr %= rows
					}
					if tc >= cols {
						tc %= cols
					}
					writes = append(writes, cellWrite{row: tr, col: tc, value: v})
				}
			}
			if len(writes) > 0 {
				groups = append(groups, replacementGroup{priority: p.Priority, writes: writes})
			}
		}
	}
	return groups
}
