package rule

import (
	"fmt"

	"gridca/pkg/cell"
)

// Environment computes each cell's next value purely from a fixed-size
// neighborhood window around it in the previous grid. Every cell of a step
// reads the same untransformed grid, so the update is synchronous.
//
// The window extends Up, Right, Down and Left cells from the target; the
// cell transform receives a grid of size (Up+Down+1) x (Left+Right+1) and
// must be total over all reachable window contents, boundary sentinels
// included.
type Environment struct {
	Up, Right, Down, Left int

	// RowBoundary and ColBoundary resolve window reads beyond the grid
	// edges. The row boundary is checked first; a sentinel read wins and
	// skips any further coordinate correction.
	RowBoundary Boundary
	ColBoundary Boundary

	// CellTransform maps a window to the next value of its center cell.
	// It is invoked once per cell per step, in row-major order, so a
	// transform drawing from a seeded generator replays deterministically.
	CellTransform func(window *cell.Grid) cell.Cell
}

// NewEnvironment validates the extents and transform before constructing
// the rule. Negative extents and nil transforms are configuration errors.
func NewEnvironment(up, right, down, left int, rowB, colB Boundary, transform func(*cell.Grid) cell.Cell) (*Environment, error) {
	if up < 0 || right < 0 || down < 0 || left < 0 {
		return nil, fmt.Errorf("environment extents (%d, %d, %d, %d) must be non-negative", up, right, down, left)
	}
	if transform == nil {
		return nil, fmt.Errorf("environment rule requires a cell transform")
	}
	return &Environment{
		Up: up, Right: right, Down: down, Left: left,
		RowBoundary:   rowB,
		ColBoundary:   colB,
		CellTransform: transform,
	}, nil
}

// Transform writes the next generation into g. The result is computed into
// separate storage first, so no cell transform ever observes a partially
// updated grid.
func (e *Environment) Transform(g *cell.Grid) {
	rows, cols := g.Rows(), g.Cols()
	window := cell.New(e.Up+e.Down+1, e.Left+e.Right+1)
	next := cell.New(rows, cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			e.fillWindow(window, g, r, c)
			next.SetAt(r, c, e.CellTransform(window))
		}
	}

	copy(g.Cells(), next.Cells())
}

func (e *Environment) fillWindow(window, g *cell.Grid, row, col int) {
	rows, cols := g.Rows(), g.Cols()
	for wr := 0; wr <= e.Up+e.Down; wr++ {
		for wc := 0; wc <= e.Left+e.Right; wc++ {
			tr := row + wr - e.Up
			tc := col + wc - e.Left

			if tr < 0 || tr >= rows {
				if !e.RowBoundary.IsPeriodic() {
					window.SetAt(wr, wc, e.RowBoundary.Symbol())
					continue
				}
				tr = ((tr % rows) + rows) % rows
			}
			if tc < 0 || tc >= cols {
				if !e.ColBoundary.IsPeriodic() {
					window.SetAt(wr, wc, e.ColBoundary.Symbol())
					continue
				}
				tc = ((tc % cols) + cols) % cols
			}
			window.SetAt(wr, wc, g.At(tr, tc))
		}
	}
}
