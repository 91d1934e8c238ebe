package cell

import "strings"

// Grid stores a rectangular block of cells in row-major order. Dimensions
// are fixed after construction.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New allocates a blank grid with the given dimensions.
func New(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// FromValues builds a grid from a flat row-major slice. The slice length
// must be a positive multiple of cols.
func FromValues(values []Cell, cols int) (*Grid, bool) {
	if cols <= 0 || len(values) == 0 || len(values)%cols != 0 {
		return nil, false
	}
	g := &Grid{rows: len(values) / cols, cols: cols, cells: make([]Cell, len(values))}
	copy(g.cells, values)
	return g, true
}

// FromString builds a grid from newline-separated rows of symbols. Columns
// are sized to the longest row; shorter rows are padded with Blank.
func FromString(s string) *Grid {
	lines := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	// A conventional trailing newline is not an extra blank row.
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	g := New(len(lines), cols)
	for r, line := range lines {
		for c, sym := range []rune(line) {
			g.SetAt(r, c, FromRune(sym))
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// At reads a cell without bounds checks. Callers must keep coordinates in
// range.
func (g *Grid) At(row, col int) Cell { return g.cells[row*g.cols+col] }

// SetAt writes a cell without bounds checks.
func (g *Grid) SetAt(row, col int, v Cell) { g.cells[row*g.cols+col] = v }

// Get reads a cell, reporting false when the coordinates are out of range.
func (g *Grid) Get(row, col int) (Cell, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Blank, false
	}
	return g.cells[row*g.cols+col], true
}

// Set writes a cell, returning an OutOfBoundsError when the coordinates are
// out of range.
func (g *Grid) Set(row, col int, v Cell) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return &OutOfBoundsError{Row: row, Col: col, Rows: g.rows, Cols: g.cols}
	}
	g.cells[row*g.cols+col] = v
	return nil
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Fill sets every cell to v.
func (g *Grid) Fill(v Cell) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// String renders the grid as newline-separated rows of symbols. It inverts
// FromString.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.At(r, c).Rune())
		}
	}
	return sb.String()
}
