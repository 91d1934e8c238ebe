package cell

import "fmt"

// OutOfBoundsError reports a cell access outside the grid.
type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("index (%d, %d) out of bounds for grid of size (%d, %d)",
		e.Row, e.Col, e.Rows, e.Cols)
}
