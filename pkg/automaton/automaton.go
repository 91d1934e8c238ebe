// Package automaton couples a cell grid with a transformation rule and
// drives it tick by tick.
package automaton

import (
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"gridca/pkg/cell"
	"gridca/pkg/rule"
)

// Automaton owns the current simulation state and the rule that advances it.
type Automaton struct {
	state *cell.Grid
	rule  rule.Rule

	// minStep throttles NextStep; zero means a step on every call.
	minStep  time.Duration
	lastStep time.Time

	colors map[cell.Cell]color.RGBA
}

// State exposes the current grid. Callers must not resize it.
func (a *Automaton) State() *cell.Grid { return a.state }

// Rule returns the automaton's transformation rule.
func (a *Automaton) Rule() rule.Rule { return a.rule }

// Dimensions reports the state grid size as (rows, cols).
func (a *Automaton) Dimensions() (int, int) {
	return a.state.Rows(), a.state.Cols()
}

// Colors returns the display color table.
func (a *Automaton) Colors() map[cell.Cell]color.RGBA { return a.colors }

// NextStep advances the automaton when the step mode permits it and
// reports whether a step ran. With a minimum time step configured, at most
// one step runs per elapsed interval.
func (a *Automaton) NextStep() bool {
	if a.minStep > 0 && !a.lastStep.IsZero() && time.Since(a.lastStep) < a.minStep {
		return false
	}
	a.rule.Transform(a.state)
	a.lastStep = time.Now()
	return true
}

// Step advances the automaton unconditionally, ignoring the step throttle.
func (a *Automaton) Step() {
	a.rule.Transform(a.state)
	a.lastStep = time.Now()
}

// SetCell writes a single cell, for manual edits between steps. Coordinates
// outside the grid yield a cell.OutOfBoundsError.
func (a *Automaton) SetCell(row, col int, v cell.Cell) error {
	if err := a.state.Set(row, col, v); err != nil {
		return err
	}
	log.Printf("manual cell set: %q at (%d, %d)", v.Rune(), row, col)
	return nil
}

// Image renders the current state through the color table. Cells without a
// mapped color come out transparent black.
func (a *Automaton) Image() *image.RGBA {
	rows, cols := a.Dimensions()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			img.SetRGBA(c, r, a.colors[a.state.At(r, c)])
		}
	}
	return img
}

// SaveText writes the state grid to path as one line of symbols per row.
func (a *Automaton) SaveText(path string) error {
	return os.WriteFile(path, []byte(a.state.String()+"\n"), 0o644)
}
