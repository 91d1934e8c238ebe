package demos

import (
	"image/color"
	"strconv"
	"time"

	"gridca/pkg/automaton"
	"gridca/pkg/cell"
	"gridca/pkg/rule"
	"gridca/pkg/rules"
)

func intOption(cfg map[string]string, key string, def int) int {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func seedOption(cfg map[string]string, def int64) int64 {
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func init() {
	Register("life", lifeDemo)
	Register("sand", sandDemo)
	Register("rule90", rule90Demo)
	Register("labyrinth", labyrinthDemo)
	Register("rps", rpsDemo)
}

func lifeDemo(cfg map[string]string) (*automaton.Automaton, error) {
	rows := intOption(cfg, "h", 256)
	cols := intOption(cfg, "w", 256)
	rng := rule.NewRNG(seedOption(cfg, 42)).Source()

	grid := cell.New(rows, cols)
	for i := range grid.Cells() {
		grid.Cells()[i] = cell.Cell(rng.IntN(2))
	}

	return automaton.NewBuilder().
		FromGrid(grid).
		WithRule(rules.GameOfLife()).
		WithColor(0, color.RGBA{A: 255}).
		WithColor(1, color.RGBA{R: 95, G: 205, B: 228, A: 255}).
		Build()
}

func sandDemo(cfg map[string]string) (*automaton.Automaton, error) {
	rows := intOption(cfg, "h", 128)
	cols := intOption(cfg, "w", 128)
	rng := rule.NewRNG(seedOption(cfg, 42)).Source()

	grid := cell.New(rows, cols)
	// Sand sprinkled over the upper half, a fire source in the middle.
	for r := 0; r < rows/2; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < 0.3 {
				grid.SetAt(r, c, rules.SandCell)
			}
		}
	}
	grid.SetAt(rows/2, cols/2, rules.SourceCell)

	sand, err := rules.FallingSand()
	if err != nil {
		return nil, err
	}
	sand.WithSeed(seedOption(cfg, 42))

	return automaton.NewBuilder().
		FromGrid(grid).
		WithRule(sand).
		WithMinTimeStep(50 * time.Millisecond).
		WithColors(map[cell.Cell]color.RGBA{
			cell.Blank:       {R: 61, G: 159, B: 184, A: 255},
			rules.SandCell:   {R: 224, G: 210, B: 159, A: 255},
			rules.FireCell:   {R: 224, G: 105, B: 54, A: 255},
			rules.AshCell:    {R: 184, G: 182, B: 182, A: 255},
			rules.SourceCell: {R: 128, G: 25, B: 14, A: 255},
		}).
		Build()
}

func rule90Demo(cfg map[string]string) (*automaton.Automaton, error) {
	rows := intOption(cfg, "h", 64)
	cols := intOption(cfg, "w", 64)
	rng := rule.NewRNG(seedOption(cfg, 42)).Source()

	// The first row seeds the automaton; each following row shows one
	// successive generation.
	grid := cell.New(rows, cols)
	for c := 0; c < cols; c++ {
		grid.SetAt(0, c, cell.Cell(rng.IntN(2)))
	}

	return automaton.NewBuilder().
		FromGrid(grid).
		WithRule(rules.Rule90()).
		WithColor(0, color.RGBA{A: 255}).
		WithColor(1, color.RGBA{R: 255, G: 255, B: 255, A: 255}).
		Build()
}

func labyrinthDemo(cfg map[string]string) (*automaton.Automaton, error) {
	rows := intOption(cfg, "h", 128)
	cols := intOption(cfg, "w", 128)

	grid := cell.New(rows, cols)
	grid.SetAt(rows/2, cols/2, 1)

	return automaton.NewBuilder().
		FromGrid(grid).
		WithRule(rules.Labyrinth(seedOption(cfg, 42))).
		WithMinTimeStep(20 * time.Millisecond).
		WithColors(map[cell.Cell]color.RGBA{
			0: {R: 88, G: 95, B: 107, A: 255},
			1: {R: 220, G: 223, B: 227, A: 255},
			2: {R: 88, G: 95, B: 107, A: 255},
		}).
		Build()
}

func rpsDemo(cfg map[string]string) (*automaton.Automaton, error) {
	rows := intOption(cfg, "h", 384)
	cols := intOption(cfg, "w", 384)

	// Quadrant seeding: two states on top, two below.
	grid := cell.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch {
			case r >= rows/2 && c > cols/2:
				grid.SetAt(r, c, 0)
			case r >= rows/2:
				grid.SetAt(r, c, 1)
			case c > cols/2:
				grid.SetAt(r, c, 3)
			default:
				grid.SetAt(r, c, 2)
			}
		}
	}

	return automaton.NewBuilder().
		FromGrid(grid).
		WithRule(rules.RPS(seedOption(cfg, 42))).
		WithMinTimeStep(20 * time.Millisecond).
		WithColors(map[cell.Cell]color.RGBA{
			0: {R: 66, G: 135, B: 245, A: 255},
			1: {R: 36, G: 80, B: 201, A: 255},
			2: {R: 61, G: 159, B: 235, A: 255},
			3: {R: 146, G: 199, B: 240, A: 255},
		}).
		Build()
}
