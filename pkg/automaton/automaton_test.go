package automaton

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridca/pkg/cell"
	"gridca/pkg/rule"
)

// lifeRule is Conway's Game of Life as a 3x3 environment rule with the
// given boundaries.
func lifeRule(t *testing.T, rowB, colB rule.Boundary) rule.Rule {
	t.Helper()
	r, err := rule.NewEnvironment(1, 1, 1, 1, rowB, colB, func(env *cell.Grid) cell.Cell {
		neighbors := 0
		for i, v := range env.Cells() {
			if i != 4 && v == 1 {
				neighbors++
			}
		}
		switch neighbors {
		case 2:
			return env.At(1, 1)
		case 3:
			return 1
		default:
			return 0
		}
	})
	if err != nil {
		t.Fatalf("building life rule: %v", err)
	}
	return r
}

func TestBlinkerOscillation(t *testing.T) {
	initial := []cell.Cell{
		0, 0, 0, 0,
		0, 1, 0, 0,
		0, 1, 0, 0,
		0, 1, 0, 0,
	}
	auto, err := NewBuilder().
		FromValues(initial, 4).
		WithRule(lifeRule(t, rule.Sentinel(cell.Blank), rule.Sentinel(cell.Blank))).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for i := 0; i < 5; i++ {
		auto.Step()
	}
	horizontal, _ := cell.FromValues([]cell.Cell{
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 1, 1, 0,
		0, 0, 0, 0,
	}, 4)
	if !auto.State().Equal(horizontal) {
		t.Fatalf("after 5 steps:\n%s\nwant:\n%s", auto.State(), horizontal)
	}

	auto.Step()
	vertical, _ := cell.FromValues(initial, 4)
	if !auto.State().Equal(vertical) {
		t.Fatalf("after 6 steps the blinker must be back upright:\n%s", auto.State())
	}
}

func TestSetCellBounds(t *testing.T) {
	auto, err := NewBuilder().
		FromGrid(cell.New(3, 3)).
		WithRule(&rule.Multi{}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if err := auto.SetCell(1, 1, cell.FromRune('X')); err != nil {
		t.Fatalf("in-bounds set: %v", err)
	}
	if got := auto.State().At(1, 1); got != cell.FromRune('X') {
		t.Fatalf("cell not written, got %d", got)
	}

	var oob *cell.OutOfBoundsError
	if err := auto.SetCell(3, 0, 1); !errors.As(err, &oob) {
		t.Fatalf("got %v, want OutOfBoundsError", err)
	}
}

func TestMinTimeStepThrottlesNextStep(t *testing.T) {
	auto, err := NewBuilder().
		FromGrid(cell.FromString("X ")).
		WithPattern(rule.Pattern{
			Chance:   1,
			Priority: 0,
			Before:   cell.FromString("X "),
			After:    cell.FromString(" X"),
		}).
		WithSeed(1).
		WithMinTimeStep(time.Hour).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !auto.NextStep() {
		t.Fatal("first NextStep must run immediately")
	}
	if auto.NextStep() {
		t.Fatal("second NextStep within the interval must be skipped")
	}
	if got := auto.State().String(); got != " X" {
		t.Fatalf("state after the throttled phase: %q", got)
	}

	// Step ignores the throttle.
	auto.Step()
	if got := auto.State().String(); got != " X" {
		t.Fatalf("resting state changed: %q", got)
	}
}

func TestBuilderTextFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.txt")
	if err := os.WriteFile(path, []byte("ab\ncd\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	auto, err := NewBuilder().
		FromTextFile(path).
		WithRule(&rule.Multi{}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := auto.State().String(); got != "ab\ncd" {
		t.Fatalf("loaded state %q, want %q", got, "ab\ncd")
	}
}

func TestBuilderImageSource(t *testing.T) {
	sand := color.RGBA{R: 0xc2, G: 0xb2, B: 0x80, A: 0xff}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 0, sand)

	auto, err := NewBuilder().
		WithColor(cell.FromRune('X'), sand).
		FromImage(img).
		WithRule(&rule.Multi{}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got := auto.State().At(0, 1); got != cell.FromRune('X') {
		t.Fatalf("mapped pixel decoded to %d", got)
	}
	// Unmapped colors fall back to the blank cell.
	if got := auto.State().At(1, 1); got != cell.Blank {
		t.Fatalf("unmapped pixel decoded to %d", got)
	}
}

func TestBuilderReportsFirstError(t *testing.T) {
	_, err := NewBuilder().
		FromValues([]cell.Cell{1, 2, 3}, 2).
		WithRule(nil).
		Build()
	if err == nil {
		t.Fatal("ragged values must fail the build")
	}
}

func TestBuilderComposesRulesInOrder(t *testing.T) {
	set, err := rule.NewEnvironment(0, 0, 0, 0, rule.Periodic(), rule.Periodic(),
		func(*cell.Grid) cell.Cell { return 1 })
	if err != nil {
		t.Fatal(err)
	}
	double, err := rule.NewEnvironment(0, 0, 0, 0, rule.Periodic(), rule.Periodic(),
		func(env *cell.Grid) cell.Cell { return env.At(0, 0) * 2 })
	if err != nil {
		t.Fatal(err)
	}

	auto, err := NewBuilder().
		FromGrid(cell.New(2, 2)).
		WithRule(set).
		WithRule(double).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	auto.Step()
	for i, v := range auto.State().Cells() {
		if v != 2 {
			t.Fatalf("cell %d = %d after one tick, want 2", i, v)
		}
	}
}

func TestSaveText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	auto, err := NewBuilder().
		FromGrid(cell.FromString("ab\ncd")).
		WithRule(&rule.Multi{}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if err := auto.SaveText(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ab\ncd\n" {
		t.Fatalf("saved %q", data)
	}
}
