//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridca/internal/render"
	"gridca/internal/ui"
	"gridca/pkg/automaton"
	"gridca/pkg/cell"
)

// Game adapts an automaton to the ebiten.Game interface.
type Game struct {
	auto    *automaton.Automaton
	initial *cell.Grid
	painter *render.GridPainter
	palette render.Palette
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
	steps    int

	brush    cell.Cell
	hasBrush bool
}

// New constructs a Game for the provided automaton.
func New(auto *automaton.Automaton, scale int) *Game {
	rows, cols := auto.Dimensions()
	return &Game{
		auto:    auto,
		initial: auto.State().Clone(),
		painter: render.NewGridPainter(rows, cols),
		palette: render.NewPalette(auto.Colors()),
		overlay: ui.NewOverlay(),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the automaton.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		copy(g.auto.State().Cells(), g.initial.Cells())
		g.steps = 0
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		path := fmt.Sprintf("state-%d.txt", time.Now().Unix())
		if err := g.auto.SaveText(path); err != nil {
			log.Printf("save state: %v", err)
		} else {
			log.Printf("state saved to %s", path)
		}
	}

	g.handleBrush()
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		if g.tickOnce {
			g.auto.Step()
			g.steps++
		} else if g.auto.NextStep() {
			g.steps++
		}
		g.tickOnce = false
	}
	return nil
}

// handleBrush lets the user pick a symbol by typing it and paint cells with
// the mouse while the picked symbol is active.
func (g *Game) handleBrush() {
	for _, r := range ebiten.AppendInputChars(nil) {
		g.brush = cell.FromRune(r)
		g.hasBrush = true
	}
	if !g.hasBrush || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if g.scale > 0 {
		x /= g.scale
		y /= g.scale
	}
	if err := g.auto.SetCell(y, x, g.brush); err != nil {
		log.Printf("paint cell: %v", err)
	}
}

// Draw renders the current automaton state and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.auto.State().Cells(), g.palette, g.scale)

	status := fmt.Sprintf("step %d", g.steps)
	if g.paused {
		status += " [paused]"
	}
	if g.hasBrush {
		status += fmt.Sprintf(" brush %q", g.brush.Rune())
	}
	g.overlay.Draw(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.auto.Dimensions()
	return cols * g.scale, rows * g.scale
}
