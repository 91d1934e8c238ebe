//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a one-line status readout on top of the simulation view.
type Overlay struct {
	hidden bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the status line with a drop shadow for readability.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if o.hidden || status == "" {
		return
	}
	face := basicfont.Face7x13
	text.Draw(screen, status, face, 5, 14, color.RGBA{A: 200})
	text.Draw(screen, status, face, 4, 13, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
