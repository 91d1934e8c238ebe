//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gridca/pkg/cell"
)

// GridPainter updates a single RGBA image from cell data and draws it
// scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid with the given dimensions.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{w: cols, h: rows, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []cell.Cell, palette Palette, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image as (cols, rows).
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
