package render

import (
	"image/color"

	"gridca/pkg/cell"
)

// Palette maps every cell value to a display color.
type Palette [256]color.RGBA

// NewPalette builds a palette from a color table; unmapped cells stay
// transparent black.
func NewPalette(colors map[cell.Cell]color.RGBA) Palette {
	var p Palette
	for c, col := range colors {
		p[c] = col
	}
	return p
}

// fillRGBA converts cell data into RGBA pixels in buf using the palette.
func fillRGBA(buf []byte, cells []cell.Cell, palette Palette) {
	for i, c := range cells {
		base := i * 4
		col := palette[c]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
