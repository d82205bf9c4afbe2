package render

import (
	"image/color"

	"mapsketch/internal/core"
)

// FillGridRGBA writes one opaque pixel per square into buf in row-major
// order. Positions without a square are cleared to transparent black.
func FillGridRGBA(buf []byte, g *core.Grid) {
	squares := g.Squares()
	total := g.Rows() * g.Cols()
	for i := 0; i < total && i*4+3 < len(buf); i++ {
		base := i * 4
		if i >= len(squares) {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		c := squares[i].Color()
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 255
	}
}

// FillMaskRGBA converts a boolean mask into tinted pixels; unset cells are
// transparent.
func FillMaskRGBA(buf []byte, mask []bool, tint color.RGBA) {
	for i, on := range mask {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		if on {
			buf[base+0] = tint.R
			buf[base+1] = tint.G
			buf[base+2] = tint.B
			buf[base+3] = tint.A
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}

// OutlineMask marks the edge squares of every rectangle on a cols x rows
// grid.
func OutlineMask(cols, rows int, rects []core.Rect) []bool {
	mask := make([]bool, cols*rows)
	for _, r := range rects {
		for y := r.MinY; y <= r.MaxY; y++ {
			for x := r.MinX; x <= r.MaxX; x++ {
				if x < 0 || y < 0 || x >= cols || y >= rows {
					continue
				}
				if x == r.MinX || x == r.MaxX || y == r.MinY || y == r.MaxY {
					mask[y*cols+x] = true
				}
			}
		}
	}
	return mask
}

// PointMask marks the listed squares on a cols x rows grid.
func PointMask(cols, rows int, points []core.Point) []bool {
	mask := make([]bool, cols*rows)
	for _, p := range points {
		if p.X >= 0 && p.Y >= 0 && p.X < cols && p.Y < rows {
			mask[p.Y*cols+p.X] = true
		}
	}
	return mask
}
