//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"mapsketch/internal/core"
)

// GridPainter uploads one pixel per square and scales it onto the screen.
type GridPainter struct {
	cols, rows int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a cols x rows grid.
func NewGridPainter(cols, rows int) *GridPainter {
	return &GridPainter{
		cols: cols,
		rows: rows,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, cols*rows*4),
	}
}

// Blit draws g onto screen at the given scale.
func (p *GridPainter) Blit(screen *ebiten.Image, g *core.Grid, scale int) {
	FillGridRGBA(p.buf, g)
	p.draw(screen, scale)
}

// BlitMask draws a tinted mask, for overlays.
func (p *GridPainter) BlitMask(screen *ebiten.Image, mask []bool, tint color.RGBA, scale int) {
	if len(mask) != p.cols*p.rows {
		return
	}
	FillMaskRGBA(p.buf, mask, tint)
	p.draw(screen, scale)
}

func (p *GridPainter) draw(screen *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
