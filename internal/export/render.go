// Package export turns generated grids back into images and records how
// each one was made.
package export

import (
	"image"
	"image/draw"

	"mapsketch/internal/core"
)

// Render paints every square over its full pixel rectangle on an image the
// size of the grid's source. Later squares win where squares overlap.
func Render(g *core.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.ImageWidth(), g.ImageHeight()))
	for _, sq := range g.Squares() {
		r := image.Rect(sq.X(), sq.Y(), sq.X()+sq.Width(), sq.Y()+sq.Height())
		draw.Draw(img, r, image.NewUniform(sq.Color().RGBA()), image.Point{}, draw.Src)
	}
	return img
}
