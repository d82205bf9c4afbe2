package quantize

import (
	"image"

	"mapsketch/internal/core"
)

// Pixels is a row-major raw pixel buffer as handed over by a drawing surface.
type Pixels struct {
	Data     []byte
	Width    int
	Height   int
	Channels int
}

// FromImage flattens any decoded image into a 3-channel RGB buffer. Alpha is
// dropped without premultiplication, matching what a painter sees on screen.
func FromImage(img image.Image) *Pixels {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]byte, 0, w*h*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := core.FromColor(img.At(x, y))
			data = append(data, c.R, c.G, c.B)
		}
	}
	return &Pixels{Data: data, Width: w, Height: h, Channels: 3}
}

// At returns the colour at (x, y). Callers must stay in bounds.
func (p *Pixels) At(x, y int) core.RGB {
	i := (y*p.Width + x) * p.Channels
	return core.RGB{R: p.Data[i], G: p.Data[i+1], B: p.Data[i+2]}
}

func (p *Pixels) empty() bool {
	return p == nil || p.Width <= 0 || p.Height <= 0 || len(p.Data) == 0
}
