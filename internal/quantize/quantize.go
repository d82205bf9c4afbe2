// Package quantize turns a painted sketch into a grid of single-colour
// squares by per-square majority vote, biased toward a palette.
package quantize

import (
	"errors"
	"fmt"
	"log/slog"

	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

var (
	// ErrNoImage is returned when there is no pixel data to quantize.
	ErrNoImage = errors.New("no image to quantize")
	// ErrUnsupportedDepth is returned for buffers that are not 3 channels per pixel.
	ErrUnsupportedDepth = errors.New("unsupported colour depth")
	// ErrInvalidScale is returned when either scale is below 1.
	ErrInvalidScale = errors.New("scale must be at least 1")
)

const (
	// StairsWeight multiplies stairs votes so small stairs survive large
	// wall and floor regions.
	StairsWeight = 500
	// SentinelWeight multiplies votes for the magenta debug colour.
	SentinelWeight = 0
)

// Options configures a quantization pass.
type Options struct {
	PixelScale    int
	SubpixelScale int
	// Palette biases the vote. Nil disables snapping; stairs still use the
	// default green.
	Palette palette.Set
	Logger  *slog.Logger
}

// CellSide is the edge length of a square in source pixels.
func (o Options) CellSide() int { return o.PixelScale * o.SubpixelScale }

// Quantize partitions px into CellSide squares and colours each with the
// winner of its pixel vote. The image dimensions pass through to the grid.
func Quantize(px *Pixels, opts Options) (*core.Grid, error) {
	if px.empty() {
		return nil, ErrNoImage
	}
	if px.Channels != 3 {
		return nil, fmt.Errorf("%w: %d channels per pixel", ErrUnsupportedDepth, px.Channels)
	}
	if len(px.Data) < px.Width*px.Height*3 {
		return nil, fmt.Errorf("%w: buffer holds %d bytes for %dx%d pixels", ErrNoImage, len(px.Data), px.Width, px.Height)
	}
	if opts.PixelScale < 1 || opts.SubpixelScale < 1 {
		return nil, fmt.Errorf("%w: pixel=%d subpixel=%d", ErrInvalidScale, opts.PixelScale, opts.SubpixelScale)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var preferred []core.RGB
	stairs := palette.Green
	if opts.Palette != nil {
		preferred = opts.Palette.Preferred()
		stairs = opts.Palette.StairsColor()
	}

	side := opts.CellSide()
	xs := origins(px.Width, side)
	ys := origins(px.Height, side)
	cw, ch := min(side, px.Width), min(side, px.Height)

	squares := make([]core.Square, 0, len(xs)*len(ys))
	var v vote
	for _, y := range ys {
		for _, x := range xs {
			v.reset()
			for py := y; py < y+ch; py++ {
				for pxl := x; pxl < x+cw; pxl++ {
					c := px.At(pxl, py)
					if preferred != nil {
						c = palette.Snap(c, preferred)
					}
					v.add(c)
				}
			}
			squares = append(squares, core.NewSquare(x, y, cw, ch).WithColor(v.winner(stairs)))
		}
	}

	g, err := core.NewGrid(squares, px.Width, px.Height)
	if err != nil {
		return nil, err
	}
	logger.Debug("quantized sketch",
		"width", px.Width, "height", px.Height, "cell_side", side,
		"rows", g.Rows(), "cols", g.Cols())
	return g, nil
}

// origins steps through [0, length) in side increments. The final origin is
// pulled back so the last square ends exactly at length, overlapping its
// neighbour instead of shrinking.
func origins(length, side int) []int {
	if side >= length {
		return []int{0}
	}
	var out []int
	for start := 0; start < length; start += side {
		if start+side > length {
			start = length - side
		}
		out = append(out, start)
	}
	return out
}

// vote tallies colours in first-seen order.
type vote struct {
	order  []core.RGB
	counts map[core.RGB]int
}

func (v *vote) reset() {
	v.order = v.order[:0]
	if v.counts == nil {
		v.counts = make(map[core.RGB]int)
		return
	}
	clear(v.counts)
}

func (v *vote) add(c core.RGB) {
	if _, ok := v.counts[c]; !ok {
		v.order = append(v.order, c)
	}
	v.counts[c]++
}

// winner applies the fixed multipliers and returns the heaviest colour,
// the earliest seen on ties.
func (v *vote) winner(stairs core.RGB) core.RGB {
	best := core.RGB{}
	bestWeight := -1
	for _, c := range v.order {
		w := v.counts[c]
		switch c {
		case stairs:
			w *= StairsWeight
		case core.Magenta:
			w *= SentinelWeight
		}
		if w > bestWeight {
			best, bestWeight = c, w
		}
	}
	return best
}
