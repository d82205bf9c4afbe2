package palette

import "mapsketch/internal/core"

// SnapDistance is the largest mean absolute channel difference at which a
// stray pixel is still counted as its nearest palette colour.
const SnapDistance = 150

// Set is the view of a palette the quantizer and reports work with.
type Set interface {
	Preferred() []core.RGB
	StairsColor() core.RGB
	Label(c core.RGB) string
}

var (
	_ Set = Cave{}
	_ Set = Room{}
)

// Distance is the mean absolute per-channel difference between a and b.
func Distance(a, b core.RGB) float64 {
	return float64(absDiff(a.R, b.R)+absDiff(a.G, b.G)+absDiff(a.B, b.B)) / 3
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Nearest returns the first preferred colour at the smallest distance from c.
func Nearest(c core.RGB, preferred []core.RGB) (core.RGB, float64, bool) {
	if len(preferred) == 0 {
		return core.RGB{}, 0, false
	}
	best := preferred[0]
	bestD := Distance(c, best)
	for _, p := range preferred[1:] {
		if d := Distance(c, p); d < bestD {
			best, bestD = p, d
		}
	}
	return best, bestD, true
}

// Snap maps anti-aliased stroke colours onto the palette. Exact members and
// the magenta sentinel pass through unchanged, as does anything further than
// SnapDistance from every preferred colour.
func Snap(c core.RGB, preferred []core.RGB) core.RGB {
	if c == core.Magenta {
		return c
	}
	for _, p := range preferred {
		if p == c {
			return c
		}
	}
	best, d, ok := Nearest(c, preferred)
	if !ok || d > SnapDistance {
		return c
	}
	return best
}

// Find lists the positions of every square carrying colour c, row by row.
// The sketch tools use it to enumerate stairs as level connections.
func Find(g *core.Grid, c core.RGB) []core.Point {
	var out []core.Point
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			sq, ok := g.Get(row, col)
			if ok && sq.Color() == c {
				out = append(out, core.Point{X: col, Y: row})
			}
		}
	}
	return out
}
