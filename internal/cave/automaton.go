// Package cave smooths a sketched cave with a wall-majority cellular automaton.
package cave

import (
	"errors"
	"log/slog"

	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

// ErrNoGrid is returned when a generation is requested before SetGrid.
var ErrNoGrid = errors.New("cave: no grid set")

// boundaryBonus is added to the target count for every side on which the
// neighbourhood is clamped at the grid edge. It keeps border cells walled
// so caves do not leak off the map; it is not an exact out-of-bounds model.
const boundaryBonus = 3

// Automaton reclassifies Wall and Floor cells from a snapshot of their
// neighbourhood, one generation at a time.
type Automaton struct {
	cfg         Config
	generations int
	grid        *core.Grid
	palette     palette.Cave
	logger      *slog.Logger
}

// New returns an automaton with the given radius and wall threshold.
func New(size, threshold int) *Automaton {
	return NewWithConfig(Config{NeighborhoodSize: size, NeighborhoodThreshold: threshold})
}

// NewWithConfig returns an automaton configured from cfg. Radii below 1 are
// raised to 1.
func NewWithConfig(cfg Config) *Automaton {
	if cfg.NeighborhoodSize < 1 {
		cfg.NeighborhoodSize = 1
	}
	return &Automaton{cfg: cfg, palette: palette.DefaultCave(), logger: slog.Default()}
}

// Name returns the generator identifier.
func (a *Automaton) Name() string { return "cave" }

// Config returns the active rule.
func (a *Automaton) Config() Config { return a.cfg }

// SetGrid hands the automaton exclusive use of g.
func (a *Automaton) SetGrid(g *core.Grid) { a.grid = g }

// Grid returns the grid being smoothed, or nil.
func (a *Automaton) Grid() *core.Grid { return a.grid }

// SetPalette replaces the cave palette used for classification.
func (a *Automaton) SetPalette(p palette.Cave) { a.palette = p }

// SetLogger replaces the logger. Nil restores slog.Default.
func (a *Automaton) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	a.logger = l
}

// Generations reports how many generations have completed.
func (a *Automaton) Generations() int { return a.generations }

// ResetGenerations zeroes the generation count, for when the grid has been
// restored from outside.
func (a *Automaton) ResetGenerations() { a.generations = 0 }

// NeighborCount counts cells of the target kind around (row, col), the
// centre excluded. Each clamped side adds the boundary bonus. It reports
// false only when no grid is set.
func (a *Automaton) NeighborCount(row, col int, target palette.CaveKind) (int, bool) {
	if a.grid == nil {
		return 0, false
	}
	return a.count(a.kinds(), row, col, target), true
}

// RunGeneration advances one generation. It returns false, leaving the grid
// untouched, when no grid is set.
func (a *Automaton) RunGeneration() bool {
	g := a.grid
	if g == nil {
		return false
	}

	kinds := a.kinds()
	rows, cols := g.Rows(), g.Cols()
	next := make([]palette.CaveKind, len(kinds))
	copy(next, kinds)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := g.Index(row, col)
			if idx >= len(kinds) {
				continue
			}
			switch kinds[idx] {
			case palette.CaveWall, palette.CaveFloor:
			default:
				continue
			}
			if a.count(kinds, row, col, palette.CaveWall) >= a.cfg.NeighborhoodThreshold {
				next[idx] = palette.CaveWall
			} else {
				next[idx] = palette.CaveFloor
			}
		}
	}

	for i, k := range next {
		if k != kinds[i] {
			g.SetColorAt(i, a.palette.KindColor(k))
		}
	}
	a.generations++
	return true
}

// Run advances n generations and returns how many completed.
func (a *Automaton) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if !a.RunGeneration() {
			return i, ErrNoGrid
		}
	}
	return n, nil
}

func (a *Automaton) kinds() []palette.CaveKind {
	colors := a.grid.Colors()
	out := make([]palette.CaveKind, len(colors))
	for i, c := range colors {
		out[i] = a.palette.Kind(c)
	}
	return out
}

func (a *Automaton) count(kinds []palette.CaveKind, row, col int, target palette.CaveKind) int {
	g := a.grid
	size := a.cfg.NeighborhoodSize
	count := 0

	top, bottom := row-size, row+size
	left, right := col-size, col+size
	if top < 0 {
		top = 0
		count += boundaryBonus
	}
	if bottom > g.Rows()-1 {
		bottom = g.Rows() - 1
		count += boundaryBonus
	}
	if left < 0 {
		left = 0
		count += boundaryBonus
	}
	if right > g.Cols()-1 {
		right = g.Cols() - 1
		count += boundaryBonus
	}

	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			if r == row && c == col {
				continue
			}
			idx := g.Index(r, c)
			if idx < 0 || idx >= len(kinds) {
				a.logger.Warn("neighbour index outside grid; skipping",
					"row", r, "col", c, "index", idx, "squares", len(kinds))
				continue
			}
			if kinds[idx] == target {
				count++
			}
		}
	}
	return count
}
