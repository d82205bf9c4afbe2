// Package rooms places room seeds on a sketch and grows them into
// non-overlapping rectangles by simultaneous, conflict-resolved expansion.
package rooms

import (
	"errors"
	"fmt"
	"log/slog"

	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

var (
	// ErrNoGrid is returned when an operation is requested before SetGrid.
	ErrNoGrid = errors.New("rooms: no grid set")
	// ErrNotEnoughEmpty is returned when fewer empty squares exist than
	// requested room starts.
	ErrNotEnoughEmpty = errors.New("rooms: not enough empty squares")
	// ErrNoRoomStarts is returned when growth is requested on a grid
	// without any room start.
	ErrNoRoomStarts = errors.New("rooms: no room starts")
	// ErrNotImplemented marks operations that are designed but not built.
	ErrNotImplemented = errors.New("rooms: not implemented")
)

// Room is a grown rectangle and the seed it started from.
type Room struct {
	ID     int        `yaml:"id"`
	Seed   core.Point `yaml:"seed"`
	Bounds core.Rect  `yaml:"bounds"`
}

// Grower runs constrained room growth on a grid it holds exclusively.
type Grower struct {
	grid    *core.Grid
	palette palette.Room
	rng     *core.RNG
	logger  *slog.Logger

	rooms  []Room
	rounds int
}

// New returns a grower seeded from the wall clock.
func New() *Grower {
	return &Grower{palette: palette.DefaultRoom(), rng: core.NewTimeRNG(), logger: slog.Default()}
}

// Name returns the generator identifier.
func (g *Grower) Name() string { return "rooms" }

// SetGrid hands the grower exclusive use of grid.
func (g *Grower) SetGrid(grid *core.Grid) { g.grid = grid }

// Grid returns the grid being worked on, or nil.
func (g *Grower) Grid() *core.Grid { return g.grid }

// SetPalette replaces the room palette.
func (g *Grower) SetPalette(p palette.Room) { g.palette = p }

// SetSeed makes room start placement reproducible.
func (g *Grower) SetSeed(seed int64) { g.rng = core.NewRNG(seed) }

// SetLogger replaces the logger. Nil restores slog.Default.
func (g *Grower) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	g.logger = l
}

// Rooms returns the rectangles produced by the last successful growth.
func (g *Grower) Rooms() []Room { return g.rooms }

// Rounds reports how many claim rounds the last growth took.
func (g *Grower) Rounds() int { return g.rounds }

// Forget drops the result of the last growth.
func (g *Grower) Forget() {
	g.rooms = nil
	g.rounds = 0
}

// DefaultStartRange is the span the room start count is drawn from when the
// caller does not choose one.
func DefaultStartRange(rows, cols int) (lo, hi int) {
	lo = max(1, (rows+cols)/8)
	hi = max(lo, (rows+cols)/4)
	return lo, hi
}

// AddRandomRoomStarts marks count distinct empty squares as room starts.
// A count of zero or less picks one from DefaultStartRange. Nothing is
// changed when there are too few empty squares.
func (g *Grower) AddRandomRoomStarts(count int) error {
	if g.grid == nil {
		return ErrNoGrid
	}
	if count <= 0 {
		count = g.rng.IntRange(DefaultStartRange(g.grid.Rows(), g.grid.Cols()))
	}

	var empty []int
	for i, sq := range g.grid.Squares() {
		if g.palette.Kind(sq.Color()) == palette.RoomEmpty {
			empty = append(empty, i)
		}
	}
	if len(empty) < count {
		return fmt.Errorf("%w: want %d room starts, have %d empty squares", ErrNotEnoughEmpty, count, len(empty))
	}

	for _, pick := range g.rng.Sample(len(empty), count) {
		g.grid.SetColorAt(empty[pick], g.palette.Start)
	}
	g.logger.Debug("added room starts", "count", count, "empty", len(empty))
	return nil
}

// GrowRoomsLShaped would extend grown rectangles into L shapes.
func (g *Grower) GrowRoomsLShaped() error {
	return fmt.Errorf("L-shaped growth: %w", ErrNotImplemented)
}

// CalculateConnectivity would return the minimum number of rooms one must
// pass through to reach every point of the map.
func (g *Grower) CalculateConnectivity() (int, error) {
	return 0, fmt.Errorf("connectivity calculation: %w", ErrNotImplemented)
}

// EnforceConnectivity would add doors until connectivity reaches minimum.
func (g *Grower) EnforceConnectivity(minimum int) error {
	return fmt.Errorf("connectivity enforcement (minimum %d): %w", minimum, ErrNotImplemented)
}
