package rooms

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

func set(t *testing.T, g *core.Grid, row, col int, c core.RGB) {
	t.Helper()
	sq, ok := g.Get(row, col)
	require.True(t, ok)
	sq.SetColor(c)
}

func colorAt(t *testing.T, g *core.Grid, row, col int) core.RGB {
	t.Helper()
	sq, ok := g.Get(row, col)
	require.True(t, ok)
	return sq.Color()
}

func TestTwoCornerSeedsMeetInTheMiddle(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(5, 5, 1, p.Empty)
	set(t, g, 0, 0, p.Start)
	set(t, g, 4, 4, p.Start)

	gr := New()
	gr.SetGrid(g)
	require.NoError(t, gr.GrowRoomsFromStarts())

	rooms := gr.Rooms()
	require.Len(t, rooms, 2)
	assert.Equal(t, core.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 4}, rooms[0].Bounds)
	assert.Equal(t, core.Rect{MinX: 3, MinY: 0, MaxX: 4, MaxY: 4}, rooms[1].Bounds)
	assert.Equal(t, 5, gr.Rounds())

	for row := 0; row < 5; row++ {
		assert.Equal(t, "ffwff", rowString(t, g, row, p), "row %d", row)
	}
}

// rowString renders one grid row as f (floor), w (wall), e (empty) or ?.
func rowString(t *testing.T, g *core.Grid, row int, p palette.Room) string {
	t.Helper()
	out := make([]byte, g.Cols())
	for col := range out {
		switch colorAt(t, g, row, col) {
		case p.Floor:
			out[col] = 'f'
		case p.Wall:
			out[col] = 'w'
		case p.Empty:
			out[col] = 'e'
		default:
			out[col] = '?'
		}
	}
	return string(out)
}

// walled reports whether a wall's width separates the two rooms.
func walled(a, b core.Rect) bool {
	grown := core.Rect{MinX: b.MinX - 1, MinY: b.MinY - 1, MaxX: b.MaxX + 1, MaxY: b.MaxY + 1}
	return !a.Overlaps(grown)
}

func adjacent(a, b core.Point) bool {
	return max(a.X-b.X, b.X-a.X) <= 1 && max(a.Y-b.Y, b.Y-a.Y) <= 1
}

func TestStoppedRoomKeepsItsWall(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(9, 1, 1, p.Empty)
	set(t, g, 0, 0, p.Start)
	set(t, g, 0, 2, p.Start)
	set(t, g, 0, 8, p.Start)

	gr := New()
	gr.SetGrid(g)
	require.NoError(t, gr.GrowRoomsFromStarts())

	rooms := gr.Rooms()
	require.Len(t, rooms, 3)
	assert.Equal(t, core.Rect{MinX: 0, MinY: 0, MaxX: 0, MaxY: 0}, rooms[0].Bounds)
	assert.Equal(t, core.Rect{MinX: 2, MinY: 0, MaxX: 4, MaxY: 0}, rooms[1].Bounds)
	assert.Equal(t, core.Rect{MinX: 6, MinY: 0, MaxX: 8, MaxY: 0}, rooms[2].Bounds)
	assert.Equal(t, "fwfffwfff", rowString(t, g, 0, p))
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			assert.True(t, walled(rooms[i].Bounds, rooms[j].Bounds), "rooms %d and %d", i, j)
		}
	}
}

func TestRoomsGrowingTowardEachOtherKeepAWall(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(6, 1, 1, p.Empty)
	set(t, g, 0, 1, p.Start)
	set(t, g, 0, 4, p.Start)

	gr := New()
	gr.SetGrid(g)
	require.NoError(t, gr.GrowRoomsFromStarts())

	rooms := gr.Rooms()
	require.Len(t, rooms, 2)
	assert.True(t, walled(rooms[0].Bounds, rooms[1].Bounds), "%v and %v", rooms[0].Bounds, rooms[1].Bounds)
	// Both rooms claim the squares between them in the same round, so both
	// stop and the gap becomes wall.
	assert.Equal(t, "wfwwfw", rowString(t, g, 0, p))
}

func TestLonePillarStopsGrowth(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(7, 7, 1, p.Empty)
	set(t, g, 3, 3, p.Start)
	set(t, g, 3, 4, p.Wall)

	gr := New()
	gr.SetGrid(g)
	require.NoError(t, gr.GrowRoomsFromStarts())

	room := gr.Rooms()[0].Bounds
	assert.Equal(t, core.Rect{MinX: 0, MinY: 0, MaxX: 3, MaxY: 6}, room)
	assert.False(t, room.Contains(core.Point{X: 4, Y: 3}))
	for row := 0; row < 7; row++ {
		assert.Equal(t, "ffffwee", rowString(t, g, row, p), "row %d", row)
	}
}

func TestSingleSeedFillsOpenGrid(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(6, 4, 1, p.Empty)
	set(t, g, 1, 2, p.Start)

	gr := New()
	gr.SetGrid(g)
	require.NoError(t, gr.GrowRoomsFromStarts())

	require.Len(t, gr.Rooms(), 1)
	assert.Equal(t, core.Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 3}, gr.Rooms()[0].Bounds)
	for _, c := range g.Colors() {
		assert.Equal(t, p.Floor, c)
	}
}

func TestPaintedWallsBlockGrowth(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(7, 3, 1, p.Empty)
	for row := 0; row < 3; row++ {
		set(t, g, row, 3, p.Wall)
	}
	set(t, g, 1, 1, p.Start)

	gr := New()
	gr.SetGrid(g)
	require.NoError(t, gr.GrowRoomsFromStarts())

	assert.Equal(t, core.Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, gr.Rooms()[0].Bounds)
	for row := 0; row < 3; row++ {
		for col := 4; col < 7; col++ {
			assert.Equal(t, p.Empty, colorAt(t, g, row, col))
		}
	}
}

func TestGrownRoomsNeverOverlap(t *testing.T) {
	p := palette.DefaultRoom()
	for seed := int64(1); seed <= 20; seed++ {
		g := core.UniformGrid(30, 20, 1, p.Empty)
		gr := New()
		gr.SetSeed(seed)
		gr.SetGrid(g)
		require.NoError(t, gr.AddRandomRoomStarts(6))
		require.NoError(t, gr.GrowRoomsFromStarts())

		rooms := gr.Rooms()
		require.Len(t, rooms, 6)
		for i := range rooms {
			assert.True(t, rooms[i].Bounds.Contains(rooms[i].Seed))
			for j := i + 1; j < len(rooms); j++ {
				assert.False(t, rooms[i].Bounds.Overlaps(rooms[j].Bounds),
					"seed %d: room %d %v overlaps room %d %v", seed, i, rooms[i].Bounds, j, rooms[j].Bounds)
				if !adjacent(rooms[i].Seed, rooms[j].Seed) {
					assert.True(t, walled(rooms[i].Bounds, rooms[j].Bounds),
						"seed %d: rooms %d %v and %d %v share floor", seed, i, rooms[i].Bounds, j, rooms[j].Bounds)
				}
			}
		}
		for _, c := range g.Colors() {
			assert.NotEqual(t, p.Start, c, "seed %d: room start left unpainted", seed)
		}
	}
}

func TestGrowthPreservesSketchedFeatures(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(9, 9, 1, p.Empty)
	set(t, g, 4, 4, p.Start)
	set(t, g, 2, 2, p.Door)
	set(t, g, 6, 5, p.Stairs)

	gr := New()
	gr.SetGrid(g)
	require.NoError(t, gr.GrowRoomsFromStarts())

	assert.Equal(t, p.Door, colorAt(t, g, 2, 2))
	assert.Equal(t, p.Stairs, colorAt(t, g, 6, 5))
	room := gr.Rooms()[0].Bounds
	assert.False(t, room.Contains(core.Point{X: 2, Y: 2}), "door inside %v", room)
	assert.False(t, room.Contains(core.Point{X: 5, Y: 6}), "stairs inside %v", room)
}

func TestAddRandomRoomStarts(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(10, 10, 1, p.Empty)
	set(t, g, 0, 0, p.Wall)

	gr := New()
	gr.SetSeed(7)
	gr.SetGrid(g)
	require.NoError(t, gr.AddRandomRoomStarts(5))

	starts := 0
	for _, c := range g.Colors() {
		if c == p.Start {
			starts++
		}
	}
	assert.Equal(t, 5, starts)
	assert.Equal(t, p.Wall, colorAt(t, g, 0, 0))
}

func TestAddRandomRoomStartsDefaultCount(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(16, 16, 1, p.Empty)
	gr := New()
	gr.SetSeed(3)
	gr.SetGrid(g)
	require.NoError(t, gr.AddRandomRoomStarts(0))

	starts := 0
	for _, c := range g.Colors() {
		if c == p.Start {
			starts++
		}
	}
	lo, hi := DefaultStartRange(16, 16)
	assert.Equal(t, 4, lo)
	assert.Equal(t, 8, hi)
	assert.GreaterOrEqual(t, starts, lo)
	assert.LessOrEqual(t, starts, hi)
}

func TestAddRandomRoomStartsNotEnoughEmpty(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(3, 1, 1, p.Wall)
	set(t, g, 0, 1, p.Empty)
	before := g.Colors()

	gr := New()
	gr.SetGrid(g)
	err := gr.AddRandomRoomStarts(2)
	require.ErrorIs(t, err, ErrNotEnoughEmpty)
	assert.True(t, slices.Equal(before, g.Colors()), "grid must be untouched")
}

func TestOperationsWithoutGrid(t *testing.T) {
	gr := New()
	assert.ErrorIs(t, gr.AddRandomRoomStarts(1), ErrNoGrid)
	assert.ErrorIs(t, gr.GrowRoomsFromStarts(), ErrNoGrid)
}

func TestGrowWithoutStartsLeavesGrid(t *testing.T) {
	p := palette.DefaultRoom()
	g := core.UniformGrid(4, 4, 1, p.Empty)
	gr := New()
	gr.SetGrid(g)
	assert.ErrorIs(t, gr.GrowRoomsFromStarts(), ErrNoRoomStarts)
	for _, c := range g.Colors() {
		assert.Equal(t, p.Empty, c)
	}
}

func TestUnbuiltOperations(t *testing.T) {
	gr := New()
	assert.ErrorIs(t, gr.GrowRoomsLShaped(), ErrNotImplemented)
	_, err := gr.CalculateConnectivity()
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.ErrorIs(t, gr.EnforceConnectivity(2), ErrNotImplemented)
}

func TestParametersReportPalette(t *testing.T) {
	gr := New()
	gr.SetPalette(palette.LegacyRoom())
	snap := gr.Parameters()
	require.Len(t, snap.Groups, 2)
	assert.Equal(t, "#e6e6e6", snap.Groups[1].Params[2].Value)
}
