package cave

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

func paint(t *testing.T, g *core.Grid, row, col int, c core.RGB) {
	t.Helper()
	sq, ok := g.Get(row, col)
	require.True(t, ok)
	sq.SetColor(c)
}

func noiseGrid(cols, rows int, seed int64) *core.Grid {
	g := core.UniformGrid(cols, rows, 1, palette.White)
	rng := core.NewRNG(seed)
	g.Each(func(_ int, sq *core.Square) {
		switch r := rng.Float64(); {
		case r < 0.45:
			sq.SetColor(palette.Black)
		case r < 0.48:
			sq.SetColor(palette.Green)
		case r < 0.50:
			sq.SetColor(core.RGB{R: 90, G: 10, B: 10})
		}
	})
	return g
}

func TestAllWallGridStaysWall(t *testing.T) {
	g := core.UniformGrid(3, 3, 1, palette.Black)
	ca := New(1, 5)
	ca.SetGrid(g)

	require.True(t, ca.RunGeneration())
	for _, sq := range g.Squares() {
		assert.Equal(t, palette.Black, sq.Color())
	}
	assert.Equal(t, 1, ca.Generations())
}

func TestNeighborCountBoundaryBonus(t *testing.T) {
	g := core.UniformGrid(3, 3, 1, palette.White)
	ca := New(1, 5)

	_, ok := ca.NeighborCount(0, 0, palette.CaveWall)
	assert.False(t, ok, "no grid set")

	ca.SetGrid(g)
	cases := []struct {
		row, col int
		want     int
	}{
		{0, 0, 6},
		{0, 1, 3},
		{1, 1, 0},
		{2, 2, 6},
	}
	for _, tc := range cases {
		got, ok := ca.NeighborCount(tc.row, tc.col, palette.CaveWall)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "(%d,%d)", tc.row, tc.col)
	}

	paint(t, g, 0, 1, palette.Black)
	got, _ := ca.NeighborCount(1, 1, palette.CaveWall)
	assert.Equal(t, 1, got)
	got, _ = ca.NeighborCount(0, 1, palette.CaveWall)
	assert.Equal(t, 3, got, "centre cell is excluded")
}

func TestNeighborCountAllFourSides(t *testing.T) {
	g := core.UniformGrid(1, 1, 1, palette.White)
	ca := New(2, 5)
	ca.SetGrid(g)

	got, ok := ca.NeighborCount(0, 0, palette.CaveWall)
	require.True(t, ok)
	assert.Equal(t, 12, got)
}

func TestRunGenerationWithoutGridFails(t *testing.T) {
	ca := New(1, 5)
	assert.False(t, ca.RunGeneration())
	assert.Equal(t, 0, ca.Generations())

	n, err := ca.Run(3)
	assert.ErrorIs(t, err, ErrNoGrid)
	assert.Equal(t, 0, n)
}

func TestIsolatedCellsSmoothAway(t *testing.T) {
	g := core.UniformGrid(5, 5, 1, palette.White)
	paint(t, g, 2, 2, palette.Black)
	ca := New(1, 5)
	ca.SetGrid(g)
	require.True(t, ca.RunGeneration())

	sq, _ := g.Get(2, 2)
	assert.Equal(t, palette.White, sq.Color(), "lone wall becomes floor")

	g = core.UniformGrid(5, 5, 1, palette.Black)
	paint(t, g, 2, 2, palette.White)
	ca.SetGrid(g)
	require.True(t, ca.RunGeneration())
	sq, _ = g.Get(2, 2)
	assert.Equal(t, palette.Black, sq.Color(), "lone floor becomes wall")
}

func TestGenerationIsDeterministic(t *testing.T) {
	a := noiseGrid(24, 18, 11)
	b := a.Clone()

	caA, caB := New(1, 5), New(1, 5)
	caA.SetGrid(a)
	caB.SetGrid(b)
	for i := 0; i < 4; i++ {
		require.True(t, caA.RunGeneration())
		require.True(t, caB.RunGeneration())
	}
	assert.True(t, slices.Equal(a.Colors(), b.Colors()))
}

func TestOnlyWallAndFloorChange(t *testing.T) {
	g := noiseGrid(20, 20, 3)
	before := g.Colors()
	p := palette.DefaultCave()

	ca := New(2, 13)
	ca.SetGrid(g)
	_, err := ca.Run(5)
	require.NoError(t, err)

	for i, c := range g.Colors() {
		switch p.Kind(before[i]) {
		case palette.CaveWall, palette.CaveFloor:
			k := p.Kind(c)
			assert.True(t, k == palette.CaveWall || k == palette.CaveFloor)
		default:
			assert.Equal(t, before[i], c, "square %d", i)
		}
	}
}

func TestSetIntParameterClamps(t *testing.T) {
	ca := New(1, 5)
	assert.True(t, ca.SetIntParameter("neighborhood_threshold", 999))
	assert.Equal(t, MaxThreshold(1), ca.Config().NeighborhoodThreshold)
	assert.True(t, ca.SetIntParameter("neighborhood_size", 0))
	assert.Equal(t, 1, ca.Config().NeighborhoodSize)
	assert.False(t, ca.SetIntParameter("nope", 1))

	snap := ca.Parameters()
	require.NotEmpty(t, snap.Groups)
	assert.Equal(t, "neighborhood_size", snap.Groups[0].Params[0].Key)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"size": "2", "threshold": "x"})
	assert.Equal(t, 2, cfg.NeighborhoodSize)
	assert.Equal(t, DefaultConfig().NeighborhoodThreshold, cfg.NeighborhoodThreshold)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestParameterControlsTrackRadius(t *testing.T) {
	ca := New(2, 5)
	controls := ca.ParameterControls()
	require.Len(t, controls, 2)
	assert.Equal(t, MaxThreshold(2), controls[1].Max)
	assert.Equal(t, 36, controls[1].Max)
}
