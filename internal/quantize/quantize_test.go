package quantize

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

func solid(w, h int, c core.RGB) *Pixels {
	data := make([]byte, 0, w*h*3)
	for i := 0; i < w*h; i++ {
		data = append(data, c.R, c.G, c.B)
	}
	return &Pixels{Data: data, Width: w, Height: h, Channels: 3}
}

func set(p *Pixels, x, y int, c core.RGB) {
	i := (y*p.Width + x) * 3
	p.Data[i], p.Data[i+1], p.Data[i+2] = c.R, c.G, c.B
}

func TestAllBlackSketchBecomesWall(t *testing.T) {
	cave := palette.DefaultCave()
	g, err := Quantize(solid(4, 4, palette.Black), Options{PixelScale: 2, SubpixelScale: 1, Palette: cave})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	for _, sq := range g.Squares() {
		assert.Equal(t, palette.CaveWall, cave.Kind(sq.Color()))
		assert.Equal(t, 2, sq.Width())
	}
}

func TestUnevenImageShiftsLastSquare(t *testing.T) {
	g, err := Quantize(solid(5, 7, palette.White), Options{PixelScale: 3, SubpixelScale: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 3, g.Rows())
	last, ok := g.Get(2, 1)
	require.True(t, ok)
	assert.Equal(t, 2, last.X())
	assert.Equal(t, 4, last.Y())
	for _, sq := range g.Squares() {
		assert.LessOrEqual(t, sq.X()+sq.Width(), g.ImageWidth())
		assert.LessOrEqual(t, sq.Y()+sq.Height(), g.ImageHeight())
	}
}

func TestOversizedCellClampsToImage(t *testing.T) {
	g, err := Quantize(solid(3, 2, palette.White), Options{PixelScale: 4, SubpixelScale: 2})
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	assert.Equal(t, 3, g.Squares()[0].Width())
	assert.Equal(t, 2, g.Squares()[0].Height())
}

func TestStairsOutvoteLargerRegions(t *testing.T) {
	px := solid(4, 4, palette.White)
	set(px, 0, 0, palette.Green)

	g, err := Quantize(px, Options{PixelScale: 4, SubpixelScale: 1, Palette: palette.DefaultCave()})
	require.NoError(t, err)
	assert.Equal(t, palette.Green, g.Squares()[0].Color())
}

func TestMagentaNeverWins(t *testing.T) {
	px := solid(2, 2, core.Magenta)
	set(px, 1, 1, palette.Black)

	g, err := Quantize(px, Options{PixelScale: 2, SubpixelScale: 1, Palette: palette.DefaultCave()})
	require.NoError(t, err)
	assert.Equal(t, palette.Black, g.Squares()[0].Color())
}

func TestAntialiasingSnapsToPalette(t *testing.T) {
	px := solid(2, 2, core.RGB{R: 30, G: 30, B: 30})
	set(px, 0, 0, palette.White)

	g, err := Quantize(px, Options{PixelScale: 2, SubpixelScale: 1, Palette: palette.DefaultCave()})
	require.NoError(t, err)
	assert.Equal(t, palette.Black, g.Squares()[0].Color())

	g, err = Quantize(px, Options{PixelScale: 2, SubpixelScale: 1})
	require.NoError(t, err)
	assert.Equal(t, core.RGB{R: 30, G: 30, B: 30}, g.Squares()[0].Color())
}

func TestTieGoesToFirstSeenColour(t *testing.T) {
	px := solid(2, 1, palette.Black)
	set(px, 1, 0, palette.White)

	g, err := Quantize(px, Options{PixelScale: 2, SubpixelScale: 1, Palette: palette.DefaultCave()})
	require.NoError(t, err)
	assert.Equal(t, palette.Black, g.Squares()[0].Color())
}

func TestQuantizeFailures(t *testing.T) {
	_, err := Quantize(nil, Options{PixelScale: 1, SubpixelScale: 1})
	assert.ErrorIs(t, err, ErrNoImage)

	px := solid(2, 2, palette.White)
	px.Channels = 4
	_, err = Quantize(px, Options{PixelScale: 1, SubpixelScale: 1})
	assert.ErrorIs(t, err, ErrUnsupportedDepth)

	_, err = Quantize(solid(2, 2, palette.White), Options{PixelScale: 0, SubpixelScale: 1})
	assert.ErrorIs(t, err, ErrInvalidScale)
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.Set(1, 0, color.NRGBA{R: 4, G: 5, B: 6, A: 128})

	px := FromImage(img)
	require.NotNil(t, px)
	assert.Equal(t, 3, px.Channels)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, px.Data)
	assert.Nil(t, FromImage(nil))
}
