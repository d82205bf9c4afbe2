package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"mapsketch/internal/core"
)

func TestFillGridRGBA(t *testing.T) {
	g := core.UniformGrid(2, 2, 4, core.RGB{R: 10, G: 20, B: 30})
	sq, _ := g.Get(1, 0)
	sq.SetColor(core.Magenta)

	buf := make([]byte, 2*2*4)
	FillGridRGBA(buf, g)
	assert.Equal(t, []byte{10, 20, 30, 255}, buf[0:4])
	assert.Equal(t, []byte{255, 0, 255, 255}, buf[8:12])
}

func TestFillMaskRGBA(t *testing.T) {
	buf := make([]byte, 3*4)
	for i := range buf {
		buf[i] = 9
	}
	FillMaskRGBA(buf, []bool{true, false, true}, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0, 1, 2, 3, 4}, buf)
}

func TestOutlineMask(t *testing.T) {
	mask := OutlineMask(4, 4, []core.Rect{{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}})
	on := 0
	for _, v := range mask {
		if v {
			on++
		}
	}
	assert.Equal(t, 8, on)
	assert.False(t, mask[1*4+1], "interior stays clear")
	assert.True(t, mask[2*4+2])
}

func TestPointMask(t *testing.T) {
	mask := PointMask(3, 2, []core.Point{{X: 2, Y: 1}, {X: 5, Y: 5}})
	assert.Equal(t, []bool{false, false, false, false, false, true}, mask)
}
