//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mapsketch/internal/render"
)

// Overlay draws optional highlights on top of the map.
type Overlay struct {
	cols, rows int
	scale      int
	showRooms  bool
	showStairs bool
	painter    *render.GridPainter
	roomTint   color.RGBA
	stairsTint color.RGBA
}

// NewOverlay constructs an overlay for a cols x rows map.
func NewOverlay(cols, rows, scale int) *Overlay {
	return &Overlay{
		cols:       cols,
		rows:       rows,
		scale:      scale,
		showRooms:  true,
		painter:    render.NewGridPainter(cols, rows),
		roomTint:   color.RGBA{R: 255, G: 120, B: 40, A: 140},
		stairsTint: color.RGBA{R: 64, G: 164, B: 223, A: 200},
	}
}

// Update toggles layers: 1 for room outlines, 2 for level connections.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRooms = !o.showRooms
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStairs = !o.showStairs
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, f Features) {
	if o.cols <= 0 || o.rows <= 0 {
		return
	}
	if o.showRooms && len(f.Rooms) > 0 {
		o.painter.BlitMask(screen, render.OutlineMask(o.cols, o.rows, f.Rooms), o.roomTint, o.scale)
	}
	if o.showStairs && len(f.Connections) > 0 {
		o.painter.BlitMask(screen, render.PointMask(o.cols, o.rows, f.Connections), o.stairsTint, o.scale)
	}
}
