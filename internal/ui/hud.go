//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"mapsketch/internal/core"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headingColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	selectedColor   = color.RGBA{R: 255, G: 210, B: 90, A: 255}
	buttonFill      = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonIdle      = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the parameter panel to the right of the map view. Integer
// controls are stepped with the +/- buttons, or with Tab to select a row
// and [ / ] to step it.
type HUD struct {
	subject  Subject
	width    int
	panel    *ebiten.Image
	height   int
	snapshot core.ParameterSnapshot

	controls *controlPanel
	setter   core.IntParameterSetter
	offsetX  int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for subject with the given panel width.
func NewHUD(subject Subject, width int) *HUD {
	h := &HUD{width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.SetSubject(subject)
	return h
}

// SetSubject switches the generator the panel describes.
func (h *HUD) SetSubject(subject Subject) {
	h.subject = subject
	h.setter, _ = subject.(core.IntParameterSetter)
	var ctrls []core.ParameterControl
	if provider, ok := subject.(core.ParameterControlsProvider); ok {
		ctrls = provider.ParameterControls()
	}
	h.controls = newControlPanel(ctrls, h.width)
}

// Update refreshes the cached snapshot and handles panel input.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.subject == nil {
		return
	}
	h.offsetX = panelOffsetX
	h.snapshot = h.subject.Parameters()
	var ctrls []core.ParameterControl
	if provider, ok := h.subject.(core.ParameterControlsProvider); ok {
		ctrls = provider.ParameterControls()
	}
	h.controls.refresh(ctrls, h.snapshot)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		h.controls.cycle(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		h.controls.apply(h.setter, h.controls.selected, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		h.controls.apply(h.setter, h.controls.selected, 1)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if row, dir, ok := h.controls.hit(mx-h.offsetX, my); ok {
			h.controls.selected = row
			h.controls.apply(h.setter, row, dir)
		}
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(panelBackground)
	y := h.drawControls()
	h.drawSnapshot(y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) title() string {
	if h.subject == nil || h.subject.Name() == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s controls", h.subject.Name())
}

// drawControls draws the heading and control rows and returns the baseline
// below them.
func (h *HUD) drawControls() int {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title(), face, panelPadding, y, headingColor)
	if len(h.controls.rows) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y+infoSpacing, mutedColor)
		return y + infoSpacing + infoSpacing/2
	}

	for i := range h.controls.rows {
		r := &h.controls.rows[i]
		baseline := r.top + labelBaseline
		fg := labelColor
		if i == h.controls.selected && h.setter != nil {
			fg = selectedColor
		}
		text.Draw(h.panel, r.ctrl.Label, face, panelPadding, baseline, fg)

		value := r.text()
		valueColor := labelColor
		if !r.known {
			valueColor = mutedColor
		}
		x := r.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, x, baseline, valueColor)

		_, canDec := r.next(-1)
		_, canInc := r.next(1)
		h.drawButton(r.minus, "-", canDec && h.setter != nil)
		h.drawButton(r.plus, "+", canInc && h.setter != nil)
	}
	return rowsTop + len(h.controls.rows)*rowHeight + infoSpacing/2
}

// drawSnapshot lists the read-only parameters starting at baseline y.
func (h *HUD) drawSnapshot(y int) {
	face := basicfont.Face7x13
	skip := h.controls.adjustable()
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headingColor)
		y += snapshotLine
		for _, param := range group.Params {
			if skip[param.Key] {
				continue
			}
			text.Draw(h.panel, param.Label+": "+param.Value, face, 2*panelPadding, y, mutedColor)
			y += snapshotLine
		}
		y += snapshotLine / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := buttonFill, labelColor
	if !enabled {
		bg, fg = buttonIdle, mutedColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}
