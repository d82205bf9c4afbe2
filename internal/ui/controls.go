package ui

import (
	"image"
	"strconv"

	"mapsketch/internal/core"
)

// Panel geometry, in panel pixels.
const (
	panelPadding   = 12
	rowHeight      = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	snapshotLine   = 16
	rowsTop        = panelPadding + headerBaseline + 14
)

// controlRow is one adjustable integer parameter and its buttons.
type controlRow struct {
	ctrl  core.ParameterControl
	value int
	known bool

	top         int
	minus, plus image.Rectangle
}

// text is the value as shown in the panel.
func (r *controlRow) text() string {
	if !r.known {
		return "--"
	}
	return strconv.Itoa(r.value)
}

// next is the value one step in direction and whether it differs from the
// current one.
func (r *controlRow) next(direction int) (int, bool) {
	if !r.known || direction == 0 {
		return 0, false
	}
	step := max(r.ctrl.Step, 1)
	v := r.ctrl.Clamp(r.value + direction*step)
	return v, v != r.value
}

// controlPanel holds the rows for a subject's controls. selected is the row
// the keyboard adjusts.
type controlPanel struct {
	rows     []controlRow
	selected int
}

func newControlPanel(ctrls []core.ParameterControl, width int) *controlPanel {
	p := &controlPanel{rows: make([]controlRow, len(ctrls))}
	for i, c := range ctrls {
		top := rowsTop + i*rowHeight
		y := top + (rowHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		p.rows[i] = controlRow{ctrl: c, top: top, minus: minus, plus: plus}
	}
	return p
}

// refresh picks up new ranges and the current values from snap. Ranges can
// depend on other parameters, so both are reread every tick.
func (p *controlPanel) refresh(ctrls []core.ParameterControl, snap core.ParameterSnapshot) {
	for i := range p.rows {
		if i < len(ctrls) {
			p.rows[i].ctrl = ctrls[i]
		}
	}
	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, param := range g.Params {
			values[param.Key] = param.Value
		}
	}
	for i := range p.rows {
		r := &p.rows[i]
		v, err := strconv.Atoi(values[r.ctrl.Key])
		r.value, r.known = v, err == nil
	}
}

// hit reports which row and direction a click at (x, y) lands on.
func (p *controlPanel) hit(x, y int) (row, direction int, ok bool) {
	pt := image.Pt(x, y)
	for i, r := range p.rows {
		switch {
		case pt.In(r.minus):
			return i, -1, true
		case pt.In(r.plus):
			return i, 1, true
		}
	}
	return 0, 0, false
}

// apply steps row in direction through setter. It reports whether the
// value changed.
func (p *controlPanel) apply(setter core.IntParameterSetter, row, direction int) bool {
	if setter == nil || row < 0 || row >= len(p.rows) {
		return false
	}
	r := &p.rows[row]
	v, ok := r.next(direction)
	if !ok || !setter.SetIntParameter(r.ctrl.Key, v) {
		return false
	}
	r.value = v
	return true
}

// cycle moves the keyboard selection by delta, wrapping around.
func (p *controlPanel) cycle(delta int) {
	n := len(p.rows)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// adjustable is the set of keys the panel draws as rows.
func (p *controlPanel) adjustable() map[string]bool {
	keys := make(map[string]bool, len(p.rows))
	for _, r := range p.rows {
		keys[r.ctrl.Key] = true
	}
	return keys
}
