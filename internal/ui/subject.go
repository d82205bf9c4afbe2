// Package ui draws the viewer's parameter panel and map overlays.
package ui

import "mapsketch/internal/core"

// Subject is a generator the panel can describe. Subjects that also
// implement core.ParameterControlsProvider and core.IntParameterSetter get
// adjustment buttons.
type Subject interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// Features is what the overlay can highlight on the current map.
type Features struct {
	Rooms       []core.Rect
	Connections []core.Point
}
