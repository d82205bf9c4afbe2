package cave

import "mapsketch/internal/core"

// Parameters describes the automaton for manifests and the viewer overlay.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Cellular automaton",
			Params: []core.Parameter{
				core.IntParam("neighborhood_size", "Neighbourhood radius", a.cfg.NeighborhoodSize),
				core.IntParam("neighborhood_threshold", "Wall threshold", a.cfg.NeighborhoodThreshold),
				core.IntParam("generations", "Generations run", a.generations),
			},
		},
		{
			Name: "Palette",
			Params: []core.Parameter{
				core.StringParam("wall", "Wall", a.palette.Wall.Hex()),
				core.StringParam("floor", "Floor", a.palette.Floor.Hex()),
				core.StringParam("stairs", "Stairs", a.palette.Stairs.Hex()),
			},
		},
	}}
}

// SetIntParameter updates the rule in place. Values are clamped to the
// valid range for the current radius.
func (a *Automaton) SetIntParameter(key string, value int) bool {
	switch key {
	case "neighborhood_size":
		a.cfg.NeighborhoodSize = max(value, 1)
		a.cfg.NeighborhoodThreshold = min(a.cfg.NeighborhoodThreshold, MaxThreshold(a.cfg.NeighborhoodSize))
	case "neighborhood_threshold":
		a.cfg.NeighborhoodThreshold = max(0, min(value, MaxThreshold(a.cfg.NeighborhoodSize)))
	default:
		return false
	}
	return true
}

// ParameterControls lists the adjustable rule parameters.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "neighborhood_size", Label: "Radius", Step: 1, Min: 1, Max: 16, HasMin: true, HasMax: true},
		{Key: "neighborhood_threshold", Label: "Threshold", Step: 1, Min: 0, Max: MaxThreshold(a.cfg.NeighborhoodSize), HasMin: true, HasMax: true},
	}
}
