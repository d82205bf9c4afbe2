package rooms

import "mapsketch/internal/core"

// Parameters describes the last growth for manifests and the viewer overlay.
func (g *Grower) Parameters() core.ParameterSnapshot {
	growth := core.ParameterGroup{
		Name: "Room growth",
		Params: []core.Parameter{
			core.IntParam("rooms", "Rooms", len(g.rooms)),
			core.IntParam("rounds", "Claim rounds", g.rounds),
		},
	}
	if g.grid != nil {
		lo, hi := DefaultStartRange(g.grid.Rows(), g.grid.Cols())
		growth.Params = append(growth.Params,
			core.IntParam("default_starts_min", "Default starts (min)", lo),
			core.IntParam("default_starts_max", "Default starts (max)", hi),
		)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		growth,
		{
			Name: "Palette",
			Params: []core.Parameter{
				core.StringParam("wall", "Wall", g.palette.Wall.Hex()),
				core.StringParam("empty", "Empty", g.palette.Empty.Hex()),
				core.StringParam("floor", "Floor", g.palette.Floor.Hex()),
				core.StringParam("room_start", "Room start", g.palette.Start.Hex()),
				core.StringParam("door", "Door", g.palette.Door.Hex()),
				core.StringParam("stairs", "Stairs", g.palette.Stairs.Hex()),
			},
		},
	}}
}
