// Package palette maps sketch colours to the semantic tiles each generator
// understands. Classification is an exact match against canonical colours;
// anything else is Other and keeps its original colour.
package palette

import "mapsketch/internal/core"

// CaveKind enumerates cave tile classes.
type CaveKind uint8

const (
	CaveWall CaveKind = iota
	CaveFloor
	CaveStairs
	CaveOther
)

func (k CaveKind) String() string {
	switch k {
	case CaveWall:
		return "wall"
	case CaveFloor:
		return "floor"
	case CaveStairs:
		return "stairs"
	default:
		return "other"
	}
}

// CaveTile is a classified cave colour. Color is only meaningful for CaveOther.
type CaveTile struct {
	Kind  CaveKind
	Color core.RGB
}

// Cave holds the canonical colours for cave generation.
type Cave struct {
	Wall   core.RGB
	Floor  core.RGB
	Stairs core.RGB
}

// DefaultCave returns black walls, white floor and green stairs.
func DefaultCave() Cave {
	return Cave{
		Wall:   Black,
		Floor:  White,
		Stairs: Green,
	}
}

// Classify maps a colour to its cave tile.
func (p Cave) Classify(c core.RGB) CaveTile {
	switch c {
	case p.Wall:
		return CaveTile{Kind: CaveWall}
	case p.Floor:
		return CaveTile{Kind: CaveFloor}
	case p.Stairs:
		return CaveTile{Kind: CaveStairs}
	default:
		return CaveTile{Kind: CaveOther, Color: c}
	}
}

// Kind is Classify without the payload.
func (p Cave) Kind(c core.RGB) CaveKind { return p.Classify(c).Kind }

// ColorOf is the inverse of Classify.
func (p Cave) ColorOf(t CaveTile) core.RGB {
	switch t.Kind {
	case CaveWall:
		return p.Wall
	case CaveFloor:
		return p.Floor
	case CaveStairs:
		return p.Stairs
	default:
		return t.Color
	}
}

// KindColor returns the canonical colour of a non-Other kind.
func (p Cave) KindColor(k CaveKind) core.RGB { return p.ColorOf(CaveTile{Kind: k}) }

// Preferred lists the canonical colours in bias order.
func (p Cave) Preferred() []core.RGB {
	return []core.RGB{p.Wall, p.Floor, p.Stairs}
}

// StairsColor is the colour the quantizer must never smooth away.
func (p Cave) StairsColor() core.RGB { return p.Stairs }

// Label names the class of a colour, for reports.
func (p Cave) Label(c core.RGB) string { return p.Kind(c).String() }
