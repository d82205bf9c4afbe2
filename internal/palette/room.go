package palette

import "mapsketch/internal/core"

// Canonical colours shared by both palettes.
var (
	Black = core.RGB{R: 0, G: 0, B: 0}
	White = core.RGB{R: 255, G: 255, B: 255}
	Green = core.RGB{R: 0, G: 255, B: 0}
	Red   = core.RGB{R: 255, G: 0, B: 0}
	Blue  = core.RGB{R: 0, G: 0, B: 255}

	// CurrentRoomFloor is the current room floor colour.
	CurrentRoomFloor = core.RGB{R: 140, G: 140, B: 140}

	// LegacyRoomFloor is the floor colour of the first palette revision.
	LegacyRoomFloor = core.RGB{R: 230, G: 230, B: 230}
)

// RoomKind enumerates room tile classes.
type RoomKind uint8

const (
	RoomWall RoomKind = iota
	RoomEmpty
	RoomFloor
	RoomStart
	RoomDoor
	RoomStairs
	RoomOther
)

func (k RoomKind) String() string {
	switch k {
	case RoomWall:
		return "wall"
	case RoomEmpty:
		return "empty"
	case RoomFloor:
		return "floor"
	case RoomStart:
		return "room-start"
	case RoomDoor:
		return "door"
	case RoomStairs:
		return "stairs"
	default:
		return "other"
	}
}

// RoomTile is a classified room colour. Color is only meaningful for RoomOther.
type RoomTile struct {
	Kind  RoomKind
	Color core.RGB
}

// Room holds the canonical colours for room generation.
type Room struct {
	Wall   core.RGB
	Empty  core.RGB
	Floor  core.RGB
	Start  core.RGB
	Door   core.RGB
	Stairs core.RGB
}

// DefaultRoom returns the current room palette.
func DefaultRoom() Room {
	return Room{
		Wall:   Black,
		Empty:  White,
		Floor:  CurrentRoomFloor,
		Start:  Red,
		Door:   Blue,
		Stairs: Green,
	}
}

// LegacyRoom returns the palette with the original light-grey floor.
func LegacyRoom() Room {
	p := DefaultRoom()
	p.Floor = LegacyRoomFloor
	return p
}

// Classify maps a colour to its room tile.
func (p Room) Classify(c core.RGB) RoomTile {
	switch c {
	case p.Wall:
		return RoomTile{Kind: RoomWall}
	case p.Empty:
		return RoomTile{Kind: RoomEmpty}
	case p.Stairs:
		return RoomTile{Kind: RoomStairs}
	case p.Start:
		return RoomTile{Kind: RoomStart}
	case p.Door:
		return RoomTile{Kind: RoomDoor}
	case p.Floor:
		return RoomTile{Kind: RoomFloor}
	default:
		return RoomTile{Kind: RoomOther, Color: c}
	}
}

// Kind is Classify without the payload.
func (p Room) Kind(c core.RGB) RoomKind { return p.Classify(c).Kind }

// ColorOf is the inverse of Classify.
func (p Room) ColorOf(t RoomTile) core.RGB {
	switch t.Kind {
	case RoomWall:
		return p.Wall
	case RoomEmpty:
		return p.Empty
	case RoomFloor:
		return p.Floor
	case RoomStart:
		return p.Start
	case RoomDoor:
		return p.Door
	case RoomStairs:
		return p.Stairs
	default:
		return t.Color
	}
}

// KindColor returns the canonical colour of a non-Other kind.
func (p Room) KindColor(k RoomKind) core.RGB { return p.ColorOf(RoomTile{Kind: k}) }

// Preferred lists the canonical colours in the order the sketch tools
// offer them, which is also the quantizer's tie-break order.
func (p Room) Preferred() []core.RGB {
	return []core.RGB{p.Start, p.Door, p.Wall, p.Empty, p.Stairs, p.Floor}
}

// StairsColor is the colour the quantizer must never smooth away.
func (p Room) StairsColor() core.RGB { return p.Stairs }

// Label names the class of a colour, for reports.
func (p Room) Label(c core.RGB) string { return p.Kind(c).String() }
