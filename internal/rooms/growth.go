package rooms

import (
	"github.com/zyedidia/generic/mapset"

	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

// growth is one room's state while the claim rounds run.
type growth struct {
	id      int
	seed    core.Point
	rect    core.Rect
	growing bool
}

// GrowRoomsFromStarts grows every room start into a rectangle, then paints
// floors inside and walls around each one. The work happens on a clone;
// the held grid only changes when growth succeeds.
//
// A room's footprint is its rectangle plus the ring of squares around it.
// Every round each growing room tries its sides in turn (top, bottom,
// left, right) and takes a side's strip only when every new square is
// empty or unclassified and outside every other room's footprint. The
// rooms then claim their grown footprints; a room whose new squares are
// claimed by another room stops for good, as does a room that cannot grow.
// Rooms therefore always keep a wall's width between them.
func (g *Grower) GrowRoomsFromStarts() error {
	if g.grid == nil {
		return ErrNoGrid
	}
	work := g.grid.Clone()
	size := core.Size{W: work.Cols(), H: work.Rows()}
	kinds := make([]palette.RoomKind, work.Len())
	for i, sq := range work.Squares() {
		kinds[i] = g.palette.Kind(sq.Color())
	}

	var rooms []*growth
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			idx := work.Index(row, col)
			if !work.InBounds(row, col) || idx >= len(kinds) || kinds[idx] != palette.RoomStart {
				continue
			}
			rooms = append(rooms, &growth{
				id:      len(rooms),
				seed:    core.Point{X: col, Y: row},
				rect:    core.Rect{MinX: col, MinY: row, MaxX: col, MaxY: row},
				growing: true,
			})
		}
	}
	if len(rooms) == 0 {
		return ErrNoRoomStarts
	}

	rounds := 0
	for anyGrowing(rooms) {
		rounds++
		held := coverage{}
		for _, r := range rooms {
			held.cover(work, r.rect.Grow(1, size), r.id)
		}

		next := make(map[int]core.Rect)
		for _, r := range rooms {
			if !r.growing {
				continue
			}
			rect := expand(work, kinds, held, r, size)
			if rect == r.rect {
				r.growing = false
				continue
			}
			next[r.id] = rect
		}

		claims := coverage{}
		for _, r := range rooms {
			if rect, ok := next[r.id]; ok {
				claims.cover(work, rect.Grow(1, size), r.id)
			}
		}
		for _, r := range rooms {
			rect, ok := next[r.id]
			if !ok {
				continue
			}
			if contested(work, claims, r.rect, rect, r.id) {
				r.growing = false
				continue
			}
			r.rect = rect
		}
	}

	paint(work, kinds, rooms, size, g.palette)

	if err := g.grid.CopyColors(work); err != nil {
		return err
	}
	g.rounds = rounds
	g.rooms = make([]Room, len(rooms))
	for i, r := range rooms {
		g.rooms[i] = Room{ID: r.id, Seed: r.seed, Bounds: r.rect}
	}
	g.logger.Debug("grew rooms", "rooms", len(rooms), "rounds", rounds)
	return nil
}

// coverage records which rooms hold each square, by grid index.
type coverage map[int]mapset.Set[int]

func (c coverage) cover(g *core.Grid, r core.Rect, id int) {
	eachCell(r, func(p core.Point) {
		idx := g.Index(p.Y, p.X)
		set, ok := c[idx]
		if !ok {
			set = mapset.New[int]()
			c[idx] = set
		}
		set.Put(id)
	})
}

// heldByOther reports whether a room other than id holds idx.
func (c coverage) heldByOther(idx, id int) bool {
	set, ok := c[idx]
	if !ok {
		return false
	}
	return set.Size() > 1 || !set.Has(id)
}

// sides is the growth order (top, bottom, left, right) as offsets to
// MinX, MinY, MaxX and MaxY.
var sides = [4][4]int{{0, -1, 0, 0}, {0, 0, 0, 1}, {-1, 0, 0, 0}, {0, 0, 1, 0}}

// expand grows r one side at a time. Each side is checked against the
// rectangle accepted so far, so corners are covered once two neighbouring
// sides both move. A room already inside another room's footprint, as
// adjacent painted starts are, does not grow at all.
func expand(g *core.Grid, kinds []palette.RoomKind, held coverage, r *growth, size core.Size) core.Rect {
	free := func(p core.Point) bool {
		idx := g.Index(p.Y, p.X)
		return idx < len(kinds) && !held.heldByOther(idx, r.id)
	}
	if !allCells(r.rect, free) {
		return r.rect
	}

	acc := r.rect
	for _, d := range sides {
		cand := core.Rect{MinX: acc.MinX + d[0], MinY: acc.MinY + d[1], MaxX: acc.MaxX + d[2], MaxY: acc.MaxY + d[3]}
		if cand.MinX < 0 || cand.MinY < 0 || cand.MaxX >= size.W || cand.MaxY >= size.H {
			continue
		}
		ok := allCells(cand, func(p core.Point) bool {
			if acc.Contains(p) {
				return true
			}
			return free(p) && claimable(kinds[g.Index(p.Y, p.X)])
		})
		if ok {
			acc = cand
		}
	}
	return acc
}

// contested reports whether any square rect adds to from is claimed by
// another room's grown footprint.
func contested(g *core.Grid, claims coverage, from, rect core.Rect, id int) bool {
	return !allCells(rect, func(p core.Point) bool {
		return from.Contains(p) || !claims.heldByOther(g.Index(p.Y, p.X), id)
	})
}

func eachCell(r core.Rect, fn func(core.Point)) {
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			fn(core.Point{X: x, Y: y})
		}
	}
}

func allCells(r core.Rect, pred func(core.Point) bool) bool {
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			if !pred(core.Point{X: x, Y: y}) {
				return false
			}
		}
	}
	return true
}

func anyGrowing(rooms []*growth) bool {
	for _, r := range rooms {
		if r.growing {
			return true
		}
	}
	return false
}

// claimable reports whether growth may extend over a square of this kind.
func claimable(k palette.RoomKind) bool {
	return k == palette.RoomEmpty || k == palette.RoomOther
}

// ring lists the in-bounds squares one step outside r, corners included,
// in row-major order.
func ring(r core.Rect, size core.Size) []core.Point {
	outer := r.Grow(1, size)
	out := make([]core.Point, 0, 2*(outer.Width()+outer.Height()))
	for y := outer.MinY; y <= outer.MaxY; y++ {
		for x := outer.MinX; x <= outer.MaxX; x++ {
			p := core.Point{X: x, Y: y}
			if !r.Contains(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// paint floors every room interior first and only then walls the rings, so
// a room never walls over a neighbour's floor.
func paint(g *core.Grid, kinds []palette.RoomKind, rooms []*growth, size core.Size, p palette.Room) {
	for _, r := range rooms {
		for y := r.rect.MinY; y <= r.rect.MaxY; y++ {
			for x := r.rect.MinX; x <= r.rect.MaxX; x++ {
				sq, ok := g.Get(y, x)
				if !ok {
					continue
				}
				switch kinds[g.Index(y, x)] {
				case palette.RoomEmpty, palette.RoomOther, palette.RoomStart:
					sq.SetColor(p.Floor)
					kinds[g.Index(y, x)] = palette.RoomFloor
				}
			}
		}
	}
	for _, r := range rooms {
		for _, pt := range ring(r.rect, size) {
			sq, ok := g.Get(pt.Y, pt.X)
			if !ok {
				continue
			}
			switch kinds[g.Index(pt.Y, pt.X)] {
			case palette.RoomEmpty, palette.RoomOther:
				sq.SetColor(p.Wall)
				kinds[g.Index(pt.Y, pt.X)] = palette.RoomWall
			}
		}
	}
}
