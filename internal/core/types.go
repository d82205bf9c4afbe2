package core

// Size describes a grid in squares.
type Size struct {
	W int
	H int
}

// Point addresses a square by column (X) and row (Y).
type Point struct {
	X, Y int
}

// Rect is an inclusive rectangle of squares.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width is the number of columns covered.
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height is the number of rows covered.
func (r Rect) Height() int { return r.MaxY - r.MinY + 1 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Overlaps reports whether the two rectangles share any square.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Union returns the bounding box of both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Grow expands r by n squares on every side and clamps it to a grid of size s.
func (r Rect) Grow(n int, s Size) Rect {
	return Rect{
		MinX: max(r.MinX-n, 0),
		MinY: max(r.MinY-n, 0),
		MaxX: min(r.MaxX+n, s.W-1),
		MaxY: min(r.MaxY+n, s.H-1),
	}
}

// UniformGrid builds a cols x rows grid of side x side squares, all of one
// colour. It cannot fail for positive arguments.
func UniformGrid(cols, rows, side int, c RGB) *Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	if side <= 0 {
		side = 1
	}
	squares := make([]Square, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			squares = append(squares, NewSquare(col*side, row*side, side, side).WithColor(c))
		}
	}
	g, _ := NewGrid(squares, cols*side, rows*side)
	return g
}
