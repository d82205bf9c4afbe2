package core

import (
	"errors"
	"fmt"
	"slices"
)

// ErrOutOfBounds reports a square that reaches past the image it was taken from.
var ErrOutOfBounds = errors.New("square exceeds image bounds")

// ErrGridMismatch reports two grids that do not hold the same squares.
var ErrGridMismatch = errors.New("grids differ in size")

// DefaultSquareColor is the colour of a square nobody has painted yet.
var DefaultSquareColor = RGB{R: 0, G: 255, B: 255}

// Square is an axis-aligned block of source pixels sharing a single colour.
// X and Y locate its top-left pixel in the source image. Geometry is fixed
// at construction; only the colour changes afterwards.
type Square struct {
	x, y          int
	width, height int
	color         RGB
}

// NewSquare returns a square with the default colour.
func NewSquare(x, y, width, height int) Square {
	return Square{x: x, y: y, width: width, height: height, color: DefaultSquareColor}
}

// WithColor returns a copy of s carrying c.
func (s Square) WithColor(c RGB) Square {
	s.color = c
	return s
}

func (s *Square) SetColor(c RGB) { s.color = c }

func (s Square) X() int      { return s.x }
func (s Square) Y() int      { return s.y }
func (s Square) Width() int  { return s.width }
func (s Square) Height() int { return s.height }
func (s Square) Color() RGB  { return s.color }

// BoundsError carries a copy of the first square that failed validation.
type BoundsError struct {
	Square Square
	Msg    string
}

func (e *BoundsError) Error() string { return e.Msg }

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// Grid is a validated partition of an image into squares. The image
// dimensions and the derived row and column counts never change after
// construction, so a grid always records the resolution it was taken at.
type Grid struct {
	squares   []Square
	imgWidth  int
	imgHeight int
	rows      int
	cols      int
}

// NewGrid validates every square against the image dimensions and fails on
// the first violation. Overlapping squares and incomplete coverage are not
// checked.
func NewGrid(squares []Square, imgWidth, imgHeight int) (*Grid, error) {
	xs := make(map[int]struct{})
	ys := make(map[int]struct{})
	for _, sq := range squares {
		if sq.x < 0 || sq.y < 0 || sq.width <= 0 || sq.height <= 0 ||
			sq.x+sq.width > imgWidth || sq.y+sq.height > imgHeight {
			msg := fmt.Sprintf("square x:%d y:%d w:%d h:%d has invalid bounds: furthest reach is (%d,%d) while the image is %dx%d; colour %s",
				sq.x, sq.y, sq.width, sq.height, sq.x+sq.width, sq.y+sq.height, imgWidth, imgHeight, sq.color)
			return nil, &BoundsError{Square: sq, Msg: msg}
		}
		xs[sq.x] = struct{}{}
		ys[sq.y] = struct{}{}
	}
	return &Grid{
		squares:   squares,
		imgWidth:  imgWidth,
		imgHeight: imgHeight,
		rows:      len(ys),
		cols:      len(xs),
	}, nil
}

// Rows is the number of distinct square Y origins.
func (g *Grid) Rows() int { return g.rows }

// Cols is the number of distinct square X origins.
func (g *Grid) Cols() int { return g.cols }

// ImageWidth is the width of the source image.
func (g *Grid) ImageWidth() int { return g.imgWidth }

// ImageHeight is the height of the source image.
func (g *Grid) ImageHeight() int { return g.imgHeight }

// Len returns the number of squares.
func (g *Grid) Len() int { return len(g.squares) }

// Index returns the row-major slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) addresses a stored square.
func (g *Grid) InBounds(row, col int) bool {
	if row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return false
	}
	return g.Index(row, col) < len(g.squares)
}

// Get returns the square at (row, col). The pointer aliases the grid, so
// callers may recolour it in place.
func (g *Grid) Get(row, col int) (*Square, bool) {
	if !g.InBounds(row, col) {
		return nil, false
	}
	return &g.squares[g.Index(row, col)], true
}

// Squares returns a copy of the squares in construction order. Recolour the
// grid through Get, Each, SetColorAt or CopyColors.
func (g *Grid) Squares() []Square { return slices.Clone(g.squares) }

// SetColorAt recolours the square at slice index i. It reports false when i
// is out of range.
func (g *Grid) SetColorAt(i int, c RGB) bool {
	if i < 0 || i >= len(g.squares) {
		return false
	}
	g.squares[i].color = c
	return true
}

// CopyColors recolours g square by square from src. Both grids must hold
// the same number of squares.
func (g *Grid) CopyColors(src *Grid) error {
	if len(src.squares) != len(g.squares) {
		return fmt.Errorf("%w: copy %d squares into %d", ErrGridMismatch, len(src.squares), len(g.squares))
	}
	for i := range g.squares {
		g.squares[i].color = src.squares[i].color
	}
	return nil
}

// Each visits every square in order.
func (g *Grid) Each(fn func(i int, sq *Square)) {
	for i := range g.squares {
		fn(i, &g.squares[i])
	}
}

// Colors snapshots the colour of every square in order.
func (g *Grid) Colors() []RGB {
	out := make([]RGB, len(g.squares))
	for i, sq := range g.squares {
		out[i] = sq.color
	}
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := *g
	c.squares = slices.Clone(g.squares)
	return &c
}

// Fill recolours every square.
func (g *Grid) Fill(c RGB) {
	for i := range g.squares {
		g.squares[i].color = c
	}
}
