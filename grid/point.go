package grid

import (
	"fmt"
	"iter"
)

// compassOffsets enumerates the eight neighbor deltas in compass scan
// order: NW, N, NE, W, E, SW, S, SE.
var compassOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Point is a non-owning, read-only reference to one grid cell. It caches
// the cell's coordinates and linear index and borrows the owning grid;
// it is cheap to copy and must not outlive mutation of that grid.
//
// Every Point produced by this package is in bounds — factory operations
// that would step outside the grid report absence instead.
type Point[T any] struct {
	g    *Grid[T]
	idx  int
	x, y int
}

// Point returns a reference to the cell at (x,y).
// Panics when the position lies outside the grid.
func (g *Grid[T]) Point(x, y int) Point[T] {
	return Point[T]{g: g, idx: g.index(x, y), x: x, y: y}
}

// Points returns a lazy, restartable sequence of references to every
// cell in storage order.
func (g *Grid[T]) Points() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for i := range g.data {
			if !yield(Point[T]{g: g, idx: i, x: i % g.width, y: i / g.width}) {
				return
			}
		}
	}
}

// Find returns a lazy sequence of references to every cell equal to v,
// in storage order.
func Find[T comparable](g *Grid[T], v T) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for i, cell := range g.data {
			if cell != v {
				continue
			}
			if !yield(Point[T]{g: g, idx: i, x: i % g.width, y: i / g.width}) {
				return
			}
		}
	}
}

// X returns the point's column coordinate.
func (p Point[T]) X() int { return p.x }

// Y returns the point's row coordinate.
func (p Point[T]) Y() int { return p.y }

// Coords returns the point's (x, y) coordinates.
func (p Point[T]) Coords() (x, y int) { return p.x, p.y }

// Index returns the point's linear index into the backing storage.
func (p Point[T]) Index() int { return p.idx }

// Value dereferences the point, returning the element stored at its
// coordinates in the owning grid.
func (p Point[T]) Value() T { return p.g.data[p.idx] }

// String formats the point's coordinates for diagnostics.
func (p Point[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}

// Offset returns the point at (x+dx, y+dy) when both coordinates remain
// within grid bounds. Moving past an edge in either direction — including
// toward negative coordinates — reports false rather than wrapping.
// dx and dy are bounds-checked independently.
func (p Point[T]) Offset(dx, dy int) (Point[T], bool) {
	x, y := p.x+dx, p.y+dy
	if x < 0 || x >= p.g.width || y < 0 || y >= p.g.height {
		return Point[T]{}, false
	}

	return Point[T]{g: p.g, idx: y*p.g.width + x, x: x, y: y}, true
}

// Left returns the point one cell to the left, or false at the west edge.
func (p Point[T]) Left() (Point[T], bool) {
	if p.x == 0 {
		return Point[T]{}, false
	}

	return Point[T]{g: p.g, idx: p.idx - 1, x: p.x - 1, y: p.y}, true
}

// Right returns the point one cell to the right, or false at the east edge.
func (p Point[T]) Right() (Point[T], bool) {
	if p.x == p.g.width-1 {
		return Point[T]{}, false
	}

	return Point[T]{g: p.g, idx: p.idx + 1, x: p.x + 1, y: p.y}, true
}

// Up returns the point one cell above, or false at the north edge.
func (p Point[T]) Up() (Point[T], bool) {
	if p.y == 0 {
		return Point[T]{}, false
	}

	return Point[T]{g: p.g, idx: p.idx - p.g.width, x: p.x, y: p.y - 1}, true
}

// Down returns the point one cell below, or false at the south edge.
func (p Point[T]) Down() (Point[T], bool) {
	if p.y == p.g.height-1 {
		return Point[T]{}, false
	}

	return Point[T]{g: p.g, idx: p.idx + p.g.width, x: p.x, y: p.y + 1}, true
}

// Neighbors returns a lazy, finite sequence of the existing points among
// the eight compass directions (diagonals included), in compass order
// NW, N, NE, W, E, SW, S, SE. Directions falling outside the grid are
// skipped, so a corner cell yields three points and an interior cell
// eight.
func (p Point[T]) Neighbors() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for _, d := range compassOffsets {
			q, ok := p.Offset(d[0], d[1])
			if !ok {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// Walk is a single-traversal cursor stepping one cell in a fixed
// direction per Next call. It is not restartable; once the grid edge is
// reached it keeps reporting false.
type Walk[T any] struct {
	p      Point[T]
	dx, dy int
}

// Next advances the walk one step and returns the new point. It returns
// false when the next step would leave the grid.
func (w *Walk[T]) Next() (Point[T], bool) {
	q, ok := w.p.Offset(w.dx, w.dy)
	if !ok {
		return Point[T]{}, false
	}
	w.p = q

	return q, true
}

// WalkLeft returns a cursor over the points from the origin (exclusive)
// to the west edge of the grid.
func (p Point[T]) WalkLeft() *Walk[T] { return &Walk[T]{p: p, dx: -1} }

// WalkRight returns a cursor over the points from the origin (exclusive)
// to the east edge of the grid.
func (p Point[T]) WalkRight() *Walk[T] { return &Walk[T]{p: p, dx: 1} }

// WalkUp returns a cursor over the points from the origin (exclusive)
// to the north edge of the grid.
func (p Point[T]) WalkUp() *Walk[T] { return &Walk[T]{p: p, dy: -1} }

// WalkDown returns a cursor over the points from the origin (exclusive)
// to the south edge of the grid.
func (p Point[T]) WalkDown() *Walk[T] { return &Walk[T]{p: p, dy: 1} }
