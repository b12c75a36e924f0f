package grid

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Grid is a dense, row-major 2-D container of fixed width and height.
// The backing slice always holds exactly width×height elements;
// cell (x,y) lives at index y·width + x.
//
// A Grid may be read through any number of Points and cursors at once.
// Mutating it while such references are outstanding is caller discipline:
// do not interleave Set/Fill/GetRef writes with live iteration.
type Grid[T any] struct {
	width  int
	height int
	data   []T
}

// FromData wraps an existing flat, row-major slice as a grid of the given
// width. The height is derived as len(data)/width.
//
// Panics if width < 1 or len(data) is not evenly divisible by width; a
// mismatched buffer is an internal-consistency error, never truncated.
func FromData[T any](data []T, width int) *Grid[T] {
	if width < 1 {
		panic(fmt.Sprintf("grid: width %d must be at least 1", width))
	}
	if len(data)%width != 0 {
		panic(fmt.Sprintf("grid: %d elements do not divide evenly into rows of %d", len(data), width))
	}

	return &Grid[T]{width: width, height: len(data) / width, data: data}
}

// FromFunc builds a width×height grid by invoking f for every coordinate
// in row-major order (y outer, x inner). Capacity is reserved up front.
//
// Panics if either dimension is < 1.
func FromFunc[T any](width, height int, f func(x, y int) T) *Grid[T] {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("grid: dimensions %dx%d must be at least 1x1", width, height))
	}
	data := make([]T, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data = append(data, f(x, y))
		}
	}

	return &Grid[T]{width: width, height: height, data: data}
}

// Filled creates a width×height grid with every cell set to v.
func Filled[T any](width, height int, v T) *Grid[T] {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("grid: dimensions %dx%d must be at least 1x1", width, height))
	}
	data := make([]T, width*height)
	for i := range data {
		data[i] = v
	}

	return &Grid[T]{width: width, height: height, data: data}
}

// FilledLike creates a grid with the same shape as other, every cell set
// to v. The element types of the two grids may differ.
func FilledLike[T, U any](other *Grid[U], v T) *Grid[T] {
	return Filled(other.width, other.height, v)
}

// Map applies f to every cell value in storage order and returns a new
// grid of identical shape with the transformed element type.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	data := make([]U, len(g.data))
	for i, v := range g.data {
		data[i] = f(v)
	}

	return &Grid[U]{width: g.width, height: g.height, data: data}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// index converts (x,y) to a flat index, panicking when out of range.
func (g *Grid[T]) index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("grid: position (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}

	return y*g.width + x
}

// Get returns the value at (x,y). Panics when out of range — the caller
// guarantees validity; use TryGet for input-derived coordinates.
func (g *Grid[T]) Get(x, y int) T {
	return g.data[g.index(x, y)]
}

// TryGet returns the value at (x,y) and true, or the zero value and
// false when the position lies outside the grid.
func (g *Grid[T]) TryGet(x, y int) (T, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		var zero T
		return zero, false
	}

	return g.data[y*g.width+x], true
}

// GetRef returns a pointer to the cell at (x,y) for in-place mutation.
// Panics when out of range.
func (g *Grid[T]) GetRef(x, y int) *T {
	return &g.data[g.index(x, y)]
}

// Set overwrites the cell at (x,y). Panics when out of range.
func (g *Grid[T]) Set(x, y int, v T) {
	g.data[g.index(x, y)] = v
}

// Fill overwrites every cell in place with v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Padded returns a new (width+2n)×(height+2n) grid with the receiver
// copied into the center and v filling a border of thickness n on every
// side. The receiver is not mutated.
func (g *Grid[T]) Padded(v T, n int) *Grid[T] {
	if n < 0 {
		panic(fmt.Sprintf("grid: negative padding %d", n))
	}
	nw, nh := g.width+2*n, g.height+2*n
	out := Filled(nw, nh, v)
	for y := 0; y < g.height; y++ {
		copy(out.data[(y+n)*nw+n:(y+n)*nw+n+g.width], g.data[y*g.width:(y+1)*g.width])
	}

	return out
}

// Cells returns a lazy, restartable sequence of all cell values in
// storage order.
func (g *Grid[T]) Cells() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// IntoCells releases the backing slice, transferring ownership of all
// cell values to the caller. The grid must not be used afterwards.
func (g *Grid[T]) IntoCells() []T {
	data := g.data
	g.data = nil
	g.width, g.height = 0, 0

	return data
}

// Equal reports whether two grids have identical shape and contents.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i, v := range a.data {
		if v != b.data[i] {
			return false
		}
	}

	return true
}

// Fprint writes the grid row-by-row to w, rendering each cell with f.
// A leading newline keeps the first row aligned in interleaved logs.
// Diagnostic only; rendering failures surface as the writer's error.
func (g *Grid[T]) Fprint(w io.Writer, f func(T) rune) error {
	var sb strings.Builder
	sb.WriteByte('\n')
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(f(g.data[y*g.width+x]))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// Show renders the grid to stderr with f. Diagnostic only.
func (g *Grid[T]) Show(f func(T) rune) {
	_ = g.Fprint(os.Stderr, f)
}

// SprintBool renders a boolean grid as text: '#' for true, space for
// false, rows separated by newlines and preceded by one.
func SprintBool(g *Grid[bool]) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.data[y*g.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
