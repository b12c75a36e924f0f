package grid

import "fmt"

// LineIter is a double-ended cursor over one row or column. It is an
// explicit (start, stride, count) view of the backing storage, so a
// strided column traversal supports reverse stepping and exact remaining
// length just like a contiguous row does.
//
// Values are read at the time of the Next/NextBack call; mutating the
// grid between calls is visible through the cursor.
type LineIter[T any] struct {
	g      *Grid[T]
	front  int // flat index of the next front element
	stride int
	count  int // elements remaining between the two ends
}

// Row returns a cursor over the cells of row r in increasing-x order.
// Panics if r is outside the grid.
func (g *Grid[T]) Row(r int) *LineIter[T] {
	if r < 0 || r >= g.height {
		panic(fmt.Sprintf("grid: row %d outside %dx%d grid", r, g.width, g.height))
	}

	return &LineIter[T]{g: g, front: r * g.width, stride: 1, count: g.width}
}

// Col returns a cursor over the cells of column c in increasing-y order.
// Panics if c is outside the grid.
func (g *Grid[T]) Col(c int) *LineIter[T] {
	if c < 0 || c >= g.width {
		panic(fmt.Sprintf("grid: column %d outside %dx%d grid", c, g.width, g.height))
	}

	return &LineIter[T]{g: g, front: c, stride: g.width, count: g.height}
}

// Len reports the exact number of elements remaining.
func (it *LineIter[T]) Len() int { return it.count }

// Next consumes and returns the element at the front of the cursor,
// reporting false once the line is exhausted.
func (it *LineIter[T]) Next() (T, bool) {
	if it.count == 0 {
		var zero T
		return zero, false
	}
	v := it.g.data[it.front]
	it.front += it.stride
	it.count--

	return v, true
}

// NextBack consumes and returns the element at the back of the cursor,
// reporting false once the line is exhausted. Next and NextBack share
// the same remaining range and may be interleaved.
func (it *LineIter[T]) NextBack() (T, bool) {
	if it.count == 0 {
		var zero T
		return zero, false
	}
	it.count--

	return it.g.data[it.front+it.count*it.stride], true
}

// Collect drains the cursor front-to-back into a slice.
func (it *LineIter[T]) Collect() []T {
	out := make([]T, 0, it.count)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}

	return out
}

// CollectBack drains the cursor back-to-front into a slice.
func (it *LineIter[T]) CollectBack() []T {
	out := make([]T, 0, it.count)
	for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
		out = append(out, v)
	}

	return out
}

// LineRefIter is the mutable counterpart of LineIter, yielding pointers
// into the grid's backing storage. Do not hold yielded pointers across
// other mutations of the grid.
type LineRefIter[T any] struct {
	g      *Grid[T]
	front  int
	stride int
	count  int
}

// RowRefs returns a mutable cursor over the cells of row r.
// Panics if r is outside the grid.
func (g *Grid[T]) RowRefs(r int) *LineRefIter[T] {
	if r < 0 || r >= g.height {
		panic(fmt.Sprintf("grid: row %d outside %dx%d grid", r, g.width, g.height))
	}

	return &LineRefIter[T]{g: g, front: r * g.width, stride: 1, count: g.width}
}

// ColRefs returns a mutable cursor over the cells of column c.
// Panics if c is outside the grid.
func (g *Grid[T]) ColRefs(c int) *LineRefIter[T] {
	if c < 0 || c >= g.width {
		panic(fmt.Sprintf("grid: column %d outside %dx%d grid", c, g.width, g.height))
	}

	return &LineRefIter[T]{g: g, front: c, stride: g.width, count: g.height}
}

// Len reports the exact number of elements remaining.
func (it *LineRefIter[T]) Len() int { return it.count }

// Next consumes and returns a pointer to the front element, reporting
// false once the line is exhausted.
func (it *LineRefIter[T]) Next() (*T, bool) {
	if it.count == 0 {
		return nil, false
	}
	ref := &it.g.data[it.front]
	it.front += it.stride
	it.count--

	return ref, true
}

// NextBack consumes and returns a pointer to the back element, reporting
// false once the line is exhausted.
func (it *LineRefIter[T]) NextBack() (*T, bool) {
	if it.count == 0 {
		return nil, false
	}
	it.count--

	return &it.g.data[it.front+it.count*it.stride], true
}
