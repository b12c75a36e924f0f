// Package grid provides a dense, row-major, generic 2-D container with
// coordinate-addressed access and neighbor-aware Point references.
//
// What:
//
//   - Grid[T] wraps a flat []T of length width×height (row-major,
//     index = y·width + x) with fixed dimensions.
//   - Construct by wrapping existing data (FromData), generating from a
//     per-coordinate function (FromFunc), or filling with one value
//     (Filled, FilledLike); transform with Map; grow with Padded.
//   - Point[T] is a non-owning reference to one cell, carrying its
//     coordinates and linear index. Every Point that exists is in bounds.
//   - Directional navigation: Offset, Left/Right/Up/Down, eight-way
//     Neighbors in compass order, and WalkLeft/Right/Up/Down cursors
//     that proceed to the grid edge.
//   - Row and Col return double-ended, exact-length cursors over a single
//     row or column, derived from (start, stride, count) so that column
//     traversal over the strided backing storage stays correct at both
//     boundary columns.
//
// Why:
//
//   - Character-grid puzzles: schematic scanning, flood fills, ray walks.
//   - Cellular simulations and map analysis over rectangular boards.
//   - Any workload that wants cheap 8-directional traversal without
//     copying the container.
//
// Error policy:
//
//   - Accessors whose arguments the caller guarantees valid (Get, GetRef,
//     Set, Point, Row, Col, FromData) panic on violation — these are
//     programmer errors, never silently clamped or wrapped.
//   - Boundary-safe counterparts (TryGet, Offset, Left/Right/Up/Down)
//     report absence with an ok bool instead.
//
// Concurrency:
//
//	A Grid may be read through any number of Points and cursors at once;
//	mutation (Set, Fill, GetRef writes) must not overlap outstanding
//	reads. The package adds no locking — wrap externally if shared.
//
// Complexity: all accessors O(1); constructors, Fill, Map, Padded O(W×H).
package grid
