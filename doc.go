// Package puzzlegrid is a toolkit for text-puzzle solving built around a
// reusable, generic 2-D grid core — parse character grids, walk neighbors
// in eight directions, and answer puzzles with plain arithmetic.
//
// 🚀 What is puzzlegrid?
//
//	A small, focused library plus a ready-made solving harness:
//		• grid: dense row-major Grid[T] with Point references, directional
//		  walks, row/column cursors and boundary-safe offsetting
//		• input: line-, regex- and character-grid readers over io.Reader
//		• calibration, cubegame, schematic, scratchcard, almanac: complete
//		  reference solvers consuming the core
//		• runner: dispatch & benchmark harness with YAML manifests
//
// ✨ Why choose puzzlegrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Safe by construction – every Point that exists is in bounds
//   - Cheap traversal – flat backing storage, zero-copy cursors
//   - Extensible – bring your own cell type; the core is fully generic
//
// Under the hood, everything is organized under topic packages:
//
//	grid/        — the generic 2-D container and Point navigation core
//	input/       — text ingestion (lines, regex lines, character grids)
//	calibration/ — digit & word-digit recognition (DFA)
//	cubegame/    — cube drawing game analysis
//	schematic/   — engine schematic numbers & gears (grid consumer)
//	scratchcard/ — scratch card matching & cascading copies
//	almanac/     — chained interval mapping pipeline
//	runner/      — problem registry, solving & benchmarking harness
//
// Quick ASCII example:
//
//	    467..114..
//	    ...*......
//	    ..35..633.
//
//	a schematic grid where numbers adjacent to symbols are part numbers.
//
// Dive into the examples/ directory for full walkthroughs.
//
//	go get github.com/katalvlaran/puzzlegrid
package puzzlegrid
