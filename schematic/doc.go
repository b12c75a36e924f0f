// Package schematic reads an engine schematic — a character grid of
// digits, symbols and empty cells — and answers two questions about it.
//
// What:
//
//   - A part number is a horizontal run of digit cells with at least one
//     cell 8-adjacent to a symbol; part one sums all part numbers.
//   - A gear is a '*' symbol adjacent to exactly two distinct numbers;
//     part two sums the products of each gear's two numbers.
//   - NumberMap merges the per-cell digits into whole numbers and keeps
//     a same-shape grid mapping every digit cell to its number's ID, so
//     adjacency queries resolve multi-digit numbers without re-scanning.
//
// Why:
//
//   - The schematic is the canonical grid.Grid consumer: ingestion via
//     input.Grid, shape-copied ID storage via grid.FilledLike, and
//     symbol adjacency via Point.Neighbors in compass order.
//
// Complexity: building the NumberMap and both solvers are O(W×H).
package schematic
