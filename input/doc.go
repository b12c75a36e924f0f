// Package input reads line-oriented puzzle text into typed values and
// character grids.
//
// What:
//
//   - Lines: one parsed value per non-blank line via a caller-supplied
//     parser.
//   - LinesRegex: like Lines, with a compiled regular expression applied
//     first; the parser receives the submatch slice.
//   - Grid: converts every character of every non-blank line into an
//     element value, producing a grid.Grid whose width is the shared
//     line length and whose height is the count of non-blank lines.
//
// Why:
//
//   - Text puzzles arrive as trimmed lines or rectangular character
//     blocks; this package owns the boundary between raw text and the
//     typed domain so solvers never touch bufio directly.
//
// Errors:
//
//	All failures here are recoverable error values (never panics):
//	malformed characters and parser failures propagate wrapped with the
//	1-based line number; ErrRaggedRows flags lines of differing width;
//	ErrNoMatch flags a line the expression did not match; ErrEmptyInput
//	flags grid input with no non-blank lines.
package input
