// Package runner dispatches and benchmarks puzzle solvers.
//
// What:
//
//   - Problem bundles a numbered puzzle's input loader with its one or
//     two part solvers; Set is a registry keyed by 1-based number.
//   - Run loads input once and times each part of one problem.
//   - Bench re-solves each part many times over the same loaded input
//     and summarizes the sample durations (mean, standard deviation,
//     min, max).
//   - Config is an optional YAML manifest controlling the inputs
//     directory, per-problem input overrides, and the bench sample
//     count.
//
// Why:
//
//   - Solvers stay pure functions over parsed input; everything about
//     file discovery, timing, and reporting lives here at the boundary.
//
// Errors:
//
//	Registration and lookup failures are sentinel errors; a failing
//	part does not abort the run — its error is carried in the part's
//	result so the other part still reports.
package runner
