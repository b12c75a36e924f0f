// Package almanac maps seed numbers to planting locations through a
// chain of seven piecewise-linear category maps (seed→soil→fertilizer→
// water→light→temperature→humidity→location).
//
// What:
//
//   - RangeMap[S, D] holds source-sorted [src, src+len) → [dst, dst+len)
//     entries between two category types; values outside every entry map
//     to themselves.
//   - MapOne resolves a single value by binary search.
//   - MapRange lazily splits an input interval across entry boundaries,
//     yielding the mapped output spans — whole seed ranges flow through
//     the chain without enumerating individual seeds.
//   - Almanac bundles the seed list and the seven maps; MinLocation and
//     MinLocationRanges answer parts one and two.
//
// Why:
//
//   - Part two's seed ranges cover billions of values; interval
//     propagation keeps the whole pipeline proportional to the number of
//     split points instead.
//
// The category types are distinct unsigned integers so the compiler
// rejects a map applied at the wrong pipeline stage.
package almanac
