// Package calibration recovers two-digit calibration values from noisy
// text lines, in plain-digit and spelled-out-digit variants.
//
// What:
//
//   - Digits extracts the ASCII digits of a line.
//   - WordDigits additionally recognizes the spelled words "one".."nine",
//     including overlapping spellings ("oneight" reads as 1 then 8),
//     using a hand-built DFA that runs in O(n) per line.
//   - Value combines a line's first and last digit into first·10+last.
//   - SumDigits / SumWordDigits solve whole documents.
//
// Why:
//
//   - The word recognizer is the interesting part: a naive scan re-tests
//     every prefix at every position, while the DFA jumps from the last
//     recognized character of one word into the matching start state of
//     the next, so overlaps cost nothing.
//
// Errors:
//
//   - ErrNoDigits: a line contained no recognizable digit.
package calibration
