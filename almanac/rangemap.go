package almanac

import (
	"cmp"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Entry maps the source interval [Src, Src+Len) onto [Dst, Dst+Len).
type Entry[S, D constraints.Unsigned] struct {
	Src S
	Dst D
	Len uint64
}

// RangeMap is a piecewise mapping between two category domains. Entries
// are kept sorted by Src; any value not covered by an entry maps to
// itself (numerically).
type RangeMap[S, D constraints.Unsigned] struct {
	entries []Entry[S, D]
}

// NewRangeMap builds a RangeMap from entries, sorting them by source
// start. The caller must not pass overlapping source intervals.
func NewRangeMap[S, D constraints.Unsigned](entries []Entry[S, D]) *RangeMap[S, D] {
	slices.SortFunc(entries, func(a, b Entry[S, D]) int {
		return cmp.Compare(a.Src, b.Src)
	})

	return &RangeMap[S, D]{entries: entries}
}

// search locates the entry whose source interval could contain x:
// the last entry with Src <= x, or -1 when x precedes every entry.
func (m *RangeMap[S, D]) search(x S) int {
	idx, found := slices.BinarySearchFunc(m.entries, x, func(e Entry[S, D], x S) int {
		return cmp.Compare(e.Src, x)
	})
	if found {
		return idx
	}

	return idx - 1
}

// MapOne maps a single source value into the destination domain.
func (m *RangeMap[S, D]) MapOne(x S) D {
	idx := m.search(x)
	if idx < 0 {
		return D(x) // before the first entry: identity
	}
	e := m.entries[idx]
	if delta := uint64(x) - uint64(e.Src); delta < e.Len {
		return D(uint64(e.Dst) + delta)
	}

	return D(x) // in the gap after e: identity
}

// Span is a contiguous run of Len values starting at Start.
type Span[D constraints.Unsigned] struct {
	Start D
	Len   uint64
}

// MapRange lazily maps the source interval [start, start+length) into
// destination spans, splitting at every entry boundary it crosses.
// Spans are yielded in increasing source order and their lengths sum to
// length exactly.
func (m *RangeMap[S, D]) MapRange(start S, length uint64) iter.Seq[Span[D]] {
	return func(yield func(Span[D]) bool) {
		idx := m.search(start)
		if idx < 0 {
			idx = 0
		}

		cur := uint64(start)
		remaining := length
		for remaining > 0 {
			if idx == len(m.entries) {
				yield(Span[D]{Start: D(cur), Len: remaining})
				return
			}
			e := m.entries[idx]
			src := uint64(e.Src)

			switch {
			case src > cur:
				// unmapped gap before the entry: identity span up to it
				n := min(src-cur, remaining)
				if !yield(Span[D]{Start: D(cur), Len: n}) {
					return
				}
				cur += n
				remaining -= n

			case cur >= src+e.Len:
				// past this entry; emit identity until the next one (if
				// the remaining interval even reaches it)
				if idx+1 < len(m.entries) && uint64(m.entries[idx+1].Src) < cur+remaining {
					n := min(uint64(m.entries[idx+1].Src)-cur, remaining)
					if !yield(Span[D]{Start: D(cur), Len: n}) {
						return
					}
					cur += n
					remaining -= n
					idx++
				} else {
					yield(Span[D]{Start: D(cur), Len: remaining})
					return
				}

			default:
				// the head of the remaining interval lies inside e
				off := cur - src
				n := min(remaining, e.Len-off)
				if !yield(Span[D]{Start: D(uint64(e.Dst) + off), Len: n}) {
					return
				}
				cur += n
				remaining -= n
				idx++
			}
		}
	}
}
