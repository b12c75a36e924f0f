package almanac_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlegrid/almanac"
)

// newTestMap builds a Seed→Soil map with two entries and a gap:
// [10,20)→[110,120), [30,35)→[0,5); everything else is identity.
func newTestMap() *almanac.RangeMap[almanac.Seed, almanac.Soil] {
	return almanac.NewRangeMap([]almanac.Entry[almanac.Seed, almanac.Soil]{
		{Src: 30, Dst: 0, Len: 5},
		{Src: 10, Dst: 110, Len: 10},
	})
}

func collectSpans(m *almanac.RangeMap[almanac.Seed, almanac.Soil], start almanac.Seed, length uint64) []almanac.Span[almanac.Soil] {
	var out []almanac.Span[almanac.Soil]
	for sp := range m.MapRange(start, length) {
		out = append(out, sp)
	}
	return out
}

// TestMapOne covers mapped values, both identity regions and the exact
// entry boundaries.
func TestMapOne(t *testing.T) {
	m := newTestMap()

	require.Equal(t, almanac.Soil(5), m.MapOne(5))     // before all entries
	require.Equal(t, almanac.Soil(110), m.MapOne(10))  // entry start
	require.Equal(t, almanac.Soil(119), m.MapOne(19))  // entry last value
	require.Equal(t, almanac.Soil(20), m.MapOne(20))   // first value past entry
	require.Equal(t, almanac.Soil(25), m.MapOne(25))   // gap between entries
	require.Equal(t, almanac.Soil(3), m.MapOne(33))    // second entry interior
	require.Equal(t, almanac.Soil(35), m.MapOne(35))   // past the last entry
	require.Equal(t, almanac.Soil(999), m.MapOne(999)) // far past
}

// TestMapRange_SplitsAcrossBoundaries verifies an interval crossing
// identity gap → entry → gap → entry → tail splits into five spans whose
// lengths sum to the input length.
func TestMapRange_SplitsAcrossBoundaries(t *testing.T) {
	m := newTestMap()

	got := collectSpans(m, 5, 35) // covers [5,40)
	want := []almanac.Span[almanac.Soil]{
		{Start: 5, Len: 5},    // [5,10)   identity before first entry
		{Start: 110, Len: 10}, // [10,20)  mapped by first entry
		{Start: 20, Len: 10},  // [20,30)  identity gap
		{Start: 0, Len: 5},    // [30,35)  mapped by second entry
		{Start: 35, Len: 5},   // [35,40)  identity tail
	}
	require.Equal(t, want, got)

	var total uint64
	for _, sp := range got {
		total += sp.Len
	}
	require.Equal(t, uint64(35), total)
}

// TestMapRange_FullyInsideEntry verifies a sub-interval of one entry
// yields a single mapped span.
func TestMapRange_FullyInsideEntry(t *testing.T) {
	m := newTestMap()

	got := collectSpans(m, 12, 4)
	require.Equal(t, []almanac.Span[almanac.Soil]{{Start: 112, Len: 4}}, got)
}

// TestMapRange_UnmappedInterval verifies intervals touching no entry
// pass through whole.
func TestMapRange_UnmappedInterval(t *testing.T) {
	m := newTestMap()

	require.Equal(t,
		[]almanac.Span[almanac.Soil]{{Start: 0, Len: 8}},
		collectSpans(m, 0, 8))
	require.Equal(t,
		[]almanac.Span[almanac.Soil]{{Start: 50, Len: 100}},
		collectSpans(m, 50, 100))
}

// TestMapRange_GapThenNextEntry verifies an interval starting in the gap
// after one entry and reaching into the next.
func TestMapRange_GapThenNextEntry(t *testing.T) {
	m := newTestMap()

	got := collectSpans(m, 25, 7) // [25,32)
	want := []almanac.Span[almanac.Soil]{
		{Start: 25, Len: 5}, // [25,30) identity
		{Start: 0, Len: 2},  // [30,32) mapped
	}
	require.Equal(t, want, got)
}

// TestMapRange_ZeroLength verifies an empty interval yields nothing.
func TestMapRange_ZeroLength(t *testing.T) {
	m := newTestMap()

	require.Empty(t, collectSpans(m, 15, 0))
}
