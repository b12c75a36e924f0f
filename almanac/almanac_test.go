package almanac_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlegrid/almanac"
)

const sampleAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func loadSample(t *testing.T) *almanac.Almanac {
	t.Helper()
	a, err := almanac.Load(strings.NewReader(sampleAlmanac))
	require.NoError(t, err)
	return a
}

// TestLoad verifies block splitting, the seed list, and entry sorting by
// source start.
func TestLoad(t *testing.T) {
	a := loadSample(t)

	if diff := cmp.Diff([]almanac.Seed{79, 14, 55, 13}, a.Seeds); diff != "" {
		t.Fatalf("seeds mismatch (-want +got):\n%s", diff)
	}

	// "50 98 2" sorts after "52 50 48" by source start
	require.Equal(t, almanac.Soil(81), a.SeedSoil.MapOne(79))
	require.Equal(t, almanac.Soil(14), a.SeedSoil.MapOne(14)) // identity gap
	require.Equal(t, almanac.Soil(50), a.SeedSoil.MapOne(98))
	require.Equal(t, almanac.Soil(51), a.SeedSoil.MapOne(99))
	require.Equal(t, almanac.Soil(100), a.SeedSoil.MapOne(100)) // past last entry
}

// TestLoad_Errors covers the document-shape failure modes.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Empty", "", almanac.ErrMissingSeeds},
		{"NoSeedsLine", "soil map:\n1 2 3\n", almanac.ErrMissingSeeds},
		{"TooFewMaps", "seeds: 1\n\na-to-b map:\n1 2 3\n", almanac.ErrMissingMap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := almanac.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestLoad_BadEntry verifies a malformed entry line is rejected.
func TestLoad_BadEntry(t *testing.T) {
	doc := strings.Replace(sampleAlmanac, "50 98 2", "50 98", 1)
	_, err := almanac.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, almanac.ErrBadEntry)
}

// TestLocation verifies the full pipeline on the four reference seeds.
func TestLocation(t *testing.T) {
	a := loadSample(t)

	want := map[almanac.Seed]almanac.Location{
		79: 82,
		14: 43,
		55: 86,
		13: 35,
	}
	for seed, loc := range want {
		require.Equal(t, loc, a.Location(seed), "seed %d", seed)
	}
}

// TestMinLocation solves part one.
func TestMinLocation(t *testing.T) {
	a := loadSample(t)

	loc, err := a.MinLocation()
	require.NoError(t, err)
	require.Equal(t, almanac.Location(35), loc)
}

// TestMinLocationRanges solves part two via interval propagation.
func TestMinLocationRanges(t *testing.T) {
	a := loadSample(t)

	loc, err := a.MinLocationRanges()
	require.NoError(t, err)
	require.Equal(t, almanac.Location(46), loc)
}

// TestMinLocationRanges_OddSeeds verifies the pairing precondition.
func TestMinLocationRanges_OddSeeds(t *testing.T) {
	a := loadSample(t)
	a.Seeds = a.Seeds[:3]

	_, err := a.MinLocationRanges()
	require.ErrorIs(t, err, almanac.ErrOddSeedRanges)
}
