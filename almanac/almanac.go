package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for almanac parsing and solving.
var (
	// ErrMissingSeeds indicates input without a leading "seeds:" line.
	ErrMissingSeeds = errors.New("almanac: missing seeds line")

	// ErrMissingMap indicates fewer than the seven required map blocks.
	ErrMissingMap = errors.New("almanac: missing required map block")

	// ErrBadMapHeader indicates a block not headed by "<src>-to-<dst> map:".
	ErrBadMapHeader = errors.New("almanac: malformed map header")

	// ErrBadEntry indicates a map line without exactly three numbers.
	ErrBadEntry = errors.New("almanac: malformed map entry")

	// ErrNoSeeds indicates an almanac whose seed list is empty.
	ErrNoSeeds = errors.New("almanac: no seeds to map")

	// ErrOddSeedRanges indicates a seed list that does not pair up into
	// (start, length) ranges.
	ErrOddSeedRanges = errors.New("almanac: seed list does not form ranges")
)

// The pipeline's category domains. Distinct types keep each map usable
// only at its own stage.
type (
	Seed        uint64
	Soil        uint64
	Fertilizer  uint64
	Water       uint64
	Light       uint64
	Temperature uint64
	Humidity    uint64
	Location    uint64
)

// Almanac is the parsed input: the seed list and the seven chained maps.
type Almanac struct {
	Seeds []Seed

	SeedSoil   *RangeMap[Seed, Soil]
	SoilFert   *RangeMap[Soil, Fertilizer]
	FertWater  *RangeMap[Fertilizer, Water]
	WaterLight *RangeMap[Water, Light]
	LightTemp  *RangeMap[Light, Temperature]
	TempHumid  *RangeMap[Temperature, Humidity]
	HumidLoc   *RangeMap[Humidity, Location]
}

// Load parses an almanac document: a "seeds:" line, then seven map
// blocks separated by blank lines, each "<src>-to-<dst> map:" followed
// by "dst src len" entry lines.
func Load(r io.Reader) (*Almanac, error) {
	blocks, err := readBlocks(r)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrMissingSeeds
	}

	seeds, err := parseSeeds(blocks[0])
	if err != nil {
		return nil, err
	}
	blocks = blocks[1:]
	if len(blocks) < 7 {
		return nil, fmt.Errorf("%w: have %d of 7", ErrMissingMap, len(blocks))
	}

	a := &Almanac{Seeds: seeds}
	if a.SeedSoil, err = parseRangeMap[Seed, Soil](blocks[0]); err != nil {
		return nil, err
	}
	if a.SoilFert, err = parseRangeMap[Soil, Fertilizer](blocks[1]); err != nil {
		return nil, err
	}
	if a.FertWater, err = parseRangeMap[Fertilizer, Water](blocks[2]); err != nil {
		return nil, err
	}
	if a.WaterLight, err = parseRangeMap[Water, Light](blocks[3]); err != nil {
		return nil, err
	}
	if a.LightTemp, err = parseRangeMap[Light, Temperature](blocks[4]); err != nil {
		return nil, err
	}
	if a.TempHumid, err = parseRangeMap[Temperature, Humidity](blocks[5]); err != nil {
		return nil, err
	}
	if a.HumidLoc, err = parseRangeMap[Humidity, Location](blocks[6]); err != nil {
		return nil, err
	}

	return a, nil
}

// readBlocks splits the input into runs of non-blank lines.
func readBlocks(r io.Reader) ([][]string, error) {
	var blocks [][]string
	var cur []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("almanac: read: %w", err)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks, nil
}

func parseSeeds(block []string) ([]Seed, error) {
	_, list, ok := strings.Cut(block[0], ":")
	if !ok || !strings.HasPrefix(block[0], "seeds") {
		return nil, ErrMissingSeeds
	}

	fields := strings.Fields(list)
	seeds := make([]Seed, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("almanac: seed %q: %w", f, err)
		}
		seeds = append(seeds, Seed(n))
	}

	return seeds, nil
}

func parseRangeMap[S, D constraints.Unsigned](block []string) (*RangeMap[S, D], error) {
	if !strings.HasSuffix(block[0], " map:") {
		return nil, fmt.Errorf("%w: %q", ErrBadMapHeader, block[0])
	}

	entries := make([]Entry[S, D], 0, len(block)-1)
	for _, line := range block[1:] {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrBadEntry, line)
		}
		var nums [3]uint64
		for i, f := range fields {
			n, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadEntry, line, err)
			}
			nums[i] = n
		}
		entries = append(entries, Entry[S, D]{Dst: D(nums[0]), Src: S(nums[1]), Len: nums[2]})
	}

	return NewRangeMap(entries), nil
}

// Location resolves a single seed through the whole pipeline.
func (a *Almanac) Location(s Seed) Location {
	return a.HumidLoc.MapOne(
		a.TempHumid.MapOne(
			a.LightTemp.MapOne(
				a.WaterLight.MapOne(
					a.FertWater.MapOne(
						a.SoilFert.MapOne(
							a.SeedSoil.MapOne(s)))))))
}

// MinLocation maps every listed seed individually and returns the
// smallest resulting location (part one).
func (a *Almanac) MinLocation() (Location, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}

	best := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		if loc := a.Location(s); loc < best {
			best = loc
		}
	}

	return best, nil
}

// mapSpans pushes every input span through one pipeline stage.
func mapSpans[S, D constraints.Unsigned](m *RangeMap[S, D], in []Span[S]) []Span[D] {
	out := make([]Span[D], 0, len(in))
	for _, sp := range in {
		for o := range m.MapRange(S(sp.Start), sp.Len) {
			out = append(out, o)
		}
	}

	return out
}

// MinLocationRanges interprets the seed list as (start, length) pairs
// and returns the smallest location reachable from any covered seed
// (part two). Whole intervals flow through the pipeline; no individual
// seed is ever enumerated.
func (a *Almanac) MinLocationRanges() (Location, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}
	if len(a.Seeds)%2 != 0 {
		return 0, ErrOddSeedRanges
	}

	spans := make([]Span[Seed], 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		spans = append(spans, Span[Seed]{Start: a.Seeds[i], Len: uint64(a.Seeds[i+1])})
	}

	locs := mapSpans(a.HumidLoc,
		mapSpans(a.TempHumid,
			mapSpans(a.LightTemp,
				mapSpans(a.WaterLight,
					mapSpans(a.FertWater,
						mapSpans(a.SoilFert,
							mapSpans(a.SeedSoil, spans)))))))

	if len(locs) == 0 {
		return 0, ErrNoSeeds // every range had zero length
	}
	best := locs[0].Start
	for _, sp := range locs[1:] {
		if sp.Start < best {
			best = sp.Start
		}
	}

	return best, nil
}
