// Package problems wires every puzzle package into a runner.Set.
//
// Each entry adapts a puzzle's typed Load/solve functions to the
// runner's opaque any-based signatures; the solvers themselves stay
// strongly typed in their own packages.
package problems

import (
	"io"

	"github.com/katalvlaran/puzzlegrid/almanac"
	"github.com/katalvlaran/puzzlegrid/calibration"
	"github.com/katalvlaran/puzzlegrid/cubegame"
	"github.com/katalvlaran/puzzlegrid/runner"
	"github.com/katalvlaran/puzzlegrid/schematic"
	"github.com/katalvlaran/puzzlegrid/scratchcard"
)

// load adapts a typed loader to the runner's any-valued signature.
func load[T any](f func(io.Reader) (T, error)) func(io.Reader) (any, error) {
	return func(r io.Reader) (any, error) {
		v, err := f(r)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// part adapts a typed solver to the runner's any-valued signature.
func part[T, A any](f func(T) (A, error)) func(any) (any, error) {
	return func(data any) (any, error) {
		return f(data.(T))
	}
}

// pure adapts a solver that cannot fail.
func pure[T, A any](f func(T) A) func(any) (any, error) {
	return func(data any) (any, error) {
		return f(data.(T)), nil
	}
}

// All returns the full registry. The only error source is a wiring
// mistake in this file (a duplicate or malformed entry).
func All() (*runner.Set, error) {
	set := runner.NewSet()
	for _, p := range []runner.Problem{
		{
			Number: 1,
			Name:   "calibration",
			Load:   load(calibration.Load),
			Part1:  part(calibration.SumDigits),
			Part2:  part(calibration.SumWordDigits),
		},
		{
			Number: 2,
			Name:   "cubegame",
			Load:   load(cubegame.Load),
			Part1: pure(func(games []cubegame.Game) int {
				return cubegame.SumPossibleIDs(games, cubegame.Draw{12, 13, 14})
			}),
			Part2: pure(cubegame.SumMinSetPowers),
		},
		{
			Number: 3,
			Name:   "schematic",
			Load:   load(schematic.Load),
			Part1:  pure(schematic.SumPartNumbers),
			Part2:  pure(schematic.SumGearRatios),
		},
		{
			Number: 4,
			Name:   "scratchcard",
			Load:   load(scratchcard.Load),
			Part1:  pure(scratchcard.TotalPoints),
			Part2:  pure(scratchcard.TotalCards),
		},
		{
			Number: 5,
			Name:   "almanac",
			Load:   load(almanac.Load),
			Part1:  part((*almanac.Almanac).MinLocation),
			Part2:  part((*almanac.Almanac).MinLocationRanges),
		},
	} {
		if err := set.Register(p); err != nil {
			return nil, err
		}
	}
	return set, nil
}
