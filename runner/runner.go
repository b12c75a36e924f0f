package runner

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrUnknownProblem is returned when a Set lookup misses.
	ErrUnknownProblem = errors.New("runner: unknown problem number")
	// ErrDuplicateProblem is returned when Register sees a number twice.
	ErrDuplicateProblem = errors.New("runner: duplicate problem number")
	// ErrBadProblem is returned when a Problem lacks a positive number,
	// a Load function, or a Part1 solver.
	ErrBadProblem = errors.New("runner: malformed problem definition")
	// ErrNoSamples is returned when Bench is asked for fewer than one sample.
	ErrNoSamples = errors.New("runner: bench sample count must be positive")
)

// log carries runner diagnostics; replace it with SetLogger to route
// output elsewhere or raise the level.
var log = logrus.New()

// SetLogger swaps the package logger. Passing nil restores a default.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.New()
	}
	log = l
}

// Problem bundles one puzzle: a loader that parses raw input into an
// opaque value, and the part solvers that consume it. Part2 may be nil
// while a puzzle is half solved.
type Problem struct {
	Number int
	Name   string
	Load   func(io.Reader) (any, error)
	Part1  func(any) (any, error)
	Part2  func(any) (any, error)
}

// Set is a registry of problems keyed by 1-based number.
type Set struct {
	problems map[int]Problem
}

// NewSet returns an empty registry.
func NewSet() *Set {
	return &Set{problems: make(map[int]Problem)}
}

// Register adds p to the set.
// Returns ErrBadProblem for an unusable definition and
// ErrDuplicateProblem when the number is already taken.
func (s *Set) Register(p Problem) error {
	if p.Number < 1 || p.Load == nil || p.Part1 == nil {
		return fmt.Errorf("%w: number=%d", ErrBadProblem, p.Number)
	}
	if _, ok := s.problems[p.Number]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateProblem, p.Number)
	}
	s.problems[p.Number] = p
	return nil
}

// Get looks up a problem by number.
func (s *Set) Get(number int) (Problem, error) {
	p, ok := s.problems[number]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %d", ErrUnknownProblem, number)
	}
	return p, nil
}

// Numbers lists the registered problem numbers in ascending order.
func (s *Set) Numbers() []int {
	nums := make([]int, 0, len(s.problems))
	for n := range s.problems {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// PartResult is the outcome of one solver part. Err is non-nil when the
// solver failed; Answer is then meaningless.
type PartResult struct {
	Answer  any
	Elapsed time.Duration
	Err     error
}

// Result is the outcome of running both parts of one problem.
// Part2 is nil when the problem has no second part.
type Result struct {
	Number int
	Name   string
	Part1  *PartResult
	Part2  *PartResult
}

// Run loads input for problem number from in, then solves and times
// each registered part. A part failure is recorded in its PartResult;
// Run itself fails only on lookup or load errors.
func (s *Set) Run(number int, in io.Reader) (Result, error) {
	p, err := s.Get(number)
	if err != nil {
		return Result{}, err
	}
	data, err := p.Load(in)
	if err != nil {
		return Result{}, fmt.Errorf("runner: problem %d: load: %w", number, err)
	}

	res := Result{Number: p.Number, Name: p.Name}
	res.Part1 = solvePart(p, 1, p.Part1, data)
	if p.Part2 != nil {
		res.Part2 = solvePart(p, 2, p.Part2, data)
	}
	return res, nil
}

func solvePart(p Problem, part int, f func(any) (any, error), data any) *PartResult {
	start := time.Now()
	answer, err := f(data)
	elapsed := time.Since(start)
	entry := log.WithFields(logrus.Fields{
		"problem": p.Number,
		"part":    part,
		"elapsed": elapsed,
	})
	if err != nil {
		entry.WithError(err).Warn("part failed")
		return &PartResult{Elapsed: elapsed, Err: err}
	}
	entry.Debug("part solved")
	return &PartResult{Answer: answer, Elapsed: elapsed}
}

// BenchSummary condenses one part's sample durations.
type BenchSummary struct {
	Samples int
	Mean    time.Duration
	StdDev  time.Duration
	Min     time.Duration
	Max     time.Duration
}

// BenchReport is the outcome of benchmarking both parts of one problem.
type BenchReport struct {
	Number int
	Name   string
	Part1  *BenchSummary
	Part2  *BenchSummary
}

// Bench loads input for problem number once, then re-solves each part
// samples times and summarizes the observed durations. A part that
// errors aborts the whole bench: timing a failing solver is noise.
func (s *Set) Bench(number int, in io.Reader, samples int) (BenchReport, error) {
	if samples < 1 {
		return BenchReport{}, ErrNoSamples
	}
	p, err := s.Get(number)
	if err != nil {
		return BenchReport{}, err
	}
	data, err := p.Load(in)
	if err != nil {
		return BenchReport{}, fmt.Errorf("runner: problem %d: load: %w", number, err)
	}

	rep := BenchReport{Number: p.Number, Name: p.Name}
	if rep.Part1, err = benchPart(p.Part1, data, samples); err != nil {
		return BenchReport{}, fmt.Errorf("runner: problem %d: part 1: %w", number, err)
	}
	if p.Part2 != nil {
		if rep.Part2, err = benchPart(p.Part2, data, samples); err != nil {
			return BenchReport{}, fmt.Errorf("runner: problem %d: part 2: %w", number, err)
		}
	}
	return rep, nil
}

func benchPart(f func(any) (any, error), data any, samples int) (*BenchSummary, error) {
	durations := make([]float64, samples)
	sum := BenchSummary{Samples: samples, Min: time.Duration(1<<63 - 1)}
	for i := 0; i < samples; i++ {
		start := time.Now()
		if _, err := f(data); err != nil {
			return nil, err
		}
		d := time.Since(start)
		durations[i] = float64(d)
		if d < sum.Min {
			sum.Min = d
		}
		if d > sum.Max {
			sum.Max = d
		}
	}
	sum.Mean = time.Duration(stat.Mean(durations, nil))
	if samples > 1 {
		sum.StdDev = time.Duration(stat.StdDev(durations, nil))
	}
	return &sum, nil
}
