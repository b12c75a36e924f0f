package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/katalvlaran/puzzlegrid/grid"
)

// Sentinel errors for ingestion failures.
var (
	// ErrRaggedRows indicates grid input lines of differing width.
	ErrRaggedRows = errors.New("input: grid rows are not allowed to vary in width")

	// ErrNoMatch indicates a line the regular expression did not match.
	ErrNoMatch = errors.New("input: no regex match")

	// ErrEmptyInput indicates grid input with no non-blank lines.
	ErrEmptyInput = errors.New("input: no non-blank lines")
)

// maxLineBytes bounds a single input line; puzzle inputs are small.
const maxLineBytes = 1 << 20

// Lines reads r line by line, trims surrounding whitespace, skips blank
// lines, and applies parse to each remaining line in order. Parser
// failures are returned wrapped with the 1-based line number.
func Lines[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	var out []T
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("input: line %d: %w", lineNo, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return out, nil
}

// LinesRegex compiles expr and applies it to every non-blank line,
// passing the submatch slice (match[0] is the whole line) to parse.
// A non-matching line yields ErrNoMatch wrapped with its line number.
func LinesRegex[T any](r io.Reader, expr string, parse func(match []string) (T, error)) ([]T, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("input: compile %q: %w", expr, err)
	}

	return Lines(r, func(line string) (T, error) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			var zero T
			return zero, ErrNoMatch
		}
		return parse(m)
	})
}

// Grid reads a rectangular character block, converting every character
// of every non-blank line through conv. Width is set by the first
// non-blank line; height is the count of non-blank lines.
//
// Returns ErrRaggedRows when a line's length differs from the first,
// ErrEmptyInput when no non-blank line exists, and conv failures wrapped
// with their position.
func Grid[T any](r io.Reader, conv func(rune) (T, error)) (*grid.Grid[T], error) {
	var data []T
	width := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		runes := []rune(line)
		if width == 0 {
			width = len(runes)
			data = make([]T, 0, width*width) // square-ish guess
		} else if len(runes) != width {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrRaggedRows)
		}

		for col, c := range runes {
			v, err := conv(c)
			if err != nil {
				return nil, fmt.Errorf("input: line %d, column %d: %w", lineNo, col+1, err)
			}
			data = append(data, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}
	if width == 0 {
		return nil, ErrEmptyInput
	}

	return grid.FromData(data, width), nil
}
