package input_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlegrid/input"
)

// TestLines_SkipsBlanksAndTrims verifies blank-line skipping and
// whitespace trimming around each parsed line.
func TestLines_SkipsBlanksAndTrims(t *testing.T) {
	r := strings.NewReader("  10 \n\n 20\n\n\n30\n")

	got, err := input.Lines(r, strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, []int{10, 20, 30}, got)
}

// TestLines_ParserErrorCarriesLineNumber verifies parser failures come
// back as recoverable errors wrapped with the 1-based line number.
func TestLines_ParserErrorCarriesLineNumber(t *testing.T) {
	r := strings.NewReader("1\n2\nnope\n")

	_, err := input.Lines(r, strconv.Atoi)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 3")
}

// TestLinesRegex_Submatches verifies submatch extraction and ErrNoMatch
// for non-conforming lines.
func TestLinesRegex_Submatches(t *testing.T) {
	type pair struct{ a, b int }

	r := strings.NewReader("3x4\n10x20\n")
	got, err := input.LinesRegex(r, `^(\d+)x(\d+)$`, func(m []string) (pair, error) {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		return pair{a, b}, nil
	})
	require.NoError(t, err)
	require.Equal(t, []pair{{3, 4}, {10, 20}}, got)

	_, err = input.LinesRegex(strings.NewReader("3x4\nbogus\n"), `^(\d+)x(\d+)$`,
		func(m []string) (pair, error) { return pair{}, nil })
	require.ErrorIs(t, err, input.ErrNoMatch)
}

// TestLinesRegex_BadExpression verifies a compile failure surfaces as an
// ordinary error.
func TestLinesRegex_BadExpression(t *testing.T) {
	_, err := input.LinesRegex(strings.NewReader("x\n"), `([`, func(m []string) (int, error) {
		return 0, nil
	})
	require.Error(t, err)
}

// TestGrid_Dimensions verifies width from the first non-blank line and
// height from the count of non-blank lines.
func TestGrid_Dimensions(t *testing.T) {
	r := strings.NewReader("abc\n\ndef\n")

	g, err := input.Grid(r, func(c rune) (rune, error) { return c, nil })
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, 'e', g.Get(1, 1))
}

// TestGrid_RaggedRows verifies the inconsistent-width failure mode.
func TestGrid_RaggedRows(t *testing.T) {
	r := strings.NewReader("abc\nde\n")

	_, err := input.Grid(r, func(c rune) (rune, error) { return c, nil })
	require.ErrorIs(t, err, input.ErrRaggedRows)
	require.Contains(t, err.Error(), "line 2")
}

// TestGrid_EmptyInput verifies blank-only input is rejected rather than
// producing a degenerate grid.
func TestGrid_EmptyInput(t *testing.T) {
	_, err := input.Grid(strings.NewReader("\n  \n"), func(c rune) (rune, error) { return c, nil })
	require.ErrorIs(t, err, input.ErrEmptyInput)
}

// TestGrid_ConverterError verifies a malformed character is surfaced as
// a recoverable error with its position, not a panic.
func TestGrid_ConverterError(t *testing.T) {
	bad := errors.New("bad cell")
	r := strings.NewReader("ab\nc!\n")

	_, err := input.Grid(r, func(c rune) (rune, error) {
		if c == '!' {
			return 0, bad
		}
		return c, nil
	})
	require.ErrorIs(t, err, bad)
	require.Contains(t, err.Error(), "line 2, column 2")
}
