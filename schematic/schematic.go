package schematic

import (
	"io"
	"slices"

	"github.com/katalvlaran/puzzlegrid/grid"
	"github.com/katalvlaran/puzzlegrid/input"
)

// Kind classifies one schematic cell.
type Kind uint8

const (
	// Empty is a '.' cell.
	Empty Kind = iota
	// Symbol is any non-digit, non-'.' character.
	Symbol
	// Digit is an ASCII digit cell.
	Digit
)

// Cell is one schematic cell. Sym is set for Symbol cells, Digit for
// Digit cells.
type Cell struct {
	Kind  Kind
	Sym   rune
	Digit int
}

// CellFromRune classifies a schematic character. Every character is
// valid: digits become Digit cells, '.' becomes Empty, and anything else
// is a Symbol.
func CellFromRune(c rune) (Cell, error) {
	switch {
	case c >= '0' && c <= '9':
		return Cell{Kind: Digit, Digit: int(c - '0')}, nil
	case c == '.':
		return Cell{Kind: Empty}, nil
	default:
		return Cell{Kind: Symbol, Sym: c}, nil
	}
}

// Load reads a schematic character grid.
func Load(r io.Reader) (*grid.Grid[Cell], error) {
	return input.Grid(r, CellFromRune)
}

// NumberMap is the merged view of a schematic's multi-digit numbers:
// Numbers holds each number once, and IDs maps every digit cell to the
// index of its number (-1 for non-digit cells).
type NumberMap struct {
	Numbers []int
	IDs     *grid.Grid[int]
}

// BuildNumberMap merges horizontal digit runs into numbers by running a
// tiny accumulate/flush machine over each row.
func BuildNumberMap(g *grid.Grid[Cell]) *NumberMap {
	ids := grid.FilledLike(g, -1)
	var numbers []int

	for y := 0; y < g.Height(); y++ {
		accum, id := 0, -1
		flush := func() {
			if id >= 0 {
				numbers = append(numbers, accum)
				accum, id = 0, -1
			}
		}
		for x := 0; x < g.Width(); x++ {
			c := g.Get(x, y)
			if c.Kind != Digit {
				flush()
				continue
			}
			if id < 0 {
				id = len(numbers)
			}
			accum = accum*10 + c.Digit
			ids.Set(x, y, id)
		}
		flush() // number running into the row edge
	}

	return &NumberMap{Numbers: numbers, IDs: ids}
}

// SumPartNumbers sums every number with at least one digit cell
// 8-adjacent to a symbol (part one).
func SumPartNumbers(g *grid.Grid[Cell]) int {
	m := BuildNumberMap(g)

	used := make(map[int]struct{})
	for p := range g.Points() {
		if p.Value().Kind != Symbol {
			continue
		}
		for q := range p.Neighbors() {
			if id := m.IDs.Get(q.X(), q.Y()); id >= 0 {
				used[id] = struct{}{}
			}
		}
	}

	total := 0
	for id := range used {
		total += m.Numbers[id]
	}

	return total
}

// SumGearRatios sums the ratio (product of the two adjacent numbers) of
// every '*' symbol adjacent to exactly two distinct numbers (part two).
func SumGearRatios(g *grid.Grid[Cell]) int {
	m := BuildNumberMap(g)

	total := 0
	for p := range g.Points() {
		c := p.Value()
		if c.Kind != Symbol || c.Sym != '*' {
			continue
		}

		ids := make([]int, 0, 2)
		overfull := false
		for q := range p.Neighbors() {
			id := m.IDs.Get(q.X(), q.Y())
			if id < 0 || slices.Contains(ids, id) {
				continue
			}
			if len(ids) == 2 {
				overfull = true
				break
			}
			ids = append(ids, id)
		}
		if !overfull && len(ids) == 2 {
			total += m.Numbers[ids[0]] * m.Numbers[ids[1]]
		}
	}

	return total
}
