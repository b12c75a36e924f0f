// Package scratchcard scores scratch cards by matching a card's own
// numbers against its winning numbers, and plays out the cascading-copy
// rule where each match wins a copy of the following cards.
//
// Card numbers are at most two digits, so each side of a card is stored
// as a 128-bit set and matching is two AND + popcount operations.
package scratchcard

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlegrid/input"
)

// Sentinel errors for card parsing.
var (
	// ErrNumberRange indicates a card number outside 0..127.
	ErrNumberRange = errors.New("scratchcard: number outside bitset range")
)

// cardPattern matches "Card N: w w w | n n n".
const cardPattern = `^Card +(\d+): +((?:\d+ *)*)\| *((?:\d+ *)*)$`

// NumberSet is a set of card numbers in [0,128) backed by two words.
type NumberSet [2]uint64

// Add inserts n into the set. Returns ErrNumberRange for n outside the
// backing capacity.
func (s *NumberSet) Add(n int) error {
	if n < 0 || n >= 128 {
		return fmt.Errorf("%w: %d", ErrNumberRange, n)
	}
	s[n/64] |= 1 << (n % 64)

	return nil
}

// Contains reports whether n is in the set.
func (s NumberSet) Contains(n int) bool {
	if n < 0 || n >= 128 {
		return false
	}

	return s[n/64]&(1<<(n%64)) != 0
}

// Count returns the set's cardinality.
func (s NumberSet) Count() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1])
}

// Intersect returns the elements common to both sets.
func (s NumberSet) Intersect(o NumberSet) NumberSet {
	return NumberSet{s[0] & o[0], s[1] & o[1]}
}

// Card is one scratch card: the winning numbers and the numbers you
// have.
type Card struct {
	Winning NumberSet
	Have    NumberSet
}

// Matches returns how many of the card's own numbers are winning.
func (c Card) Matches() int {
	return c.Winning.Intersect(c.Have).Count()
}

// Points returns the card's part-one value: zero for no matches,
// doubling from 1 for each further match.
func (c Card) Points() int {
	n := c.Matches()
	if n == 0 {
		return 0
	}

	return 1 << (n - 1)
}

// Load parses one Card per non-blank line. Line format:
//
//	Card 3: 1 21 53 | 69 82 63 72 16 21
func Load(r io.Reader) ([]Card, error) {
	return input.LinesRegex(r, cardPattern, func(m []string) (Card, error) {
		var c Card
		if err := parseSet(&c.Winning, m[2]); err != nil {
			return Card{}, err
		}
		if err := parseSet(&c.Have, m[3]); err != nil {
			return Card{}, err
		}
		return c, nil
	})
}

func parseSet(s *NumberSet, field string) error {
	for _, tok := range strings.Fields(field) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("scratchcard: number %q: %w", tok, err)
		}
		if err := s.Add(n); err != nil {
			return err
		}
	}

	return nil
}

// TotalPoints sums the part-one value of every card.
func TotalPoints(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Points()
	}

	return total
}

// TotalCards plays the cascading-copy rule and returns how many cards
// are processed in total (part two). Winning n matches on card i wins
// one extra copy each of cards i+1..i+n, per copy of card i held.
//
// Runs in O(len(cards)) by tracking a live duplicate counter alongside
// an expiry schedule instead of materializing the copies.
func TotalCards(cards []Card) int {
	dupes := 1 // copies of the next card, this one included
	expiring := make([]int, len(cards))

	total := 0
	for i, c := range cards {
		dupes -= expiring[i]
		total += dupes

		n := c.Matches()
		if n == 0 {
			continue
		}
		if end := i + 1 + n; end < len(expiring) {
			expiring[end] += dupes // the copies won here stop at end
		}
		dupes += dupes
	}

	return total
}
