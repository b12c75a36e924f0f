// Package cubegame analyzes cube drawing games: each game is a sequence
// of draws of red, green and blue cubes from one bag, and the questions
// are which games are possible for a given starting bag (part one) and
// what the minimal bag for each game is worth (part two).
package cubegame

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlegrid/input"
)

// Sentinel errors for game parsing.
var (
	// ErrBadFormat indicates a line missing the "Game N:" header or the
	// "count color" shape of a draw entry.
	ErrBadFormat = errors.New("cubegame: malformed game line")

	// ErrUnknownColor indicates a draw entry with a color other than
	// red, green or blue.
	ErrUnknownColor = errors.New("cubegame: unknown cube color")
)

// Draw counts the cubes revealed in one draw, indexed red, green, blue.
type Draw [3]int

// Game is one recorded game: its 1-based ID and every draw made.
type Game struct {
	ID    int
	Draws []Draw
}

// Load parses one Game per non-blank line. Line format:
//
//	Game 11: 3 blue, 4 red; 1 red, 2 green
func Load(r io.Reader) ([]Game, error) {
	return input.Lines(r, ParseGame)
}

// ParseGame parses a single game line.
func ParseGame(line string) (Game, error) {
	head, tail, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing colon", ErrBadFormat)
	}
	_, idStr, ok := strings.Cut(head, " ")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing game ID", ErrBadFormat)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Game{}, fmt.Errorf("%w: game ID %q", ErrBadFormat, idStr)
	}

	g := Game{ID: id}
	for _, part := range strings.Split(tail, ";") {
		var draw Draw
		for _, entry := range strings.Split(part, ",") {
			entry = strings.TrimSpace(entry)
			countStr, color, ok := strings.Cut(entry, " ")
			if !ok {
				return Game{}, fmt.Errorf("%w: draw entry %q", ErrBadFormat, entry)
			}
			n, err := strconv.Atoi(countStr)
			if err != nil {
				return Game{}, fmt.Errorf("%w: count %q", ErrBadFormat, countStr)
			}
			switch color {
			case "red":
				draw[0] += n
			case "green":
				draw[1] += n
			case "blue":
				draw[2] += n
			default:
				return Game{}, fmt.Errorf("%w: %q", ErrUnknownColor, color)
			}
		}
		g.Draws = append(g.Draws, draw)
	}

	return g, nil
}

// PossibleWith reports whether every draw of the game could have come
// from a bag holding start cubes of each color.
func (g Game) PossibleWith(start Draw) bool {
	for _, d := range g.Draws {
		if d[0] > start[0] || d[1] > start[1] || d[2] > start[2] {
			return false
		}
	}

	return true
}

// MinSet returns the smallest bag (per-color maximum over all draws)
// that makes the game possible.
func (g Game) MinSet() Draw {
	var m Draw
	for _, d := range g.Draws {
		m[0] = max(m[0], d[0])
		m[1] = max(m[1], d[1])
		m[2] = max(m[2], d[2])
	}

	return m
}

// Power returns the product of the draw's three counts.
func (d Draw) Power() int {
	return d[0] * d[1] * d[2]
}

// SumPossibleIDs sums the IDs of the games possible with the given
// starting bag (part one; the reference bag is 12 red, 13 green,
// 14 blue).
func SumPossibleIDs(games []Game, start Draw) int {
	total := 0
	for _, g := range games {
		if g.PossibleWith(start) {
			total += g.ID
		}
	}

	return total
}

// SumMinSetPowers sums the power of each game's minimal bag (part two).
func SumMinSetPowers(games []Game) int {
	total := 0
	for _, g := range games {
		total += g.MinSet().Power()
	}

	return total
}
