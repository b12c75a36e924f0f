package calibration

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/puzzlegrid/input"
)

// ErrNoDigits indicates a line with no recognizable digit.
var ErrNoDigits = errors.New("calibration: line contains no digits")

// Load reads one document line per non-blank input line.
func Load(r io.Reader) ([]string, error) {
	return input.Lines(r, func(line string) (string, error) { return line, nil })
}

// Digits returns the ASCII digits of line, in order.
func Digits(line string) []int {
	var out []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
		}
	}

	return out
}

// Word-digit recognizer state machine.
//
// Tokens map the 14 characters that can occur inside a spelled digit;
// every other character resets recognition. Rows are DFA states, columns
// tokens. Entries ≥ emitStart are pseudo-states that emit digit
// (entry−emitStart+1) and continue from emitNext, so the trailing
// character of one word doubles as the leading character of the next
// ("twone" emits 2 then 1).
const wordTokens = 14

//	 o  e  r  x  n  t  w  h  f  u  i  v  s  g
var wordStates = [25][wordTokens]uint8{
	{1, 5, 0, 0, 6, 2, 0, 0, 3, 0, 0, 0, 4, 0},    // 0
	{1, 5, 0, 0, 7, 2, 0, 0, 3, 0, 0, 0, 4, 0},    // 1  "o"
	{1, 5, 0, 0, 6, 2, 8, 9, 3, 0, 0, 0, 4, 0},    // 2  "t"
	{10, 5, 0, 0, 6, 2, 0, 0, 3, 0, 11, 0, 4, 0},  // 3  "f"
	{1, 13, 0, 0, 6, 2, 0, 0, 3, 0, 12, 0, 4, 0},  // 4  "s"
	{1, 5, 0, 0, 6, 2, 0, 0, 3, 0, 14, 0, 4, 0},   // 5  "e"
	{1, 5, 0, 0, 6, 2, 0, 0, 3, 0, 15, 0, 4, 0},   // 6  "n"
	{1, 25, 0, 0, 6, 2, 0, 0, 3, 0, 15, 0, 4, 0},  // 7  "on"
	{26, 5, 0, 0, 6, 2, 0, 0, 3, 0, 0, 0, 4, 0},   // 8  "tw"
	{1, 5, 16, 0, 6, 2, 0, 0, 3, 0, 0, 0, 4, 0},   // 9  "th"
	{1, 5, 0, 0, 7, 2, 0, 0, 3, 17, 0, 0, 4, 0},   // 10 "fo"
	{1, 5, 0, 0, 6, 2, 0, 0, 3, 0, 0, 18, 4, 0},   // 11 "fi"
	{1, 5, 0, 30, 6, 2, 0, 0, 3, 0, 0, 0, 4, 0},   // 12 "si"
	{1, 5, 0, 0, 6, 2, 0, 0, 3, 0, 14, 19, 4, 0},  // 13 "se"
	{1, 5, 0, 0, 6, 2, 0, 0, 3, 0, 0, 0, 4, 20},   // 14 "ei"
	{1, 5, 0, 0, 21, 2, 0, 0, 3, 0, 0, 0, 4, 0},   // 15 "ni"
	{1, 22, 0, 0, 6, 2, 0, 0, 3, 0, 0, 0, 4, 0},   // 16 "thr"
	{1, 5, 28, 0, 6, 2, 0, 0, 3, 0, 0, 0, 4, 0},   // 17 "fou"
	{1, 29, 0, 0, 6, 2, 0, 0, 3, 0, 0, 0, 4, 0},   // 18 "fiv"
	{1, 23, 0, 0, 6, 2, 0, 0, 3, 0, 0, 0, 4, 0},   // 19 "sev"
	{1, 5, 0, 0, 6, 2, 0, 24, 3, 0, 0, 0, 4, 0},   // 20 "eig"
	{1, 33, 0, 0, 6, 2, 0, 0, 3, 0, 15, 0, 4, 0},  // 21 "nin"
	{1, 27, 0, 0, 6, 2, 0, 0, 3, 0, 14, 0, 4, 0},  // 22 "thre"
	{1, 5, 0, 0, 31, 2, 0, 0, 3, 0, 14, 0, 4, 0},  // 23 "seve"
	{1, 5, 0, 0, 6, 32, 0, 0, 3, 0, 0, 0, 4, 0},   // 24 "eigh"
}

// emitStart is the first pseudo-state; pseudo-states 25..33 emit 1..9.
const emitStart = 25

// emitNext gives the continuation state after each emitted digit, chosen
// so the word's final character seeds the next recognition.
var emitNext = [9]uint8{5, 1, 5, 0, 5, 0, 6, 2, 5}

// wordCharMask marks the letters that may appear inside a spelled digit,
// bit 0 = 'a'.
//
//	                          zyxwvutsrqponmlkjihgfedcba
const wordCharMask uint32 = 0b00111111100110000111110000

// wordTokenOf maps 'a'..'z' to its token column (valid only for letters
// set in wordCharMask).
var wordTokenOf = [26]uint8{
	//  a  b  c  d  e  f  g  h  i  j  k  l  m
	0, 0, 0, 0, 1, 8, 13, 7, 10, 0, 0, 0, 0,
	//  n  o  p  q  r  s  t  u  v  w  x  y  z
	4, 0, 0, 0, 2, 12, 5, 9, 11, 6, 3, 0, 0,
}

// WordDigits returns every digit of line, recognizing both ASCII digits
// and spelled words "one".."nine". Overlapping spellings are handled by
// the state machine; the scan is a single O(n) pass.
func WordDigits(line string) []int {
	var out []int
	state := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
			state = 0
			continue
		}
		if c < 'a' || c > 'z' {
			state = 0
			continue
		}

		ci := int(c - 'a')
		if (uint32(1)<<ci)&wordCharMask == 0 {
			state = 0
			continue
		}
		next := wordStates[state][wordTokenOf[ci]]
		if next >= emitStart {
			out = append(out, int(next-emitStart)+1)
			state = int(emitNext[next-emitStart])
		} else {
			state = int(next)
		}
	}

	return out
}

// Value combines the first and last entry of digits into a two-digit
// calibration value. Reports false when digits is empty.
func Value(digits []int) (int, bool) {
	if len(digits) == 0 {
		return 0, false
	}

	return digits[0]*10 + digits[len(digits)-1], true
}

// SumDigits sums the calibration values of every line using plain-digit
// recognition (part one).
func SumDigits(lines []string) (int, error) {
	return sum(lines, Digits)
}

// SumWordDigits sums the calibration values of every line using the full
// word-aware recognizer (part two).
func SumWordDigits(lines []string) (int, error) {
	return sum(lines, WordDigits)
}

func sum(lines []string, recognize func(string) []int) (int, error) {
	total := 0
	for i, line := range lines {
		v, ok := Value(recognize(line))
		if !ok {
			return 0, fmt.Errorf("line %d: %w", i+1, ErrNoDigits)
		}
		total += v
	}

	return total, nil
}
