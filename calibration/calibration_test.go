package calibration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlegrid/calibration"
)

// naiveWordDigits is a slow reference recognizer used to cross-check the
// DFA: at every byte offset it tests each spelled word as a prefix.
func naiveWordDigits(line string) []int {
	words := []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	var out []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
			continue
		}
		for w, word := range words {
			if strings.HasPrefix(line[i:], word) {
				out = append(out, w+1)
				break
			}
		}
	}
	return out
}

// TestDigits verifies plain ASCII digit extraction.
func TestDigits(t *testing.T) {
	require.Equal(t, []int{1, 2}, calibration.Digits("1abc2"))
	require.Equal(t, []int{3, 8}, calibration.Digits("pqr3stu8vwx"))
	require.Equal(t, []int{1, 2, 3, 4, 5}, calibration.Digits("a1b2c3d4e5f"))
	require.Equal(t, []int{7}, calibration.Digits("treb7uchet"))
	require.Empty(t, calibration.Digits("nodigits"))
}

// TestWordDigits_Recognition verifies word, digit and mixed recognition.
func TestWordDigits_Recognition(t *testing.T) {
	cases := []struct {
		line string
		want []int
	}{
		{"two1nine", []int{2, 1, 9}},
		{"eightwothree", []int{8, 2, 3}},
		{"abcone2threexyz", []int{1, 2, 3}},
		{"xtwone3four", []int{2, 1, 3, 4}},
		{"4nineeightseven2", []int{4, 9, 8, 7, 2}},
		{"zoneight234", []int{1, 8, 2, 3, 4}},
		{"7pqrstsixteen", []int{7, 6}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, calibration.WordDigits(tc.line), "line %q", tc.line)
	}
}

// TestWordDigits_Overlaps verifies the DFA's overlap handling: the last
// character of one word seeds recognition of the next.
func TestWordDigits_Overlaps(t *testing.T) {
	cases := []struct {
		line string
		want []int
	}{
		{"oneight", []int{1, 8}},
		{"twone", []int{2, 1}},
		{"eightwo", []int{8, 2}},
		{"eighthree", []int{8, 3}},
		{"sevenine", []int{7, 9}},
		{"nineight", []int{9, 8}},
		{"fiveight", []int{5, 8}},
		{"threeight", []int{3, 8}},
		{"oneeight", []int{1, 8}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, calibration.WordDigits(tc.line), "line %q", tc.line)
	}
}

// TestWordDigits_MatchesNaiveScan cross-checks the DFA against the slow
// prefix scanner on assorted noisy lines.
func TestWordDigits_MatchesNaiveScan(t *testing.T) {
	lines := []string{
		"xtwone3four",
		"zoneight234",
		"eeeight",
		"nnineight",
		"sevven7seven",
		"onetwothreefourfivesixseveneightnine",
		"oonneeight",
		"fourfour4fourfour",
		"t w o",
		"EIGHT-two", // uppercase resets recognition
	}
	for _, line := range lines {
		require.Equal(t, naiveWordDigits(line), calibration.WordDigits(line), "line %q", line)
	}
}

// TestValue verifies first/last digit combination and the empty case.
func TestValue(t *testing.T) {
	v, ok := calibration.Value([]int{1, 2, 3})
	require.True(t, ok)
	require.Equal(t, 13, v)

	v, ok = calibration.Value([]int{7})
	require.True(t, ok)
	require.Equal(t, 77, v)

	_, ok = calibration.Value(nil)
	require.False(t, ok)
}

// TestSumDigits_Document solves the part-one reference document.
func TestSumDigits_Document(t *testing.T) {
	doc, err := calibration.Load(strings.NewReader("1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"))
	require.NoError(t, err)

	total, err := calibration.SumDigits(doc)
	require.NoError(t, err)
	require.Equal(t, 142, total)
}

// TestSumWordDigits_Document solves the part-two reference document.
func TestSumWordDigits_Document(t *testing.T) {
	doc, err := calibration.Load(strings.NewReader(
		"two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen\n"))
	require.NoError(t, err)

	total, err := calibration.SumWordDigits(doc)
	require.NoError(t, err)
	require.Equal(t, 281, total)
}

// TestSumDigits_NoDigitLine verifies the recoverable failure for a line
// without digits.
func TestSumDigits_NoDigitLine(t *testing.T) {
	_, err := calibration.SumDigits([]string{"1a2", "nothing"})
	require.ErrorIs(t, err, calibration.ErrNoDigits)
}
