package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	gp = GoodPosition
	bp = BadPosition
	np = NotPresent
)

func TestCompare_ExactMatch(t *testing.T) {
	for _, w := range []string{"abcdef", "zyxwvu", "aaaaaa", "joutera", "retameur"} {
		got := Compare(w, w)
		assert.Len(t, got, len(w))
		assert.True(t, got.Success(), w)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		attempt string
		answer  string
		want    Result
	}{
		{"nothing present", "abcdef", "zyxwvu", Result{np, np, np, np, np, np}},

		{"one good", "abcdef", "azyxwv", Result{gp, np, np, np, np, np}},
		{"two good", "abcdef", "azcxwv", Result{gp, np, gp, np, np, np}},
		{"three good", "abcdef", "azcxwf", Result{gp, np, gp, np, np, gp}},
		{"four good", "abcdef", "abcxwf", Result{gp, gp, gp, np, np, gp}},
		{"five good", "abcdef", "abcxef", Result{gp, gp, gp, np, gp, gp}},

		{"one bad", "abcdef", "zayxwv", Result{bp, np, np, np, np, np}},
		{"two bad", "abcdef", "zaxwvc", Result{bp, np, bp, np, np, np}},
		{"three bad", "abcdef", "faxwvc", Result{bp, np, bp, np, np, bp}},
		{"four bad", "abcdef", "fabwvc", Result{bp, bp, bp, np, np, bp}},
		{"five bad", "abcdef", "fabwdc", Result{bp, bp, bp, bp, np, bp}},
		{"all displaced", "abcdef", "fabedc", Result{bp, bp, bp, bp, bp, bp}},

		{"good and bad", "abcdef", "afzyxw", Result{gp, np, np, np, np, bp}},
		{"swapped middle", "abcdef", "abdcef", Result{gp, gp, bp, bp, gp, gp}},

		{"repeated letter both good", "aacdef", "aazyxw", Result{gp, gp, np, np, np, np}},
		{"repeated letter good then bad", "aacdef", "azyxwa", Result{gp, bp, np, np, np, np}},
		{"repeated attempt letter once in answer", "aacdef", "azyxwv", Result{gp, np, np, np, np, np}},
		{"repeated answer letter once in attempt", "abcdef", "aayxwv", Result{gp, np, np, np, np, np}},
		{"attempt repeats consumed letter", "adaeaf", "azyxwv", Result{gp, np, np, np, np, np}},
		{"answer repeats matched letter", "abcdef", "ayxawa", Result{gp, np, np, np, np, np}},

		{"anagram rattes", "tartes", "rattes", Result{bp, gp, bp, gp, gp, gp}},
		{"anagram restat", "tartes", "restat", Result{bp, bp, bp, gp, bp, bp}},
		{"anagram sterat", "tartes", "sterat", Result{bp, bp, bp, bp, bp, bp}},
		{"anagram strate", "tartes", "strate", Result{bp, bp, gp, bp, bp, bp}},
		{"anagram tarets", "tartes", "tarets", Result{gp, gp, gp, bp, bp, gp}},
		{"anagram tersat", "tartes", "tersat", Result{gp, bp, gp, bp, bp, bp}},
		{"anagram tetras", "tartes", "tetras", Result{gp, bp, bp, bp, bp, gp}},

		{"left to right tie-break", "itsame", "maario", Result{bp, np, np, bp, bp, np}},

		{"attempt longer than answer", "abcdefg", "abcdef", Result{gp, gp, gp, gp, gp, gp, np}},
		{"attempt shorter than answer", "fab", "abcdef", Result{bp, bp, bp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.attempt, tt.answer)
			assert.Equal(t, tt.want, got, "attempt %q, answer %q", tt.attempt, tt.answer)
			assert.False(t, got.Success())
		})
	}
}

// Marks given to a letter never exceed how many times the answer holds it.
func TestCompare_MultisetConservation(t *testing.T) {
	pairs := [][2]string{
		{"aaaaaa", "abcdea"},
		{"eeeeee", "eerie"},
		{"tartes", "restat"},
		{"abbbba", "babbab"},
		{"zzzzzz", "abcdef"},
		{"speeds", "abides"},
	}
	for _, p := range pairs {
		attempt, answer := p[0], p[1]
		res := Compare(attempt, answer)
		marked := map[rune]int{}
		for i, r := range attempt {
			if res[i] != NotPresent {
				marked[r]++
			}
		}
		for r, n := range marked {
			assert.LessOrEqual(t, n, strings.Count(answer, string(r)), "letter %q in %q vs %q", r, attempt, answer)
		}
	}
}

func TestResult_Success(t *testing.T) {
	assert.True(t, Result{gp, gp}.Success())
	assert.False(t, Result{gp, bp}.Success())
	assert.False(t, Result{}.Success())
}

func TestLetterStatus_String(t *testing.T) {
	assert.Equal(t, "good_position", GoodPosition.String())
	assert.Equal(t, "bad_position", BadPosition.String())
	assert.Equal(t, "not_present", NotPresent.String())
	assert.Equal(t, "LetterStatus(7)", LetterStatus(7).String())
}
