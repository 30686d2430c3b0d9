// internal/game/types.go
//
// Core type definitions for the attempt engine.
// Defines:
//   - LetterStatus: per-letter result of an attempt.
//   - Result: the ordered statuses for a whole attempt.

package game

import "strconv"

// LetterStatus represents the evaluation result for a single letter of an attempt.
// Serialized as its integer value.
type LetterStatus int

const (
	GoodPosition LetterStatus = iota // right letter, right place
	BadPosition                      // letter in the answer, elsewhere
	NotPresent                       // letter not (or no longer) available in the answer
)

func (s LetterStatus) String() string {
	switch s {
	case GoodPosition:
		return "good_position"
	case BadPosition:
		return "bad_position"
	case NotPresent:
		return "not_present"
	}
	return "LetterStatus(" + strconv.Itoa(int(s)) + ")"
}

// Result holds one LetterStatus per attempt letter, in attempt order.
// A fully correct attempt is a Result made only of GoodPosition.
type Result []LetterStatus

// Success reports whether every letter is at its good position.
func (r Result) Success() bool {
	if len(r) == 0 {
		return false
	}
	for _, s := range r {
		if s != GoodPosition {
			return false
		}
	}
	return true
}
