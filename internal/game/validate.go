package game

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle-api/internal/words"
)

// AttemptRegex is the format an attempt must match, reported back to players.
const AttemptRegex = "[a-zA-Z]+"

var attemptPattern = regexp.MustCompile("^" + AttemptRegex + "$")

// Validation failure kinds. A *ValidationError always unwraps to one of them.
var (
	ErrEmptyAttempt   = errors.New("empty attempt")
	ErrInvalidLength  = errors.New("invalid attempt length")
	ErrInvalidFormat  = errors.New("invalid attempt format")
	ErrNotInWhitelist = errors.New("attempt not in whitelist")
)

// ValidationError describes why an attempt was rejected.
type ValidationError struct {
	Err      error  // one of the Err* kinds above
	Attempt  string // the rejected attempt
	Expected int    // expected length, set for ErrInvalidLength
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrInvalidLength) {
		return fmt.Sprintf("%v: %q is not %d letters long", e.Err, e.Attempt, e.Expected)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Attempt)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NormalizeAttempt trims surrounding whitespace and lowercases s.
func NormalizeAttempt(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks attempt against whitelist. Checks run in a fixed order and
// the first failing one is reported: empty, length, format, membership.
func Validate(attempt string, whitelist *words.Vocabulary) error {
	if attempt == "" {
		return &ValidationError{Err: ErrEmptyAttempt}
	}
	if expected := whitelist.WordLength(); utf8.RuneCountInString(attempt) != expected {
		return &ValidationError{Err: ErrInvalidLength, Attempt: attempt, Expected: expected}
	}
	if !attemptPattern.MatchString(attempt) {
		return &ValidationError{Err: ErrInvalidFormat, Attempt: attempt}
	}
	if !whitelist.Contains(strings.ToLower(attempt)) {
		return &ValidationError{Err: ErrNotInWhitelist, Attempt: attempt}
	}
	return nil
}
