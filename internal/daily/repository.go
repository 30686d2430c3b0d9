// internal/daily/repository.go
//
// Persistence contract for the played words ledger.
// Implementations live in internal/store (memory, SQL).

package daily

import (
	"context"
	"errors"
)

// ErrDuplicate is returned when a write breaks a ledger uniqueness
// constraint: one row per word, one row per (word length, date).
var ErrDuplicate = errors.New("daily: played word already exists")

// PlayedWord is a ledger row: the word chosen for a word length on a date.
type PlayedWord struct {
	ID         int64  `db:"id" json:"id"`
	Word       string `db:"word" json:"word"`
	WordLength int    `db:"word_length" json:"wordLength"`
	Date       string `db:"date" json:"date"` // YYYYMMDD
}

// Store opens units of work on the ledger.
type Store interface {
	Begin(ctx context.Context) (Repository, error)
}

// Repository is a single unit of work on the ledger. Writes become visible
// to other units of work after Commit. Rollback after Commit is a no-op.
type Repository interface {
	// FindPlayedWord returns the row for wordLength on date, or nil if none.
	FindPlayedWord(ctx context.Context, wordLength int, date string) (*PlayedWord, error)

	// FindAllPlayedWords returns every row for wordLength, any date.
	FindAllPlayedWords(ctx context.Context, wordLength int) ([]PlayedWord, error)

	// DeletePlayedWords removes every row for wordLength.
	DeletePlayedWords(ctx context.Context, wordLength int) error

	// InsertPlayedWord adds a row dated today by the repository's calendar.
	// May return ErrDuplicate.
	InsertPlayedWord(ctx context.Context, word string, wordLength int) error

	// Commit flushes pending writes. May return ErrDuplicate.
	Commit() error

	Rollback() error
}
