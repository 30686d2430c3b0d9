// internal/store/memory.go
//
// In-memory implementation of daily.Store.
// A lightweight ledger used in tests and when DATABASE_DRIVER=memory.
//
// Characteristics:
//   - One unit of work at a time; Begin waits (or gives up with ctx).
//   - Writes are staged on a copy and applied on Commit.
//   - Enforces the same uniqueness rules as the SQL schema.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle-api/internal/daily"
)

var errTxDone = errors.New("store: transaction already committed or rolled back")

// Memory is a slice-backed ledger guarded by a one-slot semaphore.
type Memory struct {
	sem      chan struct{}
	rows     []daily.PlayedWord
	nextID   int64
	calendar daily.Calendar
}

// NewMemory builds an empty ledger, optionally seeded with rows.
// Seeded rows keep their date; their IDs are reassigned.
func NewMemory(cal daily.Calendar, seed ...daily.PlayedWord) *Memory {
	m := &Memory{sem: make(chan struct{}, 1), calendar: cal, nextID: 1}
	for _, pw := range seed {
		pw.ID = m.nextID
		m.nextID++
		m.rows = append(m.rows, pw)
	}
	return m
}

// Begin starts a unit of work, waiting for the previous one to finish.
func (m *Memory) Begin(ctx context.Context) (daily.Repository, error) {
	select {
	case m.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &memoryTx{m: m, rows: slices.Clone(m.rows), nextID: m.nextID}, nil
}

// Rows returns a copy of the committed ledger.
func (m *Memory) Rows() []daily.PlayedWord {
	m.sem <- struct{}{}
	defer func() { <-m.sem }()
	return slices.Clone(m.rows)
}

// memoryTx is a staged copy of the ledger.
type memoryTx struct {
	m      *Memory
	rows   []daily.PlayedWord
	nextID int64
	done   bool
}

func (tx *memoryTx) FindPlayedWord(ctx context.Context, wordLength int, date string) (*daily.PlayedWord, error) {
	if tx.done {
		return nil, errTxDone
	}
	pw, ok := lo.Find(tx.rows, func(pw daily.PlayedWord) bool {
		return pw.WordLength == wordLength && pw.Date == date
	})
	if !ok {
		return nil, nil
	}
	return &pw, nil
}

func (tx *memoryTx) FindAllPlayedWords(ctx context.Context, wordLength int) ([]daily.PlayedWord, error) {
	if tx.done {
		return nil, errTxDone
	}
	return lo.Filter(tx.rows, func(pw daily.PlayedWord, _ int) bool {
		return pw.WordLength == wordLength
	}), nil
}

func (tx *memoryTx) DeletePlayedWords(ctx context.Context, wordLength int) error {
	if tx.done {
		return errTxDone
	}
	tx.rows = lo.Reject(tx.rows, func(pw daily.PlayedWord, _ int) bool {
		return pw.WordLength == wordLength
	})
	return nil
}

func (tx *memoryTx) InsertPlayedWord(ctx context.Context, word string, wordLength int) error {
	if tx.done {
		return errTxDone
	}
	date := tx.m.calendar.Today()
	for _, pw := range tx.rows {
		if pw.Word == word {
			return fmt.Errorf("%w: word %q", daily.ErrDuplicate, word)
		}
		if pw.WordLength == wordLength && pw.Date == date {
			return fmt.Errorf("%w: %d letters on %s", daily.ErrDuplicate, wordLength, date)
		}
	}
	tx.rows = append(tx.rows, daily.PlayedWord{ID: tx.nextID, Word: word, WordLength: wordLength, Date: date})
	tx.nextID++
	return nil
}

func (tx *memoryTx) Commit() error {
	if tx.done {
		return errTxDone
	}
	tx.m.rows = tx.rows
	tx.m.nextID = tx.nextID
	tx.release()
	return nil
}

func (tx *memoryTx) Rollback() error {
	if tx.done {
		return nil
	}
	tx.release()
	return nil
}

func (tx *memoryTx) release() {
	tx.done = true
	<-tx.m.sem
}
