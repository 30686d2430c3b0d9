// internal/daily/selector.go
//
// Daily word selection.
//
// For each (word length, date) the ledger moves from "unresolved" (no row)
// to "resolved" (one row) the first time an attempt asks for today's word:
//   - resolved     → return the stored word, nothing is written.
//   - unresolved   → pick a word not yet played for this length, store it.
//   - all played   → rotation: forget every played word for this length first.
//
// Two requests racing on an unresolved day both try to insert; the store's
// uniqueness constraints make one of them fail with ErrDuplicate and that
// request starts over, reading the winner's row.

package daily

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/avast/retry-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle-api/internal/words"
)

const (
	defaultRetryAttempts = 3
	retryDelay           = 10 * time.Millisecond
)

// Picker returns an index in [0, n). Implementations must be safe for concurrent use.
type Picker func(n int) int

// CryptoPicker draws from crypto/rand; it never shares mutable state between callers.
func CryptoPicker(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken.
		panic(fmt.Sprintf("daily: crypto/rand: %v", err))
	}
	return int(v.Int64())
}

// Selector decides today's word per word length.
type Selector struct {
	store    Store
	calendar Calendar
	pick     Picker
	attempts uint
}

// Option customizes a Selector.
type Option func(*Selector)

// WithPicker replaces the random source (tests use a deterministic one).
func WithPicker(p Picker) Option {
	return func(s *Selector) { s.pick = p }
}

// WithRetryAttempts bounds how many times a lost insert race is retried.
func WithRetryAttempts(n uint) Option {
	return func(s *Selector) {
		if n > 0 {
			s.attempts = n
		}
	}
}

// NewSelector builds a Selector over store using cal to date the ledger.
func NewSelector(store Store, cal Calendar, opts ...Option) *Selector {
	s := &Selector{
		store:    store,
		calendar: cal,
		pick:     CryptoPicker,
		attempts: defaultRetryAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TodayWord returns today's word for the length of whitelist, choosing and
// persisting one if the day is not resolved yet. whitelist must not be empty.
func (s *Selector) TodayWord(ctx context.Context, whitelist *words.Vocabulary) (string, error) {
	var word string
	err := retry.Do(
		func() error {
			w, err := s.resolve(ctx, whitelist)
			if err != nil {
				return err
			}
			word = w
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool { return errors.Is(err, ErrDuplicate) }),
		retry.OnRetry(func(n uint, err error) {
			zerolog.Ctx(ctx).Debug().Err(err).Uint("attempt", n+1).
				Int("wordLength", whitelist.WordLength()).Msg("today word race lost, retrying")
		}),
	)
	if err != nil {
		return "", err
	}
	return word, nil
}

// resolve runs one unit of work. It returns ErrDuplicate (wrapped) when a
// concurrent request stored today's word first.
func (s *Selector) resolve(ctx context.Context, whitelist *words.Vocabulary) (string, error) {
	logger := zerolog.Ctx(ctx)
	length := whitelist.WordLength()
	today := s.calendar.Today()

	repo, err := s.store.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin ledger transaction: %w", err)
	}
	defer func() { _ = repo.Rollback() }()

	current, err := repo.FindPlayedWord(ctx, length, today)
	if err != nil {
		return "", fmt.Errorf("find today word: %w", err)
	}
	if current != nil {
		return current.Word, nil
	}

	played, err := repo.FindAllPlayedWords(ctx, length)
	if err != nil {
		return "", fmt.Errorf("find played words: %w", err)
	}
	used := lo.SliceToMap(played, func(p PlayedWord) (string, struct{}) { return p.Word, struct{}{} })
	available := lo.Filter(whitelist.Words(), func(w string, _ int) bool {
		_, ok := used[w]
		return !ok
	})

	if len(available) == 0 {
		logger.Info().Int("wordLength", length).Int("played", len(played)).Msg("vocabulary exhausted, rotating played words")
		if err := repo.DeletePlayedWords(ctx, length); err != nil {
			return "", fmt.Errorf("delete played words: %w", err)
		}
		available = whitelist.Words()
	}

	word := available[s.pick(len(available))]
	if err := repo.InsertPlayedWord(ctx, word, length); err != nil {
		return "", fmt.Errorf("insert played word: %w", err)
	}
	if err := repo.Commit(); err != nil {
		return "", fmt.Errorf("commit played word: %w", err)
	}

	logger.Info().Int("wordLength", length).Str("date", today).Int("available", len(available)).Msg("new word of the day selected")
	return word, nil
}
