package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-api/internal/daily"
)

func fixedCalendar(date string) daily.Calendar {
	t, err := time.ParseInLocation(daily.DateLayout, date, time.UTC)
	if err != nil {
		panic(err)
	}
	return daily.Calendar{Now: func() time.Time { return t.Add(12 * time.Hour) }, Location: time.UTC}
}

func TestMemory_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(fixedCalendar("20240105"))

	repo, err := m.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.InsertPlayedWord(ctx, "arbres", 6))

	// Staged writes are visible inside the unit of work.
	got, err := repo.FindPlayedWord(ctx, 6, "20240105")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "arbres", got.Word)
	assert.Empty(t, m.rowsUnsafe())

	require.NoError(t, repo.Commit())
	assert.Equal(t, []daily.PlayedWord{{ID: 1, Word: "arbres", WordLength: 6, Date: "20240105"}}, m.Rows())

	repo, err = m.Begin(ctx)
	require.NoError(t, err)
	defer repo.Rollback()

	got, err = repo.FindPlayedWord(ctx, 7, "20240105")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemory_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(fixedCalendar("20240105"), daily.PlayedWord{Word: "wordle", WordLength: 6, Date: "20240101"})

	repo, err := m.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.DeletePlayedWords(ctx, 6))
	require.NoError(t, repo.InsertPlayedWord(ctx, "arbres", 6))
	require.NoError(t, repo.Rollback())
	require.NoError(t, repo.Rollback(), "second rollback is a no-op")

	assert.Equal(t, []daily.PlayedWord{{ID: 1, Word: "wordle", WordLength: 6, Date: "20240101"}}, m.Rows())

	assert.Error(t, repo.Commit())
	_, err = repo.FindAllPlayedWords(ctx, 6)
	assert.Error(t, err)
}

func TestMemory_Uniqueness(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(fixedCalendar("20240105"),
		daily.PlayedWord{Word: "wordle", WordLength: 6, Date: "20240101"},
		daily.PlayedWord{Word: "joutera", WordLength: 7, Date: "20240105"},
	)

	repo, err := m.Begin(ctx)
	require.NoError(t, err)
	defer repo.Rollback()

	assert.ErrorIs(t, repo.InsertPlayedWord(ctx, "wordle", 6), daily.ErrDuplicate, "word is unique across dates")
	assert.ErrorIs(t, repo.InsertPlayedWord(ctx, "pipames", 7), daily.ErrDuplicate, "one word per length and day")
	assert.NoError(t, repo.InsertPlayedWord(ctx, "arbres", 6))
}

func TestMemory_FindAllAndDeleteByLength(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(fixedCalendar("20240105"),
		daily.PlayedWord{Word: "wordle", WordLength: 6, Date: "20240101"},
		daily.PlayedWord{Word: "arbres", WordLength: 6, Date: "20240102"},
		daily.PlayedWord{Word: "joutera", WordLength: 7, Date: "20240102"},
	)

	repo, err := m.Begin(ctx)
	require.NoError(t, err)

	six, err := repo.FindAllPlayedWords(ctx, 6)
	require.NoError(t, err)
	assert.Len(t, six, 2)

	require.NoError(t, repo.DeletePlayedWords(ctx, 6))
	six, err = repo.FindAllPlayedWords(ctx, 6)
	require.NoError(t, err)
	assert.Empty(t, six)
	require.NoError(t, repo.Commit())

	rows := m.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "joutera", rows[0].Word)
}

func TestMemory_BeginWaitsForPreviousUnit(t *testing.T) {
	m := NewMemory(fixedCalendar("20240105"))

	repo, err := m.Begin(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = m.Begin(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, repo.Rollback())
	next, err := m.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, next.Rollback())
}

// rowsUnsafe reads committed rows while a unit of work holds the semaphore.
func (m *Memory) rowsUnsafe() []daily.PlayedWord { return m.rows }
