package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/robalobadob/wordle-api/internal/daily"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// SQL implements daily.Store on top of the played_words table.
type SQL struct {
	db       *sqlx.DB
	calendar daily.Calendar
}

// NewSQL creates a SQL store. cal stamps the date of inserted rows.
func NewSQL(db *sqlx.DB, cal daily.Calendar) *SQL {
	return &SQL{db: db, calendar: cal}
}

// Begin opens a database transaction.
func (s *SQL) Begin(ctx context.Context) (daily.Repository, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db.BeginTxx() > %w", err)
	}
	return &sqlTx{tx: tx, calendar: s.calendar}, nil
}

type sqlTx struct {
	tx       *sqlx.Tx
	calendar daily.Calendar
}

func (t *sqlTx) FindPlayedWord(ctx context.Context, wordLength int, date string) (*daily.PlayedWord, error) {
	var pw daily.PlayedWord
	err := t.tx.GetContext(ctx, &pw,
		"SELECT id, word, word_length, date FROM played_words WHERE word_length = ? AND date = ? ORDER BY id LIMIT 1",
		wordLength, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tx.GetContext(played_words by date) > %w", err)
	}
	return &pw, nil
}

func (t *sqlTx) FindAllPlayedWords(ctx context.Context, wordLength int) ([]daily.PlayedWord, error) {
	var out []daily.PlayedWord
	if err := t.tx.SelectContext(ctx, &out,
		"SELECT id, word, word_length, date FROM played_words WHERE word_length = ? ORDER BY id",
		wordLength); err != nil {
		return nil, fmt.Errorf("tx.SelectContext(played_words) > %w", err)
	}
	return out, nil
}

func (t *sqlTx) DeletePlayedWords(ctx context.Context, wordLength int) error {
	if _, err := t.tx.ExecContext(ctx, "DELETE FROM played_words WHERE word_length = ?", wordLength); err != nil {
		return fmt.Errorf("tx.ExecContext(delete played_words) > %w", err)
	}
	return nil
}

func (t *sqlTx) InsertPlayedWord(ctx context.Context, word string, wordLength int) error {
	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO played_words (word, word_length, date) VALUES (?, ?, ?)",
		word, wordLength, t.calendar.Today())
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", daily.ErrDuplicate, err)
	}
	if err != nil {
		return fmt.Errorf("tx.ExecContext(insert played_words) > %w", err)
	}
	return nil
}

func (t *sqlTx) Commit() error {
	err := t.tx.Commit()
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", daily.ErrDuplicate, err)
	}
	if err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

func (t *sqlTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("tx.Rollback() > %w", err)
	}
	return nil
}

// isUniqueViolation recognizes unique constraint failures from both drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique || se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlDuplicateEntry
	}
	return false
}
