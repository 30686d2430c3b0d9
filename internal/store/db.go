// internal/store/db.go
//
// Database helpers for the ledger.
// Responsibilities:
//   - Opening SQLite or MySQL with safe defaults.
//   - Applying the embedded migrations (assets/sql/<driver>/*.sql), recorded in _migrations.
//   - Building the daily.Store matching the configured driver.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-api/assets"
	"github.com/robalobadob/wordle-api/internal/daily"
)

// Supported drivers.
const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// Config selects and locates the ledger database.
type Config struct {
	Driver string
	DSN    string
}

// Connect builds the daily.Store for cfg. SQL stores are migrated before use.
// The returned close function releases the database handle.
func Connect(ctx context.Context, cfg Config, cal daily.Calendar) (daily.Store, func() error, error) {
	if cfg.Driver == DriverMemory {
		log.Warn().Msg("using in-memory ledger, played words are lost on restart")
		return NewMemory(cal), func() error { return nil }, nil
	}

	db, err := Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := Migrate(ctx, db, cfg.Driver); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return NewSQL(db, cal), db.Close, nil
}

// Open opens (and for SQLite creates) the database and checks the connection.
//
// SQLite: parent directory is created, WAL journaling, busy timeout and
// immediate transaction locking so concurrent writers queue instead of failing.
// MySQL: the DSN is parsed and parseTime/multiStatements are forced on.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)
	switch cfg.Driver {
	case DriverSQLite:
		if dir := filepath.Dir(cfg.DSN); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		sep := "?"
		if strings.Contains(cfg.DSN, "?") {
			sep = "&"
		}
		db, err = sqlx.Open(DriverSQLite, cfg.DSN+sep+"_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate")
	case DriverMySQL:
		mc, perr := mysql.ParseDSN(cfg.DSN)
		if perr != nil {
			return nil, fmt.Errorf("mysql.ParseDSN() > %w", perr)
		}
		mc.ParseTime = true
		mc.MultiStatements = true
		db, err = sqlx.Open(DriverMySQL, mc.FormatDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(%s) > %w", cfg.Driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, nil
}

// Migrate applies the embedded migrations for driver.
//
// - Uses a _migrations table to track applied files.
// - Executes each *.sql file in lexical order, each in its own transaction.
// - Skips files already applied.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name VARCHAR(255) PRIMARY KEY)`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	scripts, err := assets.Migrations(driver)
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", driver, err)
	}
	var files []string
	if err := fs.WalkDir(scripts, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowxContext(ctx, `SELECT 1 FROM _migrations WHERE name = ?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(scripts, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations (name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Str("driver", driver).Msg("applied")
	}
	return nil
}
