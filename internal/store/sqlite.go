// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database file with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Round history queries: recent rounds, summary, daily leaderboard.
//
// Timestamps are stored as fixed-width UTC text so they sort lexically.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessing-game/assets"
	"github.com/robalobadob/guessing-game/internal/game"
)

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the history database at path
// and brings its schema up to date.
func OpenSQLite(path string) (Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// openDB ensures the parent directory exists, then opens the database with
// busy timeout and WAL journaling.
func openDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies every embedded migration not yet recorded in _migrations,
// each inside its own transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	migrations, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	for _, m := range migrations {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.Name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.Name).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.Name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.Name, err)
		}
		log.Info().Str("migration", m.Name).Msg("applied")
	}
	return nil
}

const roundColumns = `id, secret, attempts, outcome, started_at, finished_at`

func (s *sqliteStore) Save(ctx context.Context, r *game.Record) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR REPLACE INTO rounds
            (id, secret, attempts, outcome, date, started_at, finished_at, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Secret, r.Attempts, string(r.Outcome), DateKey(r.StartedAt),
		formatTime(r.StartedAt), formatTime(r.FinishedAt), r.Duration().Milliseconds(),
	)
	return err
}

func (s *sqliteStore) Get(ctx context.Context, id string) (*game.Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+roundColumns+` FROM rounds WHERE id=?`, id)
	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *sqliteStore) Recent(ctx context.Context, limit int) ([]game.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+roundColumns+`
        FROM rounds
        ORDER BY started_at DESC
        LIMIT ?`, normalizeLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (s *sqliteStore) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	var best sql.NullInt64
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
        SELECT
            COUNT(1),
            COALESCE(SUM(outcome = 'won'), 0),
            COALESCE(SUM(outcome = 'quit'), 0),
            MIN(CASE WHEN outcome = 'won' THEN attempts END),
            AVG(CASE WHEN outcome = 'won' THEN attempts END)
        FROM rounds`,
	).Scan(&sum.Rounds, &sum.Won, &sum.Quit, &best, &avg)
	if err != nil {
		return Summary{}, err
	}
	sum.BestAttempts = int(best.Int64)
	sum.AvgAttempts = avg.Float64
	return sum, nil
}

func (s *sqliteStore) Leaderboard(ctx context.Context, date string, limit int) ([]game.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+roundColumns+`
        FROM rounds
        WHERE date=? AND outcome='won'
        ORDER BY attempts ASC, elapsed_ms ASC, started_at ASC
        LIMIT ?`, date, normalizeLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type scanner interface {
	Scan(dest ...any) error
}

func scanRound(row scanner) (game.Record, error) {
	var r game.Record
	var outcome, started, finished string
	if err := row.Scan(&r.ID, &r.Secret, &r.Attempts, &outcome, &started, &finished); err != nil {
		return game.Record{}, err
	}
	r.Outcome = game.Outcome(outcome)
	r.StartedAt = parseTime(started)
	r.FinishedAt = parseTime(finished)
	return r, nil
}

func collect(rows *sql.Rows) ([]game.Record, error) {
	defer rows.Close()
	out := []game.Record{}
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses stored timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
