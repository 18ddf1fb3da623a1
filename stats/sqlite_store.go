package stats

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const runsSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	version    INTEGER NOT NULL,
	player     TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	seconds    REAL NOT NULL,
	date       INTEGER NOT NULL
);`

// SQLiteStore keeps the score log in a SQLite database, for installs where
// the log outgrows a flat file or is shared between machines over a network
// filesystem.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at path and ensures the schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open score database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping score database: %w", err)
	}
	if _, err := db.Exec(runsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure runs table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Add(r Record) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (version, player, difficulty, seconds, date) VALUES (?, ?, ?, ?, ?)`,
		r.Version, r.Player, r.Difficulty, r.Seconds, r.Date.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) All() ([]Record, error) {
	rows, err := s.db.Query(`SELECT version, player, difficulty, seconds, date FROM runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var millis int64
		if err := rows.Scan(&r.Version, &r.Player, &r.Difficulty, &r.Seconds, &millis); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Date = time.UnixMilli(millis).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM runs`); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
