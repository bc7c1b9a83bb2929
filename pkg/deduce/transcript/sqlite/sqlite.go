package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/deduce/pkg/deduce/transcript"
)

// sqliteStore implements transcript.Store using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite transcript database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (transcript.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS exchanges (
	id TEXT PRIMARY KEY,
	line TEXT NOT NULL,
	kind TEXT,
	reply TEXT,
	at TEXT NOT NULL
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Append inserts an exchange. Appending an existing ID replaces it.
func (s *sqliteStore) Append(ctx context.Context, ex transcript.Exchange) error {
	const stmt = `
INSERT INTO exchanges (id, line, kind, reply, at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	line=excluded.line,
	kind=excluded.kind,
	reply=excluded.reply,
	at=excluded.at;
`

	_, err := s.db.ExecContext(ctx, stmt,
		ex.ID,
		ex.Line,
		ex.Kind,
		ex.Reply,
		ex.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append exchange %s: %w", ex.ID, err)
	}
	return nil
}

// Recent returns exchanges newest first; ULIDs sort by creation time
func (s *sqliteStore) Recent(ctx context.Context, limit int) ([]transcript.Exchange, error) {
	query := `SELECT id, line, kind, reply, at FROM exchanges ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recent exchanges: %w", err)
	}
	defer rows.Close()

	var out []transcript.Exchange
	for rows.Next() {
		var (
			ex    transcript.Exchange
			kind  sql.NullString
			reply sql.NullString
			at    string
		)
		if err := rows.Scan(&ex.ID, &ex.Line, &kind, &reply, &at); err != nil {
			return nil, err
		}
		ex.Kind = kind.String
		ex.Reply = reply.String
		if ts, err := time.Parse(time.RFC3339Nano, at); err == nil {
			ex.At = ts
		}
		out = append(out, ex)
	}
	return out, rows.Err()
}
