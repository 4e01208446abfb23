package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"marquee/internal/catalog"
)

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// RunInfo describes one build run for the build_runs ledger.
type RunInfo struct {
	Label       string
	MinVotes    int
	BasicsPath  string
	RatingsPath string
}

// Open initializes or connects to the catalog database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// WriteSnapshot replaces the media_catalog table with the snapshot's entries,
// preserving snapshot order in the position column, and records the run in
// build_runs. The run id is returned.
func (s *Store) WriteSnapshot(ctx context.Context, snapshot catalog.Snapshot, info RunInfo) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM media_catalog"); err != nil {
		return "", fmt.Errorf("clear catalog table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO media_catalog (
        imdb_id, title, year, type, primary_genre, runtime, rating, votes, position
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for position, entry := range snapshot {
		_, err := stmt.ExecContext(ctx,
			entry.ID,
			entry.Title,
			nullableInt(entry.Year),
			string(entry.Type),
			nullableString(entry.PrimaryGenre),
			nullableInt(entry.Runtime),
			entry.Rating,
			entry.Votes,
			position,
		)
		if err != nil {
			return "", fmt.Errorf("insert entry %s: %w", entry.ID, err)
		}
	}

	runID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `INSERT INTO build_runs (
        id, created_at, label, entry_count, min_votes, basics_path, ratings_path
    ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID,
		time.Now().UTC().Format(time.RFC3339Nano),
		info.Label,
		len(snapshot),
		info.MinVotes,
		info.BasicsPath,
		info.RatingsPath,
	)
	if err != nil {
		return "", fmt.Errorf("record build run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit snapshot: %w", err)
	}
	return runID, nil
}

// TopEntries returns the first limit catalog entries in stored order.
func (s *Store) TopEntries(ctx context.Context, limit int) (catalog.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT imdb_id, title, year, type, primary_genre, runtime, rating, votes
        FROM media_catalog ORDER BY position LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var entries catalog.Snapshot
	for rows.Next() {
		var (
			entry   catalog.Entry
			year    sql.NullInt64
			genre   sql.NullString
			runtime sql.NullInt64
			kind    string
		)
		if err := rows.Scan(&entry.ID, &entry.Title, &year, &kind, &genre, &runtime, &entry.Rating, &entry.Votes); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		entry.Type = typeFromString(kind)
		if year.Valid {
			value := int(year.Int64)
			entry.Year = &value
		}
		if genre.Valid {
			entry.PrimaryGenre = genre.String
		}
		if runtime.Valid {
			value := int(runtime.Int64)
			entry.Runtime = &value
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	return entries, nil
}

// EntryCount returns the number of stored catalog entries.
func (s *Store) EntryCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM media_catalog").Scan(&count); err != nil {
		return 0, fmt.Errorf("count catalog entries: %w", err)
	}
	return count, nil
}
