// Package sqlitestore persists the canonical index in a SQLite file.
// Handy when the artifact should be queryable in place instead of
// loaded wholesale from JSON.
package sqlitestore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"github.com/fsantini/lishgreek/internal/dict"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite-backed index store. A
// sqlite:// prefix on the path is accepted and stripped.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimPrefix(path, "sqlite://")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// WAL improves concurrent read behavior when the dictionary is
	// shared between a builder and a reader.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context) (*dict.Index, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, word FROM entries ORDER BY key, rank
	`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	ix := dict.NewIndex()
	for rows.Next() {
		var key, word string
		if err := rows.Scan(&key, &word); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		ix.Add(key, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ix, nil
}

func (s *Store) Save(ctx context.Context, ix *dict.Index) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (key, rank, word) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for key, words := range ix.Buckets() {
		for rank, word := range words {
			if _, err := stmt.ExecContext(ctx, key, rank, word); err != nil {
				return fmt.Errorf("inserting %q: %w", key, err)
			}
		}
	}
	return tx.Commit()
}
