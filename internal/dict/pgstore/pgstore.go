// Package pgstore persists the canonical index in PostgreSQL, for
// service deployments where several translator instances share one
// dictionary.
package pgstore

import (
	"context"
	"fmt"

	"github.com/fsantini/lishgreek/internal/dict"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS lishgreek_entries (
    key  TEXT    NOT NULL,
    rank INTEGER NOT NULL,
    word TEXT    NOT NULL,
    PRIMARY KEY (key, rank)
)`

type Store struct {
	pool *pgxpool.Pool
}

// Open connects to PostgreSQL and ensures the entries table exists.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Load(ctx context.Context) (*dict.Index, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT key, word FROM lishgreek_entries ORDER BY key, rank
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
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE lishgreek_entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}

	var batch [][]any
	for key, words := range ix.Buckets() {
		for rank, word := range words {
			batch = append(batch, []any{key, rank, word})
		}
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"lishgreek_entries"},
		[]string{"key", "rank", "word"},
		pgx.CopyFromRows(batch),
	)
	if err != nil {
		return fmt.Errorf("copying entries: %w", err)
	}
	return tx.Commit(ctx)
}
