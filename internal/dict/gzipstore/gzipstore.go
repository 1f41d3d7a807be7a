// Package gzipstore persists the canonical index as gzip-compressed
// JSON (canonical key → ordered word list), the interchange format
// produced by dictbuild and shipped with the CLI.
package gzipstore

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fsantini/lishgreek/internal/dict"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(_ context.Context) (*dict.Index, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening index artifact: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading gzip header: %w", err)
	}
	defer zr.Close()

	var buckets map[string][]string
	if err := json.NewDecoder(zr).Decode(&buckets); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	return dict.FromBuckets(buckets), nil
}

func (s *Store) Save(_ context.Context, ix *dict.Index) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating index artifact: %w", err)
	}
	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(ix.Buckets()); err != nil {
		f.Close()
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flushing gzip stream: %w", err)
	}
	return f.Close()
}
