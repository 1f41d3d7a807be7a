// Package stores picks a dict.Store implementation from an artifact
// locator, so every binary accepts the same --dict syntax: a
// postgres:// URL, a sqlite:// path (or .db/.sqlite file), or a
// gzipped JSON file.
package stores

import (
	"context"
	"strings"

	"github.com/fsantini/lishgreek/internal/dict"
	"github.com/fsantini/lishgreek/internal/dict/gzipstore"
	"github.com/fsantini/lishgreek/internal/dict/pgstore"
	"github.com/fsantini/lishgreek/internal/dict/sqlitestore"
)

// Open resolves the locator to a store. The returned cleanup releases
// any underlying connection and is always non-nil.
func Open(ctx context.Context, locator string) (dict.Store, func(), error) {
	switch {
	case strings.HasPrefix(locator, "postgres://"), strings.HasPrefix(locator, "postgresql://"):
		s, err := pgstore.Open(ctx, locator)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case strings.HasPrefix(locator, "sqlite://"),
		strings.HasSuffix(locator, ".db"),
		strings.HasSuffix(locator, ".sqlite"):
		s, err := sqlitestore.Open(ctx, locator)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return gzipstore.New(locator), func() {}, nil
	}
}
