package stores

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fsantini/lishgreek/internal/dict/gzipstore"
	"github.com/fsantini/lishgreek/internal/dict/sqlitestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPicksStoreByLocator(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, cleanup, err := Open(ctx, filepath.Join(dir, "dict.json.gz"))
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &gzipstore.Store{}, s)

	s, cleanup, err = Open(ctx, filepath.Join(dir, "dict.db"))
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &sqlitestore.Store{}, s)

	s, cleanup, err = Open(ctx, "sqlite://"+filepath.Join(dir, "dict2.sqlite3"))
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &sqlitestore.Store{}, s)
}
