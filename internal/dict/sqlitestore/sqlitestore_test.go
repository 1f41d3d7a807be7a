package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fsantini/lishgreek/internal/dict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "dict.db"))
	require.NoError(t, err)
	defer store.Close()

	ix := dict.NewIndex()
	ix.Add("pos", "πως")
	ix.Add("pos", "πώς")
	ix.Add("ke", "και")
	require.NoError(t, store.Save(ctx, ix))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"πως", "πώς"}, loaded.Lookup("pos"))
	assert.Equal(t, []string{"και"}, loaded.Lookup("ke"))
}

func TestSaveReplacesExistingEntries(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "dict.db"))
	require.NoError(t, err)
	defer store.Close()

	first := dict.NewIndex()
	first.Add("ke", "κε")
	require.NoError(t, store.Save(ctx, first))

	second := dict.NewIndex()
	second.Add("ke", "και")
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"και"}, loaded.Lookup("ke"))
}

func TestLoadEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Keys())
}
