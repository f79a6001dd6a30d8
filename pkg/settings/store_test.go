package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "settings.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreLoadDefaults(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), loaded)
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	s := Defaults()
	s.MovieTemplate = "---\ntitle: {{title}}\n---"
	s.AskForLocation = false
	s.DefaultFolder = "Library"
	s.LastUsedTVFolder = "Library/Shows"
	require.NoError(t, store.Save(ctx, s))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	s := Defaults()
	s.DefaultFolder = "First"
	require.NoError(t, store.Save(ctx, s))

	s.DefaultFolder = "Second"
	require.NoError(t, store.Save(ctx, s))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.DefaultFolder)
}

func TestStoreHealsLegacyTemplatesOnLoad(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	s := Defaults()
	s.AnimeTemplate = "**{{title}}**\n![cover]({{image_url}})"
	require.NoError(t, store.Save(ctx, s))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults().AnimeTemplate, loaded.AnimeTemplate)

	// The healed template was written back, not just patched in memory.
	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults().AnimeTemplate, reloaded.AnimeTemplate)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.sqlite")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs migrations against an already migrated database.
	store, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
