package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/cache"
	"github.com/lumen-lang/lumenfmt/internal/domain"
)

func TestStore_LoadMissingIsNil(t *testing.T) {
	state, err := cache.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	store := cache.New()

	state := domain.NewCheckState()
	state.MarkClean("src/a.lum", domain.ContentHash([]byte("let a = 1\n")))
	require.NoError(t, store.Save(root, state))

	loaded, err := store.Load(root)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Clean("src/a.lum", domain.ContentHash([]byte("let a = 1\n"))))
}

func TestStore_CorruptCacheDiscarded(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ".lumen", "cache", "check.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	state, err := cache.New().Load(root)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestStore_Invalidate(t *testing.T) {
	root := t.TempDir()
	store := cache.New()

	require.NoError(t, store.Save(root, domain.NewCheckState()))
	require.NoError(t, store.Invalidate(root))

	state, err := store.Load(root)
	require.NoError(t, err)
	assert.Nil(t, state)

	// Invalidating twice is fine.
	require.NoError(t, store.Invalidate(root))
}
