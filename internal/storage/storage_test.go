package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SimpleIG_Go/internal/repository"
)

func stores(t *testing.T) map[string]repository.SaveStore {
	t.Helper()
	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "saves"))
	require.NoError(t, err)
	return map[string]repository.SaveStore{
		BackendMemory: NewMemoryStore(),
		BackendFile:   fileStore,
	}
}

func TestSaveStore_Contract(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "simpleIGSave")
			assert.ErrorIs(t, err, repository.ErrNotFound)

			require.NoError(t, store.Put(ctx, "simpleIGSave", []byte(`{"version":1}`)))
			got, err := store.Get(ctx, "simpleIGSave")
			require.NoError(t, err)
			assert.JSONEq(t, `{"version":1}`, string(got))

			require.NoError(t, store.Put(ctx, "simpleIGSave", []byte(`{"version":1,"points":"5"}`)))
			got, err = store.Get(ctx, "simpleIGSave")
			require.NoError(t, err)
			assert.JSONEq(t, `{"version":1,"points":"5"}`, string(got))

			_, err = store.Get(ctx, "simpleIGSave:other")
			assert.ErrorIs(t, err, repository.ErrNotFound)
		})
	}
}

func TestSaveStore_RejectsEmptyKey(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, store.Put(ctx, "", []byte("{}")))
			_, err := store.Get(ctx, "")
			assert.Error(t, err)
			assert.NotErrorIs(t, err, repository.ErrNotFound)
		})
	}
}

func TestMemoryStore_CopiesPayload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	payload := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", payload))
	payload[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, store.Len())
}

func TestFileStore_EscapesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "simpleIGSave:../../etc", []byte("{}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "simpleIGSave:..%2F..%2Fetc.json", entries[0].Name())
}

func TestFileStore_CanceledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "k", []byte("{}")), context.Canceled)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
