package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SimpleIG_Go/internal/config"
	"github.com/osse101/SimpleIG_Go/internal/repository"
)

func TestInitializeStorage_Memory(t *testing.T) {
	st, err := InitializeStorage(context.Background(), &config.Config{StorageBackend: StorageMemory})
	require.NoError(t, err)
	defer st.Close()

	assert.Equal(t, StorageMemory, st.Backend)
	require.NoError(t, st.Ready.CheckHealth(context.Background()))

	_, err = st.Store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInitializeStorage_File(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	st, err := InitializeStorage(context.Background(), &config.Config{StorageBackend: StorageFile, SaveDir: dir})
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.Store.Put(ctx, "simpleIGSave:alice", []byte(`{"points":"1"}`)))
	got, err := st.Store.Get(ctx, "simpleIGSave:alice")
	require.NoError(t, err)
	assert.JSONEq(t, `{"points":"1"}`, string(got))

	require.NoError(t, st.Ready.CheckHealth(ctx))
	require.NoError(t, os.RemoveAll(dir))
	assert.ErrorContains(t, st.Ready.CheckHealth(ctx), ErrMsgSaveDirUnavailable)
}

func TestInitializeStorage_FileNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := InitializeStorage(context.Background(), &config.Config{StorageBackend: StorageFile, SaveDir: path})
	assert.ErrorContains(t, err, ErrMsgCreateSaveDir)
}

func TestInitializeStorage_Unknown(t *testing.T) {
	_, err := InitializeStorage(context.Background(), &config.Config{StorageBackend: "redis"})
	assert.ErrorContains(t, err, ErrMsgUnknownStorage)
}

func TestStorageClose_Nil(t *testing.T) {
	var st *Storage
	assert.NotPanics(t, st.Close)
}
