package bootstrap

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SimpleIG_Go/internal/clock"
	"github.com/osse101/SimpleIG_Go/internal/event"
	"github.com/osse101/SimpleIG_Go/internal/storage"
)

func TestGracefulShutdown(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewSimulatedClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	games, err := InitializeGames(testConfig(), storage.NewMemoryStore(), event.NewMemoryBus(), clk)
	require.NoError(t, err)

	svc, err := games.Get(ctx, "alice")
	require.NoError(t, err)
	st := &Storage{Backend: StorageMemory}
	closed := false
	st.close = func() { closed = true }

	_, err = svc.Click(ctx)
	require.NoError(t, err)

	bg := StartBackgroundJobs(games, time.Hour)

	GracefulShutdown(ctx, ShutdownComponents{Background: bg, Games: games, Storage: st})

	assert.True(t, closed)
	assert.Zero(t, clk.PendingTimers())
}

func TestGracefulShutdown_Empty(t *testing.T) {
	assert.NotPanics(t, func() { GracefulShutdown(context.Background(), ShutdownComponents{}) })
}

func TestStartBackgroundJobs_RetriesFailedSaves(t *testing.T) {
	ctx := context.Background()
	store := &toggleStore{MemoryStore: storage.NewMemoryStore()}
	store.failing.Store(true)
	games, err := InitializeGames(testConfig(), store, event.NewMemoryBus(), clock.NewRealClock())
	require.NoError(t, err)
	defer func() { _ = games.Shutdown(ctx) }()

	svc, err := games.Get(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.Click(ctx)
	require.NoError(t, err)
	require.Zero(t, store.Len())

	bg := StartBackgroundJobs(games, 10*time.Millisecond)
	defer bg.Stop()

	store.failing.Store(false)
	assert.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 5*time.Millisecond)
}

func TestBackground_StopNil(t *testing.T) {
	var bg *Background
	assert.NotPanics(t, bg.Stop)
}

// toggleStore fails writes while failing is set
type toggleStore struct {
	*storage.MemoryStore
	failing atomic.Bool
}

func (s *toggleStore) Put(ctx context.Context, key string, payload []byte) error {
	if s.failing.Load() {
		return errors.New("store offline")
	}
	return s.MemoryStore.Put(ctx, key, payload)
}
