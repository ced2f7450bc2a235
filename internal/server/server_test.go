package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SimpleIG_Go/internal/clock"
	"github.com/osse101/SimpleIG_Go/internal/event"
	"github.com/osse101/SimpleIG_Go/internal/game"
	"github.com/osse101/SimpleIG_Go/internal/handler"
	"github.com/osse101/SimpleIG_Go/internal/sse"
	"github.com/osse101/SimpleIG_Go/internal/storage"
)

const testAPIKey = "test-key"

type testServer struct {
	srv   *Server
	clock *clock.SimulatedClock
	store *storage.MemoryStore
}

func newTestServer(t *testing.T, checks ...handler.HealthChecker) *testServer {
	t.Helper()

	clk := clock.NewSimulatedClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	store := storage.NewMemoryStore()
	bus := event.NewMemoryBus()
	registry := game.NewRegistry(game.Dependencies{
		Store:  store,
		Bus:    bus,
		Clock:  clk,
		Random: func() float64 { return 0.99 },
	}, game.DefaultConfig(), game.RegistryConfig{})

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	srv := NewServer(Options{Port: 0, APIKey: testAPIKey, Version: "test", Clock: clk}, registry, hub, checks...)
	t.Cleanup(func() {
		_ = registry.Shutdown(context.Background())
		_ = srv.Stop(context.Background())
	})
	return &testServer{srv: srv, clock: clk, store: store}
}

func (ts *testServer) do(t *testing.T, method, path, body string, withKey bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if withKey {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_GameFlow(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/games/alice", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"player_id":"alice"`)

	rec = ts.do(t, http.MethodPost, "/api/v1/games/alice/click", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"gain":"1"`)

	rec = ts.do(t, http.MethodPost, "/api/v1/games/alice/click", "", true)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	ts.clock.Advance(2 * time.Second)
	rec = ts.do(t, http.MethodPost, "/api/v1/games/alice/click", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/games/alice/upgrades/button", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"button_upgrade_label":"Upgrade Button - 2 pts"`)

	rec = ts.do(t, http.MethodPost, "/api/v1/games/alice/upgrades/cooldown", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/games/alice/prestige", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"can_prestige":false`)

	rec = ts.do(t, http.MethodPost, "/api/v1/games/alice/prestige", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/games/alice/prestige/unlocks", `{"unlock":"twoX"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	payload, err := ts.store.Get(context.Background(), "simpleIGSave:alice")
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"buttonUpgradeLevel":1`)
}

func TestServer_RequiresAPIKey(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/games/alice/click", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, ts.store.Len())
}

func TestServer_InvalidPlayer(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/games/-bad", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_PublicEndpoints(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := ts.do(t, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := ts.do(t, http.MethodGet, "/version", "", false)
	assert.Contains(t, rec.Body.String(), `"version":"test"`)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestServer_ReadinessUsesChecks(t *testing.T) {
	down := handler.HealthCheckFunc(func(context.Context) error { return assert.AnError })
	ts := newTestServer(t, down)

	rec := ts.do(t, http.MethodGet, "/readyz", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
