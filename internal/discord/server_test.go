package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// healthOnlyAPI answers health checks and nothing else
type healthOnlyAPI struct {
	GameAPI
	err error
}

func (h healthOnlyAPI) Health(context.Context) error {
	return h.err
}

func TestHTTPServer_Health(t *testing.T) {
	tests := []struct {
		name       string
		ready      bool
		apiErr     error
		wantCode   int
		wantStatus string
	}{
		{"healthy", true, nil, http.StatusOK, "healthy"},
		{"api down", true, errors.New("refused"), http.StatusServiceUnavailable, "degraded"},
		{"gateway down", false, nil, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := SetupTestContext(t)
			ctx.Session.DataReady = tt.ready
			bot := &Bot{Session: ctx.Session, Client: healthOnlyAPI{err: tt.apiErr}, Registry: NewCommandRegistry()}
			bot.Registry.Stats.Record()

			rec := httptest.NewRecorder()
			NewHTTPServer("0", bot).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var status HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, tt.ready, status.Connected)
			assert.Equal(t, tt.apiErr == nil, status.APIReachable)
			assert.Equal(t, int64(1), status.CommandsReceived)
			assert.NotNil(t, status.LastCommandTime)
		})
	}
}

func TestHTTPServer_Announce(t *testing.T) {
	ctx := SetupTestContext(t)
	bot := &Bot{Session: ctx.Session, Registry: NewCommandRegistry(), notificationChannelID: "chan-1"}
	handler := NewHTTPServer("0", bot).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/announce",
		strings.NewReader(`{"title":"Maintenance","description":"Back soon"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	msgs := ctx.Messages()
	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].Embeds, 1)
	assert.Equal(t, "Maintenance", msgs[0].Embeds[0].Title)
	assert.Equal(t, ColorSuccess, msgs[0].Embeds[0].Color)
}

func TestHTTPServer_AnnounceValidation(t *testing.T) {
	ctx := SetupTestContext(t)
	bot := &Bot{Session: ctx.Session, Registry: NewCommandRegistry(), notificationChannelID: "chan-1"}
	handler := NewHTTPServer("0", bot).Handler()

	for _, body := range []string{`{`, `{}`} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/announce", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/announce", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Empty(t, ctx.Messages())
}

func TestSendNotification_NoChannel(t *testing.T) {
	ctx := SetupTestContext(t)
	bot := &Bot{Session: ctx.Session}

	require.NoError(t, bot.SendNotification(nil))
	assert.Empty(t, ctx.Messages())
}
