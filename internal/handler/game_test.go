package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/game"
	"github.com/osse101/SimpleIG_Go/mocks"
)

func newGameRouter(games GameProvider) http.Handler {
	r := chi.NewRouter()
	r.Route("/games/{player}", func(r chi.Router) {
		r.Get("/", HandleGetGame(games))
		r.Post("/click", HandleClick(games))
		r.Post("/upgrades/{upgrade}", HandlePurchaseUpgrade(games))
		r.Get("/prestige", HandleGetPrestigeMenu(games))
		r.Post("/prestige", HandlePrestige(games))
		r.Post("/prestige/unlocks", HandlePurchaseUnlock(games))
	})
	return r
}

func setupGame(t *testing.T, playerID string) (*mocks.MockGameProvider, *mocks.MockGameService) {
	t.Helper()
	games := mocks.NewMockGameProvider(t)
	svc := mocks.NewMockGameService(t)
	games.On("Get", mock.Anything, playerID).Return(svc, nil)
	svc.On("PlayerID").Return(playerID).Maybe()
	return games, svc
}

func serve(t *testing.T, games GameProvider, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	newGameRouter(games).ServeHTTP(rec, req)
	return rec
}

func TestHandleGetGame(t *testing.T) {
	games, svc := setupGame(t, "alice")
	svc.On("Snapshot", mock.Anything).Return(game.Snapshot{PlayerID: "alice"})

	rec := serve(t, games, http.MethodGet, "/games/alice", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"player_id":"alice"`)
}

func TestLoadGame_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid player",
			err:            fmt.Errorf("%w: %q", domain.ErrInvalidPlayer, "bad id"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidPlayerHTTP,
		},
		{
			name:           "store unavailable",
			err:            errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgLoadGameFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games := mocks.NewMockGameProvider(t)
			games.On("Get", mock.Anything, "bob").Return(nil, tt.err)

			rec := serve(t, games, http.MethodPost, "/games/bob/click", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestHandleClick(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("Click", mock.Anything).Return(game.ClickResult{
			Snapshot:          game.Snapshot{PlayerID: "alice"},
			Gain:              decimal.NewFromInt(200),
			GoldBombTriggered: true,
		}, nil)

		rec := serve(t, games, http.MethodPost, "/games/alice/click", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"gain":"200"`)
		assert.Contains(t, rec.Body.String(), `"gold_bomb_triggered":true`)
		assert.Contains(t, rec.Body.String(), `"player_id":"alice"`)
	})

	t.Run("cooldown running", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("Click", mock.Anything).Return(game.ClickResult{}, domain.ErrOnCooldown)

		rec := serve(t, games, http.MethodPost, "/games/alice/click", "")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"error":"`+ErrMsgOnCooldownError+`"}`, rec.Body.String())
	})
}

func TestHandlePurchaseUpgrade(t *testing.T) {
	t.Run("cooldown", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("PurchaseCooldownUpgrade", mock.Anything).Return(game.Snapshot{PlayerID: "alice"}, nil)

		rec := serve(t, games, http.MethodPost, "/games/alice/upgrades/cooldown", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("button at max level", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("PurchaseButtonUpgrade", mock.Anything).Return(game.Snapshot{}, domain.ErrMaxLevel)

		rec := serve(t, games, http.MethodPost, "/games/alice/upgrades/button", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgMaxLevelError)
	})

	t.Run("not enough points", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("PurchaseButtonUpgrade", mock.Anything).
			Return(game.Snapshot{}, fmt.Errorf("%w: need 2", domain.ErrInsufficientFunds))

		rec := serve(t, games, http.MethodPost, "/games/alice/upgrades/button", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgNotEnoughPointsError)
	})

	t.Run("unknown upgrade never loads the game", func(t *testing.T) {
		games := mocks.NewMockGameProvider(t)

		rec := serve(t, games, http.MethodPost, "/games/alice/upgrades/rocket", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		games.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestHandlePrestige(t *testing.T) {
	t.Run("menu", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("OpenPrestigeMenu", mock.Anything).Return(game.PrestigeMenu{
			PlayerID: "alice",
			Unlocks:  []game.UnlockOption{{Unlock: domain.UnlockTwoX, Title: domain.UnlockTwoX.Title(), Cost: domain.UnlockTwoX.Cost()}},
		})

		rec := serve(t, games, http.MethodGet, "/games/alice/prestige", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"unlock":"twoX"`)
	})

	t.Run("below threshold", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("Prestige", mock.Anything).Return(game.Snapshot{}, domain.ErrPrestigeThreshold)

		rec := serve(t, games, http.MethodPost, "/games/alice/prestige", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgPrestigeThresholdError)
	})

	t.Run("accepted", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		snap := game.Snapshot{PlayerID: "alice"}
		snap.State.PrestigePoints = decimal.NewFromInt(2)
		svc.On("Prestige", mock.Anything).Return(snap, nil)

		rec := serve(t, games, http.MethodPost, "/games/alice/prestige", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandlePurchaseUnlock(t *testing.T) {
	t.Run("alias accepted", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("PurchasePrestigeUnlock", mock.Anything, "2x").Return(game.Snapshot{PlayerID: "alice"}, nil)

		rec := serve(t, games, http.MethodPost, "/games/alice/prestige/unlocks", `{"unlock":"2x"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("already owned", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("PurchasePrestigeUnlock", mock.Anything, "fiveX").Return(game.Snapshot{}, domain.ErrAlreadyUnlocked)

		rec := serve(t, games, http.MethodPost, "/games/alice/prestige/unlocks", `{"unlock":"fiveX"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("not enough prestige points", func(t *testing.T) {
		games, svc := setupGame(t, "alice")
		svc.On("PurchasePrestigeUnlock", mock.Anything, "goldBomb").Return(game.Snapshot{}, domain.ErrInsufficientPrestigePoints)

		rec := serve(t, games, http.MethodPost, "/games/alice/prestige/unlocks", `{"unlock":"goldBomb"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgNotEnoughPrestigeError)
	})

	badBodies := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"unlock":`, ErrMsgInvalidRequest},
		{"unknown field", `{"unlock":"twoX","extra":1}`, ErrMsgInvalidRequest},
		{"missing unlock", `{}`, `"unlock":"This field is required"`},
		{"unknown unlock", `{"unlock":"tenX"}`, ErrMsgUnknownUnlockError},
	}
	for _, tt := range badBodies {
		t.Run(tt.name, func(t *testing.T) {
			games := mocks.NewMockGameProvider(t)

			rec := serve(t, games, http.MethodPost, "/games/alice/prestige/unlocks", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			games.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		})
	}
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{nil, http.StatusInternalServerError, ErrMsgGenericServerError},
		{domain.ErrOnCooldown, http.StatusTooManyRequests, ErrMsgOnCooldownError},
		{fmt.Errorf("wrapped: %w", domain.ErrInsufficientFunds), http.StatusBadRequest, ErrMsgNotEnoughPointsError},
		{domain.ErrInsufficientPrestigePoints, http.StatusBadRequest, ErrMsgNotEnoughPrestigeError},
		{domain.ErrPrestigeThreshold, http.StatusBadRequest, ErrMsgPrestigeThresholdError},
		{domain.ErrUnknownUnlock, http.StatusBadRequest, ErrMsgUnknownUnlockError},
		{domain.ErrInvalidPlayer, http.StatusBadRequest, ErrMsgInvalidPlayerError},
		{domain.ErrMaxLevel, http.StatusConflict, ErrMsgMaxLevelError},
		{domain.ErrAlreadyUnlocked, http.StatusConflict, ErrMsgAlreadyUnlockedError},
		{errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
		assert.Equal(t, tt.msg, msg, "%v", tt.err)
	}
}
