package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/game"
	"github.com/osse101/SimpleIG_Go/internal/logger"
)

// GameProvider hands out the live game of a player, loading it on first use
type GameProvider interface {
	Get(ctx context.Context, playerID string) (game.Service, error)
}

// PurchaseUnlockRequest is the body of POST /games/{player}/prestige/unlocks
type PurchaseUnlockRequest struct {
	Unlock string `json:"unlock" validate:"required,max=32,unlock"`
}

// loadGame resolves the {player} parameter. On failure the response is already written.
func loadGame(w http.ResponseWriter, r *http.Request, games GameProvider) (game.Service, bool) {
	playerID := playerParam(r)
	svc, err := games.Get(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPlayer) {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPlayerHTTP)
			return nil, false
		}
		logger.FromContext(r.Context()).Error(LogMsgLoadGameFailed, "player_id", playerID, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgLoadGameFailed)
		return nil, false
	}
	return svc, true
}

// respondActionError writes the response for a failed game action
func respondActionError(w http.ResponseWriter, r *http.Request, action, playerID string, err error) {
	log := logger.FromContext(r.Context())
	if domain.IsRejection(err) {
		log.Debug(LogMsgActionRejected, "action", action, "player_id", playerID, "reason", err)
	} else {
		log.Error(LogMsgActionFailed, "action", action, "player_id", playerID, "error", err)
	}
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// HandleGetGame returns the current state and display of a game
// @Summary Get game
// @Description Loads the player's game (creating it on first visit) and returns state plus display strings
// @Tags game
// @Produce json
// @Param player path string true "Player id"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/games/{player} [get]
func HandleGetGame(games GameProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, ok := loadGame(w, r, games)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, svc.Snapshot(r.Context()))
	}
}

// HandleClick presses the button
// @Summary Click
// @Description Earns the current click gain. Rejected while the cooldown is running.
// @Tags game
// @Produce json
// @Param player path string true "Player id"
// @Success 200 {object} game.ClickResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Cooldown running"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/games/{player}/click [post]
func HandleClick(games GameProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, ok := loadGame(w, r, games)
		if !ok {
			return
		}

		result, err := svc.Click(r.Context())
		if err != nil {
			respondActionError(w, r, "click", svc.PlayerID(), err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgActionSucceeded,
			"action", "click",
			"player_id", svc.PlayerID(),
			"gain", result.Gain.String(),
			"gold_bomb", result.GoldBombTriggered)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandlePurchaseUpgrade buys the cooldown or the button upgrade
// @Summary Purchase upgrade
// @Description Buys one level of the named upgrade
// @Tags game
// @Produce json
// @Param player path string true "Player id"
// @Param upgrade path string true "Upgrade" Enums(cooldown, button)
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown upgrade"
// @Failure 409 {object} ErrorResponse "Max level"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/games/{player}/upgrades/{upgrade} [post]
func HandlePurchaseUpgrade(games GameProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upgrade := domain.Upgrade(chi.URLParam(r, URLParamUpgrade))
		if upgrade != domain.UpgradeCooldown && upgrade != domain.UpgradeButton {
			respondError(w, http.StatusNotFound, ErrMsgUnknownUpgradeHTTP)
			return
		}

		svc, ok := loadGame(w, r, games)
		if !ok {
			return
		}

		var (
			snap game.Snapshot
			err  error
		)
		if upgrade == domain.UpgradeCooldown {
			snap, err = svc.PurchaseCooldownUpgrade(r.Context())
		} else {
			snap, err = svc.PurchaseButtonUpgrade(r.Context())
		}
		if err != nil {
			respondActionError(w, r, "upgrade_"+string(upgrade), svc.PlayerID(), err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgActionSucceeded,
			"action", "upgrade_"+string(upgrade),
			"player_id", svc.PlayerID())
		respondJSON(w, http.StatusOK, snap)
	}
}

// HandleGetPrestigeMenu lists the prestige unlocks and their prices
// @Summary Prestige menu
// @Tags prestige
// @Produce json
// @Param player path string true "Player id"
// @Success 200 {object} game.PrestigeMenu
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/games/{player}/prestige [get]
func HandleGetPrestigeMenu(games GameProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, ok := loadGame(w, r, games)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, svc.OpenPrestigeMenu(r.Context()))
	}
}

// HandlePrestige resets progress in exchange for prestige points
// @Summary Prestige
// @Description Requires at least 10000 points
// @Tags prestige
// @Produce json
// @Param player path string true "Player id"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/games/{player}/prestige [post]
func HandlePrestige(games GameProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, ok := loadGame(w, r, games)
		if !ok {
			return
		}

		snap, err := svc.Prestige(r.Context())
		if err != nil {
			respondActionError(w, r, "prestige", svc.PlayerID(), err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgActionSucceeded,
			"action", "prestige",
			"player_id", svc.PlayerID(),
			"prestige_points", snap.State.PrestigePoints.String())
		respondJSON(w, http.StatusOK, snap)
	}
}

// HandlePurchaseUnlock buys a prestige unlock
// @Summary Purchase prestige unlock
// @Tags prestige
// @Accept json
// @Produce json
// @Param player path string true "Player id"
// @Param request body PurchaseUnlockRequest true "Unlock name"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already owned"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/games/{player}/prestige/unlocks [post]
func HandlePurchaseUnlock(games GameProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseUnlockRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase unlock"); err != nil {
			return
		}

		svc, ok := loadGame(w, r, games)
		if !ok {
			return
		}

		snap, err := svc.PurchasePrestigeUnlock(r.Context(), req.Unlock)
		if err != nil {
			respondActionError(w, r, "unlock", svc.PlayerID(), err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgActionSucceeded,
			"action", "unlock",
			"player_id", svc.PlayerID(),
			"unlock", req.Unlock)
		respondJSON(w, http.StatusOK, snap)
	}
}
