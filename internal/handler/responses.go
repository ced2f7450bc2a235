package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/SimpleIG_Go/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgOnCooldownError        = "Button is on cooldown. Try again shortly"
	ErrMsgNotEnoughPointsError   = "Not enough points"
	ErrMsgNotEnoughPrestigeError = "Not enough prestige points"
	ErrMsgMaxLevelError          = "That upgrade is already at max level"
	ErrMsgPrestigeThresholdError = "You need 10,000 points to prestige"
	ErrMsgAlreadyUnlockedError   = "You already own that unlock"
	ErrMsgUnknownUnlockError     = "Unknown unlock. Valid options: twoX, oneSecond, fiveX, goldBomb"
	ErrMsgInvalidPlayerError     = "Invalid player id"
)

// mapServiceErrorToUserMessage converts game errors to an HTTP status and a message users can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughPointsError
	case errors.Is(err, domain.ErrInsufficientPrestigePoints):
		return http.StatusBadRequest, ErrMsgNotEnoughPrestigeError
	case errors.Is(err, domain.ErrPrestigeThreshold):
		return http.StatusBadRequest, ErrMsgPrestigeThresholdError
	case errors.Is(err, domain.ErrUnknownUnlock):
		return http.StatusBadRequest, ErrMsgUnknownUnlockError
	case errors.Is(err, domain.ErrInvalidPlayer):
		return http.StatusBadRequest, ErrMsgInvalidPlayerError
	case errors.Is(err, domain.ErrMaxLevel):
		return http.StatusConflict, ErrMsgMaxLevelError
	case errors.Is(err, domain.ErrAlreadyUnlocked):
		return http.StatusConflict, ErrMsgAlreadyUnlockedError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
