package discord

import (
	"errors"
	"fmt"
	"net/http"
)

// Friendly message constants for Discord responses
const (
	MsgCooldownActive = "⏳ **Whoa there!**\nThe button is still cooling down."
	MsgRejected       = "⚠️ **Not yet!**"
	MsgAlreadyDone    = "🔒 **Nothing to buy**"
	MsgServerDown     = "🔌 Error connecting to game server."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorInfo     = 0x3498DB
	ColorSuccess  = 0x2ECC71
	ColorPrestige = 0x9B59B6
	ColorGoldBomb = 0xF1C40F
)

// EmbedFooter is shown under every bot embed
const EmbedFooter = "SimpleIG"

// formatFriendlyError turns an API failure into a message for the player.
// Rejections carry the server's own wording; anything else stays generic.
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgServerDown
	}

	switch apiErr.Status {
	case http.StatusTooManyRequests:
		return MsgCooldownActive
	case http.StatusBadRequest:
		return fmt.Sprintf("%s\n%s", MsgRejected, apiErr.Message)
	case http.StatusConflict:
		return fmt.Sprintf("%s\n%s", MsgAlreadyDone, apiErr.Message)
	}
	return MsgGenericError
}
