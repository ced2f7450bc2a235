package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/osse101/SimpleIG_Go/internal/domain"
)

// NotificationSender posts embeds to the notification channel
type NotificationSender interface {
	SendNotification(embed *discordgo.MessageEmbed) error
}

// SSENotifier handles sending Discord notifications for SSE events.
// Only games owned by Discord users are announced.
type SSENotifier struct {
	sender NotificationSender
	now    func() time.Time
}

// NewSSENotifier creates a new SSE notifier
func NewSSENotifier(sender NotificationSender) *SSENotifier {
	return &SSENotifier{sender: sender, now: time.Now}
}

// RegisterHandlers registers all SSE event handlers with the client
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(SSEEventTypePrestiged, n.handlePrestiged)
	client.OnEvent(SSEEventTypeUnlockPurchased, n.handleUnlockPurchased)
	client.OnEvent(SSEEventTypeGoldBombStarted, n.handleGoldBombStarted)
}

// PrestigedPayload is the payload for prestige events
type PrestigedPayload struct {
	PlayerID       string          `json:"player_id"`
	PrestigePoints decimal.Decimal `json:"prestige_points"`
}

// UnlockPurchasedPayload is the payload for prestige unlock purchases
type UnlockPurchasedPayload struct {
	PlayerID string        `json:"player_id"`
	Unlock   domain.Unlock `json:"unlock"`
}

// GoldBombPayload is the payload for gold bomb events
type GoldBombPayload struct {
	PlayerID  string     `json:"player_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (n *SSENotifier) handlePrestiged(event SSEEvent) error {
	var payload PrestigedPayload
	if !decodePayload(event, &payload) {
		return nil
	}
	mention, ok := discordMention(payload.PlayerID)
	if !ok {
		return nil
	}

	return n.send(event.Type, &discordgo.MessageEmbed{
		Title:       "✨ Prestige!",
		Description: fmt.Sprintf("%s reset their game and now holds **%s** prestige points.", mention, payload.PrestigePoints.StringFixed(0)),
		Color:       ColorPrestige,
	})
}

func (n *SSENotifier) handleUnlockPurchased(event SSEEvent) error {
	var payload UnlockPurchasedPayload
	if !decodePayload(event, &payload) {
		return nil
	}
	mention, ok := discordMention(payload.PlayerID)
	if !ok {
		return nil
	}

	title := string(payload.Unlock)
	if payload.Unlock.Valid() {
		title = titleCaser.String(payload.Unlock.Title())
	}
	return n.send(event.Type, &discordgo.MessageEmbed{
		Title:       "🔓 New Unlock",
		Description: fmt.Sprintf("%s unlocked **%s**.", mention, title),
		Color:       ColorPrestige,
	})
}

func (n *SSENotifier) handleGoldBombStarted(event SSEEvent) error {
	var payload GoldBombPayload
	if !decodePayload(event, &payload) {
		return nil
	}
	mention, ok := discordMention(payload.PlayerID)
	if !ok {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       "💣 Gold Bomb!",
		Description: fmt.Sprintf("%s set off a gold bomb. Clicks are worth %dx!", mention, domain.GoldBombMultiplier),
		Color:       ColorGoldBomb,
	}
	if payload.ExpiresAt != nil {
		remaining := payload.ExpiresAt.Sub(n.now()).Round(time.Second)
		if remaining > 0 {
			embed.Fields = []*discordgo.MessageEmbedField{
				{Name: "Ends In", Value: remaining.String(), Inline: true},
			}
		}
	}
	return n.send(event.Type, embed)
}

func (n *SSENotifier) send(eventType string, embed *discordgo.MessageEmbed) error {
	embed.Timestamp = n.now().Format(time.RFC3339)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: EmbedFooter}

	if err := n.sender.SendNotification(embed); err != nil {
		slog.Error(sseLogMsgNotificationError, "error", err, "event_type", eventType)
		return err
	}
	slog.Info(sseLogMsgNotificationSent, "event_type", eventType)
	return nil
}

func decodePayload(event SSEEvent, out interface{}) bool {
	if err := json.Unmarshal(event.Payload, out); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "event_type", event.Type)
		return false
	}
	return true
}

// discordMention turns a Discord-owned player id into a user mention
func discordMention(playerID string) (string, bool) {
	userID, ok := strings.CutPrefix(playerID, PlayerIDPrefix)
	if !ok || userID == "" {
		return "", false
	}
	return "<@" + userID + ">", true
}
