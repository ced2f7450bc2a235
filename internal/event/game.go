package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/format"
)

// Game event types
const (
	GameRefreshed        Type = domain.EventTypeGameRefreshed
	GameClicked          Type = domain.EventTypeClicked
	GameUpgradePurchased Type = domain.EventTypeUpgradePurchased
	GamePrestiged        Type = domain.EventTypePrestiged
	GameUnlockPurchased  Type = domain.EventTypeUnlockPurchased
	GameGoldBombStarted  Type = domain.EventTypeGoldBombStarted
	GameGoldBombExpired  Type = domain.EventTypeGoldBombExpired
	GameSaveFailed       Type = domain.EventTypeSaveFailed
)

// GameTypes lists every game event type
var GameTypes = []Type{
	GameRefreshed,
	GameClicked,
	GameUpgradePurchased,
	GamePrestiged,
	GameUnlockPurchased,
	GameGoldBombStarted,
	GameGoldBombExpired,
	GameSaveFailed,
}

// Revision orders the states of one loaded game. Session changes whenever the game
// is loaded again; Seq grows with every change within a session.
type Revision struct {
	Session string `json:"session"`
	Seq     uint64 `json:"seq"`
}

// Supersedes reports whether r is newer than prev. A new session always wins.
func (r Revision) Supersedes(prev Revision) bool {
	return r.Session != prev.Session || r.Seq > prev.Seq
}

// Typed event payloads

// RefreshedPayloadV1 carries the display to redraw after a state change
type RefreshedPayloadV1 struct {
	PlayerID string         `json:"player_id"`
	Cause    Type           `json:"cause"`
	Revision Revision       `json:"revision"`
	Display  format.Display `json:"display"`
}

// ClickedPayloadV1 is the typed payload for accepted clicks
type ClickedPayloadV1 struct {
	PlayerID       string          `json:"player_id"`
	Gain           decimal.Decimal `json:"gain"`
	GoldBombActive bool            `json:"gold_bomb_active"`
}

// UpgradePurchasedPayloadV1 is the typed payload for point upgrades
type UpgradePurchasedPayloadV1 struct {
	PlayerID string          `json:"player_id"`
	Upgrade  domain.Upgrade  `json:"upgrade"`
	Level    int             `json:"level"`
	Paid     decimal.Decimal `json:"paid"`
}

// PrestigedPayloadV1 is the typed payload for prestige resets
type PrestigedPayloadV1 struct {
	PlayerID       string          `json:"player_id"`
	PrestigePoints decimal.Decimal `json:"prestige_points"`
}

// UnlockPurchasedPayloadV1 is the typed payload for prestige tree purchases
type UnlockPurchasedPayloadV1 struct {
	PlayerID string          `json:"player_id"`
	Unlock   domain.Unlock   `json:"unlock"`
	Paid     decimal.Decimal `json:"paid"`
}

// GoldBombPayloadV1 is shared by the gold bomb start and expiry events
type GoldBombPayloadV1 struct {
	PlayerID  string     `json:"player_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SaveFailedPayloadV1 reports a failed persistence write
type SaveFailedPayloadV1 struct {
	PlayerID string `json:"player_id"`
	SaveKey  string `json:"save_key"`
	Error    string `json:"error"`
}

func newGameEvent(t Type, playerID string, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataKeyPlayerID: playerID,
		},
	}
}

// Type-safe event constructors

// NewRefreshedEvent creates a display refresh event
func NewRefreshedEvent(playerID string, cause Type, rev Revision, display format.Display) Event {
	return newGameEvent(GameRefreshed, playerID, RefreshedPayloadV1{
		PlayerID: playerID,
		Cause:    cause,
		Revision: rev,
		Display:  display,
	})
}

// NewClickedEvent creates a click event
func NewClickedEvent(playerID string, gain decimal.Decimal, goldBombActive bool) Event {
	return newGameEvent(GameClicked, playerID, ClickedPayloadV1{
		PlayerID:       playerID,
		Gain:           gain,
		GoldBombActive: goldBombActive,
	})
}

// NewUpgradePurchasedEvent creates an upgrade purchase event
func NewUpgradePurchasedEvent(playerID string, upgrade domain.Upgrade, level int, paid decimal.Decimal) Event {
	return newGameEvent(GameUpgradePurchased, playerID, UpgradePurchasedPayloadV1{
		PlayerID: playerID,
		Upgrade:  upgrade,
		Level:    level,
		Paid:     paid,
	})
}

// NewPrestigedEvent creates a prestige event
func NewPrestigedEvent(playerID string, prestigePoints decimal.Decimal) Event {
	return newGameEvent(GamePrestiged, playerID, PrestigedPayloadV1{
		PlayerID:       playerID,
		PrestigePoints: prestigePoints,
	})
}

// NewUnlockPurchasedEvent creates a prestige unlock event
func NewUnlockPurchasedEvent(playerID string, unlock domain.Unlock) Event {
	return newGameEvent(GameUnlockPurchased, playerID, UnlockPurchasedPayloadV1{
		PlayerID: playerID,
		Unlock:   unlock,
		Paid:     unlock.Cost(),
	})
}

// NewGoldBombStartedEvent creates a gold bomb activation event
func NewGoldBombStartedEvent(playerID string, expiresAt time.Time) Event {
	return newGameEvent(GameGoldBombStarted, playerID, GoldBombPayloadV1{
		PlayerID:  playerID,
		ExpiresAt: &expiresAt,
	})
}

// NewGoldBombExpiredEvent creates a gold bomb expiry event
func NewGoldBombExpiredEvent(playerID string) Event {
	return newGameEvent(GameGoldBombExpired, playerID, GoldBombPayloadV1{
		PlayerID: playerID,
	})
}

// NewSaveFailedEvent creates a save failure event
func NewSaveFailedEvent(playerID, saveKey string, err error) Event {
	return newGameEvent(GameSaveFailed, playerID, SaveFailedPayloadV1{
		PlayerID: playerID,
		SaveKey:  saveKey,
		Error:    err.Error(),
	})
}
