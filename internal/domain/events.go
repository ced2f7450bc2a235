package domain

// Event type constants used for event bus subscriptions, metrics and the SSE stream.
//
// Event types follow the pattern: <entity>.<action> (e.g., "game.clicked")
const (
	// EventTypeGameRefreshed is published after every state change; its payload carries the display.
	EventTypeGameRefreshed = "game.refreshed"

	// EventTypeClicked is published when a click is accepted
	EventTypeClicked = "game.clicked"

	// EventTypeUpgradePurchased is published when a cooldown or button upgrade is bought
	EventTypeUpgradePurchased = "game.upgrade_purchased"

	// EventTypePrestiged is published when a player prestiges
	EventTypePrestiged = "game.prestiged"

	// EventTypeUnlockPurchased is published when a prestige unlock is bought
	EventTypeUnlockPurchased = "game.unlock_purchased"

	// EventTypeGoldBombStarted is published when a click triggers the gold bomb
	EventTypeGoldBombStarted = "game.gold_bomb_started"

	// EventTypeGoldBombExpired is published when the gold bomb window closes
	EventTypeGoldBombExpired = "game.gold_bomb_expired"

	// EventTypeSaveFailed is published when the save record could not be written
	EventTypeSaveFailed = "game.save_failed"
)

// Upgrade names one of the two point-priced upgrades.
type Upgrade string

const (
	UpgradeCooldown Upgrade = "cooldown"
	UpgradeButton   Upgrade = "button"
)
