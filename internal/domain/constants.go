package domain

import "github.com/shopspring/decimal"

// SaveKey is the storage key of the default player's save record.
const SaveKey = "simpleIGSave"

// DefaultPlayerID identifies the single local player.
const DefaultPlayerID = "local"

// Upgrade caps
const (
	MaxCooldownUpgradeLevel = 10
	MaxButtonUpgradeLevel   = 1000
)

// OneSecondLevelRefund is how many cooldown upgrade levels the oneSecond unlock gives back.
const OneSecondLevelRefund = 5

// PrestigeReward is the number of prestige points granted per prestige.
const PrestigeReward = 2

// Multipliers applied to click gain
const (
	TwoXMultiplier     = 2
	FiveXMultiplier    = 5
	GoldBombMultiplier = 100
)

// Decimal rule values. Treat as read-only.
var (
	DefaultPoints               = decimal.Zero
	DefaultPrestigePoints       = decimal.Zero
	DefaultClickValue           = decimal.NewFromInt(1)
	DefaultClickCooldown        = decimal.NewFromInt(2)
	OneSecondClickCooldown      = decimal.NewFromInt(1)
	MinClickCooldown            = decimal.RequireFromString("0.1")
	CooldownUpgradeStep         = decimal.RequireFromString("0.2")
	DefaultCooldownUpgradePrice = decimal.NewFromInt(5)
	DefaultButtonUpgradePrice   = decimal.NewFromInt(2)
	CooldownPriceMultiplier     = decimal.RequireFromString("1.5")
	ButtonPriceMultiplier       = decimal.RequireFromString("1.2")
	ClickValueMultiplier        = decimal.RequireFromString("1.2")
	PrestigeThreshold           = decimal.NewFromInt(10000)
)

// CooldownPrecision is the number of decimal places kept on the click cooldown.
const CooldownPrecision = 2
