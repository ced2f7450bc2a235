package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrestigeTree holds the one-way prestige unlock flags.
type PrestigeTree struct {
	TwoX      bool `json:"twoX"`
	OneSecond bool `json:"oneSecond"`
	FiveX     bool `json:"fiveX"`
	GoldBomb  bool `json:"goldBomb"`
}

// Has reports whether the unlock is owned.
func (t PrestigeTree) Has(u Unlock) bool {
	switch u {
	case UnlockTwoX:
		return t.TwoX
	case UnlockOneSecond:
		return t.OneSecond
	case UnlockFiveX:
		return t.FiveX
	case UnlockGoldBomb:
		return t.GoldBomb
	}
	return false
}

// set marks the unlock as owned. Flags are never cleared.
func (t *PrestigeTree) set(u Unlock) {
	switch u {
	case UnlockTwoX:
		t.TwoX = true
	case UnlockOneSecond:
		t.OneSecond = true
	case UnlockFiveX:
		t.FiveX = true
	case UnlockGoldBomb:
		t.GoldBomb = true
	}
}

// GameState holds all progression data of one player.
// GoldBombActive and LastClickAt are transient and never persisted.
type GameState struct {
	Points               decimal.Decimal `json:"points"`
	PrestigePoints       decimal.Decimal `json:"prestige_points"`
	ClickValue           decimal.Decimal `json:"click_value"`
	ClickCooldown        decimal.Decimal `json:"click_cooldown"`
	CooldownUpgradeLevel int             `json:"cooldown_upgrade_level"`
	ButtonUpgradeLevel   int             `json:"button_upgrade_level"`
	CooldownUpgradePrice decimal.Decimal `json:"cooldown_upgrade_price"`
	ButtonUpgradePrice   decimal.Decimal `json:"button_upgrade_price"`
	PrestigeTree         PrestigeTree    `json:"prestige_tree"`

	GoldBombActive bool      `json:"gold_bomb_active"`
	LastClickAt    time.Time `json:"-"`
}

// NewGameState returns a fresh state whose first click is always accepted.
func NewGameState(now time.Time) GameState {
	st := GameState{
		Points:               DefaultPoints,
		PrestigePoints:       DefaultPrestigePoints,
		ClickValue:           DefaultClickValue,
		ClickCooldown:        DefaultClickCooldown,
		CooldownUpgradePrice: DefaultCooldownUpgradePrice,
		ButtonUpgradePrice:   DefaultButtonUpgradePrice,
	}
	st.ResetClickTimer(now)
	return st
}

// CooldownDuration converts the click cooldown to a time.Duration.
func (s GameState) CooldownDuration() time.Duration {
	return time.Duration(s.ClickCooldown.Mul(decimal.NewFromInt(int64(time.Second))).IntPart())
}

// ResetClickTimer backdates the last click so the next click is accepted immediately.
func (s *GameState) ResetClickTimer(now time.Time) {
	s.LastClickAt = now.Add(-s.CooldownDuration())
}

// CooldownRemaining returns how long until the next click is accepted.
func (s GameState) CooldownRemaining(now time.Time) time.Duration {
	remaining := s.CooldownDuration() - now.Sub(s.LastClickAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ClickGain is the number of points the next accepted click grants.
func (s GameState) ClickGain() decimal.Decimal {
	gain := s.ClickValue
	if s.PrestigeTree.TwoX {
		gain = gain.Mul(decimal.NewFromInt(TwoXMultiplier))
	}
	if s.PrestigeTree.FiveX {
		gain = gain.Mul(decimal.NewFromInt(FiveXMultiplier))
	}
	if s.GoldBombActive {
		gain = gain.Mul(decimal.NewFromInt(GoldBombMultiplier))
	}
	return gain
}

// CanPrestige reports whether the prestige threshold is reached.
func (s GameState) CanPrestige() bool {
	return s.Points.GreaterThanOrEqual(PrestigeThreshold)
}
