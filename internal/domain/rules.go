package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OneSecondPolicy decides when the oneSecond unlock changes the cooldown.
type OneSecondPolicy string

const (
	// OneSecondImmediate applies the 1s cooldown on purchase and again on every prestige.
	OneSecondImmediate OneSecondPolicy = "immediate"
	// OneSecondNextPrestige applies it only when prestiging.
	OneSecondNextPrestige OneSecondPolicy = "next_prestige"
)

// ParseOneSecondPolicy validates a policy name. Empty selects OneSecondImmediate.
func ParseOneSecondPolicy(s string) (OneSecondPolicy, error) {
	switch OneSecondPolicy(s) {
	case "", OneSecondImmediate:
		return OneSecondImmediate, nil
	case OneSecondNextPrestige:
		return OneSecondNextPrestige, nil
	}
	return "", fmt.Errorf("unknown one second policy %q", s)
}

// Click grants points if the cooldown has elapsed and returns the gain.
func (s *GameState) Click(now time.Time) (decimal.Decimal, error) {
	if remaining := s.CooldownRemaining(now); remaining > 0 {
		return decimal.Zero, fmt.Errorf("%w: %s remaining", ErrOnCooldown, remaining)
	}
	gain := s.ClickGain()
	s.Points = s.Points.Add(gain)
	s.LastClickAt = now
	return gain, nil
}

// PurchaseCooldownUpgrade lowers the click cooldown by one step.
func (s *GameState) PurchaseCooldownUpgrade() error {
	if s.CooldownUpgradeLevel >= MaxCooldownUpgradeLevel {
		return fmt.Errorf("%w: cooldown level %d", ErrMaxLevel, s.CooldownUpgradeLevel)
	}
	if s.Points.LessThan(s.CooldownUpgradePrice) {
		return fmt.Errorf("%w: need %s", ErrInsufficientFunds, s.CooldownUpgradePrice)
	}

	s.Points = s.Points.Sub(s.CooldownUpgradePrice)
	s.CooldownUpgradeLevel++
	s.ClickCooldown = decimal.Max(MinClickCooldown, s.ClickCooldown.Sub(CooldownUpgradeStep).Round(CooldownPrecision))
	s.CooldownUpgradePrice = s.CooldownUpgradePrice.Mul(CooldownPriceMultiplier)
	return nil
}

// PurchaseButtonUpgrade raises the click value.
func (s *GameState) PurchaseButtonUpgrade() error {
	if s.ButtonUpgradeLevel >= MaxButtonUpgradeLevel {
		return fmt.Errorf("%w: button level %d", ErrMaxLevel, s.ButtonUpgradeLevel)
	}
	if s.Points.LessThan(s.ButtonUpgradePrice) {
		return fmt.Errorf("%w: need %s", ErrInsufficientFunds, s.ButtonUpgradePrice)
	}

	s.Points = s.Points.Sub(s.ButtonUpgradePrice)
	s.ButtonUpgradeLevel++
	s.ClickValue = s.ClickValue.Mul(ClickValueMultiplier)
	s.ButtonUpgradePrice = s.ButtonUpgradePrice.Mul(ButtonPriceMultiplier)
	return nil
}

// Prestige trades progress for prestige points. Unlock flags survive.
func (s *GameState) Prestige() error {
	if !s.CanPrestige() {
		return fmt.Errorf("%w: have %s, need %s", ErrPrestigeThreshold, s.Points, PrestigeThreshold)
	}

	s.PrestigePoints = s.PrestigePoints.Add(decimal.NewFromInt(PrestigeReward))
	s.Points = decimal.Zero
	s.ClickValue = DefaultClickValue
	s.ButtonUpgradeLevel = 0
	s.CooldownUpgradePrice = DefaultCooldownUpgradePrice
	s.ButtonUpgradePrice = DefaultButtonUpgradePrice

	if s.PrestigeTree.OneSecond {
		s.applyOneSecond()
	} else {
		s.ClickCooldown = DefaultClickCooldown
		s.CooldownUpgradeLevel = 0
	}
	return nil
}

// PurchaseUnlock buys a prestige tree node with prestige points.
func (s *GameState) PurchaseUnlock(u Unlock, policy OneSecondPolicy) error {
	if !u.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUnlock, string(u))
	}
	if s.PrestigeTree.Has(u) {
		return fmt.Errorf("%w: %s", ErrAlreadyUnlocked, u)
	}
	if s.PrestigePoints.LessThan(u.Cost()) {
		return fmt.Errorf("%w: %s costs %s", ErrInsufficientPrestigePoints, u, u.Cost())
	}

	s.PrestigePoints = s.PrestigePoints.Sub(u.Cost())
	s.PrestigeTree.set(u)

	if u == UnlockOneSecond && policy != OneSecondNextPrestige {
		s.applyOneSecond()
	}
	return nil
}

func (s *GameState) applyOneSecond() {
	s.ClickCooldown = OneSecondClickCooldown
	s.CooldownUpgradeLevel = max(0, s.CooldownUpgradeLevel-OneSecondLevelRefund)
}
