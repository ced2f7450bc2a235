package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/SimpleIG_Go/internal/domain"
)

func TestNewDisplay_FreshState(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := NewDisplay(domain.NewGameState(now), now)

	assert.Equal(t, "0", d.Points)
	assert.Equal(t, "Points: 0", d.PointsLabel)
	assert.Equal(t, "Prestige Points: 0", d.PrestigePointsLabel)
	assert.Equal(t, "Upgrade Cooldown (2s) - 5 pts", d.CooldownUpgradeLabel)
	assert.Equal(t, "Upgrade Button - 2 pts", d.ButtonUpgradeLabel)
	assert.Equal(t, "1", d.ClickGain)
	assert.Equal(t, "0", d.CooldownRemaining)
	assert.False(t, d.CanPrestige)
	assert.False(t, d.GoldBombActive)
}

func TestNewDisplay_Progressed(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st := domain.NewGameState(now)
	st.Points = decimal.NewFromInt(2_500_000)
	st.PrestigePoints = decimal.NewFromInt(4)
	st.ClickCooldown = decimal.RequireFromString("1.8")
	st.CooldownUpgradePrice = decimal.RequireFromString("7.5")
	st.ButtonUpgradePrice = decimal.RequireFromString("2.4")
	st.CooldownUpgradeLevel = domain.MaxCooldownUpgradeLevel
	st.PrestigeTree.TwoX = true
	st.LastClickAt = now.Add(-500 * time.Millisecond)

	d := NewDisplay(st, now)

	assert.Equal(t, "2.50M", d.Points)
	assert.Equal(t, "4", d.PrestigePoints)
	assert.Equal(t, "Upgrade Cooldown (1.8s) - 8 pts", d.CooldownUpgradeLabel)
	assert.Equal(t, "Upgrade Button - 2 pts", d.ButtonUpgradeLabel)
	assert.Equal(t, "2", d.ClickGain)
	assert.Equal(t, "1.3", d.CooldownRemaining)
	assert.True(t, d.CooldownMaxed)
	assert.False(t, d.ButtonMaxed)
	assert.True(t, d.CanPrestige)
}
