package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: expected %s got %s", field, want, got)
}

func TestNewGameState_Defaults(t *testing.T) {
	st := NewGameState(start)

	assertDecimal(t, "0", st.Points, "points")
	assertDecimal(t, "0", st.PrestigePoints, "prestige points")
	assertDecimal(t, "1", st.ClickValue, "click value")
	assertDecimal(t, "2", st.ClickCooldown, "click cooldown")
	assertDecimal(t, "5", st.CooldownUpgradePrice, "cooldown price")
	assertDecimal(t, "2", st.ButtonUpgradePrice, "button price")
	assert.Zero(t, st.CooldownUpgradeLevel)
	assert.Zero(t, st.ButtonUpgradeLevel)
	assert.Equal(t, PrestigeTree{}, st.PrestigeTree)
	assert.False(t, st.GoldBombActive)
	assert.Equal(t, start.Add(-2*time.Second), st.LastClickAt)
}

func TestClick(t *testing.T) {
	st := NewGameState(start)

	gain, err := st.Click(start)
	require.NoError(t, err)
	assertDecimal(t, "1", gain, "gain")
	assertDecimal(t, "1", st.Points, "points")

	_, err = st.Click(start.Add(1999 * time.Millisecond))
	assert.ErrorIs(t, err, ErrOnCooldown)
	assertDecimal(t, "1", st.Points, "points after rejected click")

	_, err = st.Click(start.Add(2 * time.Second))
	require.NoError(t, err)
	assertDecimal(t, "2", st.Points, "points after second click")
	assert.Equal(t, start.Add(2*time.Second), st.LastClickAt)
}

func TestClickGain_Multipliers(t *testing.T) {
	tests := []struct {
		name string
		tree PrestigeTree
		bomb bool
		want string
	}{
		{"base", PrestigeTree{}, false, "1.2"},
		{"two x", PrestigeTree{TwoX: true}, false, "2.4"},
		{"five x", PrestigeTree{FiveX: true}, false, "6"},
		{"both", PrestigeTree{TwoX: true, FiveX: true}, false, "12"},
		{"gold bomb", PrestigeTree{GoldBomb: true}, true, "120"},
		{"everything", PrestigeTree{TwoX: true, FiveX: true, GoldBomb: true}, true, "1200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewGameState(start)
			st.ClickValue = dec("1.2")
			st.PrestigeTree = tt.tree
			st.GoldBombActive = tt.bomb
			assertDecimal(t, tt.want, st.ClickGain(), "gain")
		})
	}
}

func TestPurchaseButtonUpgrade(t *testing.T) {
	st := NewGameState(start)
	st.Points = dec("2")

	require.NoError(t, st.PurchaseButtonUpgrade())
	assertDecimal(t, "0", st.Points, "points")
	assertDecimal(t, "1.2", st.ClickValue, "click value")
	assertDecimal(t, "2.4", st.ButtonUpgradePrice, "price")
	assert.Equal(t, 1, st.ButtonUpgradeLevel)

	err := st.PurchaseButtonUpgrade()
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 1, st.ButtonUpgradeLevel)
}

func TestPurchaseButtonUpgrade_MaxLevel(t *testing.T) {
	st := NewGameState(start)
	st.ButtonUpgradeLevel = MaxButtonUpgradeLevel
	st.Points = dec("1000000")

	err := st.PurchaseButtonUpgrade()
	assert.ErrorIs(t, err, ErrMaxLevel)
	assertDecimal(t, "1000000", st.Points, "points")
}

func TestPurchaseCooldownUpgrade(t *testing.T) {
	st := NewGameState(start)
	st.Points = dec("5")

	require.NoError(t, st.PurchaseCooldownUpgrade())
	assertDecimal(t, "0", st.Points, "points")
	assertDecimal(t, "1.8", st.ClickCooldown, "cooldown")
	assertDecimal(t, "7.5", st.CooldownUpgradePrice, "price")
	assert.Equal(t, 1, st.CooldownUpgradeLevel)
}

func TestPurchaseCooldownUpgrade_FloorAndCap(t *testing.T) {
	st := NewGameState(start)
	st.Points = dec("1000000")

	for i := 0; i < MaxCooldownUpgradeLevel; i++ {
		before := st.CooldownUpgradePrice
		require.NoError(t, st.PurchaseCooldownUpgrade(), "purchase %d", i+1)
		assert.True(t, st.CooldownUpgradePrice.Equal(before.Mul(CooldownPriceMultiplier)))
	}

	assert.Equal(t, MaxCooldownUpgradeLevel, st.CooldownUpgradeLevel)
	assertDecimal(t, "0.1", st.ClickCooldown, "cooldown floor")

	points := st.Points
	err := st.PurchaseCooldownUpgrade()
	assert.ErrorIs(t, err, ErrMaxLevel)
	assert.True(t, st.Points.Equal(points))
	assert.Equal(t, MaxCooldownUpgradeLevel, st.CooldownUpgradeLevel)
}

func TestPrestige(t *testing.T) {
	st := NewGameState(start)
	st.Points = dec("9999.99")

	assert.ErrorIs(t, st.Prestige(), ErrPrestigeThreshold)
	assertDecimal(t, "0", st.PrestigePoints, "prestige points")

	st.Points = dec("10000")
	st.ClickValue = dec("3.5")
	st.ClickCooldown = dec("0.4")
	st.CooldownUpgradeLevel = 8
	st.ButtonUpgradeLevel = 12
	st.CooldownUpgradePrice = dec("128")
	st.ButtonUpgradePrice = dec("17")
	st.PrestigeTree = PrestigeTree{TwoX: true}

	require.NoError(t, st.Prestige())
	assertDecimal(t, "2", st.PrestigePoints, "prestige points")
	assertDecimal(t, "0", st.Points, "points")
	assertDecimal(t, "1", st.ClickValue, "click value")
	assertDecimal(t, "2", st.ClickCooldown, "cooldown")
	assert.Zero(t, st.CooldownUpgradeLevel)
	assert.Zero(t, st.ButtonUpgradeLevel)
	assertDecimal(t, "5", st.CooldownUpgradePrice, "cooldown price")
	assertDecimal(t, "2", st.ButtonUpgradePrice, "button price")
	assert.True(t, st.PrestigeTree.TwoX, "unlocks survive prestige")
}

func TestPrestige_WithOneSecond(t *testing.T) {
	st := NewGameState(start)
	st.Points = dec("20000")
	st.CooldownUpgradeLevel = 7
	st.ClickCooldown = dec("0.6")
	st.PrestigeTree = PrestigeTree{OneSecond: true}

	require.NoError(t, st.Prestige())
	assertDecimal(t, "1", st.ClickCooldown, "cooldown")
	assert.Equal(t, 2, st.CooldownUpgradeLevel)
}

func TestPurchaseUnlock(t *testing.T) {
	st := NewGameState(start)
	st.PrestigePoints = dec("4")

	require.NoError(t, st.PurchaseUnlock(UnlockTwoX, OneSecondImmediate))
	assert.True(t, st.PrestigeTree.TwoX)
	assertDecimal(t, "3", st.PrestigePoints, "prestige points")

	err := st.PurchaseUnlock(UnlockTwoX, OneSecondImmediate)
	assert.ErrorIs(t, err, ErrAlreadyUnlocked)
	assertDecimal(t, "3", st.PrestigePoints, "prestige points after repeat")

	err = st.PurchaseUnlock(UnlockFiveX, OneSecondImmediate)
	assert.ErrorIs(t, err, ErrInsufficientPrestigePoints)
	assert.False(t, st.PrestigeTree.FiveX)

	err = st.PurchaseUnlock(Unlock("tenX"), OneSecondImmediate)
	assert.ErrorIs(t, err, ErrUnknownUnlock)
}

func TestPurchaseUnlock_OneSecondPolicies(t *testing.T) {
	t.Run("immediate", func(t *testing.T) {
		st := NewGameState(start)
		st.PrestigePoints = dec("3")
		st.CooldownUpgradeLevel = 3
		st.ClickCooldown = dec("1.4")

		require.NoError(t, st.PurchaseUnlock(UnlockOneSecond, OneSecondImmediate))
		assertDecimal(t, "1", st.ClickCooldown, "cooldown")
		assert.Zero(t, st.CooldownUpgradeLevel)
		assertDecimal(t, "0", st.PrestigePoints, "prestige points")
	})

	t.Run("next prestige", func(t *testing.T) {
		st := NewGameState(start)
		st.PrestigePoints = dec("3")
		st.CooldownUpgradeLevel = 3
		st.ClickCooldown = dec("1.4")

		require.NoError(t, st.PurchaseUnlock(UnlockOneSecond, OneSecondNextPrestige))
		assertDecimal(t, "1.4", st.ClickCooldown, "cooldown")
		assert.Equal(t, 3, st.CooldownUpgradeLevel)
		assert.True(t, st.PrestigeTree.OneSecond)
	})
}

func TestParseUnlock(t *testing.T) {
	tests := map[string]Unlock{
		"twoX":      UnlockTwoX,
		"2x":        UnlockTwoX,
		"ONESECOND": UnlockOneSecond,
		"1s":        UnlockOneSecond,
		"5x":        UnlockFiveX,
		"goldbomb":  UnlockGoldBomb,
		"goldBomb":  UnlockGoldBomb,
	}
	for in, want := range tests {
		got, err := ParseUnlock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseUnlock("rocket")
	assert.ErrorIs(t, err, ErrUnknownUnlock)
}

func TestUnlockCosts(t *testing.T) {
	assertDecimal(t, "1", UnlockTwoX.Cost(), "twoX")
	assertDecimal(t, "3", UnlockOneSecond.Cost(), "oneSecond")
	assertDecimal(t, "5", UnlockFiveX.Cost(), "fiveX")
	assertDecimal(t, "10", UnlockGoldBomb.Cost(), "goldBomb")
}

func TestParseOneSecondPolicy(t *testing.T) {
	p, err := ParseOneSecondPolicy("")
	require.NoError(t, err)
	assert.Equal(t, OneSecondImmediate, p)

	p, err = ParseOneSecondPolicy("next_prestige")
	require.NoError(t, err)
	assert.Equal(t, OneSecondNextPrestige, p)

	_, err = ParseOneSecondPolicy("later")
	assert.Error(t, err)
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrOnCooldown))
	assert.True(t, IsRejection(ErrMaxLevel))
	assert.False(t, IsRejection(ErrInvalidSave))
	assert.False(t, IsRejection(nil))
}
