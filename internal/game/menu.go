package game

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/SimpleIG_Go/internal/domain"
)

// UnlockOption is one row of the prestige menu
type UnlockOption struct {
	Unlock     domain.Unlock   `json:"unlock"`
	Title      string          `json:"title"`
	Cost       decimal.Decimal `json:"cost"`
	Owned      bool            `json:"owned"`
	Affordable bool            `json:"affordable"`
}

// PrestigeMenu is a read-only view of the prestige options
type PrestigeMenu struct {
	PlayerID          string          `json:"player_id"`
	PrestigePoints    decimal.Decimal `json:"prestige_points"`
	Points            decimal.Decimal `json:"points"`
	PrestigeThreshold decimal.Decimal `json:"prestige_threshold"`
	CanPrestige       bool            `json:"can_prestige"`
	Unlocks           []UnlockOption  `json:"unlocks"`
}

func newPrestigeMenu(playerID string, st domain.GameState) PrestigeMenu {
	options := make([]UnlockOption, 0, len(domain.Unlocks))
	for _, u := range domain.Unlocks {
		owned := st.PrestigeTree.Has(u)
		options = append(options, UnlockOption{
			Unlock:     u,
			Title:      u.Title(),
			Cost:       u.Cost(),
			Owned:      owned,
			Affordable: !owned && st.PrestigePoints.GreaterThanOrEqual(u.Cost()),
		})
	}
	return PrestigeMenu{
		PlayerID:          playerID,
		PrestigePoints:    st.PrestigePoints,
		Points:            st.Points,
		PrestigeThreshold: domain.PrestigeThreshold,
		CanPrestige:       st.CanPrestige(),
		Unlocks:           options,
	}
}
