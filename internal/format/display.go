package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/SimpleIG_Go/internal/domain"
)

// Label templates
const (
	PointsLabelFormat          = "Points: %s"
	PrestigePointsLabelFormat  = "Prestige Points: %s"
	CooldownUpgradeLabelFormat = "Upgrade Cooldown (%ss) - %s pts"
	ButtonUpgradeLabelFormat   = "Upgrade Button - %s pts"
)

// Display is the rendered view of a game state, refreshed after every change.
type Display struct {
	Points               string `json:"points"`
	PrestigePoints       string `json:"prestige_points"`
	PointsLabel          string `json:"points_label"`
	PrestigePointsLabel  string `json:"prestige_points_label"`
	CooldownUpgradeLabel string `json:"cooldown_upgrade_label"`
	ButtonUpgradeLabel   string `json:"button_upgrade_label"`
	ClickGain            string `json:"click_gain"`
	CooldownRemaining    string `json:"cooldown_remaining"`
	CooldownMaxed        bool   `json:"cooldown_maxed"`
	ButtonMaxed          bool   `json:"button_maxed"`
	CanPrestige          bool   `json:"can_prestige"`
	GoldBombActive       bool   `json:"gold_bomb_active"`
}

// NewDisplay renders st as seen at now.
func NewDisplay(st domain.GameState, now time.Time) Display {
	points := Points(st.Points)
	prestige := st.PrestigePoints.StringFixed(0)
	remaining := decimal.NewFromFloat(st.CooldownRemaining(now).Seconds())

	return Display{
		Points:               points,
		PrestigePoints:       prestige,
		PointsLabel:          fmt.Sprintf(PointsLabelFormat, points),
		PrestigePointsLabel:  fmt.Sprintf(PrestigePointsLabelFormat, prestige),
		CooldownUpgradeLabel: fmt.Sprintf(CooldownUpgradeLabelFormat, Seconds(st.ClickCooldown), Points(st.CooldownUpgradePrice)),
		ButtonUpgradeLabel:   fmt.Sprintf(ButtonUpgradeLabelFormat, Points(st.ButtonUpgradePrice)),
		ClickGain:            Points(st.ClickGain()),
		CooldownRemaining:    Seconds(remaining),
		CooldownMaxed:        st.CooldownUpgradeLevel >= domain.MaxCooldownUpgradeLevel,
		ButtonMaxed:          st.ButtonUpgradeLevel >= domain.MaxButtonUpgradeLevel,
		CanPrestige:          st.CanPrestige(),
		GoldBombActive:       st.GoldBombActive,
	}
}
