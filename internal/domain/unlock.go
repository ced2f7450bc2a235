package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Unlock names one of the fixed prestige tree nodes.
type Unlock string

// Prestige tree nodes
const (
	UnlockTwoX      Unlock = "twoX"
	UnlockOneSecond Unlock = "oneSecond"
	UnlockFiveX     Unlock = "fiveX"
	UnlockGoldBomb  Unlock = "goldBomb"
)

// Unlocks lists every prestige unlock in menu order.
var Unlocks = []Unlock{UnlockTwoX, UnlockOneSecond, UnlockFiveX, UnlockGoldBomb}

var unlockCosts = map[Unlock]int64{
	UnlockTwoX:      1,
	UnlockOneSecond: 3,
	UnlockFiveX:     5,
	UnlockGoldBomb:  10,
}

var unlockTitles = map[Unlock]string{
	UnlockTwoX:      "2x points",
	UnlockOneSecond: "1s cooldown",
	UnlockFiveX:     "5x points",
	UnlockGoldBomb:  "gold bomb",
}

// ParseUnlock accepts the canonical names and the short aliases used by the old save format
// ("2x", "1s", "5x", "goldbomb"). Matching is case-insensitive.
func ParseUnlock(name string) (Unlock, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "twox", "2x":
		return UnlockTwoX, nil
	case "onesecond", "1s":
		return UnlockOneSecond, nil
	case "fivex", "5x":
		return UnlockFiveX, nil
	case "goldbomb", "gold_bomb":
		return UnlockGoldBomb, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnlock, name)
}

// Valid reports whether u is one of the fixed unlocks.
func (u Unlock) Valid() bool {
	_, ok := unlockCosts[u]
	return ok
}

// Cost returns the prestige point price of the unlock.
func (u Unlock) Cost() decimal.Decimal {
	return decimal.NewFromInt(unlockCosts[u])
}

// Title is the human readable label.
func (u Unlock) Title() string {
	return unlockTitles[u]
}

func (u Unlock) String() string {
	return string(u)
}
