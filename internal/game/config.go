package game

import (
	"fmt"
	"time"

	"github.com/osse101/SimpleIG_Go/internal/domain"
)

// Config holds the tunable rules of a game instance
type Config struct {
	OneSecondPolicy  domain.OneSecondPolicy
	GoldBombChance   float64
	GoldBombDuration time.Duration
}

// DefaultConfig returns the standard rules
func DefaultConfig() Config {
	return Config{
		OneSecondPolicy:  domain.OneSecondImmediate,
		GoldBombChance:   DefaultGoldBombChance,
		GoldBombDuration: DefaultGoldBombDuration,
	}
}

// Validate checks the config ranges
func (c Config) Validate() error {
	if _, err := domain.ParseOneSecondPolicy(string(c.OneSecondPolicy)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	if c.GoldBombChance < 0 || c.GoldBombChance > 1 {
		return fmt.Errorf("%s: gold bomb chance %v outside [0,1]", ErrMsgInvalidConfig, c.GoldBombChance)
	}
	if c.GoldBombDuration <= 0 {
		return fmt.Errorf("%s: gold bomb duration must be positive", ErrMsgInvalidConfig)
	}
	return nil
}
