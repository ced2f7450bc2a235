package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SimpleIG_Go/internal/clock"
	"github.com/osse101/SimpleIG_Go/internal/config"
	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/event"
	"github.com/osse101/SimpleIG_Go/internal/game"
	"github.com/osse101/SimpleIG_Go/internal/metrics"
	"github.com/osse101/SimpleIG_Go/internal/repository"
	"github.com/osse101/SimpleIG_Go/internal/sse"
)

// GameSettings maps the configuration onto the game rules and registry sizing
func GameSettings(cfg *config.Config) (game.Config, game.RegistryConfig, error) {
	policy, err := domain.ParseOneSecondPolicy(cfg.OneSecondPolicy)
	if err != nil {
		return game.Config{}, game.RegistryConfig{}, fmt.Errorf("%s: %w", ErrMsgInvalidGameSettings, err)
	}

	rules := game.Config{
		OneSecondPolicy:  policy,
		GoldBombChance:   cfg.GoldBombChance,
		GoldBombDuration: cfg.GoldBombDuration,
	}
	if err := rules.Validate(); err != nil {
		return game.Config{}, game.RegistryConfig{}, fmt.Errorf("%s: %w", ErrMsgInvalidGameSettings, err)
	}

	return rules, game.RegistryConfig{
		BaseSaveKey: cfg.SaveKey,
		CacheSize:   cfg.GameCacheSize,
		IdleTTL:     cfg.GameIdleTTL,
	}, nil
}

// InitializeGames creates the per-player game registry
func InitializeGames(cfg *config.Config, store repository.SaveStore, bus event.Bus, clk clock.Clock) (*game.Registry, error) {
	rules, rc, err := GameSettings(cfg)
	if err != nil {
		return nil, err
	}
	return game.NewRegistry(game.Dependencies{
		Store: store,
		Bus:   bus,
		Clock: clk,
	}, rules, rc), nil
}

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	Games    *game.Registry
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event counters and the active games gauge)
// - SSE subscriber (forwards game events to stream clients)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	if deps.Games != nil {
		metrics.RegisterActiveGames(deps.Games.Len)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}
	return nil
}
