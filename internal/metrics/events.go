package metrics

import (
	"context"

	"github.com/osse101/SimpleIG_Go/internal/event"
	"github.com/osse101/SimpleIG_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.GameTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.GameClicked:
		var p event.ClickedPayloadV1
		if p, err = event.DecodePayload[event.ClickedPayloadV1](evt.Payload); err == nil {
			Clicks.Inc()
			PointsEarned.Add(p.Gain.InexactFloat64())
		}

	case event.GameUpgradePurchased:
		var p event.UpgradePurchasedPayloadV1
		if p, err = event.DecodePayload[event.UpgradePurchasedPayloadV1](evt.Payload); err == nil {
			UpgradesPurchased.WithLabelValues(string(p.Upgrade)).Inc()
		}

	case event.GamePrestiged:
		Prestiges.Inc()

	case event.GameUnlockPurchased:
		var p event.UnlockPurchasedPayloadV1
		if p, err = event.DecodePayload[event.UnlockPurchasedPayloadV1](evt.Payload); err == nil {
			PrestigeUnlocks.WithLabelValues(string(p.Unlock)).Inc()
		}

	case event.GameGoldBombStarted:
		GoldBombsTriggered.Inc()

	case event.GameSaveFailed:
		SaveFailures.Inc()
	}

	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	}
	return nil
}
