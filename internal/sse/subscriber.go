package sse

import (
	"context"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/SimpleIG_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub.
//
// Games publish after releasing their lock, so two refreshes of one game can arrive
// out of order. The subscriber remembers the latest revision per player and drops
// refreshes that would put an older display back on screen.
type Subscriber struct {
	hub *Hub
	bus event.Bus

	mu     sync.Mutex
	latest *lru.Cache[string, event.Revision]
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	latest, _ := lru.New[string, event.Revision](RevisionCacheSize)
	return &Subscriber{
		hub:    hub,
		bus:    bus,
		latest: latest,
	}
}

// Subscribe registers the bridge for every game event type
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.GameTypes))
	for _, t := range event.GameTypes {
		s.bus.Subscribe(t, s.handleGameEvent)
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", types)
}

// Game payloads are plain structs with JSON tags, so they are forwarded untouched.
func (s *Subscriber) handleGameEvent(_ context.Context, evt event.Event) error {
	playerID := evt.PlayerID()

	if refresh, ok := evt.Payload.(event.RefreshedPayloadV1); ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		if prev, seen := s.latest.Get(playerID); seen && !refresh.Revision.Supersedes(prev) {
			slog.Debug(LogMsgStaleRefresh,
				"player_id", playerID,
				"seq", refresh.Revision.Seq,
				"latest_seq", prev.Seq)
			return nil
		}
		s.latest.Add(playerID, refresh.Revision)
	}

	s.hub.Broadcast(string(evt.Type), playerID, evt.Payload)

	slog.Debug(LogMsgEventBroadcast,
		"event_type", evt.Type,
		"player_id", playerID)
	return nil
}
