package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/SimpleIG_Go/internal/clock"
	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/event"
	"github.com/osse101/SimpleIG_Go/internal/format"
	"github.com/osse101/SimpleIG_Go/internal/logger"
	"github.com/osse101/SimpleIG_Go/internal/repository"
	"github.com/osse101/SimpleIG_Go/internal/save"
	"github.com/osse101/SimpleIG_Go/internal/worker"
)

// Service is the state machine of one player's game.
//
// Every mutating operation is atomic. A rejected operation returns a domain error,
// leaves the state untouched and neither saves nor publishes anything. A successful
// one writes the save record and publishes a refresh event.
type Service interface {
	Click(ctx context.Context) (ClickResult, error)
	PurchaseCooldownUpgrade(ctx context.Context) (Snapshot, error)
	PurchaseButtonUpgrade(ctx context.Context) (Snapshot, error)
	OpenPrestigeMenu(ctx context.Context) PrestigeMenu
	Prestige(ctx context.Context) (Snapshot, error)
	PurchasePrestigeUnlock(ctx context.Context, name string) (Snapshot, error)
	Snapshot(ctx context.Context) Snapshot
	PlayerID() string
	Shutdown(ctx context.Context) error
}

// Snapshot is a consistent copy of the state with its rendered display
type Snapshot struct {
	PlayerID string           `json:"player_id"`
	Revision event.Revision   `json:"revision"`
	State    domain.GameState `json:"state"`
	Display  format.Display   `json:"display"`
}

// ClickResult extends the snapshot with the outcome of an accepted click
type ClickResult struct {
	Snapshot
	Gain              decimal.Decimal `json:"gain"`
	GoldBombTriggered bool            `json:"gold_bomb_triggered"`
}

// Dependencies are the collaborators shared by all games
type Dependencies struct {
	Store repository.SaveStore
	Bus   event.Bus
	Clock clock.Clock
	// Random returns a float in [0,1). Defaults to math/rand/v2.
	Random func() float64
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Clock == nil {
		d.Clock = clock.NewRealClock()
	}
	if d.Random == nil {
		d.Random = rand.Float64
	}
	return d
}

type service struct {
	playerID string
	saveKey  string
	deps     Dependencies
	cfg      Config
	bomb     *worker.EffectTimer

	mu    sync.Mutex
	state domain.GameState
	rev   event.Revision
	// dirty is set while the stored record lags behind state
	dirty atomic.Bool
}

// NewService loads the player's save record and returns its state machine.
// A missing or unreadable record starts a fresh game; only store failures are returned.
func NewService(ctx context.Context, playerID, saveKey string, deps Dependencies, cfg Config) (Service, error) {
	return newService(ctx, playerID, saveKey, deps, cfg)
}

func newService(ctx context.Context, playerID, saveKey string, deps Dependencies, cfg Config) (*service, error) {
	if err := domain.ValidatePlayerID(playerID); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	deps = deps.withDefaults()

	s := &service{
		playerID: playerID,
		saveKey:  saveKey,
		deps:     deps,
		cfg:      cfg,
		bomb:     worker.NewEffectTimer(goldBombTimerName, deps.Clock),
		rev:      event.Revision{Session: uuid.NewString()},
	}

	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.state = state
	return s, nil
}

func (s *service) load(ctx context.Context) (domain.GameState, error) {
	log := logger.FromContext(ctx).With("player_id", s.playerID, "save_key", s.saveKey)
	now := s.deps.Clock.Now()

	payload, err := s.deps.Store.Get(ctx, s.saveKey)
	if errors.Is(err, repository.ErrNotFound) {
		log.Info(LogMsgSaveMissing)
		return domain.NewGameState(now), nil
	}
	if err != nil {
		return domain.GameState{}, fmt.Errorf("%s: %w", ErrMsgLoadSaveFailed, err)
	}

	state, report, err := save.Decode(payload, now)
	if err != nil {
		log.Warn(LogMsgSaveDiscarded, "error", err)
		return state, nil
	}
	if len(report.Defaulted) > 0 {
		log.Warn(LogMsgSaveFieldsDefaulted, "fields", report.Defaulted)
	}
	log.Info(LogMsgSaveLoaded, "version", report.Version, "migrated", report.Migrated)
	return state, nil
}

func (s *service) PlayerID() string {
	return s.playerID
}

// mutate applies op to a copy of the state and commits it only on success.
// The save happens under the lock so records are written in commit order;
// events are published after the lock is released.
func (s *service) mutate(ctx context.Context, cause event.Type, op func(st *domain.GameState, now time.Time) ([]event.Event, error)) (Snapshot, error) {
	s.mu.Lock()
	now := s.deps.Clock.Now()
	next := s.state
	events, err := op(&next, now)
	if err != nil {
		s.mu.Unlock()
		return Snapshot{}, err
	}
	s.state = next
	s.rev.Seq++
	saveFailure := s.persist(ctx)
	snap := s.snapshotLocked(now)
	s.mu.Unlock()

	if saveFailure != nil {
		events = append(events, *saveFailure)
	}
	events = append(events, event.NewRefreshedEvent(s.playerID, cause, snap.Revision, snap.Display))
	s.publish(ctx, events...)
	return snap, nil
}

// persist writes the save record. Failures are logged and reported as an event, never returned.
func (s *service) persist(ctx context.Context) *event.Event {
	if err := s.writeLocked(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "player_id", s.playerID, "save_key", s.saveKey, "error", err)
		e := event.NewSaveFailedEvent(s.playerID, s.saveKey, err)
		return &e
	}
	return nil
}

func (s *service) writeLocked(ctx context.Context) error {
	payload, err := save.Encode(s.state)
	if err == nil {
		err = s.deps.Store.Put(ctx, s.saveKey, payload)
	}
	s.dirty.Store(err != nil)
	return err
}

// flush rewrites the record of a game whose last save failed.
// It reports whether a write was attempted.
func (s *service) flush(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty.Load() {
		return false, nil
	}
	if err := s.writeLocked(ctx); err != nil {
		return true, fmt.Errorf("%s %s: %w", ErrMsgRetrySaveFailed, s.playerID, err)
	}
	return true, nil
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.deps.Bus == nil {
		return
	}
	for _, e := range events {
		if err := s.deps.Bus.Publish(ctx, e); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", e.Type, "error", err)
		}
	}
}

func (s *service) snapshotLocked(now time.Time) Snapshot {
	return Snapshot{
		PlayerID: s.playerID,
		Revision: s.rev,
		State:    s.state,
		Display:  format.NewDisplay(s.state, now),
	}
}

// Click grants points when the cooldown has elapsed and may trigger the gold bomb.
func (s *service) Click(ctx context.Context) (ClickResult, error) {
	var (
		gain      decimal.Decimal
		triggered bool
	)
	snap, err := s.mutate(ctx, event.GameClicked, func(st *domain.GameState, now time.Time) ([]event.Event, error) {
		g, err := st.Click(now)
		if err != nil {
			return nil, err
		}
		gain = g
		events := []event.Event{event.NewClickedEvent(s.playerID, gain, st.GoldBombActive)}

		if st.PrestigeTree.GoldBomb && s.deps.Random() < s.cfg.GoldBombChance {
			if _, armErr := s.bomb.Arm(s.cfg.GoldBombDuration, s.expireGoldBomb); armErr != nil {
				logger.FromContext(ctx).Warn(LogMsgGoldBombArmFailed, "player_id", s.playerID, "error", armErr)
				return events, nil
			}
			st.GoldBombActive = true
			triggered = true
			expiresAt := now.Add(s.cfg.GoldBombDuration)
			logger.FromContext(ctx).Info(LogMsgGoldBombStarted, "player_id", s.playerID, "expires_at", expiresAt)
			events = append(events, event.NewGoldBombStartedEvent(s.playerID, expiresAt))
		}
		return events, nil
	})
	if err != nil {
		return ClickResult{}, err
	}
	return ClickResult{Snapshot: snap, Gain: gain, GoldBombTriggered: triggered}, nil
}

// expireGoldBomb runs from the effect timer. A callback superseded by a re-arm is ignored.
// The flag is transient so nothing is saved.
func (s *service) expireGoldBomb(generation uint64) {
	ctx := context.Background()

	s.mu.Lock()
	if generation != s.bomb.Generation() || !s.state.GoldBombActive {
		s.mu.Unlock()
		return
	}
	s.state.GoldBombActive = false
	s.rev.Seq++
	snap := s.snapshotLocked(s.deps.Clock.Now())
	s.mu.Unlock()

	s.publish(ctx,
		event.NewGoldBombExpiredEvent(s.playerID),
		event.NewRefreshedEvent(s.playerID, event.GameGoldBombExpired, snap.Revision, snap.Display),
	)
}

func (s *service) PurchaseCooldownUpgrade(ctx context.Context) (Snapshot, error) {
	return s.mutate(ctx, event.GameUpgradePurchased, func(st *domain.GameState, _ time.Time) ([]event.Event, error) {
		paid := st.CooldownUpgradePrice
		if err := st.PurchaseCooldownUpgrade(); err != nil {
			return nil, err
		}
		return []event.Event{
			event.NewUpgradePurchasedEvent(s.playerID, domain.UpgradeCooldown, st.CooldownUpgradeLevel, paid),
		}, nil
	})
}

func (s *service) PurchaseButtonUpgrade(ctx context.Context) (Snapshot, error) {
	return s.mutate(ctx, event.GameUpgradePurchased, func(st *domain.GameState, _ time.Time) ([]event.Event, error) {
		paid := st.ButtonUpgradePrice
		if err := st.PurchaseButtonUpgrade(); err != nil {
			return nil, err
		}
		return []event.Event{
			event.NewUpgradePurchasedEvent(s.playerID, domain.UpgradeButton, st.ButtonUpgradeLevel, paid),
		}, nil
	})
}

// OpenPrestigeMenu never mutates and never fails.
func (s *service) OpenPrestigeMenu(_ context.Context) PrestigeMenu {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newPrestigeMenu(s.playerID, s.state)
}

func (s *service) Prestige(ctx context.Context) (Snapshot, error) {
	return s.mutate(ctx, event.GamePrestiged, func(st *domain.GameState, _ time.Time) ([]event.Event, error) {
		if err := st.Prestige(); err != nil {
			return nil, err
		}
		return []event.Event{event.NewPrestigedEvent(s.playerID, st.PrestigePoints)}, nil
	})
}

func (s *service) PurchasePrestigeUnlock(ctx context.Context, name string) (Snapshot, error) {
	unlock, err := domain.ParseUnlock(name)
	if err != nil {
		return Snapshot{}, err
	}
	return s.mutate(ctx, event.GameUnlockPurchased, func(st *domain.GameState, _ time.Time) ([]event.Event, error) {
		if err := st.PurchaseUnlock(unlock, s.cfg.OneSecondPolicy); err != nil {
			return nil, err
		}
		return []event.Event{event.NewUnlockPurchasedEvent(s.playerID, unlock)}, nil
	})
}

func (s *service) Snapshot(_ context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(s.deps.Clock.Now())
}

// stop cancels the gold bomb without waiting; safe to call from eviction callbacks.
func (s *service) stop() {
	s.bomb.Stop()
}

func (s *service) isDirty() bool {
	return s.dirty.Load()
}

// revive readies a stopped game for play again. A gold bomb cut short by stop ends now.
func (s *service) revive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.GoldBombActive && !s.bomb.Pending() {
		s.state.GoldBombActive = false
		s.rev.Seq++
	}
}

// Shutdown cancels the gold bomb timer and waits for a running expiry.
func (s *service) Shutdown(ctx context.Context) error {
	return s.bomb.Shutdown(ctx)
}
