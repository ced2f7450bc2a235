package game

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/logger"
)

// RegistryConfig sizes the registry cache
type RegistryConfig struct {
	BaseSaveKey string
	CacheSize   int
	IdleTTL     time.Duration
}

// Registry hands out one state machine per player.
// Games idle for longer than the TTL, or pushed out by the size cap, are dropped and
// reloaded from the store on the next access. A dropped game whose last save failed
// is parked until a retry writes it, and is handed out again if its player returns first.
type Registry struct {
	deps    Dependencies
	cfg     Config
	baseKey string

	// mu orders lookups against installs so a renewed entry is never a dropped one
	mu    sync.Mutex
	games *expirable.LRU[string, *service]
	loads singleflight.Group

	unsavedMu sync.Mutex
	unsaved   map[string]*service
}

// NewRegistry creates an empty registry
func NewRegistry(deps Dependencies, cfg Config, rc RegistryConfig) *Registry {
	if rc.CacheSize <= 0 {
		rc.CacheSize = DefaultCacheSize
	}
	if rc.IdleTTL <= 0 {
		rc.IdleTTL = DefaultIdleTTL
	}
	if rc.BaseSaveKey == "" {
		rc.BaseSaveKey = domain.SaveKey
	}

	r := &Registry{
		deps:    deps.withDefaults(),
		cfg:     cfg,
		baseKey: rc.BaseSaveKey,
		unsaved: make(map[string]*service),
	}
	r.games = expirable.NewLRU[string, *service](rc.CacheSize, r.onEvict, rc.IdleTTL)
	return r
}

// onEvict runs under the cache lock, sometimes from the cache's purge goroutine,
// so it never touches the store.
func (r *Registry) onEvict(playerID string, svc *service) {
	svc.stop()
	log := logger.FromContext(context.Background())
	if svc.isDirty() {
		r.unsavedMu.Lock()
		r.unsaved[playerID] = svc
		r.unsavedMu.Unlock()
		log.Warn(LogMsgEvictedUnsaved, "player_id", playerID)
	}
	log.Debug(LogMsgGameEvicted, "player_id", playerID)
}

// Get returns the player's game, loading it on first access.
// Every hit renews the game's idle deadline.
func (r *Registry) Get(ctx context.Context, playerID string) (Service, error) {
	if err := domain.ValidatePlayerID(playerID); err != nil {
		return nil, err
	}
	if svc, ok := r.lookup(playerID); ok {
		return svc, nil
	}

	// Concurrent first accesses share one load; other players are not blocked by it.
	v, err, _ := r.loads.Do(playerID, func() (interface{}, error) {
		return r.load(ctx, playerID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*service), nil
}

func (r *Registry) lookup(playerID string) (*service, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.games.Get(playerID)
	if ok {
		// Get alone keeps the original deadline; re-adding the same value renews it.
		r.games.Add(playerID, svc)
	}
	return svc, ok
}

func (r *Registry) load(ctx context.Context, playerID string) (*service, error) {
	if svc, ok := r.lookup(playerID); ok {
		return svc, nil
	}

	// An expired entry that the purge has not reached yet still sits in the cache.
	// Removing it runs onEvict, which stops its timer and parks it if unsaved.
	r.mu.Lock()
	r.games.Remove(playerID)
	r.mu.Unlock()

	if svc := r.takeUnsaved(playerID); svc != nil {
		svc.revive()
		r.install(playerID, svc)
		logger.FromContext(ctx).Info(LogMsgGameRevived, "player_id", playerID)
		return svc, nil
	}

	svc, err := newService(ctx, playerID, domain.SaveKeyFor(r.baseKey, playerID), r.deps, r.cfg)
	if err != nil {
		return nil, err
	}
	r.install(playerID, svc)
	return svc, nil
}

func (r *Registry) install(playerID string, svc *service) {
	r.mu.Lock()
	r.games.Add(playerID, svc)
	r.mu.Unlock()
}

func (r *Registry) takeUnsaved(playerID string) *service {
	r.unsavedMu.Lock()
	defer r.unsavedMu.Unlock()
	svc, ok := r.unsaved[playerID]
	if !ok {
		return nil
	}
	delete(r.unsaved, playerID)
	return svc
}

// dropUnsaved forgets a parked game once its record is written, unless it was revived meanwhile.
func (r *Registry) dropUnsaved(playerID string, svc *service) {
	r.unsavedMu.Lock()
	if r.unsaved[playerID] == svc {
		delete(r.unsaved, playerID)
	}
	r.unsavedMu.Unlock()
}

func (r *Registry) parked() map[string]*service {
	r.unsavedMu.Lock()
	defer r.unsavedMu.Unlock()
	out := make(map[string]*service, len(r.unsaved))
	for id, svc := range r.unsaved {
		out[id] = svc
	}
	return out
}

// Len reports the number of loaded games
func (r *Registry) Len() int {
	return r.games.Len()
}

// RetryFailedSaves rewrites every game whose last save failed, loaded or parked.
// It returns the number of records written.
func (r *Registry) RetryFailedSaves(ctx context.Context) (int, error) {
	r.mu.Lock()
	games := r.games.Values()
	r.mu.Unlock()

	var (
		saved int
		errs  []error
	)
	for _, svc := range games {
		attempted, err := svc.flush(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if attempted {
			saved++
		}
	}
	for playerID, svc := range r.parked() {
		attempted, err := svc.flush(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.dropUnsaved(playerID, svc)
		if attempted {
			saved++
		}
	}
	if saved > 0 {
		logger.FromContext(ctx).Info(LogMsgSavesRetried, "saved", saved)
	}
	return saved, errors.Join(errs...)
}

// Shutdown makes a last attempt at failed saves, then stops every loaded game's timers
func (r *Registry) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgRegistryShutdown, "games", r.games.Len())

	var errs []error
	if _, err := r.RetryFailedSaves(ctx); err != nil {
		errs = append(errs, err)
	}

	r.mu.Lock()
	games := r.games.Values()
	r.mu.Unlock()

	for _, svc := range games {
		if err := svc.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
