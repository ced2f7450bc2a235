package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/SimpleIG_Go/internal/clock"
	"github.com/osse101/SimpleIG_Go/internal/logger"
)

// ErrTimerShutdown is returned by Arm after Shutdown.
var ErrTimerShutdown = errors.New(ErrMsgTimerShutdown)

// EffectTimer runs a callback once after a delay. Arming it again replaces the
// pending callback instead of stacking a second one.
//
// Every Arm bumps a generation number which is passed to the callback. Owners that
// guard their own state with a mutex should compare it against Generation under
// that mutex, because a superseded callback may already be running when Arm or
// Stop is called.
type EffectTimer struct {
	name  string
	clock clock.Clock

	mu         sync.Mutex
	pending    clock.Timer
	generation uint64
	closed     bool
	wg         sync.WaitGroup
}

// NewEffectTimer creates an idle timer driven by clk
func NewEffectTimer(name string, clk clock.Clock) *EffectTimer {
	return &EffectTimer{name: name, clock: clk}
}

// Arm schedules fn after d, cancelling any pending callback, and returns the new generation.
func (t *EffectTimer) Arm(d time.Duration, fn func(generation uint64)) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrTimerShutdown
	}

	// Stop existing timer if one exists
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}

	t.generation++
	gen := t.generation

	logger.FromContext(context.Background()).Debug(LogMsgEffectTimerArmed, "timer", t.name, "duration", d, "generation", gen)

	t.pending = t.clock.AfterFunc(d, func() {
		t.mu.Lock()
		if t.closed || gen != t.generation {
			t.mu.Unlock()
			return
		}
		t.pending = nil
		t.wg.Add(1)
		t.mu.Unlock()

		defer t.wg.Done()
		fn(gen)
	})
	return gen, nil
}

// Stop cancels the pending callback. It reports whether one was pending.
func (t *EffectTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	if t.pending == nil {
		return false
	}
	t.pending.Stop()
	t.pending = nil
	return true
}

// Generation returns the generation of the most recent Arm or Stop
func (t *EffectTimer) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}

// Pending reports whether a callback is scheduled
func (t *EffectTimer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

// Shutdown cancels any pending callback and waits for a running one to finish.
func (t *EffectTimer) Shutdown(ctx context.Context) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.generation++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	t.mu.Unlock()

	// Wait for in-flight callbacks
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgEffectTimerShutdownTimeout, "timer", t.name)
		return ctx.Err()
	}
}
