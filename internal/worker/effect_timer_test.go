package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SimpleIG_Go/internal/clock"
)

func newTestTimer() (*EffectTimer, *clock.SimulatedClock) {
	clk := clock.NewSimulatedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewEffectTimer("test", clk), clk
}

func TestEffectTimer_FiresOnce(t *testing.T) {
	timer, clk := newTestTimer()

	var calls []uint64
	gen, err := timer.Arm(20*time.Second, func(g uint64) { calls = append(calls, g) })
	require.NoError(t, err)
	assert.True(t, timer.Pending())

	clk.Advance(19 * time.Second)
	assert.Empty(t, calls)

	clk.Advance(time.Second)
	assert.Equal(t, []uint64{gen}, calls)
	assert.False(t, timer.Pending())

	clk.Advance(time.Minute)
	assert.Len(t, calls, 1)
}

func TestEffectTimer_RearmReplaces(t *testing.T) {
	timer, clk := newTestTimer()

	var fired int
	first, err := timer.Arm(20*time.Second, func(uint64) { fired++ })
	require.NoError(t, err)

	clk.Advance(15 * time.Second)
	second, err := timer.Arm(20*time.Second, func(uint64) { fired++ })
	require.NoError(t, err)
	assert.Greater(t, second, first)

	// The first deadline passes without effect
	clk.Advance(10 * time.Second)
	assert.Zero(t, fired)
	assert.Equal(t, 1, clk.PendingTimers())

	clk.Advance(10 * time.Second)
	assert.Equal(t, 1, fired)
}

func TestEffectTimer_Stop(t *testing.T) {
	timer, clk := newTestTimer()

	var fired bool
	_, err := timer.Arm(time.Second, func(uint64) { fired = true })
	require.NoError(t, err)

	before := timer.Generation()
	assert.True(t, timer.Stop())
	assert.Greater(t, timer.Generation(), before)
	assert.False(t, timer.Stop())

	clk.Advance(time.Minute)
	assert.False(t, fired)
}

func TestEffectTimer_Shutdown(t *testing.T) {
	timer, clk := newTestTimer()

	var fired bool
	_, err := timer.Arm(time.Second, func(uint64) { fired = true })
	require.NoError(t, err)

	require.NoError(t, timer.Shutdown(context.Background()))
	clk.Advance(time.Minute)
	assert.False(t, fired)

	_, err = timer.Arm(time.Second, func(uint64) {})
	assert.ErrorIs(t, err, ErrTimerShutdown)

	// Idempotent
	assert.NoError(t, timer.Shutdown(context.Background()))
}

func TestEffectTimer_RealClock(t *testing.T) {
	timer := NewEffectTimer("real", clock.NewRealClock())
	defer timer.Shutdown(context.Background()) //nolint:errcheck

	var fired atomic.Int32
	done := make(chan struct{})
	_, err := timer.Arm(50*time.Millisecond, func(uint64) { fired.Add(1) })
	require.NoError(t, err)
	_, err = timer.Arm(10*time.Millisecond, func(uint64) {
		fired.Add(1)
		close(done)
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}
