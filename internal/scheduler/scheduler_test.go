package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SimpleIG_Go/internal/worker"
)

// MockJob counts its runs
type MockJob struct {
	RunCount atomic.Int32
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{}
	sched.Schedule(10*time.Millisecond, job)

	assert.Eventually(t, func() bool { return job.RunCount.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopHaltsTicks(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{}
	sched.Schedule(5*time.Millisecond, job)
	assert.Eventually(t, func() bool { return job.RunCount.Load() >= 1 }, time.Second, time.Millisecond)

	sched.Stop()
	sched.Stop()
	runs := job.RunCount.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, job.RunCount.Load(), runs+1, "at most one queued run after stop")
}

func TestScheduler_IgnoresNonPositiveInterval(t *testing.T) {
	pool := worker.NewPool(1, 1)
	sched := New(pool)
	sched.Schedule(0, &MockJob{})
	sched.Stop()
}
