package bootstrap

import (
	"log/slog"
	"time"

	"github.com/osse101/SimpleIG_Go/internal/game"
	"github.com/osse101/SimpleIG_Go/internal/scheduler"
	"github.com/osse101/SimpleIG_Go/internal/worker"
)

// Background owns the worker pool and the scheduler feeding it
type Background struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackgroundJobs schedules the retry of failed saves every interval.
// The queue holds one job so a slow store never piles up retries.
func StartBackgroundJobs(games *game.Registry, interval time.Duration) *Background {
	if interval <= 0 {
		interval = game.DefaultSaveRetryInterval
	}

	pool := worker.NewPool(saveRetryWorkers, saveRetryQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(interval, game.SaveRetryJob{Registry: games, Timeout: interval})
	slog.Info(LogMsgSaveRetryScheduled, "interval", interval)

	return &Background{Pool: pool, Scheduler: sched}
}

// Stop halts the scheduler first so no job is queued on a stopped pool
func (b *Background) Stop() {
	if b == nil {
		return
	}
	b.Scheduler.Stop()
	b.Pool.Stop()
}
