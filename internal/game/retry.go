package game

import (
	"context"
	"time"
)

// SaveRetryJob retries failed saves of loaded games. It is run by the worker pool.
type SaveRetryJob struct {
	Registry *Registry
	Timeout  time.Duration
}

// Process implements worker.Job
func (j SaveRetryJob) Process(ctx context.Context) error {
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}
	_, err := j.Registry.RetryFailedSaves(ctx)
	return err
}
