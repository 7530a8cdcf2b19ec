package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"click-collect/internal/usecase/commands"
)

// Dispatcher runs fire-and-forget tasks detached from the request context.
type Dispatcher struct {
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(timeout time.Duration) *Dispatcher {
	return &Dispatcher{timeout: timeout}
}

var _ commands.Dispatcher = (*Dispatcher)(nil)

// Go keeps request values such as the request id but not its cancellation.
func (d *Dispatcher) Go(ctx context.Context, task string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("background task panicked", "task", task, "panic", r)
			}
		}()

		start := time.Now()
		if err := fn(ctx); err != nil {
			slog.Error("background task failed", "task", task, "error", err.Error(), "duration", time.Since(start))
			return
		}
		slog.Debug("background task done", "task", task, "duration", time.Since(start))
	}()
}

// Wait blocks until running tasks finish or ctx ends.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
