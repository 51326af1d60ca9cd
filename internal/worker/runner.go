// Package worker runs the periodic background jobs: offer expiry, notification
// dispatch and idempotency key purging.
package worker

import (
	"context"
	"log/slog"
	"time"

	"marketplace-api/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of periodic work. Run reports how many items it processed.
type Task interface {
	Name() string
	Interval() time.Duration
	Run(ctx context.Context) (int, error)
}

var ErrInvalidInterval = errs.New("worker interval must be positive")

type Runner struct {
	tasks  []Task
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger, tasks ...Task) *Runner {
	return &Runner{tasks: tasks, logger: logger}
}

// Start runs every task on its own ticker until ctx is cancelled.
// A failing iteration is logged and the loop keeps going. A task with a
// non-positive interval is refused before any loop starts.
func (r *Runner) Start(ctx context.Context) error {
	for _, t := range r.tasks {
		if t.Interval() <= 0 {
			return errs.Wrapf(ErrInvalidInterval, "task %s has interval %s", t.Name(), t.Interval())
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, t := range r.tasks {
		g.Go(func() error {
			r.loop(ctx, t)
			return nil
		})
	}
	return g.Wait()
}

// RunOnce executes each task a single time, in order, and returns the first error.
func (r *Runner) RunOnce(ctx context.Context) error {
	for _, t := range r.tasks {
		if err := r.tick(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) loop(ctx context.Context, t Task) {
	ticker := time.NewTicker(t.Interval())
	defer ticker.Stop()

	r.logger.Info("worker started", slog.String("task", t.Name()), slog.Duration("interval", t.Interval()))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("worker stopped", slog.String("task", t.Name()))
			return
		case <-ticker.C:
			_ = r.tick(ctx, t)
		}
	}
}

func (r *Runner) tick(ctx context.Context, t Task) error {
	start := time.Now()
	n, err := t.Run(ctx)
	if err != nil {
		r.logger.Error("worker iteration failed",
			slog.String("task", t.Name()),
			slog.String("error", err.Error()),
		)
		return err
	}
	if n > 0 {
		r.logger.Info("worker iteration done",
			slog.String("task", t.Name()),
			slog.Int("processed", n),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
	return nil
}
