package components

import (
	"context"
	"log/slog"

	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config) config.WorkerConfig { return cfg.Worker },
		worker.NewOfferSweeper,
		worker.NewNotificationDispatcher,
		worker.NewIdempotencyPurger,
		NewRunner,
	),
	fx.Invoke(StartWorkers),
)

func NewRunner(logger *slog.Logger, sweeper *worker.OfferSweeper, dispatcher *worker.NotificationDispatcher, purger *worker.IdempotencyPurger) *worker.Runner {
	return worker.NewRunner(logger, sweeper, dispatcher, purger)
}

// StartWorkers runs the loops for the app lifetime unless WORKER_ENABLED is false.
func StartWorkers(lc fx.Lifecycle, cfg config.WorkerConfig, runner *worker.Runner, logger *slog.Logger) {
	if !cfg.Enabled {
		logger.Info("background workers disabled")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				if err := runner.Start(ctx); err != nil {
					logger.Error("background workers stopped", slog.String("error", err.Error()))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
