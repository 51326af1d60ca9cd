package components

import (
	"context"
	"log/slog"

	"marketplace-api/internal/infra/notifier"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(NewPublisher),
)

// NewPublisher uses Redis pub/sub when REDIS_ADDR is set and falls back to logging.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.Publisher, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured; notifications are logged only")
		return notifier.NewLogPublisher(logger, cfg.Redis.ChannelPrefix), nil
	}

	p, err := notifier.NewRedisPublisher(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return p.Close() },
	})
	return p, nil
}
