package notifier

import (
	"context"
	"log/slog"

	"marketplace-api/internal/domain/notification"
)

// LogPublisher is used when Redis is not configured.
type LogPublisher struct {
	logger *slog.Logger
	prefix string
}

func NewLogPublisher(logger *slog.Logger, prefix string) *LogPublisher {
	return &LogPublisher{logger: logger, prefix: prefix}
}

func (p *LogPublisher) Publish(ctx context.Context, m notification.Message) error {
	p.logger.InfoContext(ctx, "notification published",
		slog.String("channel", Channel(p.prefix, m.UserID)),
		slog.String("type", m.Type.String()),
		slog.String("title", m.Title),
	)
	return nil
}
