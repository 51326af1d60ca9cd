package notifier

import (
	"context"
	"fmt"

	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisPublisher pushes encoded messages to a per-user pub/sub channel.
type RedisPublisher struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisPublisher(ctx context.Context, cfg config.RedisConfig) (*RedisPublisher, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrapf(err, "ping redis at %s", cfg.Addr)
	}

	return &RedisPublisher{rdb: rdb, prefix: cfg.ChannelPrefix}, nil
}

func Channel(prefix string, userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", prefix, userID)
}

func (p *RedisPublisher) Publish(ctx context.Context, m notification.Message) error {
	payload, err := m.Encode()
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}
	if err := p.rdb.Publish(ctx, Channel(p.prefix, m.UserID), payload).Err(); err != nil {
		return errs.Wrap(err, "publish notification")
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
