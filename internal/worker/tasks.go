package worker

import (
	"context"
	"time"

	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase/commands"
)

type OfferSweeper struct {
	offers   commands.OfferCommands
	interval time.Duration
	batch    int
}

func NewOfferSweeper(offers commands.OfferCommands, cfg config.WorkerConfig) *OfferSweeper {
	return &OfferSweeper{offers: offers, interval: cfg.OfferSweepInterval, batch: cfg.BatchSize}
}

func (s *OfferSweeper) Name() string            { return "offer_sweeper" }
func (s *OfferSweeper) Interval() time.Duration { return s.interval }

func (s *OfferSweeper) Run(ctx context.Context) (int, error) {
	return s.offers.Sweep(ctx, s.batch)
}

type NotificationDispatcher struct {
	notifications commands.NotificationCommands
	interval      time.Duration
	batch         int
}

func NewNotificationDispatcher(notifications commands.NotificationCommands, cfg config.WorkerConfig) *NotificationDispatcher {
	return &NotificationDispatcher{notifications: notifications, interval: cfg.NotificationInterval, batch: cfg.BatchSize}
}

func (d *NotificationDispatcher) Name() string            { return "notification_dispatcher" }
func (d *NotificationDispatcher) Interval() time.Duration { return d.interval }

func (d *NotificationDispatcher) Run(ctx context.Context) (int, error) {
	res, err := d.notifications.Dispatch(ctx, d.batch)
	if err != nil {
		return 0, err
	}
	return res.Sent + res.Retry + res.Failed, nil
}

type IdempotencyPurger struct {
	maintenance commands.MaintenanceCommands
	interval    time.Duration
}

func NewIdempotencyPurger(maintenance commands.MaintenanceCommands, cfg config.WorkerConfig) *IdempotencyPurger {
	return &IdempotencyPurger{maintenance: maintenance, interval: cfg.IdempotencyPurgeInterval}
}

func (p *IdempotencyPurger) Name() string            { return "idempotency_purger" }
func (p *IdempotencyPurger) Interval() time.Duration { return p.interval }

func (p *IdempotencyPurger) Run(ctx context.Context) (int, error) {
	n, err := p.maintenance.PurgeIdempotencyKeys(ctx)
	return int(n), err
}
