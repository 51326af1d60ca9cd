package commands

import (
	"context"
	"log/slog"

	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/metrics"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Publisher pushes a delivered notification to the recipient's live channel.
type Publisher interface {
	Publish(ctx context.Context, m notification.Message) error
}

type DispatchResult struct {
	Sent   int
	Retry  int
	Failed int
}

type NotificationCommands interface {
	MarkRead(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, actor shared.Actor) (int64, error)
	Delete(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error
	// Dispatch claims up to limit queued jobs, publishes them and stores the in-app notification.
	Dispatch(ctx context.Context, limit int) (*DispatchResult, error)
}

type notificationCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher Publisher
	logger    *slog.Logger
}

func NewNotificationCommands(uow shared.UnitOfWork, clk clock.Clock, publisher Publisher, logger *slog.Logger) NotificationCommands {
	return &notificationCommandsImpl{uow: uow, clock: clk, publisher: publisher, logger: logger}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().FindForUpdate(ctx, tx.DB(), notificationID)
		if err != nil {
			return notFoundAs(err, ErrNotificationNotFound)
		}
		if err := n.MarkRead(actor.ID, c.clock.Now()); err != nil {
			return err
		}
		return tx.Notifications().MarkRead(ctx, tx.DB(), n)
	})
	return classify(err)
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context, actor shared.Actor) (int64, error) {
	d := c.uow.Direct()
	n, err := d.Notifications().MarkAllRead(ctx, d.DB(), actor.ID, c.clock.Now())
	if err != nil {
		return 0, classify(err)
	}
	return n, nil
}

func (c *notificationCommandsImpl) Delete(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().FindForUpdate(ctx, tx.DB(), notificationID)
		if err != nil {
			return notFoundAs(err, ErrNotificationNotFound)
		}
		if err := n.CheckRecipient(actor.ID); err != nil {
			return err
		}
		return tx.Notifications().Delete(ctx, tx.DB(), n.ID())
	})
	return classify(err)
}

// Dispatch claims due jobs and leases them in one short transaction, publishes each
// one with no transaction open, then settles every job in its own transaction.
// Delivery is at-least-once: a crash between publish and settle republishes the job
// after its lease ends.
func (c *notificationCommandsImpl) Dispatch(ctx context.Context, limit int) (*DispatchResult, error) {
	var jobs []*notification.Job
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		claimed, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, int32(limit)) // #nosec G115 -- batch size comes from config
		if err != nil {
			return err
		}
		for _, job := range claimed {
			if err := job.Lease(now); err != nil {
				return err
			}
			if err := tx.Notifications().SaveJob(ctx, tx.DB(), job); err != nil {
				return err
			}
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	var res DispatchResult
	for _, job := range jobs {
		msg, pubErr := job.Message()
		if pubErr == nil {
			pubErr = c.publisher.Publish(ctx, msg)
		}
		if err := c.settle(ctx, job, msg, pubErr, &res); err != nil {
			c.logger.Error("failed to settle notification job",
				slog.String("job_id", job.ID().String()),
				slog.String("error", err.Error()),
			)
		}
	}
	metrics.NotificationJobsDispatchedTotal.WithLabelValues("sent").Add(float64(res.Sent))
	metrics.NotificationJobsDispatchedTotal.WithLabelValues("retry").Add(float64(res.Retry))
	metrics.NotificationJobsDispatchedTotal.WithLabelValues("failed").Add(float64(res.Failed))
	return &res, nil
}

// settle records the publish outcome. A failure schedules a retry; the in-app row is
// only written once the publish succeeded.
func (c *notificationCommandsImpl) settle(ctx context.Context, job *notification.Job, msg notification.Message, pubErr error, res *DispatchResult) error {
	var sent, parked bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		if pubErr != nil {
			if err := job.MarkFailed(pubErr, now); err != nil {
				return err
			}
			parked = job.Status() == notification.JobFailed
			return tx.Notifications().SaveJob(ctx, tx.DB(), job)
		}
		if err := tx.Notifications().Create(ctx, tx.DB(), notification.NewNotification(msg, now)); err != nil {
			return err
		}
		if err := job.MarkSent(now); err != nil {
			return err
		}
		sent = true
		return tx.Notifications().SaveJob(ctx, tx.DB(), job)
	})
	if err != nil {
		return err
	}
	switch {
	case sent:
		res.Sent++
	case parked:
		res.Failed++
	default:
		res.Retry++
	}
	if pubErr != nil {
		c.logger.Warn("notification delivery failed",
			slog.String("job_id", job.ID().String()),
			slog.Int("attempt", job.Attempts()),
			slog.String("error", pubErr.Error()),
		)
	}
	return nil
}
