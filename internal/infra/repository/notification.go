package repository

import (
	"context"
	"time"

	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	EnqueueNotificationJob(ctx context.Context, db sqlstore.DBTX, arg sqlstore.NotificationJobs) error
	ClaimNotificationJobs(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ClaimNotificationJobsParams) ([]sqlstore.NotificationJobs, error)
	UpdateNotificationJob(ctx context.Context, db sqlstore.DBTX, arg sqlstore.NotificationJobs) (int64, error)
	CreateNotification(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Notifications) error
	GetNotificationForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Notifications, error)
	MarkNotificationRead(ctx context.Context, db sqlstore.DBTX, arg sqlstore.MarkNotificationReadParams) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, db sqlstore.DBTX, arg sqlstore.MarkAllNotificationsReadParams) (int64, error)
	DeleteNotification(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlstore.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlstore.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

// Enqueue writes an outbox row; it must share the transaction of the change it announces.
func (r *NotificationRepository) Enqueue(ctx context.Context, tx sqlstore.DBTX, job *notification.Job) error {
	if err := r.queries.EnqueueNotificationJob(ctx, conn(tx, r.db), converter.JobToRow(job)); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlstore.DBTX, now time.Time, limit int32) ([]*notification.Job, error) {
	rows, err := r.queries.ClaimNotificationJobs(ctx, conn(tx, r.db), sqlstore.ClaimNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	jobs := make([]*notification.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, converter.JobFromRow(row))
	}
	return jobs, nil
}

func (r *NotificationRepository) SaveJob(ctx context.Context, tx sqlstore.DBTX, job *notification.Job) error {
	affected, err := r.queries.UpdateNotificationJob(ctx, conn(tx, r.db), converter.JobToRow(job))
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) Create(ctx context.Context, tx sqlstore.DBTX, n *notification.Notification) error {
	row, err := converter.NotificationToRow(n)
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification", err)
	}
	if err := r.queries.CreateNotification(ctx, conn(tx, r.db), row); err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*notification.Notification, error) {
	row, err := r.queries.GetNotificationForUpdate(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock notification", err)
	}
	n, err := converter.NotificationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt notification row", err)
	}
	return n, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, tx sqlstore.DBTX, n *notification.Notification) error {
	readAt := n.ReadAt()
	if readAt == nil {
		return nil
	}
	_, err := r.queries.MarkNotificationRead(ctx, conn(tx, r.db), sqlstore.MarkNotificationReadParams{
		ID:     n.ID(),
		ReadAt: pgconv.TimeToPgtype(*readAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx sqlstore.DBTX, userID uuid.UUID, now time.Time) (int64, error) {
	affected, err := r.queries.MarkAllNotificationsRead(ctx, conn(tx, r.db), sqlstore.MarkAllNotificationsReadParams{
		UserID: userID,
		ReadAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return affected, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteNotification(ctx, conn(tx, r.db), id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete notification", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
