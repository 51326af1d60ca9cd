package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const jobColumns = `id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at`

func scanJob(row pgx.Row) (NotificationJobs, error) {
	var j NotificationJobs
	err := row.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.Attempts, &j.Status, &j.LastError,
		&j.CreatedAt, &j.UpdatedAt)
	return j, err
}

const enqueueNotificationJob = `INSERT INTO notification_jobs (` + jobColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) EnqueueNotificationJob(ctx context.Context, db DBTX, arg NotificationJobs) error {
	_, err := db.Exec(ctx, enqueueNotificationJob, arg.ID, arg.Kind, arg.Topic, arg.Payload, arg.RunAt,
		arg.Attempts, arg.Status, arg.LastError, arg.CreatedAt, arg.UpdatedAt)
	return err
}

type ClaimNotificationJobsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

const claimNotificationJobs = `SELECT ` + jobColumns + ` FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimNotificationJobs(ctx context.Context, db DBTX, arg ClaimNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimNotificationJobs, arg.Now, arg.Limit)
	return collect(rows, err, scanJob)
}

const updateNotificationJob = `UPDATE notification_jobs SET run_at = $2, attempts = $3, status = $4, last_error = $5,
    updated_at = $6
WHERE id = $1`

func (q *Queries) UpdateNotificationJob(ctx context.Context, db DBTX, arg NotificationJobs) (int64, error) {
	tag, err := db.Exec(ctx, updateNotificationJob, arg.ID, arg.RunAt, arg.Attempts, arg.Status, arg.LastError,
		arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countQueuedNotificationJobs = `SELECT count(*) FROM notification_jobs WHERE status = 'queued'`

func (q *Queries) CountQueuedNotificationJobs(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countQueuedNotificationJobs).Scan(&n)
	return n, err
}

const notificationColumns = `id, user_id, type, title, message, data, is_read, read_at, created_at`

func scanNotification(row pgx.Row) (Notifications, error) {
	var n Notifications
	err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Data, &n.IsRead, &n.ReadAt, &n.CreatedAt)
	return n, err
}

const createNotification = `INSERT INTO notifications (` + notificationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) CreateNotification(ctx context.Context, db DBTX, arg Notifications) error {
	_, err := db.Exec(ctx, createNotification, arg.ID, arg.UserID, arg.Type, arg.Title, arg.Message, arg.Data,
		arg.IsRead, arg.ReadAt, arg.CreatedAt)
	return err
}

const getNotificationForUpdate = `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1 FOR UPDATE`

func (q *Queries) GetNotificationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Notifications, error) {
	return scanNotification(db.QueryRow(ctx, getNotificationForUpdate, id))
}

const getNotificationByID = `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`

func (q *Queries) GetNotificationByID(ctx context.Context, db DBTX, id uuid.UUID) (Notifications, error) {
	return scanNotification(db.QueryRow(ctx, getNotificationByID, id))
}

const deleteNotification = `DELETE FROM notifications WHERE id = $1`

func (q *Queries) DeleteNotification(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteNotification, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markNotificationRead = `UPDATE notifications SET is_read = TRUE, read_at = $2 WHERE id = $1`

type MarkNotificationReadParams struct {
	ID     uuid.UUID
	ReadAt pgtype.Timestamptz
}

func (q *Queries) MarkNotificationRead(ctx context.Context, db DBTX, arg MarkNotificationReadParams) (int64, error) {
	tag, err := db.Exec(ctx, markNotificationRead, arg.ID, arg.ReadAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markAllNotificationsRead = `UPDATE notifications SET is_read = TRUE, read_at = $2
WHERE user_id = $1 AND NOT is_read`

type MarkAllNotificationsReadParams struct {
	UserID uuid.UUID
	ReadAt pgtype.Timestamptz
}

func (q *Queries) MarkAllNotificationsRead(ctx context.Context, db DBTX, arg MarkAllNotificationsReadParams) (int64, error) {
	tag, err := db.Exec(ctx, markAllNotificationsRead, arg.UserID, arg.ReadAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListNotificationsByUserParams struct {
	UserID         uuid.UUID
	UnreadOnly     bool
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

const listNotificationsByUser = `SELECT ` + notificationColumns + ` FROM notifications
WHERE user_id = $1
  AND (NOT $2::bool OR NOT is_read)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5`

func (q *Queries) ListNotificationsByUser(ctx context.Context, db DBTX, arg ListNotificationsByUserParams) ([]Notifications, error) {
	rows, err := db.Query(ctx, listNotificationsByUser, arg.UserID, arg.UnreadOnly, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	return collect(rows, err, scanNotification)
}

const countUnreadNotifications = `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`

func (q *Queries) CountUnreadNotifications(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countUnreadNotifications, userID).Scan(&n)
	return n, err
}
