package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListNotificationsByUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListNotificationsByUserParams) ([]sqlstore.Notifications, error)
	CountUnreadNotifications(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) (int64, error)
	GetNotificationByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Notifications, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlstore.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlstore.DBTX) *NotificationReadStore {
	return &NotificationReadStore{queries: queries, db: db}
}

func (r *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, after *queries.Keyset, limit int32) ([]*queries.NotificationView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListNotificationsByUser(ctx, r.db, sqlstore.ListNotificationsByUserParams{
		UserID:         userID,
		UnreadOnly:     unreadOnly,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	out := make([]*queries.NotificationView, 0, len(rows))
	for _, row := range rows {
		v, err := toNotificationView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *NotificationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.NotificationView, error) {
	row, err := r.queries.GetNotificationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get notification", err)
	}
	return toNotificationView(row)
}

func toNotificationView(row sqlstore.Notifications) (*queries.NotificationView, error) {
	n, err := converter.NotificationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode notification row", err, infra.KindDBFailure)
	}
	return &queries.NotificationView{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Data:      n.Data(),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountUnreadNotifications(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}
