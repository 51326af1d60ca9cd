package queries

import (
	"context"
	"time"

	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, after *Keyset, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*NotificationView, error)
}

type NotificationPage struct {
	Items       []*NotificationView
	Next        *Cursor
	UnreadCount int64
}

type NotificationQueries interface {
	List(ctx context.Context, actor shared.Actor, unreadOnly bool, cursor *Cursor, limit int) (*NotificationPage, error)
	UnreadCount(ctx context.Context, actor shared.Actor) (int64, error)
	// Get hides notifications of other users as not found.
	Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, actor shared.Actor, unreadOnly bool, cursor *Cursor, limit int) (*NotificationPage, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.store.ListByUser(ctx, actor.ID, unreadOnly, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, err
	}
	unread, err := q.store.CountUnread(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	page, next := paginate(rows, limit, func(v *NotificationView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return &NotificationPage{Items: page, Next: next, UnreadCount: unread}, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, actor shared.Actor) (int64, error) {
	return q.store.CountUnread(ctx, actor.ID)
}

func (q *notificationQueriesImpl) Get(ctx context.Context, actor shared.Actor, id uuid.UUID) (*NotificationView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrNotificationNotFound)
	}
	if v.UserID != actor.ID {
		return nil, ErrNotificationNotFound
	}
	return v, nil
}
