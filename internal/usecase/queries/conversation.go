package queries

import (
	"context"
	"time"

	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConversationReadStore interface {
	FindByID(ctx context.Context, id, viewerID uuid.UUID) (*ConversationView, error)
	FindByOrder(ctx context.Context, orderID, viewerID uuid.UUID) (*ConversationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Keyset, limit int32) ([]*ConversationView, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID, after *Keyset, limit int32) ([]*MessageView, error)
}

type ConversationPage struct {
	Items []*ConversationView
	Next  *Cursor
}

type MessagePage struct {
	Items []*MessageView
	Next  *Cursor
}

// ConversationQueries lets participants and admins read a conversation.
// Anyone else gets ErrConversationNotFound.
type ConversationQueries interface {
	GetByOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) (*ConversationView, error)
	ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) (*ConversationPage, error)
	// ListMessages pages newest first.
	ListMessages(ctx context.Context, actor shared.Actor, conversationID uuid.UUID, cursor *Cursor, limit int) (*MessagePage, error)
}

type conversationQueriesImpl struct {
	store ConversationReadStore
}

func NewConversationQueries(store ConversationReadStore) ConversationQueries {
	return &conversationQueriesImpl{store: store}
}

func (q *conversationQueriesImpl) GetByOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) (*ConversationView, error) {
	v, err := q.store.FindByOrder(ctx, orderID, actor.ID)
	if err != nil {
		return nil, notFoundAs(err, ErrConversationNotFound)
	}
	if !canRead(v, actor) {
		return nil, ErrConversationNotFound
	}
	return withSendFlag(v, actor.ID), nil
}

func (q *conversationQueriesImpl) ListMine(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) (*ConversationPage, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.store.ListByUser(ctx, actor.ID, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, err
	}
	page, next := paginate(rows, limit, func(v *ConversationView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	for _, v := range page {
		withSendFlag(v, actor.ID)
	}
	return &ConversationPage{Items: page, Next: next}, nil
}

func (q *conversationQueriesImpl) ListMessages(ctx context.Context, actor shared.Actor, conversationID uuid.UUID, cursor *Cursor, limit int) (*MessagePage, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, err
	}
	v, err := q.store.FindByID(ctx, conversationID, actor.ID)
	if err != nil {
		return nil, notFoundAs(err, ErrConversationNotFound)
	}
	if !canRead(v, actor) {
		return nil, ErrConversationNotFound
	}
	limit = ValidateLimit(limit)
	rows, err := q.store.ListMessages(ctx, conversationID, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, err
	}
	page, next := paginate(rows, limit, func(m *MessageView) (time.Time, uuid.UUID) { return m.CreatedAt, m.ID })
	return &MessagePage{Items: page, Next: next}, nil
}

func canRead(v *ConversationView, actor shared.Actor) bool {
	return actor.IsAdmin() || v.ShopperID == actor.ID || v.TravelerID == actor.ID
}

func withSendFlag(v *ConversationView, viewerID uuid.UUID) *ConversationView {
	participant := v.ShopperID == viewerID || v.TravelerID == viewerID
	v.CanSend = participant && v.IsUnlocked && v.IsActive
	return v
}
