package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConversationReadQueries interface {
	GetConversationViewByID(ctx context.Context, db sqlstore.DBTX, arg sqlstore.GetConversationViewParams) (sqlstore.ConversationViewRow, error)
	GetConversationViewByOrder(ctx context.Context, db sqlstore.DBTX, arg sqlstore.GetConversationViewParams) (sqlstore.ConversationViewRow, error)
	ListConversationsByUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListConversationsByUserParams) ([]sqlstore.ConversationViewRow, error)
	ListMessages(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListMessagesParams) ([]sqlstore.Messages, error)
}

type ConversationReadStore struct {
	queries ConversationReadQueries
	db      sqlstore.DBTX
}

func NewConversationReadStore(queries ConversationReadQueries, db sqlstore.DBTX) *ConversationReadStore {
	return &ConversationReadStore{queries: queries, db: db}
}

func (r *ConversationReadStore) FindByID(ctx context.Context, id, viewerID uuid.UUID) (*queries.ConversationView, error) {
	row, err := r.queries.GetConversationViewByID(ctx, r.db, sqlstore.GetConversationViewParams{ID: id, ViewerID: viewerID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get conversation view", err)
	}
	return toConversationView(row), nil
}

func (r *ConversationReadStore) FindByOrder(ctx context.Context, orderID, viewerID uuid.UUID) (*queries.ConversationView, error) {
	row, err := r.queries.GetConversationViewByOrder(ctx, r.db, sqlstore.GetConversationViewParams{ID: orderID, ViewerID: viewerID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order conversation view", err)
	}
	return toConversationView(row), nil
}

func (r *ConversationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ConversationView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListConversationsByUser(ctx, r.db, sqlstore.ListConversationsByUserParams{
		UserID:         userID,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversations", err)
	}
	out := make([]*queries.ConversationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toConversationView(row))
	}
	return out, nil
}

func (r *ConversationReadStore) ListMessages(ctx context.Context, conversationID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.MessageView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListMessages(ctx, r.db, sqlstore.ListMessagesParams{
		ConversationID: conversationID,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	out := make([]*queries.MessageView, 0, len(rows))
	for _, row := range rows {
		m, err := converter.MessageFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode message row", err, infra.KindDBFailure)
		}
		out = append(out, &queries.MessageView{
			ID:             m.ID(),
			ConversationID: m.ConversationID(),
			SenderID:       m.SenderID(),
			Type:           m.Type().String(),
			Content:        m.Content(),
			AttachmentURL:  m.AttachmentURL(),
			IsRead:         m.IsRead(),
			ReadAt:         m.ReadAt(),
			EditedAt:       m.EditedAt(),
			CreatedAt:      m.CreatedAt(),
		})
	}
	return out, nil
}

func toConversationView(row sqlstore.ConversationViewRow) *queries.ConversationView {
	return &queries.ConversationView{
		ID:            row.ID,
		OrderID:       row.OrderID,
		ShopperID:     row.ShopperID,
		TravelerID:    row.TravelerID,
		IsUnlocked:    row.IsUnlocked,
		UnlockedAt:    pgconv.TimePtrFromPgtype(row.UnlockedAt),
		IsActive:      row.IsActive,
		ClosedAt:      pgconv.TimePtrFromPgtype(row.ClosedAt),
		LastMessageAt: pgconv.TimePtrFromPgtype(row.LastMessageAt),
		UnreadCount:   row.UnreadCount,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
