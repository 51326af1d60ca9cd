package repository

import (
	"context"
	"time"

	"marketplace-api/internal/domain/conversation"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ConversationWriteQueries interface {
	CreateConversation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Conversations) error
	GetConversationForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Conversations, error)
	GetConversationByOrderForUpdate(ctx context.Context, db sqlstore.DBTX, orderID uuid.UUID) (sqlstore.Conversations, error)
	UpdateConversation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateConversationParams) (int64, error)
	CreateMessage(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Messages) error
	GetMessageForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Messages, error)
	UpdateMessageContent(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateMessageContentParams) (int64, error)
	MarkMessagesRead(ctx context.Context, db sqlstore.DBTX, arg sqlstore.MarkMessagesReadParams) (int64, error)
}

type ConversationRepository struct {
	queries ConversationWriteQueries
	db      sqlstore.DBTX
}

func NewConversationRepository(queries ConversationWriteQueries, db sqlstore.DBTX) *ConversationRepository {
	return &ConversationRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports KindDuplicateKey when the order already has a conversation.
func (r *ConversationRepository) Create(ctx context.Context, tx sqlstore.DBTX, c *conversation.Conversation) error {
	if err := r.queries.CreateConversation(ctx, conn(tx, r.db), converter.ConversationToRow(c)); err != nil {
		return infra.WrapRepoErr("failed to create conversation", err)
	}
	return nil
}

func (r *ConversationRepository) FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*conversation.Conversation, error) {
	row, err := r.queries.GetConversationForUpdate(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock conversation", err)
	}
	return converter.ConversationFromRow(row), nil
}

func (r *ConversationRepository) FindByOrderForUpdate(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) (*conversation.Conversation, error) {
	row, err := r.queries.GetConversationByOrderForUpdate(ctx, conn(tx, r.db), orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock order conversation", err)
	}
	return converter.ConversationFromRow(row), nil
}

func (r *ConversationRepository) Save(ctx context.Context, tx sqlstore.DBTX, c *conversation.Conversation) error {
	affected, err := r.queries.UpdateConversation(ctx, conn(tx, r.db), converter.ConversationToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update conversation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("conversation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ConversationRepository) CreateMessage(ctx context.Context, tx sqlstore.DBTX, m *conversation.Message) error {
	if err := r.queries.CreateMessage(ctx, conn(tx, r.db), converter.MessageToRow(m)); err != nil {
		return infra.WrapRepoErr("failed to create message", err)
	}
	return nil
}

func (r *ConversationRepository) FindMessageForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*conversation.Message, error) {
	row, err := r.queries.GetMessageForUpdate(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock message", err)
	}
	m, err := converter.MessageFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt message row", err)
	}
	return m, nil
}

// SaveMessage writes an edit.
func (r *ConversationRepository) SaveMessage(ctx context.Context, tx sqlstore.DBTX, m *conversation.Message) error {
	affected, err := r.queries.UpdateMessageContent(ctx, conn(tx, r.db), sqlstore.UpdateMessageContentParams{
		ID:       m.ID(),
		Content:  m.Content(),
		EditedAt: pgconv.TimePtrToPgtype(m.EditedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update message", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("message not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkRead stamps every unread message the reader did not send.
func (r *ConversationRepository) MarkRead(ctx context.Context, tx sqlstore.DBTX, conversationID, readerID uuid.UUID, at time.Time) (int64, error) {
	n, err := r.queries.MarkMessagesRead(ctx, conn(tx, r.db), sqlstore.MarkMessagesReadParams{
		ConversationID: conversationID,
		ReaderID:       readerID,
		ReadAt:         pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark messages read", err)
	}
	return n, nil
}
