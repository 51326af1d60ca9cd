package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const conversationColumns = `id, order_id, shopper_id, traveler_id, is_unlocked, unlocked_at, is_active, closed_at,
last_message_at, created_at, updated_at`

func scanConversation(row pgx.Row) (Conversations, error) {
	var c Conversations
	err := row.Scan(&c.ID, &c.OrderID, &c.ShopperID, &c.TravelerID, &c.IsUnlocked, &c.UnlockedAt, &c.IsActive,
		&c.ClosedAt, &c.LastMessageAt, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const createConversation = `INSERT INTO conversations (` + conversationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (q *Queries) CreateConversation(ctx context.Context, db DBTX, arg Conversations) error {
	_, err := db.Exec(ctx, createConversation, arg.ID, arg.OrderID, arg.ShopperID, arg.TravelerID, arg.IsUnlocked,
		arg.UnlockedAt, arg.IsActive, arg.ClosedAt, arg.LastMessageAt, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getConversationForUpdate = `SELECT ` + conversationColumns + ` FROM conversations WHERE id = $1 FOR UPDATE`

func (q *Queries) GetConversationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Conversations, error) {
	return scanConversation(db.QueryRow(ctx, getConversationForUpdate, id))
}

const getConversationByOrderForUpdate = `SELECT ` + conversationColumns + ` FROM conversations WHERE order_id = $1 FOR UPDATE`

func (q *Queries) GetConversationByOrderForUpdate(ctx context.Context, db DBTX, orderID uuid.UUID) (Conversations, error) {
	return scanConversation(db.QueryRow(ctx, getConversationByOrderForUpdate, orderID))
}

const updateConversation = `UPDATE conversations
SET is_unlocked = $2, unlocked_at = $3, is_active = $4, closed_at = $5, last_message_at = $6, updated_at = $7
WHERE id = $1`

type UpdateConversationParams struct {
	ID            uuid.UUID
	IsUnlocked    bool
	UnlockedAt    pgtype.Timestamptz
	IsActive      bool
	ClosedAt      pgtype.Timestamptz
	LastMessageAt pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateConversation(ctx context.Context, db DBTX, arg UpdateConversationParams) (int64, error) {
	tag, err := db.Exec(ctx, updateConversation, arg.ID, arg.IsUnlocked, arg.UnlockedAt, arg.IsActive, arg.ClosedAt,
		arg.LastMessageAt, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ConversationViewRow adds the number of messages the viewer has not read.
type ConversationViewRow struct {
	Conversations
	UnreadCount int64
}

func scanConversationView(row pgx.Row) (ConversationViewRow, error) {
	var v ConversationViewRow
	err := row.Scan(&v.ID, &v.OrderID, &v.ShopperID, &v.TravelerID, &v.IsUnlocked, &v.UnlockedAt, &v.IsActive,
		&v.ClosedAt, &v.LastMessageAt, &v.CreatedAt, &v.UpdatedAt, &v.UnreadCount)
	return v, err
}

const conversationViewSelect = `SELECT c.id, c.order_id, c.shopper_id, c.traveler_id, c.is_unlocked, c.unlocked_at,
c.is_active, c.closed_at, c.last_message_at, c.created_at, c.updated_at,
(SELECT count(*) FROM messages m WHERE m.conversation_id = c.id AND m.sender_id <> $2 AND m.read_at IS NULL)
FROM conversations c`

type GetConversationViewParams struct {
	ID       uuid.UUID
	ViewerID uuid.UUID
}

const getConversationViewByID = conversationViewSelect + ` WHERE c.id = $1`

func (q *Queries) GetConversationViewByID(ctx context.Context, db DBTX, arg GetConversationViewParams) (ConversationViewRow, error) {
	return scanConversationView(db.QueryRow(ctx, getConversationViewByID, arg.ID, arg.ViewerID))
}

const getConversationViewByOrder = conversationViewSelect + ` WHERE c.order_id = $1`

// GetConversationViewByOrder reads arg.ID as the order id.
func (q *Queries) GetConversationViewByOrder(ctx context.Context, db DBTX, arg GetConversationViewParams) (ConversationViewRow, error) {
	return scanConversationView(db.QueryRow(ctx, getConversationViewByOrder, arg.ID, arg.ViewerID))
}

type ListConversationsByUserParams struct {
	UserID         uuid.UUID
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

const listConversationsByUser = conversationViewSelect + `
WHERE (c.shopper_id = $1 OR c.traveler_id = $1)
  AND ($3::timestamptz IS NULL OR (c.created_at, c.id) < ($3, $4::uuid))
ORDER BY c.created_at DESC, c.id DESC
LIMIT $5`

func (q *Queries) ListConversationsByUser(ctx context.Context, db DBTX, arg ListConversationsByUserParams) ([]ConversationViewRow, error) {
	rows, err := db.Query(ctx, listConversationsByUser, arg.UserID, arg.UserID, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	return collect(rows, err, scanConversationView)
}

const messageColumns = `id, conversation_id, sender_id, message_type, content, attachment_url, read_at, edited_at, created_at`

func scanMessage(row pgx.Row) (Messages, error) {
	var m Messages
	err := row.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.MessageType, &m.Content, &m.AttachmentURL,
		&m.ReadAt, &m.EditedAt, &m.CreatedAt)
	return m, err
}

const createMessage = `INSERT INTO messages (` + messageColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) CreateMessage(ctx context.Context, db DBTX, arg Messages) error {
	_, err := db.Exec(ctx, createMessage, arg.ID, arg.ConversationID, arg.SenderID, arg.MessageType, arg.Content,
		arg.AttachmentURL, arg.ReadAt, arg.EditedAt, arg.CreatedAt)
	return err
}

const getMessageForUpdate = `SELECT ` + messageColumns + ` FROM messages WHERE id = $1 FOR UPDATE`

func (q *Queries) GetMessageForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Messages, error) {
	return scanMessage(db.QueryRow(ctx, getMessageForUpdate, id))
}

const updateMessageContent = `UPDATE messages SET content = $2, edited_at = $3 WHERE id = $1`

type UpdateMessageContentParams struct {
	ID       uuid.UUID
	Content  string
	EditedAt pgtype.Timestamptz
}

func (q *Queries) UpdateMessageContent(ctx context.Context, db DBTX, arg UpdateMessageContentParams) (int64, error) {
	tag, err := db.Exec(ctx, updateMessageContent, arg.ID, arg.Content, arg.EditedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markMessagesRead = `UPDATE messages SET read_at = $3
WHERE conversation_id = $1 AND sender_id <> $2 AND read_at IS NULL`

type MarkMessagesReadParams struct {
	ConversationID uuid.UUID
	ReaderID       uuid.UUID
	ReadAt         pgtype.Timestamptz
}

func (q *Queries) MarkMessagesRead(ctx context.Context, db DBTX, arg MarkMessagesReadParams) (int64, error) {
	tag, err := db.Exec(ctx, markMessagesRead, arg.ConversationID, arg.ReaderID, arg.ReadAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListMessagesParams struct {
	ConversationID uuid.UUID
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

const listMessages = `SELECT ` + messageColumns + ` FROM messages
WHERE conversation_id = $1
  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $4`

func (q *Queries) ListMessages(ctx context.Context, db DBTX, arg ListMessagesParams) ([]Messages, error) {
	rows, err := db.Query(ctx, listMessages, arg.ConversationID, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	return collect(rows, err, scanMessage)
}
