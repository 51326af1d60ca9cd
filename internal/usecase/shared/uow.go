package shared

import (
	"context"
	"time"

	"marketplace-api/internal/domain/conversation"
	"marketplace-api/internal/domain/escrow"
	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
	// Direct: Repositories bound to the pool, for single writes that need no transaction
	Direct() Tx
}

type Tx interface {
	Orders() OrderRepository
	Offers() OfferRepository
	Escrows() EscrowRepository
	Reviews() ReviewRepository
	Notifications() NotificationRepository
	Idempotency() IdempotencyRepository
	Users() UserRepository
	Conversations() ConversationRepository
	DB() sqlstore.DBTX
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, o *order.Order, initial *order.StatusHistory) error
	Save(ctx context.Context, tx sqlstore.DBTX, o *order.Order) error
	AppendHistory(ctx context.Context, tx sqlstore.DBTX, h *order.StatusHistory) error
	FindByID(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*order.Order, error)
	FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*order.Order, error)
	Delete(ctx context.Context, tx sqlstore.DBTX, o *order.Order) error
	History(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) ([]*order.StatusHistory, error)
}

type OfferRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, f *offer.Offer) error
	Save(ctx context.Context, tx sqlstore.DBTX, f *offer.Offer) error
	SaveAll(ctx context.Context, tx sqlstore.DBTX, offers []*offer.Offer) error
	FindByID(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*offer.Offer, error)
	FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*offer.Offer, error)
	LockByOrder(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) ([]*offer.Offer, error)
	LockByOrderAndTraveler(ctx context.Context, tx sqlstore.DBTX, orderID, travelerID uuid.UUID) ([]*offer.Offer, error)
	LockDue(ctx context.Context, tx sqlstore.DBTX, now time.Time, limit int32) ([]*offer.Offer, error)
}

type EscrowRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, h *escrow.Holding) error
	Save(ctx context.Context, tx sqlstore.DBTX, h *escrow.Holding) error
	FindByOrder(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) (*escrow.Holding, error)
	FindByOrderForUpdate(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) (*escrow.Holding, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, rev *review.Review) error
	FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*review.Review, error)
	SaveResponse(ctx context.Context, tx sqlstore.DBTX, rev *review.Review) error
}

type ConversationRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, c *conversation.Conversation) error
	FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*conversation.Conversation, error)
	FindByOrderForUpdate(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) (*conversation.Conversation, error)
	Save(ctx context.Context, tx sqlstore.DBTX, c *conversation.Conversation) error
	CreateMessage(ctx context.Context, tx sqlstore.DBTX, m *conversation.Message) error
	FindMessageForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*conversation.Message, error)
	SaveMessage(ctx context.Context, tx sqlstore.DBTX, m *conversation.Message) error
	MarkRead(ctx context.Context, tx sqlstore.DBTX, conversationID, readerID uuid.UUID, at time.Time) (int64, error)
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, tx sqlstore.DBTX, job *notification.Job) error
	ClaimDue(ctx context.Context, tx sqlstore.DBTX, now time.Time, limit int32) ([]*notification.Job, error)
	SaveJob(ctx context.Context, tx sqlstore.DBTX, job *notification.Job) error
	Create(ctx context.Context, tx sqlstore.DBTX, n *notification.Notification) error
	FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*notification.Notification, error)
	MarkRead(ctx context.Context, tx sqlstore.DBTX, n *notification.Notification) error
	MarkAllRead(ctx context.Context, tx sqlstore.DBTX, userID uuid.UUID, now time.Time) (int64, error)
	Delete(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlstore.DBTX, key, userID uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, tx sqlstore.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, tx sqlstore.DBTX, key, userID, orderID uuid.UUID, now time.Time) error
	DeleteExpired(ctx context.Context, tx sqlstore.DBTX, now time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, u *user.User) error
	FindByEmail(ctx context.Context, tx sqlstore.DBTX, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*user.User, error)
	FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*user.User, error)
	Save(ctx context.Context, tx sqlstore.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlstore.DBTX, userID uuid.UUID, at time.Time) error
}
