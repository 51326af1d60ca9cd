package sqlstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	Role           string
	FirstName      string
	LastName       string
	DisplayName    pgtype.Text
	Bio            pgtype.Text
	Phone          pgtype.Text
	PrimaryCountry pgtype.Text
	PrimaryCity    pgtype.Text
	AvatarURL      pgtype.Text
	IsActive       bool
	LastLoginAt    pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type Orders struct {
	ID                    uuid.UUID
	ShopperID             uuid.UUID
	MatchedTravelerID     pgtype.UUID
	ProductName           string
	ProductURL            string
	ProductDescription    pgtype.Text
	ProductImageURL       pgtype.Text
	ProductPrice          pgtype.Numeric
	ProductCurrency       string
	ProductQuantity       int32
	DestinationCountry    string
	DestinationCity       string
	DestinationAddress    pgtype.Text
	RewardAmount          pgtype.Numeric
	RewardCurrency        string
	PlatformFee           pgtype.Numeric
	TotalCost             pgtype.Numeric
	Deadline              pgtype.Timestamptz
	PreferredDeliveryDate pgtype.Timestamptz
	SpecialInstructions   pgtype.Text
	WeightEstimate        pgtype.Numeric
	SizeDescription       pgtype.Text
	Status                string
	MatchedAt             pgtype.Timestamptz
	PurchasedAt           pgtype.Timestamptz
	ShippedAt             pgtype.Timestamptz
	DeliveredAt           pgtype.Timestamptz
	CompletedAt           pgtype.Timestamptz
	CreatedAt             pgtype.Timestamptz
	UpdatedAt             pgtype.Timestamptz
}

type OrderStatusHistory struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	OldStatus pgtype.Text
	NewStatus string
	ActorID   pgtype.UUID
	Notes     pgtype.Text
	CreatedAt pgtype.Timestamptz
}

type Offers struct {
	ID                   uuid.UUID
	OrderID              uuid.UUID
	TravelerID           uuid.UUID
	Message              pgtype.Text
	ProposedAmount       pgtype.Numeric
	ProposedDeliveryDate pgtype.Timestamptz
	Status               string
	ExpiresAt            pgtype.Timestamptz
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
}

type EscrowHoldings struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	PaymentReference  string
	TotalAmount       pgtype.Numeric
	PlatformFee       pgtype.Numeric
	TravelerPayout    pgtype.Numeric
	Currency          string
	IsReleased        bool
	ReleasedAt        pgtype.Timestamptz
	IsDisputed        bool
	DisputedAt        pgtype.Timestamptz
	DisputeResolution pgtype.Text
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

type Reviews struct {
	ID           uuid.UUID
	ReviewerID   uuid.UUID
	ReviewedID   uuid.UUID
	OrderID      uuid.UUID
	Rating       int32
	Comment      pgtype.Text
	ReviewerRole string
	Response     pgtype.Text
	ResponseAt   pgtype.Timestamptz
	IsPublic     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type NotificationJobs struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Notifications struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Title     string
	Message   string
	Data      []byte
	IsRead    bool
	ReadAt    pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

type IdempotencyKeys struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	Endpoint         string
	RequestHash      string
	ResponseBodyHash pgtype.Text
	Status           string
	ResultOrderID    pgtype.UUID
	ExpiresAt        pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type Conversations struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	ShopperID     uuid.UUID
	TravelerID    uuid.UUID
	IsUnlocked    bool
	UnlockedAt    pgtype.Timestamptz
	IsActive      bool
	ClosedAt      pgtype.Timestamptz
	LastMessageAt pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Messages struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	MessageType    string
	Content        string
	AttachmentURL  pgtype.Text
	ReadAt         pgtype.Timestamptz
	EditedAt       pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
}
