package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderView struct {
	ID                    uuid.UUID
	ShopperID             uuid.UUID
	MatchedTravelerID     *uuid.UUID
	ProductName           string
	ProductURL            string
	ProductDescription    *string
	ProductImageURL       *string
	ProductPrice          decimal.Decimal
	ProductCurrency       string
	ProductQuantity       int
	DestinationCountry    string
	DestinationCity       string
	DestinationAddress    *string
	RewardAmount          decimal.Decimal
	RewardCurrency        string
	PlatformFee           decimal.Decimal
	TotalCost             decimal.Decimal
	Deadline              time.Time
	PreferredDeliveryDate *time.Time
	SpecialInstructions   *string
	WeightEstimate        *decimal.Decimal
	SizeDescription       *string
	Status                string
	AllowedNext           []string
	MatchedAt             *time.Time
	PurchasedAt           *time.Time
	ShippedAt             *time.Time
	DeliveredAt           *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type StatusHistoryView struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	OldStatus *string
	NewStatus string
	ActorID   *uuid.UUID
	Notes     *string
	CreatedAt time.Time
}

// OrderSearchFilter fields are optional; nil disables the predicate.
type OrderSearchFilter struct {
	Status             string
	DestinationCountry *string
	DestinationCity    *string
	MinReward          *decimal.Decimal
	MaxReward          *decimal.Decimal
	DeadlineBefore     *time.Time
	DeadlineAfter      *time.Time
	Currency           *string
	Query              *string
	ExcludeShopperID   *uuid.UUID
}

// OfferView carries the effective status: a live offer past its expiry reads as expired.
type OfferView struct {
	ID                   uuid.UUID
	OrderID              uuid.UUID
	TravelerID           uuid.UUID
	TravelerName         string
	Message              *string
	ProposedAmount       *decimal.Decimal
	ProposedDeliveryDate *time.Time
	Status               string
	ExpiresAt            *time.Time
	OrderShopperID       uuid.UUID
	OrderStatus          string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type OfferStats struct {
	Total     int64
	Active    int64
	Accepted  int64
	Withdrawn int64
	Rejected  int64
	Expired   int64
}

type EscrowView struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	PaymentReference  string
	TotalAmount       decimal.Decimal
	PlatformFee       decimal.Decimal
	TravelerPayout    decimal.Decimal
	Currency          string
	IsReleased        bool
	ReleasedAt        *time.Time
	IsDisputed        bool
	DisputedAt        *time.Time
	DisputeResolution *string
	CanRelease        bool
	OrderStatus       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ReviewView struct {
	ID           uuid.UUID
	ReviewerID   uuid.UUID
	ReviewerName string
	ReviewedID   uuid.UUID
	OrderID      uuid.UUID
	Rating       int
	Comment      *string
	ReviewerRole string
	Response     *string
	ResponseAt   *time.Time
	IsPublic     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ReviewFilters struct {
	ReviewerRole *string
	MinRating    *int
}

type RoleRating struct {
	ReviewerRole  string
	Count         int64
	AverageRating decimal.Decimal
}

type RatingSummary struct {
	UserID  uuid.UUID
	Total   int64
	Average decimal.Decimal
	ByRole  []RoleRating
}

type NotificationView struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Title     string
	Message   string
	Data      map[string]any
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID             uuid.UUID
	Email          string
	Role           string
	FirstName      string
	LastName       string
	DisplayName    *string
	Bio            *string
	Phone          *string
	PrimaryCountry *string
	PrimaryCity    *string
	AvatarURL      *string
	IsActive       bool
	LastLoginAt    *time.Time
	CreatedAt      time.Time
}

// PublicUserView is what any caller may see of another account.
type PublicUserView struct {
	ID             uuid.UUID
	Role           string
	FirstName      string
	LastName       string
	DisplayName    *string
	Bio            *string
	PrimaryCountry *string
	PrimaryCity    *string
	AvatarURL      *string
	CreatedAt      time.Time
}

// UserSearchFilter narrows the public directory; Role is "shopper", "traveler" or empty for both.
type UserSearchFilter struct {
	Role  string
	Query *string
}

type ConversationView struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	ShopperID     uuid.UUID
	TravelerID    uuid.UUID
	IsUnlocked    bool
	UnlockedAt    *time.Time
	IsActive      bool
	ClosedAt      *time.Time
	LastMessageAt *time.Time
	// UnreadCount counts messages the viewer did not send and has not read.
	UnreadCount int64
	CanSend     bool
	CreatedAt   time.Time
}

type MessageView struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Type           string
	Content        string
	AttachmentURL  *string
	IsRead         bool
	ReadAt         *time.Time
	EditedAt       *time.Time
	CreatedAt      time.Time
}
