package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type EscrowResponse struct {
	ID                uuid.UUID  `json:"id"`
	OrderID           uuid.UUID  `json:"order_id"`
	PaymentReference  string     `json:"payment_reference"`
	TotalAmount       string     `json:"total_amount"`
	PlatformFee       string     `json:"platform_fee"`
	TravelerPayout    string     `json:"traveler_payout"`
	Currency          string     `json:"currency"`
	IsReleased        bool       `json:"is_released"`
	ReleasedAt        *time.Time `json:"released_at,omitempty"`
	IsDisputed        bool       `json:"is_disputed"`
	DisputedAt        *time.Time `json:"disputed_at,omitempty"`
	DisputeResolution *string    `json:"dispute_resolution,omitempty"`
	CanRelease        bool       `json:"can_release"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromEscrowView(v *queries.EscrowView) *EscrowResponse {
	return mapOne[EscrowResponse](v)
}
