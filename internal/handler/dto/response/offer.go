package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferResponse struct {
	ID                   uuid.UUID  `json:"id"`
	OrderID              uuid.UUID  `json:"order_id"`
	TravelerID           uuid.UUID  `json:"traveler_id"`
	TravelerName         string     `json:"traveler_name"`
	Message              *string    `json:"message,omitempty"`
	ProposedAmount       *string    `json:"proposed_amount,omitempty"`
	ProposedDeliveryDate *time.Time `json:"proposed_delivery_date,omitempty"`
	Status               string     `json:"status"`
	ExpiresAt            *time.Time `json:"expires_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type OfferStatsResponse struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Accepted  int64 `json:"accepted"`
	Withdrawn int64 `json:"withdrawn"`
	Rejected  int64 `json:"rejected"`
	Expired   int64 `json:"expired"`
}

type ExpireOffersResponse struct {
	Expired int `json:"expired"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	return mapOne[OfferResponse](v)
}

func FromOfferList(items []*queries.OfferView) []*OfferResponse {
	return mapList[OfferResponse](items)
}

func FromOfferPage(items []*queries.OfferView, next *queries.Cursor) Page[OfferResponse] {
	return Page[OfferResponse]{Items: FromOfferList(items), NextCursor: cursorString(next)}
}

func FromOfferStats(s *queries.OfferStats) *OfferStatsResponse {
	return mapOne[OfferStatsResponse](s)
}
