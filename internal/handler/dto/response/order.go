package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID                    uuid.UUID  `json:"id"`
	ShopperID             uuid.UUID  `json:"shopper_id"`
	MatchedTravelerID     *uuid.UUID `json:"matched_traveler_id,omitempty"`
	ProductName           string     `json:"product_name"`
	ProductURL            string     `json:"product_url"`
	ProductDescription    *string    `json:"product_description,omitempty"`
	ProductImageURL       *string    `json:"product_image_url,omitempty"`
	ProductPrice          string     `json:"product_price"`
	ProductCurrency       string     `json:"product_currency"`
	ProductQuantity       int        `json:"product_quantity"`
	DestinationCountry    string     `json:"destination_country"`
	DestinationCity       string     `json:"destination_city"`
	DestinationAddress    *string    `json:"destination_address,omitempty"`
	RewardAmount          string     `json:"reward_amount"`
	RewardCurrency        string     `json:"reward_currency"`
	PlatformFee           string     `json:"platform_fee"`
	TotalCost             string     `json:"total_cost"`
	Deadline              time.Time  `json:"deadline"`
	PreferredDeliveryDate *time.Time `json:"preferred_delivery_date,omitempty"`
	SpecialInstructions   *string    `json:"special_instructions,omitempty"`
	WeightEstimate        *string    `json:"weight_estimate,omitempty"`
	SizeDescription       *string    `json:"size_description,omitempty"`
	Status                string     `json:"status"`
	AllowedNext           []string   `json:"allowed_next_statuses"`
	MatchedAt             *time.Time `json:"matched_at,omitempty"`
	PurchasedAt           *time.Time `json:"purchased_at,omitempty"`
	ShippedAt             *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt           *time.Time `json:"delivered_at,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type StatusHistoryResponse struct {
	ID        uuid.UUID  `json:"id"`
	OldStatus *string    `json:"old_status"`
	NewStatus string     `json:"new_status"`
	ActorID   *uuid.UUID `json:"actor_id,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	resp := mapOne[OrderResponse](v)
	if resp != nil && resp.AllowedNext == nil {
		resp.AllowedNext = []string{}
	}
	return resp
}

func FromOrderPage(items []*queries.OrderView, next *queries.Cursor) Page[OrderResponse] {
	out := make([]*OrderResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromOrderView(it))
	}
	return Page[OrderResponse]{Items: out, NextCursor: cursorString(next)}
}

func FromStatusHistory(items []*queries.StatusHistoryView) []*StatusHistoryResponse {
	return mapList[StatusHistoryResponse](items)
}

func cursorString(c *queries.Cursor) *string {
	if c == nil {
		return nil
	}
	s := c.After
	return &s
}
