//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	TravelerID     uuid.UUID
	Message        *string
	ProposedAmount *decimal.Decimal
	Status         offer.Status
	ExpiresAt      *time.Time
	Now            time.Time
}

func NewOfferBuilder() *OfferBuilder {
	msg := "I fly from Tokyo next week"
	expires := FixedNow.Add(offer.DefaultExpiry)
	return &OfferBuilder{
		ID:         uuid.New(),
		OrderID:    uuid.New(),
		TravelerID: uuid.New(),
		Message:    &msg,
		Status:     offer.StatusActive,
		ExpiresAt:  &expires,
		Now:        FixedNow,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) BuildReconstructed() *offer.Offer {
	return offer.ReconstructOffer(b.ID, b.OrderID, b.TravelerID, b.Message, b.ProposedAmount, nil, b.Status, b.ExpiresAt, b.Now, b.Now)
}

func (b *OfferBuilder) BuildCreateInput() offer.CreateInput {
	return offer.CreateInput{Message: b.Message, ProposedAmount: b.ProposedAmount}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:             b.ID,
		OrderID:        b.OrderID,
		TravelerID:     b.TravelerID,
		TravelerName:   "Test Traveler",
		Message:        b.Message,
		ProposedAmount: b.ProposedAmount,
		Status:         string(b.Status),
		ExpiresAt:      b.ExpiresAt,
		OrderShopperID: uuid.New(),
		OrderStatus:    "active",
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}

// Fluent builder methods
func (b *OfferBuilder) ForOrder(orderID uuid.UUID) *OfferBuilder {
	b.OrderID = orderID
	return b
}

func (b *OfferBuilder) ByTraveler(travelerID uuid.UUID) *OfferBuilder {
	b.TravelerID = travelerID
	return b
}

func (b *OfferBuilder) WithStatus(s offer.Status) *OfferBuilder {
	b.Status = s
	return b
}

func (b *OfferBuilder) ExpiringAt(t time.Time) *OfferBuilder {
	b.ExpiresAt = &t
	return b
}
