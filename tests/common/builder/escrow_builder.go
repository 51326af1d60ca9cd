//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/escrow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HoldingBuilder struct {
	ID               uuid.UUID
	OrderID          uuid.UUID
	PaymentReference string
	Total            decimal.Decimal
	Fee              decimal.Decimal
	Payout           decimal.Decimal
	Currency         string
	IsReleased       bool
	IsDisputed       bool
	Now              time.Time
}

func NewHoldingBuilder() *HoldingBuilder {
	return &HoldingBuilder{
		ID:               uuid.New(),
		OrderID:          uuid.New(),
		PaymentReference: "pi_test_123",
		Total:            decimal.RequireFromString("105.00"),
		Fee:              decimal.RequireFromString("5.00"),
		Payout:           decimal.RequireFromString("100.00"),
		Currency:         "USD",
		Now:              FixedNow,
	}
}

func (b *HoldingBuilder) With(mutate func(*HoldingBuilder)) *HoldingBuilder {
	mutate(b)
	return b
}

func (b *HoldingBuilder) BuildDomain() (*escrow.Holding, error) {
	return escrow.NewHolding(b.OrderID, b.PaymentReference, b.Total, b.Fee, b.Payout, b.Currency, b.Now)
}

func (b *HoldingBuilder) BuildReconstructed() *escrow.Holding {
	var releasedAt, disputedAt *time.Time
	if b.IsReleased {
		t := b.Now
		releasedAt = &t
	}
	if b.IsDisputed {
		t := b.Now
		disputedAt = &t
	}
	return escrow.ReconstructHolding(b.ID, b.OrderID, b.PaymentReference, b.Total, b.Fee, b.Payout, b.Currency,
		b.IsReleased, releasedAt, b.IsDisputed, disputedAt, nil, b.Now, b.Now)
}

// Fluent builder methods
func (b *HoldingBuilder) ForOrder(orderID uuid.UUID) *HoldingBuilder {
	b.OrderID = orderID
	return b
}

func (b *HoldingBuilder) AsReleased() *HoldingBuilder {
	b.IsReleased = true
	return b
}

func (b *HoldingBuilder) AsDisputed() *HoldingBuilder {
	b.IsDisputed = true
	return b
}
