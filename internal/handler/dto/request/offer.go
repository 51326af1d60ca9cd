package request

import (
	"time"

	"marketplace-api/internal/domain/offer"

	"github.com/shopspring/decimal"
)

type CreateOfferRequest struct {
	Message              *string          `json:"message" binding:"omitempty,max=1000"`
	ProposedAmount       *decimal.Decimal `json:"proposed_amount" binding:"omitempty,positive_decimal"`
	ProposedDeliveryDate *time.Time       `json:"proposed_delivery_date"`
	// Zero means the configured default.
	ExpiresInHours int `json:"expires_in_hours" binding:"omitempty,min=1,max=720"`
}

func (r *CreateOfferRequest) ToDomain() offer.CreateInput {
	return offer.CreateInput{
		Message:              r.Message,
		ProposedAmount:       r.ProposedAmount,
		ProposedDeliveryDate: r.ProposedDeliveryDate,
		ExpiresIn:            time.Duration(r.ExpiresInHours) * time.Hour,
	}
}

type UpdateOfferRequest struct {
	Message              *string          `json:"message" binding:"omitempty,max=1000"`
	ProposedAmount       *decimal.Decimal `json:"proposed_amount" binding:"omitempty,positive_decimal"`
	ProposedDeliveryDate *time.Time       `json:"proposed_delivery_date"`
}

func (r *UpdateOfferRequest) ToDomain() offer.UpdateInput {
	return offer.UpdateInput{
		Message:              r.Message,
		ProposedAmount:       r.ProposedAmount,
		ProposedDeliveryDate: r.ProposedDeliveryDate,
	}
}
