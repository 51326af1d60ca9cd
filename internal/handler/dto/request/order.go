package request

import (
	"time"

	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	ProductName           string           `json:"product_name" binding:"required,max=255"`
	ProductURL            string           `json:"product_url" binding:"required,url"`
	ProductDescription    *string          `json:"product_description" binding:"omitempty,max=2000"`
	ProductImageURL       *string          `json:"product_image_url" binding:"omitempty,url"`
	ProductPrice          decimal.Decimal  `json:"product_price"`
	ProductCurrency       string           `json:"product_currency" binding:"omitempty,currency"`
	Quantity              int              `json:"quantity" binding:"omitempty,min=1"`
	DestinationCountry    string           `json:"destination_country" binding:"required,iso2"`
	DestinationCity       string           `json:"destination_city" binding:"required,max=100"`
	DestinationAddress    *string          `json:"destination_address" binding:"omitempty,max=500"`
	RewardAmount          decimal.Decimal  `json:"reward_amount" binding:"positive_decimal"`
	RewardCurrency        string           `json:"reward_currency" binding:"omitempty,currency"`
	Deadline              time.Time        `json:"deadline" binding:"required"`
	PreferredDeliveryDate *time.Time       `json:"preferred_delivery_date"`
	SpecialInstructions   *string          `json:"special_instructions" binding:"omitempty,max=1000"`
	WeightEstimate        *decimal.Decimal `json:"weight_estimate"`
	SizeDescription       *string          `json:"size_description" binding:"omitempty,max=255"`
	Publish               bool             `json:"publish"`
}

func (r *CreateOrderRequest) ToDomain() order.CreateInput {
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return order.CreateInput{
		Product: order.ProductInput{
			Name:        r.ProductName,
			URL:         r.ProductURL,
			Description: r.ProductDescription,
			ImageURL:    r.ProductImageURL,
			Price:       r.ProductPrice,
			Currency:    r.ProductCurrency,
			Quantity:    quantity,
		},
		DestinationCountry:    r.DestinationCountry,
		DestinationCity:       r.DestinationCity,
		DestinationAddress:    r.DestinationAddress,
		RewardAmount:          r.RewardAmount,
		RewardCurrency:        r.RewardCurrency,
		Deadline:              r.Deadline,
		PreferredDeliveryDate: r.PreferredDeliveryDate,
		SpecialInstructions:   r.SpecialInstructions,
		WeightEstimate:        r.WeightEstimate,
		SizeDescription:       r.SizeDescription,
		Publish:               r.Publish,
	}
}

// UpdateOrderRequest is a partial update; absent fields are left unchanged.
type UpdateOrderRequest struct {
	ProductName           *string          `json:"product_name" binding:"omitempty,max=255"`
	ProductURL            *string          `json:"product_url" binding:"omitempty,url"`
	ProductDescription    *string          `json:"product_description" binding:"omitempty,max=2000"`
	ProductImageURL       *string          `json:"product_image_url" binding:"omitempty,url"`
	ProductPrice          *decimal.Decimal `json:"product_price"`
	ProductCurrency       *string          `json:"product_currency" binding:"omitempty,currency"`
	Quantity              *int             `json:"quantity" binding:"omitempty,min=1"`
	DestinationCountry    *string          `json:"destination_country" binding:"omitempty,iso2"`
	DestinationCity       *string          `json:"destination_city" binding:"omitempty,max=100"`
	DestinationAddress    *string          `json:"destination_address" binding:"omitempty,max=500"`
	RewardAmount          *decimal.Decimal `json:"reward_amount" binding:"omitempty,positive_decimal"`
	RewardCurrency        *string          `json:"reward_currency" binding:"omitempty,currency"`
	Deadline              *time.Time       `json:"deadline"`
	PreferredDeliveryDate *time.Time       `json:"preferred_delivery_date"`
	SpecialInstructions   *string          `json:"special_instructions" binding:"omitempty,max=1000"`
	WeightEstimate        *decimal.Decimal `json:"weight_estimate"`
	SizeDescription       *string          `json:"size_description" binding:"omitempty,max=255"`
}

func (r *UpdateOrderRequest) ToDomain() order.UpdateInput {
	return order.UpdateInput{
		ProductName:           r.ProductName,
		ProductURL:            r.ProductURL,
		ProductDescription:    r.ProductDescription,
		ProductImageURL:       r.ProductImageURL,
		ProductPrice:          r.ProductPrice,
		ProductCurrency:       r.ProductCurrency,
		Quantity:              r.Quantity,
		DestinationCountry:    r.DestinationCountry,
		DestinationCity:       r.DestinationCity,
		DestinationAddress:    r.DestinationAddress,
		RewardAmount:          r.RewardAmount,
		RewardCurrency:        r.RewardCurrency,
		Deadline:              r.Deadline,
		PreferredDeliveryDate: r.PreferredDeliveryDate,
		SpecialInstructions:   r.SpecialInstructions,
		WeightEstimate:        r.WeightEstimate,
		SizeDescription:       r.SizeDescription,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes" binding:"max=1000"`
}

func (r *ChangeStatusRequest) ToCommand() commands.ChangeStatusRequest {
	return commands.ChangeStatusRequest{Status: r.Status, Notes: r.Notes}
}
