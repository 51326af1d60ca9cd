//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/order"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID                uuid.UUID
	ShopperID         uuid.UUID
	MatchedTravelerID *uuid.UUID
	Status            order.Status
	Input             order.CreateInput
	Now               time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:        uuid.New(),
		ShopperID: uuid.New(),
		Status:    order.StatusActive,
		Now:       FixedNow,
		Input: order.CreateInput{
			Product: order.ProductInput{
				Name:     "Tokyo Banana",
				URL:      "https://example.com/tokyo-banana",
				Price:    decimal.RequireFromString("25.00"),
				Currency: "JPY",
				Quantity: 2,
			},
			DestinationCountry: "US",
			DestinationCity:    "Seattle",
			RewardAmount:       decimal.RequireFromString("100.00"),
			RewardCurrency:     "USD",
			Deadline:           FixedNow.Add(14 * 24 * time.Hour),
			Publish:            true,
		},
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// BuildDomain goes through order creation and returns the creation history record too.
func (b *OrderBuilder) BuildDomain() (*order.Order, *order.StatusHistory, error) {
	return order.NewOrder(b.ShopperID, b.Input, b.Now)
}

// BuildReconstructed returns an order already in b.Status, bypassing the graph.
func (b *OrderBuilder) BuildReconstructed() *order.Order {
	in := b.Input
	product := order.ReconstructProduct(in.Product)
	dest := order.ReconstructDestination(in.DestinationCountry, in.DestinationCity, in.DestinationAddress)
	pricing, _ := order.NewPricing(in.RewardAmount, in.RewardCurrency)

	var matchedAt *time.Time
	if b.Status.IsMatchedPhase() {
		t := b.Now
		matchedAt = &t
	}
	return order.ReconstructOrder(order.ReconstructInput{
		ID:                b.ID,
		ShopperID:         b.ShopperID,
		MatchedTravelerID: b.MatchedTravelerID,
		Product:           product,
		Destination:       dest,
		Pricing:           pricing,
		Deadline:          in.Deadline,
		Status:            b.Status,
		MatchedAt:         matchedAt,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	})
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	in := b.Input
	return reqdto.CreateOrderRequest{
		ProductName:        in.Product.Name,
		ProductURL:         in.Product.URL,
		ProductPrice:       in.Product.Price,
		ProductCurrency:    in.Product.Currency,
		Quantity:           in.Product.Quantity,
		DestinationCountry: in.DestinationCountry,
		DestinationCity:    in.DestinationCity,
		RewardAmount:       in.RewardAmount,
		RewardCurrency:     in.RewardCurrency,
		Deadline:           in.Deadline,
		Publish:            in.Publish,
	}
}

// BuildView returns the read model of BuildReconstructed.
func (b *OrderBuilder) BuildView() *queries.OrderView {
	o := b.BuildReconstructed()
	next := make([]string, 0)
	for _, s := range o.Status().AllowedNext() {
		next = append(next, string(s))
	}
	return &queries.OrderView{
		ID:                 o.ID(),
		ShopperID:          o.ShopperID(),
		MatchedTravelerID:  o.MatchedTravelerID(),
		ProductName:        o.Product().Name(),
		ProductURL:         o.Product().URL(),
		ProductPrice:       o.Product().Price(),
		ProductCurrency:    o.Product().Currency(),
		ProductQuantity:    o.Product().Quantity(),
		DestinationCountry: o.Destination().Country(),
		DestinationCity:    o.Destination().City(),
		RewardAmount:       o.Pricing().Reward(),
		RewardCurrency:     o.Pricing().Currency(),
		PlatformFee:        o.Pricing().PlatformFee(),
		TotalCost:          o.Pricing().TotalCost(),
		Deadline:           o.Deadline(),
		Status:             string(o.Status()),
		AllowedNext:        next,
		MatchedAt:          o.MatchedAt(),
		CreatedAt:          b.Now,
		UpdatedAt:          b.Now,
	}
}

// Fluent builder methods
func (b *OrderBuilder) WithReward(amount string) *OrderBuilder {
	b.Input.RewardAmount = decimal.RequireFromString(amount)
	return b
}

func (b *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	b.Status = s
	return b
}

// MatchedTo puts the order in s with travelerID as the matched traveler.
func (b *OrderBuilder) MatchedTo(travelerID uuid.UUID, s order.Status) *OrderBuilder {
	b.MatchedTravelerID = &travelerID
	b.Status = s
	return b
}

func (b *OrderBuilder) AsDraft() *OrderBuilder {
	b.Input.Publish = false
	b.Status = order.StatusDraft
	return b
}
