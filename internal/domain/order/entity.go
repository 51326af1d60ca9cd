package order

import (
	"time"

	"marketplace-api/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	id                    uuid.UUID
	shopperID             uuid.UUID
	matchedTravelerID     *uuid.UUID
	product               Product
	destination           Destination
	pricing               Pricing
	deadline              time.Time
	preferredDeliveryDate *time.Time
	specialInstructions   *string
	weightEstimate        *decimal.Decimal
	sizeDescription       *string
	status                Status
	matchedAt             *time.Time
	purchasedAt           *time.Time
	shippedAt             *time.Time
	deliveredAt           *time.Time
	completedAt           *time.Time
	createdAt             time.Time
	updatedAt             time.Time
	deletedAt             *time.Time
}

type CreateInput struct {
	Product               ProductInput
	DestinationCountry    string
	DestinationCity       string
	DestinationAddress    *string
	RewardAmount          decimal.Decimal
	RewardCurrency        string
	Deadline              time.Time
	PreferredDeliveryDate *time.Time
	SpecialInstructions   *string
	WeightEstimate        *decimal.Decimal
	SizeDescription       *string
	Publish               bool
}

// NewOrder validates the input and returns the order with its creation history record.
// The order starts in draft, or active when Publish is set.
func NewOrder(shopperID uuid.UUID, in CreateInput, now time.Time) (*Order, *StatusHistory, error) {
	product, err := NewProduct(in.Product)
	if err != nil {
		return nil, nil, err
	}
	dest, err := NewDestination(in.DestinationCountry, in.DestinationCity, in.DestinationAddress)
	if err != nil {
		return nil, nil, err
	}
	pricing, err := NewPricing(in.RewardAmount, in.RewardCurrency)
	if err != nil {
		return nil, nil, err
	}
	if !in.Deadline.After(now) {
		return nil, nil, ErrDeadlineNotFuture
	}
	if in.PreferredDeliveryDate != nil && !in.PreferredDeliveryDate.After(now) {
		return nil, nil, ErrInvalidDeliveryDate
	}
	if in.WeightEstimate != nil && in.WeightEstimate.IsNegative() {
		return nil, nil, ErrInvalidWeight
	}
	instructions, err := optionalText(in.SpecialInstructions, MaxInstructionsLength)
	if err != nil {
		return nil, nil, err
	}
	size, err := optionalText(in.SizeDescription, MaxSizeLength)
	if err != nil {
		return nil, nil, err
	}

	status := StatusDraft
	if in.Publish {
		status = StatusActive
	}

	o := &Order{
		id:                    uuid.New(),
		shopperID:             shopperID,
		product:               product,
		destination:           dest,
		pricing:               pricing,
		deadline:              in.Deadline,
		preferredDeliveryDate: in.PreferredDeliveryDate,
		specialInstructions:   instructions,
		weightEstimate:        in.WeightEstimate,
		sizeDescription:       size,
		status:                status,
		createdAt:             now,
		updatedAt:             now,
	}
	actor := shopperID
	return o, newStatusHistory(o.id, nil, status, &actor, ptrText("order created"), now), nil
}

type ReconstructInput struct {
	ID                    uuid.UUID
	ShopperID             uuid.UUID
	MatchedTravelerID     *uuid.UUID
	Product               Product
	Destination           Destination
	Pricing               Pricing
	Deadline              time.Time
	PreferredDeliveryDate *time.Time
	SpecialInstructions   *string
	WeightEstimate        *decimal.Decimal
	SizeDescription       *string
	Status                Status
	MatchedAt             *time.Time
	PurchasedAt           *time.Time
	ShippedAt             *time.Time
	DeliveredAt           *time.Time
	CompletedAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time
}

func ReconstructOrder(in ReconstructInput) *Order {
	return &Order{
		id:                    in.ID,
		shopperID:             in.ShopperID,
		matchedTravelerID:     in.MatchedTravelerID,
		product:               in.Product,
		destination:           in.Destination,
		pricing:               in.Pricing,
		deadline:              in.Deadline,
		preferredDeliveryDate: in.PreferredDeliveryDate,
		specialInstructions:   in.SpecialInstructions,
		weightEstimate:        in.WeightEstimate,
		sizeDescription:       in.SizeDescription,
		status:                in.Status,
		matchedAt:             in.MatchedAt,
		purchasedAt:           in.PurchasedAt,
		shippedAt:             in.ShippedAt,
		deliveredAt:           in.DeliveredAt,
		completedAt:           in.CompletedAt,
		createdAt:             in.CreatedAt,
		updatedAt:             in.UpdatedAt,
		deletedAt:             in.DeletedAt,
	}
}

// Transition moves the order along one edge of the status graph and returns the history
// record to persist. It checks graph validity only; callers authorize the actor first.
// On error the order is unchanged.
func (o *Order) Transition(next Status, actorID *uuid.UUID, notes string, now time.Time) (*StatusHistory, error) {
	if !o.status.CanTransitionTo(next) {
		return nil, &TransitionError{From: o.status, To: next}
	}

	prev := o.status
	o.status = next
	o.stampEntered(next, now)
	o.updatedAt = now

	return newStatusHistory(o.id, &prev, next, actorID, trimmedOrNil(&notes), now), nil
}

// stampEntered sets the timestamp for the entered state once.
func (o *Order) stampEntered(s Status, now time.Time) {
	var field **time.Time
	switch s {
	case StatusMatched:
		field = &o.matchedAt
	case StatusPurchased:
		field = &o.purchasedAt
	case StatusInTransit:
		field = &o.shippedAt
	case StatusDelivered:
		field = &o.deliveredAt
	case StatusCompleted:
		field = &o.completedAt
	default:
		return
	}
	if *field == nil {
		t := now
		*field = &t
	}
}

func (o *Order) CanAcceptOffers() bool {
	return o.status == StatusActive && o.matchedTravelerID == nil
}

// AssignTraveler binds the traveler and moves the order to matched with the traveler as actor.
func (o *Order) AssignTraveler(travelerID uuid.UUID, now time.Time) (*StatusHistory, error) {
	if !o.CanAcceptOffers() {
		return nil, ErrNotAcceptingOffers
	}
	actor := travelerID
	h, err := o.Transition(StatusMatched, &actor, "offer accepted", now)
	if err != nil {
		return nil, err
	}
	o.matchedTravelerID = &actor
	return h, nil
}

func (o *Order) IsEditable() bool {
	return o.status == StatusDraft || o.status == StatusActive
}

// MarkDeleted hides the order from every read. History and offers are kept.
func (o *Order) MarkDeleted(now time.Time) error {
	if o.deletedAt != nil {
		return ErrAlreadyDeleted
	}
	if !o.IsEditable() {
		return ErrNotEditable
	}
	o.deletedAt = &now
	o.updatedAt = now
	return nil
}

func (o *Order) IsDeleted() bool {
	return o.deletedAt != nil
}

func (o *Order) IsShopper(userID uuid.UUID) bool {
	return o.shopperID == userID
}

func (o *Order) IsMatchedTraveler(userID uuid.UUID) bool {
	return o.matchedTravelerID != nil && *o.matchedTravelerID == userID
}

func (o *Order) IsParticipant(userID uuid.UUID) bool {
	return o.IsShopper(userID) || o.IsMatchedTraveler(userID)
}

type UpdateInput struct {
	ProductName           *string
	ProductURL            *string
	ProductDescription    *string
	ProductImageURL       *string
	ProductPrice          *decimal.Decimal
	ProductCurrency       *string
	Quantity              *int
	DestinationCountry    *string
	DestinationCity       *string
	DestinationAddress    *string
	RewardAmount          *decimal.Decimal
	RewardCurrency        *string
	Deadline              *time.Time
	PreferredDeliveryDate *time.Time
	SpecialInstructions   *string
	WeightEstimate        *decimal.Decimal
	SizeDescription       *string
}

// Update applies the set fields of in. All fields are validated before any is written.
func (o *Order) Update(in UpdateInput, now time.Time) error {
	if !o.IsEditable() {
		return ErrNotEditable
	}

	pin := o.product.input()
	patch.Apply(&pin.Name, in.ProductName)
	patch.Apply(&pin.URL, in.ProductURL)
	patch.ApplyOptional(&pin.Description, in.ProductDescription)
	patch.ApplyOptional(&pin.ImageURL, in.ProductImageURL)
	patch.Apply(&pin.Price, in.ProductPrice)
	patch.Apply(&pin.Currency, in.ProductCurrency)
	patch.Apply(&pin.Quantity, in.Quantity)
	product, err := NewProduct(pin)
	if err != nil {
		return err
	}

	country, city, address := o.destination.country, o.destination.city, o.destination.address
	patch.Apply(&country, in.DestinationCountry)
	patch.Apply(&city, in.DestinationCity)
	patch.ApplyOptional(&address, in.DestinationAddress)
	dest, err := NewDestination(country, city, address)
	if err != nil {
		return err
	}

	reward, currency := o.pricing.reward, o.pricing.currency
	patch.Apply(&reward, in.RewardAmount)
	patch.Apply(&currency, in.RewardCurrency)
	pricing, err := NewPricing(reward, currency)
	if err != nil {
		return err
	}

	deadline := o.deadline
	if in.Deadline != nil {
		if !in.Deadline.After(now) {
			return ErrDeadlineNotFuture
		}
		deadline = *in.Deadline
	}
	delivery := o.preferredDeliveryDate
	if in.PreferredDeliveryDate != nil {
		if !in.PreferredDeliveryDate.After(now) {
			return ErrInvalidDeliveryDate
		}
		delivery = in.PreferredDeliveryDate
	}
	weight := o.weightEstimate
	if in.WeightEstimate != nil {
		if in.WeightEstimate.IsNegative() {
			return ErrInvalidWeight
		}
		weight = in.WeightEstimate
	}
	instructions := o.specialInstructions
	if in.SpecialInstructions != nil {
		if instructions, err = optionalText(in.SpecialInstructions, MaxInstructionsLength); err != nil {
			return err
		}
	}
	size := o.sizeDescription
	if in.SizeDescription != nil {
		if size, err = optionalText(in.SizeDescription, MaxSizeLength); err != nil {
			return err
		}
	}

	o.product = product
	o.destination = dest
	o.pricing = pricing
	o.deadline = deadline
	o.preferredDeliveryDate = delivery
	o.weightEstimate = weight
	o.specialInstructions = instructions
	o.sizeDescription = size
	o.updatedAt = now
	return nil
}

func (o *Order) ID() uuid.UUID                     { return o.id }
func (o *Order) ShopperID() uuid.UUID              { return o.shopperID }
func (o *Order) MatchedTravelerID() *uuid.UUID     { return o.matchedTravelerID }
func (o *Order) Product() Product                  { return o.product }
func (o *Order) Destination() Destination          { return o.destination }
func (o *Order) Pricing() Pricing                  { return o.pricing }
func (o *Order) Deadline() time.Time               { return o.deadline }
func (o *Order) PreferredDeliveryDate() *time.Time { return o.preferredDeliveryDate }
func (o *Order) SpecialInstructions() *string      { return o.specialInstructions }
func (o *Order) WeightEstimate() *decimal.Decimal  { return o.weightEstimate }
func (o *Order) SizeDescription() *string          { return o.sizeDescription }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) MatchedAt() *time.Time             { return o.matchedAt }
func (o *Order) PurchasedAt() *time.Time           { return o.purchasedAt }
func (o *Order) ShippedAt() *time.Time             { return o.shippedAt }
func (o *Order) DeliveredAt() *time.Time           { return o.deliveredAt }
func (o *Order) CompletedAt() *time.Time           { return o.completedAt }
func (o *Order) CreatedAt() time.Time              { return o.createdAt }
func (o *Order) UpdatedAt() time.Time              { return o.updatedAt }
func (o *Order) DeletedAt() *time.Time             { return o.deletedAt }

func ptrText(s string) *string {
	return &s
}
