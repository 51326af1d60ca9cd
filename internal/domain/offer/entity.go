package offer

import (
	"strings"
	"time"
	"unicode/utf8"

	"marketplace-api/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxMessageLength = 1000

	DefaultExpiry = 48 * time.Hour
)

type Offer struct {
	id                   uuid.UUID
	orderID              uuid.UUID
	travelerID           uuid.UUID
	message              *string
	proposedAmount       *decimal.Decimal
	proposedDeliveryDate *time.Time
	status               Status
	expiresAt            *time.Time
	createdAt            time.Time
	updatedAt            time.Time
}

type CreateInput struct {
	Message              *string
	ProposedAmount       *decimal.Decimal
	ProposedDeliveryDate *time.Time
	ExpiresIn            time.Duration
}

// NewOffer creates an active offer by travelerID on o. existing holds the traveler's
// current offers on the same order; any live one blocks creation.
func NewOffer(o *order.Order, travelerID uuid.UUID, existing []*Offer, in CreateInput, now time.Time) (*Offer, error) {
	if !o.CanAcceptOffers() {
		return nil, ErrOrderNotAcceptingOffers
	}
	if o.ShopperID() == travelerID {
		return nil, ErrSelfOffer
	}
	for _, e := range existing {
		if e.orderID == o.ID() && e.travelerID == travelerID && e.IsActive(now) {
			return nil, ErrDuplicateActiveOffer
		}
	}

	fields, err := validateTerms(in.Message, in.ProposedAmount, in.ProposedDeliveryDate, now)
	if err != nil {
		return nil, err
	}
	ttl := in.ExpiresIn
	if ttl == 0 {
		ttl = DefaultExpiry
	}
	if ttl < 0 {
		return nil, ErrInvalidExpiry
	}
	expiresAt := now.Add(ttl)

	return &Offer{
		id:                   uuid.New(),
		orderID:              o.ID(),
		travelerID:           travelerID,
		message:              fields.message,
		proposedAmount:       fields.amount,
		proposedDeliveryDate: fields.date,
		status:               StatusActive,
		expiresAt:            &expiresAt,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructOffer(
	id, orderID, travelerID uuid.UUID,
	message *string,
	proposedAmount *decimal.Decimal,
	proposedDeliveryDate *time.Time,
	status Status,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:                   id,
		orderID:              orderID,
		travelerID:           travelerID,
		message:              message,
		proposedAmount:       proposedAmount,
		proposedDeliveryDate: proposedDeliveryDate,
		status:               status,
		expiresAt:            expiresAt,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// IsActive is derived: the stored status is active and the expiry, if any, has not passed.
func (f *Offer) IsActive(now time.Time) bool {
	return f.status == StatusActive && (f.expiresAt == nil || !now.After(*f.expiresAt))
}

// isDue reports whether the sweep should expire the offer.
func (f *Offer) isDue(now time.Time) bool {
	return f.status == StatusActive && f.expiresAt != nil && !f.expiresAt.After(now)
}

func (f *Offer) stateError(sentinel error, attempted Status, now time.Time) *StateError {
	return &StateError{
		Sentinel:  sentinel,
		OfferID:   f.id,
		Current:   f.status,
		Attempted: attempted,
		Expired:   f.status == StatusActive && !f.IsActive(now),
	}
}

func (f *Offer) Withdraw(now time.Time) error {
	if !f.IsActive(now) {
		return f.stateError(ErrNotWithdrawable, StatusWithdrawn, now)
	}
	f.setStatus(StatusWithdrawn, now)
	return nil
}

// Reject is the shopper's refusal. Callers check that the actor owns the order.
func (f *Offer) Reject(now time.Time) error {
	if !f.IsActive(now) {
		return f.stateError(ErrNotRejectable, StatusRejected, now)
	}
	f.setStatus(StatusRejected, now)
	return nil
}

type UpdateInput struct {
	Message              *string
	ProposedAmount       *decimal.Decimal
	ProposedDeliveryDate *time.Time
}

// Update changes the proposal terms of a live offer. Nil fields are kept.
func (f *Offer) Update(in UpdateInput, now time.Time) error {
	if !f.IsActive(now) {
		return f.stateError(ErrNotEditable, StatusActive, now)
	}
	msg, amount, date := f.message, f.proposedAmount, f.proposedDeliveryDate
	if in.Message != nil {
		msg = in.Message
	}
	if in.ProposedAmount != nil {
		amount = in.ProposedAmount
	}
	if in.ProposedDeliveryDate != nil {
		date = in.ProposedDeliveryDate
	}
	fields, err := validateTerms(msg, amount, date, now)
	if err != nil {
		return err
	}
	f.message, f.proposedAmount, f.proposedDeliveryDate = fields.message, fields.amount, fields.date
	f.updatedAt = now
	return nil
}

func (f *Offer) setStatus(s Status, now time.Time) {
	f.status = s
	f.updatedAt = now
}

type terms struct {
	message *string
	amount  *decimal.Decimal
	date    *time.Time
}

func validateTerms(message *string, amount *decimal.Decimal, date *time.Time, now time.Time) (terms, error) {
	var t terms
	if message != nil {
		m := strings.TrimSpace(*message)
		if utf8.RuneCountInString(m) > MaxMessageLength {
			return terms{}, ErrMessageTooLong
		}
		if m != "" {
			t.message = &m
		}
	}
	if amount != nil {
		a := amount.Round(2)
		if !a.IsPositive() {
			return terms{}, ErrInvalidAmount
		}
		t.amount = &a
	}
	if date != nil {
		if !date.After(now) {
			return terms{}, ErrDateNotFuture
		}
		d := *date
		t.date = &d
	}
	return t, nil
}

func (f *Offer) ID() uuid.UUID                    { return f.id }
func (f *Offer) OrderID() uuid.UUID               { return f.orderID }
func (f *Offer) TravelerID() uuid.UUID            { return f.travelerID }
func (f *Offer) Message() *string                 { return f.message }
func (f *Offer) ProposedAmount() *decimal.Decimal { return f.proposedAmount }
func (f *Offer) ProposedDeliveryDate() *time.Time { return f.proposedDeliveryDate }
func (f *Offer) Status() Status                   { return f.status }
func (f *Offer) ExpiresAt() *time.Time            { return f.expiresAt }
func (f *Offer) CreatedAt() time.Time             { return f.createdAt }
func (f *Offer) UpdatedAt() time.Time             { return f.updatedAt }
