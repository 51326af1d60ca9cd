package offer

import (
	"time"

	"marketplace-api/internal/domain/order"

	"github.com/google/uuid"
)

// AcceptResult carries every entity Accept mutated so the caller can persist them together.
type AcceptResult struct {
	Offer     *Offer
	Order     *order.Order
	History   *order.StatusHistory
	Withdrawn []*Offer
}

// Accept makes target the winning offer on o. siblings are the other offers of the
// same order; each one still stored as active is withdrawn. Preconditions are checked
// before anything is mutated.
func Accept(target *Offer, o *order.Order, siblings []*Offer, now time.Time) (*AcceptResult, error) {
	if target.orderID != o.ID() {
		return nil, ErrOrderMismatch
	}
	if !target.IsActive(now) {
		return nil, target.stateError(ErrOfferNotAcceptable, StatusAccepted, now)
	}
	if !o.CanAcceptOffers() {
		se := target.stateError(ErrOfferNotAcceptable, StatusAccepted, now)
		se.Cause = ErrOrderNotAcceptingOffers
		return nil, se
	}

	history, err := o.AssignTraveler(target.travelerID, now)
	if err != nil {
		return nil, err
	}
	target.setStatus(StatusAccepted, now)

	var withdrawn []*Offer
	for _, s := range siblings {
		if s.id == target.id || s.orderID != o.ID() || s.status != StatusActive {
			continue
		}
		s.setStatus(StatusWithdrawn, now)
		withdrawn = append(withdrawn, s)
	}

	return &AcceptResult{
		Offer:     target,
		Order:     o,
		History:   history,
		Withdrawn: withdrawn,
	}, nil
}

// ExpireDue moves every offer whose expiry is at or before now from active to expired
// and returns the ones it changed.
func ExpireDue(offers []*Offer, now time.Time) []*Offer {
	var expired []*Offer
	for _, f := range offers {
		if f.isDue(now) {
			f.setStatus(StatusExpired, now)
			expired = append(expired, f)
		}
	}
	return expired
}

// WithdrawOpen withdraws every offer on orderID that is still live at now. Offers past
// their expiry are left for the sweep.
func WithdrawOpen(offers []*Offer, orderID uuid.UUID, now time.Time) []*Offer {
	var withdrawn []*Offer
	for _, f := range offers {
		if f.orderID != orderID || !f.IsActive(now) {
			continue
		}
		f.setStatus(StatusWithdrawn, now)
		withdrawn = append(withdrawn, f)
	}
	return withdrawn
}
