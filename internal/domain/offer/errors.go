package offer

import (
	"errors"
	"fmt"

	"marketplace-api/internal/domain/order"

	"github.com/google/uuid"
)

var (
	ErrOrderNotAcceptingOffers = order.ErrNotAcceptingOffers

	ErrSelfOffer            = errors.New("travelers cannot make offers on their own orders")
	ErrDuplicateActiveOffer = errors.New("traveler already has an active offer on this order")
	ErrNotWithdrawable      = errors.New("offer cannot be withdrawn")
	ErrNotRejectable        = errors.New("offer cannot be rejected")
	ErrOfferNotAcceptable   = errors.New("offer cannot be accepted")
	ErrNotEditable          = errors.New("offer can only be changed while active")
	ErrOrderMismatch        = errors.New("offer does not belong to this order")
	ErrInvalidStatus        = errors.New("invalid offer status")
	ErrInvalidAmount        = errors.New("proposed amount must be positive")
	ErrDateNotFuture        = errors.New("proposed delivery date must be in the future")
	ErrInvalidExpiry        = errors.New("offer expiry must be positive")
	ErrMessageTooLong       = errors.New("offer message exceeds maximum length")
)

// StateError reports a terminal action requested on an offer that is not live,
// or on an offer whose order no longer accepts offers. In the second case Cause is
// order.ErrNotAcceptingOffers and errors.Is matches both.
type StateError struct {
	Sentinel  error
	OfferID   uuid.UUID
	Current   Status
	Attempted Status
	Expired   bool
	Cause     error
}

func (e *StateError) Error() string {
	msg := fmt.Sprintf("%s: offer %s is %s, requested %s", e.Sentinel, e.OfferID, e.Current, e.Attempted)
	if e.Expired {
		msg += " (expired)"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *StateError) Unwrap() error {
	return e.Sentinel
}

func (e *StateError) Is(target error) bool {
	return e.Cause != nil && errors.Is(e.Cause, target)
}
