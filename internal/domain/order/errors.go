package order

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidReward       = errors.New("reward amount must be positive")
	ErrDeadlineNotFuture   = errors.New("deadline must be in the future")
	ErrInvalidDeliveryDate = errors.New("preferred delivery date must be in the future")
	ErrInvalidProduct      = errors.New("product name and url are required")
	ErrInvalidProductPrice = errors.New("product price cannot be negative")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidCurrency     = errors.New("currency must be a 3-letter ISO 4217 code")
	ErrInvalidDestination  = errors.New("destination country must be ISO 3166 alpha-2 and city is required")
	ErrInvalidWeight       = errors.New("weight estimate cannot be negative")
	ErrTextTooLong         = errors.New("text field exceeds maximum length")
	ErrNotEditable         = errors.New("order can only be changed while draft or active")
	ErrNotAcceptingOffers  = errors.New("order is not accepting offers")
	ErrInvalidHistory      = errors.New("status history is not a valid walk")
	ErrStatusNotPermitted  = errors.New("actor may not set this order status")
	ErrMatchedViaOfferOnly = errors.New("matched status is only reachable by accepting an offer")
	ErrAlreadyDeleted      = errors.New("order is already deleted")
)

// TransitionError is returned when next is not an outgoing edge of the current status.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
