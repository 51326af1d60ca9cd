package escrow

import (
	"errors"
	"fmt"

	"marketplace-api/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEscrowSplit  = errors.New("escrow total must equal platform fee plus traveler payout")
	ErrNegativeAmount      = errors.New("escrow amounts cannot be negative")
	ErrEscrowNotReleasable = errors.New("escrow holding is not releasable")
	ErrAlreadyReleased     = errors.New("escrow holding already released")
	ErrOrderNotFundable    = errors.New("order cannot be funded in its current status")
	ErrPaymentReference    = errors.New("payment reference is required")
)

// SplitError reports construction inputs that violate total == fee + payout.
type SplitError struct {
	Total  decimal.Decimal
	Fee    decimal.Decimal
	Payout decimal.Decimal
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("%s: total %s, fee %s, payout %s", ErrInvalidEscrowSplit, e.Total, e.Fee, e.Payout)
}

func (e *SplitError) Unwrap() error {
	return ErrInvalidEscrowSplit
}

// StateError reports why a release or dispute was refused.
type StateError struct {
	Sentinel    error
	HoldingID   uuid.UUID
	IsReleased  bool
	IsDisputed  bool
	OrderStatus order.Status
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: holding %s released=%t disputed=%t order=%s",
		e.Sentinel, e.HoldingID, e.IsReleased, e.IsDisputed, e.OrderStatus)
}

func (e *StateError) Unwrap() error {
	return e.Sentinel
}
