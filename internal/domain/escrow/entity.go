package escrow

import (
	"strings"
	"time"

	"marketplace-api/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding is the escrow entry tied one-to-one to an order.
type Holding struct {
	id                uuid.UUID
	orderID           uuid.UUID
	paymentReference  string
	totalAmount       decimal.Decimal
	platformFee       decimal.Decimal
	travelerPayout    decimal.Decimal
	currency          string
	isReleased        bool
	releasedAt        *time.Time
	isDisputed        bool
	disputedAt        *time.Time
	disputeResolution *string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewHolding(orderID uuid.UUID, paymentReference string, total, fee, payout decimal.Decimal, currency string, now time.Time) (*Holding, error) {
	if total.IsNegative() || fee.IsNegative() || payout.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !total.Equal(fee.Add(payout)) {
		return nil, &SplitError{Total: total, Fee: fee, Payout: payout}
	}
	ref := strings.TrimSpace(paymentReference)
	if ref == "" {
		return nil, ErrPaymentReference
	}
	cur, err := order.NormalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	return &Holding{
		id:               uuid.New(),
		orderID:          orderID,
		paymentReference: ref,
		totalAmount:      total,
		platformFee:      fee,
		travelerPayout:   payout,
		currency:         cur,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// fundable lists the order statuses in which payment may be captured into escrow:
// from matched until the order is completed or cancelled.
var fundable = map[order.Status]bool{
	order.StatusMatched:   true,
	order.StatusPurchased: true,
	order.StatusInTransit: true,
	order.StatusDelivered: true,
	order.StatusDisputed:  true,
}

// NewHoldingForOrder splits the order's total into its platform fee and the reward as payout.
func NewHoldingForOrder(o *order.Order, paymentReference string, now time.Time) (*Holding, error) {
	if !fundable[o.Status()] {
		return nil, ErrOrderNotFundable
	}
	p := o.Pricing()
	return NewHolding(o.ID(), paymentReference, p.TotalCost(), p.PlatformFee(), p.Reward(), p.Currency(), now)
}

func ReconstructHolding(
	id, orderID uuid.UUID,
	paymentReference string,
	total, fee, payout decimal.Decimal,
	currency string,
	isReleased bool, releasedAt *time.Time,
	isDisputed bool, disputedAt *time.Time,
	disputeResolution *string,
	createdAt, updatedAt time.Time,
) *Holding {
	return &Holding{
		id:                id,
		orderID:           orderID,
		paymentReference:  paymentReference,
		totalAmount:       total,
		platformFee:       fee,
		travelerPayout:    payout,
		currency:          currency,
		isReleased:        isReleased,
		releasedAt:        releasedAt,
		isDisputed:        isDisputed,
		disputedAt:        disputedAt,
		disputeResolution: disputeResolution,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (h *Holding) CanRelease(orderStatus order.Status) bool {
	return !h.isReleased && !h.isDisputed && orderStatus == order.StatusDelivered
}

// Release pays out the holding. It never changes the order; completing it is a separate step.
func (h *Holding) Release(orderStatus order.Status, now time.Time) error {
	if !h.CanRelease(orderStatus) {
		return h.stateError(ErrEscrowNotReleasable, orderStatus)
	}
	t := now
	h.isReleased = true
	h.releasedAt = &t
	h.updatedAt = now
	return nil
}

// OpenDispute is a no-op on an already disputed holding.
func (h *Holding) OpenDispute(now time.Time) error {
	if h.isReleased {
		return h.stateError(ErrAlreadyReleased, "")
	}
	if h.isDisputed {
		return nil
	}
	t := now
	h.isDisputed = true
	h.disputedAt = &t
	h.updatedAt = now
	return nil
}

// ResolveDispute records the resolution and clears the dispute flag whether or not a
// dispute is open. Release state is untouched.
func (h *Holding) ResolveDispute(resolution string, now time.Time) {
	text := strings.TrimSpace(resolution)
	h.disputeResolution = &text
	h.isDisputed = false
	h.updatedAt = now
}

func (h *Holding) stateError(sentinel error, orderStatus order.Status) *StateError {
	return &StateError{
		Sentinel:    sentinel,
		HoldingID:   h.id,
		IsReleased:  h.isReleased,
		IsDisputed:  h.isDisputed,
		OrderStatus: orderStatus,
	}
}

func (h *Holding) ID() uuid.UUID                   { return h.id }
func (h *Holding) OrderID() uuid.UUID              { return h.orderID }
func (h *Holding) PaymentReference() string        { return h.paymentReference }
func (h *Holding) TotalAmount() decimal.Decimal    { return h.totalAmount }
func (h *Holding) PlatformFee() decimal.Decimal    { return h.platformFee }
func (h *Holding) TravelerPayout() decimal.Decimal { return h.travelerPayout }
func (h *Holding) Currency() string                { return h.currency }
func (h *Holding) IsReleased() bool                { return h.isReleased }
func (h *Holding) ReleasedAt() *time.Time          { return h.releasedAt }
func (h *Holding) IsDisputed() bool                { return h.isDisputed }
func (h *Holding) DisputedAt() *time.Time          { return h.disputedAt }
func (h *Holding) DisputeResolution() *string      { return h.disputeResolution }
func (h *Holding) CreatedAt() time.Time            { return h.createdAt }
func (h *Holding) UpdatedAt() time.Time            { return h.updatedAt }
