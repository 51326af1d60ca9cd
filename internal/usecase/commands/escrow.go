package commands

import (
	"context"
	"fmt"
	"strings"

	"marketplace-api/internal/domain/escrow"
	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/metrics"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrResolutionRequired = errs.Mark(errs.New("dispute resolution is required"), errs.ErrValidation)

type EscrowCommands interface {
	Fund(ctx context.Context, actor shared.Actor, orderID uuid.UUID, paymentReference string) error
	Release(ctx context.Context, actor shared.Actor, orderID uuid.UUID) error
	Dispute(ctx context.Context, actor shared.Actor, orderID uuid.UUID) error
	Resolve(ctx context.Context, actor shared.Actor, orderID uuid.UUID, resolution string) error
}

type escrowCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEscrowCommands(uow shared.UnitOfWork, clk clock.Clock) EscrowCommands {
	return &escrowCommandsImpl{uow: uow, clock: clk}
}

// Fund records an external capture. The split comes from the order's pricing.
func (c *escrowCommandsImpl) Fund(ctx context.Context, actor shared.Actor, orderID uuid.UUID, paymentReference string) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		if !o.IsShopper(actor.ID) {
			return ErrNotOrderShopper
		}
		h, err := escrow.NewHoldingForOrder(o, paymentReference, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Escrows().Create(ctx, tx.DB(), h); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEscrowExists
			}
			return err
		}
		return nil
	})
	return classify(err)
}

// Release pays the traveler out. The order keeps its status.
func (c *escrowCommandsImpl) Release(ctx context.Context, actor shared.Actor, orderID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, h, err := c.lockPair(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !o.IsShopper(actor.ID) && !actor.IsAdmin() {
			return ErrNotOrderShopper
		}
		now := c.clock.Now()
		if err := h.Release(o.Status(), now); err != nil {
			return err
		}
		if err := tx.Escrows().Save(ctx, tx.DB(), h); err != nil {
			return err
		}
		return enqueue(ctx, tx, now, notice{
			userID: *o.MatchedTravelerID(),
			kind:   notification.TypeEscrowReleased,
			title:  "Payment released",
			body:   fmt.Sprintf("%s %s was released for the order for %s", h.TravelerPayout().StringFixed(2), h.Currency(), o.Product().Name()),
			data:   map[string]any{"order_id": o.ID().String(), "amount": h.TravelerPayout().StringFixed(2)},
		})
	})
	if err != nil {
		return classify(err)
	}
	metrics.EscrowReleasesTotal.Inc()
	return nil
}

func (c *escrowCommandsImpl) Dispute(ctx context.Context, actor shared.Actor, orderID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, h, err := c.lockPair(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !o.IsParticipant(actor.ID) {
			return ErrNotParticipant
		}
		now := c.clock.Now()
		if err := h.OpenDispute(now); err != nil {
			return err
		}
		if err := tx.Escrows().Save(ctx, tx.DB(), h); err != nil {
			return err
		}
		return enqueue(ctx, tx, now, counterpartNotice(o, actor.ID, notice{
			kind:  notification.TypeDisputeOpened,
			title: "Dispute opened",
			body:  fmt.Sprintf("A dispute was opened on the escrow for %s", o.Product().Name()),
			data:  map[string]any{"order_id": o.ID().String()},
		})...)
	})
	return classify(err)
}

func (c *escrowCommandsImpl) Resolve(ctx context.Context, actor shared.Actor, orderID uuid.UUID, resolution string) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}
	resolution = strings.TrimSpace(resolution)
	if resolution == "" {
		return ErrResolutionRequired
	}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Escrows().FindByOrderForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return notFoundAs(err, ErrEscrowNotFound)
		}
		h.ResolveDispute(resolution, c.clock.Now())
		return tx.Escrows().Save(ctx, tx.DB(), h)
	})
	return classify(err)
}

// lockPair locks the order before its holding.
func (c *escrowCommandsImpl) lockPair(ctx context.Context, tx shared.Tx, orderID uuid.UUID) (*order.Order, *escrow.Holding, error) {
	o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
	if err != nil {
		return nil, nil, notFoundAs(err, ErrOrderNotFound)
	}
	h, err := tx.Escrows().FindByOrderForUpdate(ctx, tx.DB(), orderID)
	if err != nil {
		return nil, nil, notFoundAs(err, ErrEscrowNotFound)
	}
	return o, h, nil
}
