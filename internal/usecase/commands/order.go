package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/metrics"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const createOrderEndpoint = "POST /orders"

type CreateOrderResult struct {
	OrderID    uuid.UUID
	IsReplayed bool
}

type ChangeStatusRequest struct {
	Status string
	Notes  string
}

type OrderCommands interface {
	Create(ctx context.Context, actor shared.Actor, in order.CreateInput, idempotencyKey uuid.UUID) (*CreateOrderResult, error)
	Update(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in order.UpdateInput) error
	Delete(ctx context.Context, actor shared.Actor, orderID uuid.UUID) error
	ChangeStatus(ctx context.Context, actor shared.Actor, orderID uuid.UUID, req ChangeStatusRequest) error
}

type orderCommandsImpl struct {
	uow            shared.UnitOfWork
	clock          clock.Clock
	idempotencyTTL time.Duration
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.MarketplaceConfig) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk, idempotencyTTL: cfg.IdempotencyTTL}
}

// Create claims the idempotency key and writes the order in one transaction, so a failed
// attempt leaves no key behind. A concurrent duplicate blocks on the key row until the
// first attempt commits and then replays its result.
func (c *orderCommandsImpl) Create(ctx context.Context, actor shared.Actor, in order.CreateInput, idempotencyKey uuid.UUID) (*CreateOrderResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}
	if !actor.Role.IsShopper() && !actor.IsAdmin() {
		return nil, ErrShopperRequired
	}
	requestHash, err := hashRequest(in)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	var result *CreateOrderResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, actor.ID, createOrderEndpoint, requestHash, now, now.Add(c.idempotencyTTL))
		if err != nil {
			return errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if !inserted {
			replayID, err := c.replay(ctx, tx, idempotencyKey, actor.ID, requestHash)
			if err != nil {
				return err
			}
			result = &CreateOrderResult{OrderID: replayID, IsReplayed: true}
			return nil
		}

		o, history, err := order.NewOrder(actor.ID, in, now)
		if err != nil {
			return err
		}
		if err := tx.Orders().Create(ctx, tx.DB(), o, history); err != nil {
			return err
		}
		if err := tx.Idempotency().Complete(ctx, tx.DB(), idempotencyKey, actor.ID, o.ID(), now); err != nil {
			return err
		}
		result = &CreateOrderResult{OrderID: o.ID()}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (c *orderCommandsImpl) replay(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string) (uuid.UUID, error) {
	existing, err := tx.Idempotency().Get(ctx, tx.DB(), key, userID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return uuid.Nil, errs.ErrIdempotencyMismatch
	}
	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultOrderID == nil {
			return uuid.Nil, errs.Mark(errs.New("completed request lost its order"), errs.ErrIdempotencyCheckFailed)
		}
		return *existing.ResultOrderID, nil
	case shared.IdempotencyProcessing:
		return uuid.Nil, errs.ErrIdempotencyInProgress
	default:
		return uuid.Nil, errs.Mark(errs.New("invalid idempotency key status"), errs.ErrIdempotencyCheckFailed)
	}
}

func (c *orderCommandsImpl) Update(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in order.UpdateInput) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		if !o.IsShopper(actor.ID) {
			return ErrNotOrderShopper
		}
		if err := o.Update(in, c.clock.Now()); err != nil {
			return err
		}
		return tx.Orders().Save(ctx, tx.DB(), o)
	})
	return classify(err)
}

func (c *orderCommandsImpl) Delete(ctx context.Context, actor shared.Actor, orderID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		if !o.IsShopper(actor.ID) {
			return ErrNotOrderShopper
		}
		now := c.clock.Now()
		if err := o.MarkDeleted(now); err != nil {
			return err
		}
		offers, err := tx.Offers().LockByOrder(ctx, tx.DB(), o.ID())
		if err != nil {
			return err
		}
		withdrawn := offer.WithdrawOpen(offers, o.ID(), now)
		if len(withdrawn) > 0 {
			if err := tx.Offers().SaveAll(ctx, tx.DB(), withdrawn); err != nil {
				return err
			}
		}
		if err := tx.Orders().Delete(ctx, tx.DB(), o); err != nil {
			return err
		}
		notices := make([]notice, 0, len(withdrawn))
		for _, f := range withdrawn {
			notices = append(notices, declinedNotice(o, f))
		}
		return enqueue(ctx, tx, now, notices...)
	})
	return classify(err)
}

// ChangeStatus checks the actor's permission for the target status before the graph.
func (c *orderCommandsImpl) ChangeStatus(ctx context.Context, actor shared.Actor, orderID uuid.UUID, req ChangeStatusRequest) error {
	next, err := order.ParseStatus(req.Status)
	if err != nil {
		return classify(err)
	}

	var from order.Status
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		if err := o.AuthorizeStatusChange(actor.ID, actor.Role, next); err != nil {
			return err
		}
		from = o.Status()
		now := c.clock.Now()
		actorID := actor.ID
		history, err := o.Transition(next, &actorID, req.Notes, now)
		if err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, tx.DB(), o); err != nil {
			return err
		}
		if err := tx.Orders().AppendHistory(ctx, tx.DB(), history); err != nil {
			return err
		}
		if next.IsTerminal() {
			if err := closeConversation(ctx, tx, o, actor.ID, now); err != nil {
				return err
			}
		}
		return enqueue(ctx, tx, now, statusNotices(o, actor.ID, from)...)
	})
	if err != nil {
		return classify(err)
	}
	metrics.OrderTransitionsTotal.WithLabelValues(from.String(), next.String()).Inc()
	return nil
}

// statusNotices tells every participant except the actor about the new status.
func statusNotices(o *order.Order, actorID uuid.UUID, from order.Status) []notice {
	return counterpartNotice(o, actorID, notice{
		kind:  notificationTypeFor(o.Status()),
		title: "Order status updated",
		body:  fmt.Sprintf("Order for %s moved from %s to %s", o.Product().Name(), from, o.Status()),
		data:  map[string]any{"order_id": o.ID().String(), "old_status": from.String(), "new_status": o.Status().String()},
	})
}

func notificationTypeFor(s order.Status) notification.Type {
	if s == order.StatusDisputed {
		return notification.TypeDisputeOpened
	}
	return notification.TypeOrderStatusChanged
}

func hashRequest(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
