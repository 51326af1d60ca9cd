package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/metrics"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultSweepBatch = 500

type CreateOfferResult struct {
	OfferID uuid.UUID
}

type OfferCommands interface {
	Create(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in offer.CreateInput) (*CreateOfferResult, error)
	Update(ctx context.Context, actor shared.Actor, offerID uuid.UUID, in offer.UpdateInput) error
	Withdraw(ctx context.Context, actor shared.Actor, offerID uuid.UUID) error
	Reject(ctx context.Context, actor shared.Actor, offerID uuid.UUID) error
	Accept(ctx context.Context, actor shared.Actor, offerID uuid.UUID) error
	// Sweep expires due offers in batches of at most limit and returns how many it changed.
	Sweep(ctx context.Context, limit int) (int, error)
	// ExpireNow is the admin-triggered Sweep.
	ExpireNow(ctx context.Context, actor shared.Actor) (int, error)
}

type offerCommandsImpl struct {
	uow           shared.UnitOfWork
	clock         clock.Clock
	defaultExpiry time.Duration
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.MarketplaceConfig) OfferCommands {
	return &offerCommandsImpl{uow: uow, clock: clk, defaultExpiry: cfg.OfferDefaultExpiry()}
}

// Create locks the order row first, the same order Accept takes its locks in, so an offer
// cannot slip in beside a concurrent acceptance.
func (c *offerCommandsImpl) Create(ctx context.Context, actor shared.Actor, orderID uuid.UUID, in offer.CreateInput) (*CreateOfferResult, error) {
	if !actor.Role.IsTraveler() {
		return nil, ErrTravelerRequired
	}
	if in.ExpiresIn == 0 {
		in.ExpiresIn = c.defaultExpiry
	}

	var created *offer.Offer
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		existing, err := tx.Offers().LockByOrderAndTraveler(ctx, tx.DB(), orderID, actor.ID)
		if err != nil {
			return err
		}
		now := c.clock.Now()
		// Stale rows still stored as active would trip the unique index on live offers.
		if stale := offer.ExpireDue(existing, now); len(stale) > 0 {
			if err := tx.Offers().SaveAll(ctx, tx.DB(), stale); err != nil {
				return err
			}
		}
		f, err := offer.NewOffer(o, actor.ID, existing, in, now)
		if err != nil {
			return err
		}
		if err := tx.Offers().Create(ctx, tx.DB(), f); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return offer.ErrDuplicateActiveOffer
			}
			return err
		}
		created = f
		return enqueue(ctx, tx, now, notice{
			userID: o.ShopperID(),
			kind:   notification.TypeOfferReceived,
			title:  "New offer received",
			body:   fmt.Sprintf("A traveler made an offer on your order for %s", o.Product().Name()),
			data:   map[string]any{"order_id": o.ID().String(), "offer_id": f.ID().String()},
		})
	})
	if err != nil {
		return nil, classify(err)
	}
	return &CreateOfferResult{OfferID: created.ID()}, nil
}

func (c *offerCommandsImpl) Update(ctx context.Context, actor shared.Actor, offerID uuid.UUID, in offer.UpdateInput) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := c.lockOwnOffer(ctx, tx, actor, offerID)
		if err != nil {
			return err
		}
		if err := f.Update(in, c.clock.Now()); err != nil {
			return err
		}
		return tx.Offers().Save(ctx, tx.DB(), f)
	})
	return classify(err)
}

func (c *offerCommandsImpl) Withdraw(ctx context.Context, actor shared.Actor, offerID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := c.lockOwnOffer(ctx, tx, actor, offerID)
		if err != nil {
			return err
		}
		if err := f.Withdraw(c.clock.Now()); err != nil {
			return err
		}
		return tx.Offers().Save(ctx, tx.DB(), f)
	})
	return classify(err)
}

func (c *offerCommandsImpl) lockOwnOffer(ctx context.Context, tx shared.Tx, actor shared.Actor, offerID uuid.UUID) (*offer.Offer, error) {
	f, err := tx.Offers().FindForUpdate(ctx, tx.DB(), offerID)
	if err != nil {
		return nil, notFoundAs(err, ErrOfferNotFound)
	}
	if f.TravelerID() != actor.ID {
		return nil, ErrNotOfferTraveler
	}
	return f, nil
}

func (c *offerCommandsImpl) Reject(ctx context.Context, actor shared.Actor, offerID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Offers().FindForUpdate(ctx, tx.DB(), offerID)
		if err != nil {
			return notFoundAs(err, ErrOfferNotFound)
		}
		o, err := tx.Orders().FindByID(ctx, tx.DB(), f.OrderID())
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		if !o.IsShopper(actor.ID) {
			return ErrNotOrderShopper
		}
		now := c.clock.Now()
		if err := f.Reject(now); err != nil {
			return err
		}
		if err := tx.Offers().Save(ctx, tx.DB(), f); err != nil {
			return err
		}
		return enqueue(ctx, tx, now, declinedNotice(o, f))
	})
	return classify(err)
}

// Accept locks the order row, then every offer of the order, then applies the acceptance
// as one unit: the winning offer, the matched order, its history record and the withdrawn siblings.
func (c *offerCommandsImpl) Accept(ctx context.Context, actor shared.Actor, offerID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ref, err := tx.Offers().FindByID(ctx, tx.DB(), offerID)
		if err != nil {
			return notFoundAs(err, ErrOfferNotFound)
		}
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), ref.OrderID())
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		if !o.IsShopper(actor.ID) {
			return ErrNotOrderShopper
		}
		all, err := tx.Offers().LockByOrder(ctx, tx.DB(), o.ID())
		if err != nil {
			return err
		}
		var target *offer.Offer
		siblings := make([]*offer.Offer, 0, len(all))
		for _, f := range all {
			if f.ID() == offerID {
				target = f
				continue
			}
			siblings = append(siblings, f)
		}
		if target == nil {
			return ErrOfferNotFound
		}

		now := c.clock.Now()
		res, err := offer.Accept(target, o, siblings, now)
		if err != nil {
			return err
		}
		if err := tx.Orders().Save(ctx, tx.DB(), res.Order); err != nil {
			return err
		}
		if err := tx.Orders().AppendHistory(ctx, tx.DB(), res.History); err != nil {
			return err
		}
		if err := tx.Offers().SaveAll(ctx, tx.DB(), append([]*offer.Offer{res.Offer}, res.Withdrawn...)); err != nil {
			return err
		}
		if err := openConversation(ctx, tx, res.Order, actor.ID, now); err != nil {
			return err
		}

		notices := []notice{{
			userID: res.Offer.TravelerID(),
			kind:   notification.TypeOfferAccepted,
			title:  "Offer accepted",
			body:   fmt.Sprintf("Your offer on the order for %s was accepted", o.Product().Name()),
			data:   map[string]any{"order_id": o.ID().String(), "offer_id": res.Offer.ID().String()},
		}}
		for _, w := range res.Withdrawn {
			notices = append(notices, declinedNotice(o, w))
		}
		return enqueue(ctx, tx, now, notices...)
	})
	if err != nil {
		return classify(err)
	}
	metrics.OfferAcceptancesTotal.Inc()
	metrics.OrderTransitionsTotal.WithLabelValues(order.StatusActive.String(), order.StatusMatched.String()).Inc()
	return nil
}

func (c *offerCommandsImpl) Sweep(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = defaultSweepBatch
	}
	var expired int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		due, err := tx.Offers().LockDue(ctx, tx.DB(), now, int32(limit)) // #nosec G115 -- batch size comes from config
		if err != nil {
			return err
		}
		changed := offer.ExpireDue(due, now)
		if err := tx.Offers().SaveAll(ctx, tx.DB(), changed); err != nil {
			return err
		}
		expired = len(changed)
		return nil
	})
	if err != nil {
		return 0, classify(err)
	}
	metrics.OffersExpiredTotal.Add(float64(expired))
	return expired, nil
}

func (c *offerCommandsImpl) ExpireNow(ctx context.Context, actor shared.Actor) (int, error) {
	if !actor.IsAdmin() {
		return 0, ErrAdminRequired
	}
	return c.Sweep(ctx, defaultSweepBatch)
}

func declinedNotice(o *order.Order, f *offer.Offer) notice {
	return notice{
		userID: f.TravelerID(),
		kind:   notification.TypeOfferDeclined,
		title:  "Offer declined",
		body:   fmt.Sprintf("Your offer on the order for %s is no longer open", o.Product().Name()),
		data:   map[string]any{"order_id": o.ID().String(), "offer_id": f.ID().String(), "status": f.Status().String()},
	}
}
