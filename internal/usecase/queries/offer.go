package queries

import (
	"context"
	"time"

	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// OfferReadStore resolves effective statuses relative to now.
type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID, now time.Time) (*OfferView, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID, status *string, now time.Time) ([]*OfferView, error)
	ListByTraveler(ctx context.Context, travelerID uuid.UUID, status *string, after *Keyset, limit int32, now time.Time) ([]*OfferView, error)
	StatsByTraveler(ctx context.Context, travelerID uuid.UUID, now time.Time) (*OfferStats, error)
}

type OfferQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OfferView, error)
	ListByOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID, status *string) ([]*OfferView, error)
	ListMine(ctx context.Context, actor shared.Actor, status *string, cursor *Cursor, limit int) ([]*OfferView, *Cursor, error)
	Stats(ctx context.Context, actor shared.Actor) (*OfferStats, error)
}

type offerQueriesImpl struct {
	offers OfferReadStore
	orders OrderReadStore
	clock  clock.Clock
}

func NewOfferQueries(offers OfferReadStore, orders OrderReadStore, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{offers: offers, orders: orders, clock: clk}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OfferView, error) {
	v, err := q.offers.FindByID(ctx, id, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	if v.TravelerID != actor.ID && v.OrderShopperID != actor.ID {
		return nil, ErrOfferAccess
	}
	return v, nil
}

func (q *offerQueriesImpl) ListByOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID, status *string) ([]*OfferView, error) {
	if err := validOfferStatus(status); err != nil {
		return nil, err
	}
	o, err := loadOrder(ctx, q.orders, orderID)
	if err != nil {
		return nil, err
	}
	if o.ShopperID != actor.ID && !actor.IsAdmin() {
		return nil, ErrOfferAccess
	}
	return q.offers.ListByOrder(ctx, orderID, status, q.clock.Now())
}

func (q *offerQueriesImpl) ListMine(ctx context.Context, actor shared.Actor, status *string, cursor *Cursor, limit int) ([]*OfferView, *Cursor, error) {
	if !actor.Role.IsTraveler() {
		return nil, nil, ErrOfferAccess
	}
	if err := validOfferStatus(status); err != nil {
		return nil, nil, err
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.offers.ListByTraveler(ctx, actor.ID, status, after, int32(limit+1), q.clock.Now()) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(v *OfferView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return page, next, nil
}

func (q *offerQueriesImpl) Stats(ctx context.Context, actor shared.Actor) (*OfferStats, error) {
	if !actor.Role.IsTraveler() {
		return nil, ErrOfferAccess
	}
	return q.offers.StatsByTraveler(ctx, actor.ID, q.clock.Now())
}

func validOfferStatus(status *string) error {
	if status == nil {
		return nil
	}
	if _, err := offer.ParseStatus(*status); err != nil {
		return ErrInvalidFilter
	}
	return nil
}
