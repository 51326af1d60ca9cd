package queries

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type EscrowReadStore interface {
	// FindByOrder derives CanRelease from the holding and the given order status.
	FindByOrder(ctx context.Context, orderID uuid.UUID, orderStatus string) (*EscrowView, error)
}

type EscrowQueries interface {
	GetByOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) (*EscrowView, error)
}

type escrowQueriesImpl struct {
	escrows EscrowReadStore
	orders  OrderReadStore
}

func NewEscrowQueries(escrows EscrowReadStore, orders OrderReadStore) EscrowQueries {
	return &escrowQueriesImpl{escrows: escrows, orders: orders}
}

func (q *escrowQueriesImpl) GetByOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) (*EscrowView, error) {
	o, err := loadOrder(ctx, q.orders, orderID)
	if err != nil {
		return nil, err
	}
	if !canSeeOrderInternals(o, actor) {
		return nil, ErrEscrowAccess
	}
	v, err := q.escrows.FindByOrder(ctx, orderID, o.Status)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEscrowNotFound
		}
		return nil, err
	}
	return v, nil
}
