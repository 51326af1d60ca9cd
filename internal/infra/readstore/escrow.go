package readstore

import (
	"context"

	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type EscrowReadQueries interface {
	GetEscrowHoldingByOrder(ctx context.Context, db sqlstore.DBTX, orderID uuid.UUID) (sqlstore.EscrowHoldings, error)
}

type EscrowReadStore struct {
	queries EscrowReadQueries
	db      sqlstore.DBTX
}

func NewEscrowReadStore(queries EscrowReadQueries, db sqlstore.DBTX) *EscrowReadStore {
	return &EscrowReadStore{queries: queries, db: db}
}

func (r *EscrowReadStore) FindByOrder(ctx context.Context, orderID uuid.UUID, orderStatus string) (*queries.EscrowView, error) {
	row, err := r.queries.GetEscrowHoldingByOrder(ctx, r.db, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get escrow holding", err)
	}
	h, err := converter.HoldingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode escrow row", err, infra.KindDBFailure)
	}
	status := order.Status(orderStatus)
	return &queries.EscrowView{
		ID:                h.ID(),
		OrderID:           h.OrderID(),
		PaymentReference:  h.PaymentReference(),
		TotalAmount:       h.TotalAmount(),
		PlatformFee:       h.PlatformFee(),
		TravelerPayout:    h.TravelerPayout(),
		Currency:          h.Currency(),
		IsReleased:        h.IsReleased(),
		ReleasedAt:        h.ReleasedAt(),
		IsDisputed:        h.IsDisputed(),
		DisputedAt:        h.DisputedAt(),
		DisputeResolution: h.DisputeResolution(),
		CanRelease:        h.CanRelease(status),
		OrderStatus:       orderStatus,
		CreatedAt:         h.CreatedAt(),
		UpdatedAt:         h.UpdatedAt(),
	}, nil
}
