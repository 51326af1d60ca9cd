package repository

import (
	"context"

	"marketplace-api/internal/domain/escrow"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type EscrowWriteQueries interface {
	CreateEscrowHolding(ctx context.Context, db sqlstore.DBTX, arg sqlstore.EscrowHoldings) error
	GetEscrowHoldingByOrder(ctx context.Context, db sqlstore.DBTX, orderID uuid.UUID) (sqlstore.EscrowHoldings, error)
	GetEscrowHoldingByOrderForUpdate(ctx context.Context, db sqlstore.DBTX, orderID uuid.UUID) (sqlstore.EscrowHoldings, error)
	UpdateEscrowHolding(ctx context.Context, db sqlstore.DBTX, arg sqlstore.EscrowHoldings) (int64, error)
}

type EscrowRepository struct {
	queries EscrowWriteQueries
	db      sqlstore.DBTX
}

func NewEscrowRepository(queries EscrowWriteQueries, db sqlstore.DBTX) *EscrowRepository {
	return &EscrowRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EscrowRepository) Create(ctx context.Context, tx sqlstore.DBTX, h *escrow.Holding) error {
	if err := r.queries.CreateEscrowHolding(ctx, conn(tx, r.db), converter.HoldingToRow(h)); err != nil {
		return infra.WrapRepoErr("failed to create escrow holding", err)
	}
	return nil
}

func (r *EscrowRepository) Save(ctx context.Context, tx sqlstore.DBTX, h *escrow.Holding) error {
	affected, err := r.queries.UpdateEscrowHolding(ctx, conn(tx, r.db), converter.HoldingToRow(h))
	if err != nil {
		return infra.WrapRepoErr("failed to update escrow holding", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("escrow holding not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EscrowRepository) FindByOrder(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) (*escrow.Holding, error) {
	row, err := r.queries.GetEscrowHoldingByOrder(ctx, conn(tx, r.db), orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get escrow holding", err)
	}
	return r.toDomain(row)
}

func (r *EscrowRepository) FindByOrderForUpdate(ctx context.Context, tx sqlstore.DBTX, orderID uuid.UUID) (*escrow.Holding, error) {
	row, err := r.queries.GetEscrowHoldingByOrderForUpdate(ctx, conn(tx, r.db), orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock escrow holding", err)
	}
	return r.toDomain(row)
}

func (r *EscrowRepository) toDomain(row sqlstore.EscrowHoldings) (*escrow.Holding, error) {
	h, err := converter.HoldingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt escrow holding row", err)
	}
	return h, nil
}
