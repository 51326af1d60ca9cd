package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const escrowColumns = `id, order_id, payment_reference, total_amount, platform_fee, traveler_payout, currency,
is_released, released_at, is_disputed, disputed_at, dispute_resolution, created_at, updated_at`

func scanEscrow(row pgx.Row) (EscrowHoldings, error) {
	var e EscrowHoldings
	err := row.Scan(&e.ID, &e.OrderID, &e.PaymentReference, &e.TotalAmount, &e.PlatformFee, &e.TravelerPayout,
		&e.Currency, &e.IsReleased, &e.ReleasedAt, &e.IsDisputed, &e.DisputedAt, &e.DisputeResolution,
		&e.CreatedAt, &e.UpdatedAt)
	return e, err
}

const createEscrowHolding = `INSERT INTO escrow_holdings (` + escrowColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (q *Queries) CreateEscrowHolding(ctx context.Context, db DBTX, arg EscrowHoldings) error {
	_, err := db.Exec(ctx, createEscrowHolding, arg.ID, arg.OrderID, arg.PaymentReference, arg.TotalAmount,
		arg.PlatformFee, arg.TravelerPayout, arg.Currency, arg.IsReleased, arg.ReleasedAt, arg.IsDisputed,
		arg.DisputedAt, arg.DisputeResolution, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getEscrowHoldingByOrder = `SELECT ` + escrowColumns + ` FROM escrow_holdings WHERE order_id = $1`

func (q *Queries) GetEscrowHoldingByOrder(ctx context.Context, db DBTX, orderID uuid.UUID) (EscrowHoldings, error) {
	return scanEscrow(db.QueryRow(ctx, getEscrowHoldingByOrder, orderID))
}

const getEscrowHoldingByOrderForUpdate = getEscrowHoldingByOrder + ` FOR UPDATE`

func (q *Queries) GetEscrowHoldingByOrderForUpdate(ctx context.Context, db DBTX, orderID uuid.UUID) (EscrowHoldings, error) {
	return scanEscrow(db.QueryRow(ctx, getEscrowHoldingByOrderForUpdate, orderID))
}

const updateEscrowHolding = `UPDATE escrow_holdings SET is_released = $2, released_at = $3, is_disputed = $4,
    disputed_at = $5, dispute_resolution = $6, updated_at = $7
WHERE id = $1`

func (q *Queries) UpdateEscrowHolding(ctx context.Context, db DBTX, arg EscrowHoldings) (int64, error) {
	tag, err := db.Exec(ctx, updateEscrowHolding, arg.ID, arg.IsReleased, arg.ReleasedAt, arg.IsDisputed,
		arg.DisputedAt, arg.DisputeResolution, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
