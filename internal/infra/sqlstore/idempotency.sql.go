package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const idempotencyColumns = `key, user_id, endpoint, request_hash, response_body_hash, status, result_order_id,
expires_at, created_at, updated_at`

// TryInsertIdempotencyKey reports 0 affected rows when the key already exists for the user.
const tryInsertIdempotencyKey = `INSERT INTO idempotency_keys (` + idempotencyColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (key, user_id) DO NOTHING`

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg IdempotencyKeys) (int64, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint, arg.RequestHash,
		arg.ResponseBodyHash, arg.Status, arg.ResultOrderID, arg.ExpiresAt, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type GetIdempotencyKeyParams struct {
	Key    uuid.UUID
	UserID uuid.UUID
}

const getIdempotencyKey = `SELECT ` + idempotencyColumns + ` FROM idempotency_keys WHERE key = $1 AND user_id = $2`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKeys, error) {
	var k IdempotencyKeys
	err := db.QueryRow(ctx, getIdempotencyKey, arg.Key, arg.UserID).Scan(&k.Key, &k.UserID, &k.Endpoint,
		&k.RequestHash, &k.ResponseBodyHash, &k.Status, &k.ResultOrderID, &k.ExpiresAt, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}

type CompleteIdempotencyKeyParams struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	ResultOrderID    pgtype.UUID
	ResponseBodyHash pgtype.Text
	UpdatedAt        pgtype.Timestamptz
}

const completeIdempotencyKey = `UPDATE idempotency_keys SET status = 'completed', result_order_id = $3,
    response_body_hash = $4, updated_at = $5
WHERE key = $1 AND user_id = $2 AND status = 'processing'`

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, completeIdempotencyKey, arg.Key, arg.UserID, arg.ResultOrderID, arg.ResponseBodyHash, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteExpiredIdempotencyKeys = `DELETE FROM idempotency_keys WHERE expires_at < $1`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIdempotencyKeys, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
