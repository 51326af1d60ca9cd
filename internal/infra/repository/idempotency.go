package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlstore.DBTX, arg sqlstore.IdempotencyKeys) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlstore.DBTX, arg sqlstore.GetIdempotencyKeyParams) (sqlstore.IdempotencyKeys, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CompleteIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlstore.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlstore.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlstore.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// TryInsert reports whether the key was newly claimed.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlstore.DBTX, key, userID uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error) {
	affected, err := r.queries.TryInsertIdempotencyKey(ctx, conn(tx, r.db), sqlstore.IdempotencyKeys{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		Status:      shared.IdempotencyProcessing,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		CreatedAt:   pgconv.TimeToPgtype(now),
		UpdatedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return affected == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, tx sqlstore.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, conn(tx, r.db), sqlstore.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:           row.Key,
		UserID:        row.UserID,
		Endpoint:      row.Endpoint,
		Status:        row.Status,
		RequestHash:   row.RequestHash,
		ResultOrderID: pgconv.UUIDPtrFromPgtype(row.ResultOrderID),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx sqlstore.DBTX, key, userID, orderID uuid.UUID, now time.Time) error {
	hash := sha256.Sum256([]byte(orderID.String()))
	affected, err := r.queries.CompleteIdempotencyKey(ctx, conn(tx, r.db), sqlstore.CompleteIdempotencyKeyParams{
		Key:              key,
		UserID:           userID,
		ResultOrderID:    pgconv.UUIDToPgtype(orderID),
		ResponseBodyHash: pgconv.StringToPgtype(hex.EncodeToString(hash[:])),
		UpdatedAt:        pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("idempotency key is not processing", nil, infra.KindConflict)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlstore.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, conn(tx, r.db), pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}
