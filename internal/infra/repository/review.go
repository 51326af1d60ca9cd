package repository

import (
	"context"

	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Reviews) error
	GetReviewForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Reviews, error)
	UpdateReviewResponse(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateReviewResponseParams) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlstore.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlstore.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlstore.DBTX, rev *review.Review) error {
	if err := r.queries.CreateReview(ctx, conn(tx, r.db), converter.ReviewToRow(rev)); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReviewForUpdate(ctx, conn(tx, r.db), id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock review", err)
	}
	rev, err := converter.ReviewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt review row", err)
	}
	return rev, nil
}

// SaveResponse writes the response only if none is stored yet; otherwise KindConflict.
func (r *ReviewRepository) SaveResponse(ctx context.Context, tx sqlstore.DBTX, rev *review.Review) error {
	response := pgtype.Text{}
	if c := rev.Response(); c != nil {
		response = pgconv.StringToPgtype(c.String())
	}
	affected, err := r.queries.UpdateReviewResponse(ctx, conn(tx, r.db), sqlstore.UpdateReviewResponseParams{
		ID:         rev.ID(),
		Response:   response,
		ResponseAt: pgconv.TimePtrToPgtype(rev.ResponseAt()),
		UpdatedAt:  pgconv.TimeToPgtype(rev.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save review response", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("review already has a response", nil, infra.KindConflict)
	}
	return nil
}
