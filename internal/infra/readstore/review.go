package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewViewQueries interface {
	GetReviewView(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.ReviewViewRow, error)
	ListPublicReviewsByReviewed(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListPublicReviewsByReviewedParams) ([]sqlstore.ReviewViewRow, error)
	ListReviewsByOrder(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListReviewsByOrderParams) ([]sqlstore.ReviewViewRow, error)
	GetRatingSummary(ctx context.Context, db sqlstore.DBTX, reviewedID uuid.UUID) ([]sqlstore.RatingSummaryRow, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlstore.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db sqlstore.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return toReviewView(row), nil
}

func (r *ReviewReadStore) ListPublicByReviewed(ctx context.Context, reviewedID uuid.UUID, filters queries.ReviewFilters, after *queries.Keyset, limit int32) ([]*queries.ReviewView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListPublicReviewsByReviewed(ctx, r.db, sqlstore.ListPublicReviewsByReviewedParams{
		ReviewedID:     reviewedID,
		ReviewerRole:   pgconv.StringPtrToPgtype(filters.ReviewerRole),
		MinRating:      pgconv.Int4PtrToPgtype(filters.MinRating),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by user", err)
	}
	return toReviewViews(rows), nil
}

func (r *ReviewReadStore) ListByOrder(ctx context.Context, orderID uuid.UUID, viewerID *uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByOrder(ctx, r.db, sqlstore.ListReviewsByOrderParams{
		OrderID:  orderID,
		ViewerID: pgconv.UUIDPtrToPgtype(viewerID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by order", err)
	}
	return toReviewViews(rows), nil
}

func (r *ReviewReadStore) RatingByRole(ctx context.Context, reviewedID uuid.UUID) ([]queries.RoleRating, error) {
	rows, err := r.queries.GetRatingSummary(ctx, r.db, reviewedID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rating summary", err)
	}
	out := make([]queries.RoleRating, 0, len(rows))
	for _, row := range rows {
		avg, err := pgconv.DecimalFromNumeric(row.Average)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode rating average", err, infra.KindDBFailure)
		}
		out = append(out, queries.RoleRating{ReviewerRole: row.ReviewerRole, Count: row.Count, AverageRating: avg})
	}
	return out, nil
}

func toReviewViews(rows []sqlstore.ReviewViewRow) []*queries.ReviewView {
	out := make([]*queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReviewView(row))
	}
	return out
}

func toReviewView(row sqlstore.ReviewViewRow) *queries.ReviewView {
	return &queries.ReviewView{
		ID:           row.ID,
		ReviewerID:   row.ReviewerID,
		ReviewerName: row.ReviewerName,
		ReviewedID:   row.ReviewedID,
		OrderID:      row.OrderID,
		Rating:       int(row.Rating),
		Comment:      pgconv.StringPtrFromPgtype(row.Comment),
		ReviewerRole: row.ReviewerRole,
		Response:     pgconv.StringPtrFromPgtype(row.Response),
		ResponseAt:   pgconv.TimePtrFromPgtype(row.ResponseAt),
		IsPublic:     row.IsPublic,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
