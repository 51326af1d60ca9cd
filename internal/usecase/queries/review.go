package queries

import (
	"context"
	"time"

	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListPublicByReviewed(ctx context.Context, reviewedID uuid.UUID, filters ReviewFilters, after *Keyset, limit int32) ([]*ReviewView, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID, viewerID *uuid.UUID) ([]*ReviewView, error)
	RatingByRole(ctx context.Context, reviewedID uuid.UUID) ([]RoleRating, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReviewView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	ListByOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) ([]*ReviewView, error)
	RatingSummary(ctx context.Context, userID uuid.UUID) (*RatingSummary, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

// GetByID treats a private review as missing unless the actor wrote it, received it or is an admin.
func (q *reviewQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if !rv.IsPublic && rv.ReviewerID != actor.ID && rv.ReviewedID != actor.ID && !actor.IsAdmin() {
		return nil, ErrReviewNotFound
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	if filters.ReviewerRole != nil {
		if _, err := review.ParseReviewerRole(*filters.ReviewerRole); err != nil {
			return nil, nil, ErrInvalidFilter
		}
	}
	if filters.MinRating != nil {
		if _, err := review.NewRating(*filters.MinRating); err != nil {
			return nil, nil, ErrInvalidFilter
		}
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.repo.ListPublicByReviewed(ctx, userID, filters, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(v *ReviewView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return page, next, nil
}

func (q *reviewQueriesImpl) ListByOrder(ctx context.Context, actor shared.Actor, orderID uuid.UUID) ([]*ReviewView, error) {
	var viewer *uuid.UUID
	if !actor.IsAdmin() {
		viewer = &actor.ID
	}
	return q.repo.ListByOrder(ctx, orderID, viewer)
}

// RatingSummary weights each role's average by its count for the overall figure.
func (q *reviewQueriesImpl) RatingSummary(ctx context.Context, userID uuid.UUID) (*RatingSummary, error) {
	byRole, err := q.repo.RatingByRole(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := &RatingSummary{UserID: userID, ByRole: byRole}
	sum := decimal.Zero
	for _, r := range byRole {
		summary.Total += r.Count
		sum = sum.Add(r.AverageRating.Mul(decimal.NewFromInt(r.Count)))
	}
	if summary.Total > 0 {
		summary.Average = sum.Div(decimal.NewFromInt(summary.Total)).Round(2)
	}
	return summary, nil
}
