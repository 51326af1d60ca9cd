package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reviewColumns = `id, reviewer_id, reviewed_id, order_id, rating, comment, reviewer_role, response, response_at,
is_public, created_at, updated_at`

func scanReview(row pgx.Row) (Reviews, error) {
	var r Reviews
	err := row.Scan(&r.ID, &r.ReviewerID, &r.ReviewedID, &r.OrderID, &r.Rating, &r.Comment, &r.ReviewerRole,
		&r.Response, &r.ResponseAt, &r.IsPublic, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const createReview = `INSERT INTO reviews (` + reviewColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg Reviews) error {
	_, err := db.Exec(ctx, createReview, arg.ID, arg.ReviewerID, arg.ReviewedID, arg.OrderID, arg.Rating,
		arg.Comment, arg.ReviewerRole, arg.Response, arg.ResponseAt, arg.IsPublic, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getReviewByID = `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

func (q *Queries) GetReviewByID(ctx context.Context, db DBTX, id uuid.UUID) (Reviews, error) {
	return scanReview(db.QueryRow(ctx, getReviewByID, id))
}

const getReviewForUpdate = getReviewByID + ` FOR UPDATE`

func (q *Queries) GetReviewForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reviews, error) {
	return scanReview(db.QueryRow(ctx, getReviewForUpdate, id))
}

const updateReviewResponse = `UPDATE reviews SET response = $2, response_at = $3, updated_at = $4
WHERE id = $1 AND response IS NULL`

type UpdateReviewResponseParams struct {
	ID         uuid.UUID
	Response   pgtype.Text
	ResponseAt pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

func (q *Queries) UpdateReviewResponse(ctx context.Context, db DBTX, arg UpdateReviewResponseParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReviewResponse, arg.ID, arg.Response, arg.ResponseAt, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ReviewViewRow struct {
	Reviews
	ReviewerName string
}

func scanReviewView(row pgx.Row) (ReviewViewRow, error) {
	var v ReviewViewRow
	err := row.Scan(&v.ID, &v.ReviewerID, &v.ReviewedID, &v.OrderID, &v.Rating, &v.Comment, &v.ReviewerRole,
		&v.Response, &v.ResponseAt, &v.IsPublic, &v.CreatedAt, &v.UpdatedAt, &v.ReviewerName)
	return v, err
}

const reviewViewSelect = `SELECT r.id, r.reviewer_id, r.reviewed_id, r.order_id, r.rating, r.comment, r.reviewer_role,
    r.response, r.response_at, r.is_public, r.created_at, r.updated_at, u.first_name || ' ' || u.last_name
FROM reviews r
JOIN users u ON u.id = r.reviewer_id`

const getReviewView = reviewViewSelect + ` WHERE r.id = $1`

func (q *Queries) GetReviewView(ctx context.Context, db DBTX, id uuid.UUID) (ReviewViewRow, error) {
	return scanReviewView(db.QueryRow(ctx, getReviewView, id))
}

type ListPublicReviewsByReviewedParams struct {
	ReviewedID     uuid.UUID
	ReviewerRole   pgtype.Text
	MinRating      pgtype.Int4
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

const listPublicReviewsByReviewed = reviewViewSelect + `
WHERE r.reviewed_id = $1 AND r.is_public
  AND ($2::text IS NULL OR r.reviewer_role = $2)
  AND ($3::int IS NULL OR r.rating >= $3)
  AND ($4::timestamptz IS NULL OR (r.created_at, r.id) < ($4, $5::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $6`

func (q *Queries) ListPublicReviewsByReviewed(ctx context.Context, db DBTX, arg ListPublicReviewsByReviewedParams) ([]ReviewViewRow, error) {
	rows, err := db.Query(ctx, listPublicReviewsByReviewed, arg.ReviewedID, arg.ReviewerRole, arg.MinRating,
		arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	return collect(rows, err, scanReviewView)
}

type ListReviewsByOrderParams struct {
	OrderID  uuid.UUID
	ViewerID pgtype.UUID
}

// Private reviews are visible to their author and subject only.
const listReviewsByOrder = reviewViewSelect + `
WHERE r.order_id = $1
  AND (r.is_public OR r.reviewer_id = $2::uuid OR r.reviewed_id = $2::uuid)
ORDER BY r.created_at, r.id`

func (q *Queries) ListReviewsByOrder(ctx context.Context, db DBTX, arg ListReviewsByOrderParams) ([]ReviewViewRow, error) {
	rows, err := db.Query(ctx, listReviewsByOrder, arg.OrderID, arg.ViewerID)
	return collect(rows, err, scanReviewView)
}

type RatingSummaryRow struct {
	ReviewerRole string
	Count        int64
	Average      pgtype.Numeric
}

const getRatingSummary = `SELECT reviewer_role, count(*), round(avg(rating), 2)
FROM reviews
WHERE reviewed_id = $1 AND is_public
GROUP BY reviewer_role
ORDER BY reviewer_role`

func (q *Queries) GetRatingSummary(ctx context.Context, db DBTX, reviewedID uuid.UUID) ([]RatingSummaryRow, error) {
	rows, err := db.Query(ctx, getRatingSummary, reviewedID)
	return collect(rows, err, func(row pgx.Row) (RatingSummaryRow, error) {
		var s RatingSummaryRow
		err := row.Scan(&s.ReviewerRole, &s.Count, &s.Average)
		return s, err
	})
}
