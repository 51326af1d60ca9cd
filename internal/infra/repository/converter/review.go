package converter

import (
	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReviewToRow(r *review.Review) sqlstore.Reviews {
	return sqlstore.Reviews{
		ID:           r.ID(),
		ReviewerID:   r.ReviewerID(),
		ReviewedID:   r.ReviewedID(),
		OrderID:      r.OrderID(),
		Rating:       int32(r.Rating().Value()), // #nosec G115 -- rating is 1..5
		Comment:      commentText(r.Comment()),
		ReviewerRole: r.ReviewerRole().String(),
		Response:     commentText(r.Response()),
		ResponseAt:   pgconv.TimePtrToPgtype(r.ResponseAt()),
		IsPublic:     r.IsPublic(),
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(row sqlstore.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, err
	}
	role, err := review.ParseReviewerRole(row.ReviewerRole)
	if err != nil {
		return nil, err
	}
	comment, err := review.NewOptionalComment(pgconv.StringPtrFromPgtype(row.Comment))
	if err != nil {
		return nil, err
	}
	response, err := review.NewOptionalComment(pgconv.StringPtrFromPgtype(row.Response))
	if err != nil {
		return nil, err
	}
	return review.ReconstructReview(
		row.ID, row.ReviewerID, row.ReviewedID, row.OrderID,
		rating, comment, role, response,
		pgconv.TimePtrFromPgtype(row.ResponseAt),
		row.IsPublic,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func commentText(c *review.Comment) pgtype.Text {
	if c == nil {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(c.String())
}
