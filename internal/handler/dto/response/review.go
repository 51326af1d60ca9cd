package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID           uuid.UUID  `json:"id"`
	ReviewerID   uuid.UUID  `json:"reviewer_id"`
	ReviewerName string     `json:"reviewer_name"`
	ReviewedID   uuid.UUID  `json:"reviewed_id"`
	OrderID      uuid.UUID  `json:"order_id"`
	Rating       int        `json:"rating"`
	Comment      *string    `json:"comment,omitempty"`
	ReviewerRole string     `json:"reviewer_role"`
	Response     *string    `json:"response,omitempty"`
	ResponseAt   *time.Time `json:"response_at,omitempty"`
	IsPublic     bool       `json:"is_public"`
	CreatedAt    time.Time  `json:"created_at"`
}

type RoleRatingResponse struct {
	ReviewerRole  string `json:"reviewer_role"`
	Count         int64  `json:"count"`
	AverageRating string `json:"average_rating"`
}

type RatingSummaryResponse struct {
	UserID  uuid.UUID             `json:"user_id"`
	Total   int64                 `json:"total"`
	Average string                `json:"average_rating"`
	ByRole  []*RoleRatingResponse `json:"by_role"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return mapOne[ReviewResponse](v)
}

func FromReviewList(items []*queries.ReviewView) []*ReviewResponse {
	return mapList[ReviewResponse](items)
}

func FromReviewPage(items []*queries.ReviewView, next *queries.Cursor) Page[ReviewResponse] {
	return Page[ReviewResponse]{Items: FromReviewList(items), NextCursor: cursorString(next)}
}

func FromRatingSummary(s *queries.RatingSummary) *RatingSummaryResponse {
	byRole := make([]*RoleRatingResponse, 0, len(s.ByRole))
	for i := range s.ByRole {
		byRole = append(byRole, mapOne[RoleRatingResponse](&s.ByRole[i]))
	}
	return &RatingSummaryResponse{
		UserID:  s.UserID,
		Total:   s.Total,
		Average: s.Average.StringFixed(2),
		ByRole:  byRole,
	}
}
