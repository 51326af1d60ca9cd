//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/order"
	domreview "marketplace-api/internal/domain/review"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ShopperID  uuid.UUID
	TravelerID uuid.UUID
	ReviewerID uuid.UUID
	Status     order.Status
	Rating     int
	Comment    *string
	IsPublic   bool
	Now        time.Time
}

// NewReviewBuilder defaults to the shopper reviewing the traveler on a completed order.
func NewReviewBuilder() *ReviewBuilder {
	shopper := uuid.New()
	comment := "Excellent service!"
	return &ReviewBuilder{
		ShopperID:  shopper,
		TravelerID: uuid.New(),
		ReviewerID: shopper,
		Status:     order.StatusCompleted,
		Rating:     5,
		Comment:    &comment,
		IsPublic:   true,
		Now:        FixedNow,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildOrder() *order.Order {
	return NewOrderBuilder().With(func(b *OrderBuilder) {
		b.ShopperID = r.ShopperID
	}).MatchedTo(r.TravelerID, r.Status).BuildReconstructed()
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.BuildOrder(), r.ReviewerID, r.Rating, r.Comment, r.IsPublic, r.Now)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	public := r.IsPublic
	return reqdto.CreateReviewRequest{Rating: r.Rating, Comment: r.Comment, IsPublic: &public}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	reviewed, role := r.TravelerID, "shopper"
	if r.ReviewerID == r.TravelerID {
		reviewed, role = r.ShopperID, "traveler"
	}
	return &queries.ReviewView{
		ID:           uuid.New(),
		ReviewerID:   r.ReviewerID,
		ReviewerName: "Test User",
		ReviewedID:   reviewed,
		OrderID:      uuid.New(),
		Rating:       r.Rating,
		Comment:      r.Comment,
		ReviewerRole: role,
		IsPublic:     r.IsPublic,
		CreatedAt:    r.Now,
		UpdatedAt:    r.Now,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = &comment
	return r
}

func (r *ReviewBuilder) ByTraveler() *ReviewBuilder {
	r.ReviewerID = r.TravelerID
	return r
}
