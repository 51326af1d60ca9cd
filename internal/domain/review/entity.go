package review

import (
	"time"

	"marketplace-api/internal/domain/order"

	"github.com/google/uuid"
)

type Review struct {
	id           uuid.UUID
	reviewerID   uuid.UUID
	reviewedID   uuid.UUID
	orderID      uuid.UUID
	rating       Rating
	comment      *Comment
	reviewerRole ReviewerRole
	response     *Comment
	responseAt   *time.Time
	isPublic     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReview lets a participant of a completed order review the counterpart.
// A nil or blank comment is stored as no comment.
func NewReview(o *order.Order, reviewerID uuid.UUID, ratingValue int, commentText *string, isPublic bool, now time.Time) (*Review, error) {
	if o.Status() != order.StatusCompleted {
		return nil, ErrOrderNotCompleted
	}
	reviewedID, role, err := counterpart(o, reviewerID)
	if err != nil {
		return nil, err
	}
	if reviewedID == reviewerID {
		return nil, ErrSelfReview
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	comment, err := NewOptionalComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:           uuid.New(),
		reviewerID:   reviewerID,
		reviewedID:   reviewedID,
		orderID:      o.ID(),
		rating:       rating,
		comment:      comment,
		reviewerRole: role,
		isPublic:     isPublic,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func counterpart(o *order.Order, reviewerID uuid.UUID) (uuid.UUID, ReviewerRole, error) {
	traveler := o.MatchedTravelerID()
	switch {
	case traveler == nil:
		return uuid.Nil, "", ErrNotParticipant
	case o.IsShopper(reviewerID):
		return *traveler, ReviewerShopper, nil
	case *traveler == reviewerID:
		return o.ShopperID(), ReviewerTraveler, nil
	default:
		return uuid.Nil, "", ErrNotParticipant
	}
}

func ReconstructReview(
	id, reviewerID, reviewedID, orderID uuid.UUID,
	rating Rating,
	comment *Comment,
	role ReviewerRole,
	response *Comment,
	responseAt *time.Time,
	isPublic bool,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:           id,
		reviewerID:   reviewerID,
		reviewedID:   reviewedID,
		orderID:      orderID,
		rating:       rating,
		comment:      comment,
		reviewerRole: role,
		response:     response,
		responseAt:   responseAt,
		isPublic:     isPublic,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Respond records the reviewed user's single reply.
func (r *Review) Respond(responderID uuid.UUID, text string, now time.Time) error {
	if responderID != r.reviewedID {
		return ErrNotReviewee
	}
	if r.response != nil {
		return ErrAlreadyResponded
	}
	c, err := NewComment(text)
	if err != nil {
		return err
	}
	t := now
	r.response = &c
	r.responseAt = &t
	r.updatedAt = now
	return nil
}

func (r *Review) ID() uuid.UUID              { return r.id }
func (r *Review) ReviewerID() uuid.UUID      { return r.reviewerID }
func (r *Review) ReviewedID() uuid.UUID      { return r.reviewedID }
func (r *Review) OrderID() uuid.UUID         { return r.orderID }
func (r *Review) Rating() Rating             { return r.rating }
func (r *Review) Comment() *Comment          { return r.comment }
func (r *Review) ReviewerRole() ReviewerRole { return r.reviewerRole }
func (r *Review) Response() *Comment         { return r.response }
func (r *Review) ResponseAt() *time.Time     { return r.responseAt }
func (r *Review) IsPublic() bool             { return r.isPublic }
func (r *Review) CreatedAt() time.Time       { return r.createdAt }
func (r *Review) UpdatedAt() time.Time       { return r.updatedAt }
