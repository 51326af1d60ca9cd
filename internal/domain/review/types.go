package review

import "errors"

var (
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrEmptyComment        = errors.New("comment cannot be empty")
	ErrCommentTooLong      = errors.New("comment exceeds maximum length")
	ErrOrderNotCompleted   = errors.New("only completed orders can be reviewed")
	ErrNotParticipant      = errors.New("only the shopper or the matched traveler can review an order")
	ErrSelfReview          = errors.New("users cannot review themselves")
	ErrNotReviewee         = errors.New("only the reviewed user can respond")
	ErrAlreadyResponded    = errors.New("review already has a response")
	ErrInvalidReviewerRole = errors.New("invalid reviewer role")
)

// ReviewerRole is the side of the order the reviewer was on.
type ReviewerRole string

const (
	ReviewerShopper  ReviewerRole = "shopper"
	ReviewerTraveler ReviewerRole = "traveler"
)

func (r ReviewerRole) String() string { return string(r) }

func (r ReviewerRole) IsValid() bool {
	return r == ReviewerShopper || r == ReviewerTraveler
}

func ParseReviewerRole(s string) (ReviewerRole, error) {
	r := ReviewerRole(s)
	if !r.IsValid() {
		return "", ErrInvalidReviewerRole
	}
	return r, nil
}
