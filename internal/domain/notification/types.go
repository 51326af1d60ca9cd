package notification

import "errors"

var (
	ErrInvalidType     = errors.New("invalid notification type")
	ErrMissingUser     = errors.New("notification recipient is required")
	ErrEmptyTitle      = errors.New("notification title cannot be empty")
	ErrNotRecipient    = errors.New("notification belongs to another user")
	ErrInvalidPayload  = errors.New("invalid notification job payload")
	ErrJobNotClaimable = errors.New("notification job is not queued")
)

type Type string

const (
	TypeOfferReceived      Type = "offer_received"
	TypeOfferAccepted      Type = "offer_accepted"
	TypeOfferDeclined      Type = "offer_declined"
	TypeOrderStatusChanged Type = "order_status_changed"
	TypeEscrowReleased     Type = "escrow_released"
	TypeDisputeOpened      Type = "dispute_opened"
	TypeReviewReceived     Type = "review_received"
	TypeMessageReceived    Type = "message_received"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case TypeOfferReceived, TypeOfferAccepted, TypeOfferDeclined, TypeOrderStatusChanged,
		TypeEscrowReleased, TypeDisputeOpened, TypeReviewReceived, TypeMessageReceived:
		return true
	}
	return false
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

type JobStatus string

const (
	JobQueued JobStatus = "queued"
	JobSent   JobStatus = "sent"
	JobFailed JobStatus = "failed"
)
