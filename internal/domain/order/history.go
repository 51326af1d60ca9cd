package order

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistory is one immutable entry of an order's status log.
// OldStatus is nil for the creation record.
type StatusHistory struct {
	id        uuid.UUID
	orderID   uuid.UUID
	oldStatus *Status
	newStatus Status
	actorID   *uuid.UUID
	notes     *string
	createdAt time.Time
}

func newStatusHistory(orderID uuid.UUID, old *Status, next Status, actorID *uuid.UUID, notes *string, now time.Time) *StatusHistory {
	return &StatusHistory{
		id:        uuid.New(),
		orderID:   orderID,
		oldStatus: old,
		newStatus: next,
		actorID:   actorID,
		notes:     notes,
		createdAt: now,
	}
}

func ReconstructStatusHistory(id, orderID uuid.UUID, old *Status, next Status, actorID *uuid.UUID, notes *string, createdAt time.Time) *StatusHistory {
	return &StatusHistory{
		id:        id,
		orderID:   orderID,
		oldStatus: old,
		newStatus: next,
		actorID:   actorID,
		notes:     notes,
		createdAt: createdAt,
	}
}

func (h *StatusHistory) ID() uuid.UUID        { return h.id }
func (h *StatusHistory) OrderID() uuid.UUID   { return h.orderID }
func (h *StatusHistory) OldStatus() *Status   { return h.oldStatus }
func (h *StatusHistory) NewStatus() Status    { return h.newStatus }
func (h *StatusHistory) ActorID() *uuid.UUID  { return h.actorID }
func (h *StatusHistory) Notes() *string       { return h.notes }
func (h *StatusHistory) CreatedAt() time.Time { return h.createdAt }

// VerifyHistory checks that records, in creation order, start with a creation record
// into draft or active and that every later record follows an edge from the previous status.
func VerifyHistory(records []*StatusHistory) error {
	if len(records) == 0 {
		return nil
	}
	first := records[0]
	if first.oldStatus != nil || (first.newStatus != StatusDraft && first.newStatus != StatusActive) {
		return ErrInvalidHistory
	}
	current := first.newStatus
	for _, r := range records[1:] {
		if r.oldStatus == nil || *r.oldStatus != current || !current.CanTransitionTo(r.newStatus) {
			return ErrInvalidHistory
		}
		current = r.newStatus
	}
	return nil
}
