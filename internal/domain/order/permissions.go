package order

import (
	"marketplace-api/internal/domain/user"

	"github.com/google/uuid"
)

var (
	shopperSettable = map[Status]bool{
		StatusActive:    true,
		StatusCancelled: true,
		StatusPurchased: true,
		StatusCompleted: true,
		StatusDisputed:  true,
	}
	travelerSettable = map[Status]bool{
		StatusInTransit: true,
		StatusDelivered: true,
		StatusDisputed:  true,
	}
)

// AuthorizeStatusChange decides whether the actor may request next through a direct
// status change. It does not check graph validity; Transition does.
func (o *Order) AuthorizeStatusChange(actorID uuid.UUID, role user.Role, next Status) error {
	if next == StatusMatched {
		return ErrMatchedViaOfferOnly
	}
	if role.IsAdmin() {
		return nil
	}
	if o.IsShopper(actorID) && shopperSettable[next] {
		return nil
	}
	if o.IsMatchedTraveler(actorID) && travelerSettable[next] {
		return nil
	}
	return ErrStatusNotPermitted
}
