//go:build unit

package order_test

import (
	"testing"

	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/domain/user"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeStatusChange(t *testing.T) {
	traveler := uuid.New()
	stranger := uuid.New()
	o := builder.NewOrderBuilder().MatchedTo(traveler, order.StatusPurchased).BuildReconstructed()
	shopper := o.ShopperID()

	cases := []struct {
		name  string
		actor uuid.UUID
		role  user.Role
		next  order.Status
		errIs error
	}{
		{name: "shopper が cancelled OK", actor: shopper, role: user.RoleShopper, next: order.StatusCancelled},
		{name: "shopper が completed OK", actor: shopper, role: user.RoleBoth, next: order.StatusCompleted},
		{name: "shopper が disputed OK", actor: shopper, role: user.RoleShopper, next: order.StatusDisputed},
		{name: "shopper が in_transit NG", actor: shopper, role: user.RoleShopper, next: order.StatusInTransit, errIs: order.ErrStatusNotPermitted},
		{name: "traveler が in_transit OK", actor: traveler, role: user.RoleTraveler, next: order.StatusInTransit},
		{name: "traveler が delivered OK", actor: traveler, role: user.RoleTraveler, next: order.StatusDelivered},
		{name: "traveler が cancelled NG", actor: traveler, role: user.RoleTraveler, next: order.StatusCancelled, errIs: order.ErrStatusNotPermitted},
		{name: "無関係のユーザーNG", actor: stranger, role: user.RoleBoth, next: order.StatusCancelled, errIs: order.ErrStatusNotPermitted},
		{name: "admin は何でもOK", actor: stranger, role: user.RoleAdmin, next: order.StatusInTransit},
		{name: "matched は admin でも NG", actor: stranger, role: user.RoleAdmin, next: order.StatusMatched, errIs: order.ErrMatchedViaOfferOnly},
		{name: "matched は shopper も NG", actor: shopper, role: user.RoleShopper, next: order.StatusMatched, errIs: order.ErrMatchedViaOfferOnly},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := o.AuthorizeStatusChange(c.actor, c.role, c.next)
			if c.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.errIs)
		})
	}
}
