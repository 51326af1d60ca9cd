//go:build unit

package offer_test

import (
	"errors"
	"testing"
	"time"

	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/domain/order"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccept(t *testing.T) {
	now := builder.FixedNow.Add(time.Hour)

	t.Run("A を承認すると B は withdrawn になり注文は matched", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		travelerA, travelerB := uuid.New(), uuid.New()
		a, err := offer.NewOffer(o, travelerA, nil, offer.CreateInput{}, builder.FixedNow)
		require.NoError(t, err)
		b, err := offer.NewOffer(o, travelerB, nil, offer.CreateInput{}, builder.FixedNow)
		require.NoError(t, err)
		rejected := builder.NewOfferBuilder().ForOrder(o.ID()).WithStatus(offer.StatusRejected).BuildReconstructed()

		res, err := offer.Accept(a, o, []*offer.Offer{a, b, rejected}, now)
		require.NoError(t, err)

		assert.Equal(t, offer.StatusAccepted, a.Status())
		assert.Equal(t, offer.StatusWithdrawn, b.Status())
		assert.Equal(t, offer.StatusRejected, rejected.Status())
		assert.Equal(t, order.StatusMatched, o.Status())
		require.NotNil(t, o.MatchedTravelerID())
		assert.Equal(t, travelerA, *o.MatchedTravelerID())

		assert.Same(t, a, res.Offer)
		assert.Same(t, o, res.Order)
		require.Len(t, res.Withdrawn, 1)
		assert.Same(t, b, res.Withdrawn[0])
		require.NotNil(t, res.History)
		assert.Equal(t, order.StatusMatched, res.History.NewStatus())
		assert.Equal(t, travelerA, *res.History.ActorID())
	})

	t.Run("matched 後の追加オファーは OrderNotAcceptingOffers", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		travelerA := uuid.New()
		a, err := offer.NewOffer(o, travelerA, nil, offer.CreateInput{}, builder.FixedNow)
		require.NoError(t, err)
		_, err = offer.Accept(a, o, []*offer.Offer{a}, now)
		require.NoError(t, err)

		_, err = offer.NewOffer(o, travelerA, []*offer.Offer{a}, offer.CreateInput{}, now)
		assert.ErrorIs(t, err, offer.ErrOrderNotAcceptingOffers)
	})

	t.Run("2件目の承認は失敗し何も変えない", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		a, _ := offer.NewOffer(o, uuid.New(), nil, offer.CreateInput{}, builder.FixedNow)
		b, _ := offer.NewOffer(o, uuid.New(), nil, offer.CreateInput{}, builder.FixedNow)
		_, err := offer.Accept(a, o, []*offer.Offer{a, b}, now)
		require.NoError(t, err)

		_, err = offer.Accept(b, o, []*offer.Offer{a, b}, now)
		assert.ErrorIs(t, err, offer.ErrOfferNotAcceptable)
		assert.Equal(t, offer.StatusAccepted, a.Status())
		assert.Equal(t, offer.StatusWithdrawn, b.Status())
	})

	t.Run("注文が matched 済みなら両方のエラーに一致し何も変えない", func(t *testing.T) {
		o := builder.NewOrderBuilder().MatchedTo(uuid.New(), order.StatusMatched).BuildReconstructed()
		target := builder.NewOfferBuilder().ForOrder(o.ID()).BuildReconstructed()
		sibling := builder.NewOfferBuilder().ForOrder(o.ID()).BuildReconstructed()

		res, err := offer.Accept(target, o, []*offer.Offer{target, sibling}, now)
		require.Error(t, err)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, offer.ErrOfferNotAcceptable)
		assert.ErrorIs(t, err, offer.ErrOrderNotAcceptingOffers)

		assert.Equal(t, offer.StatusActive, target.Status())
		assert.Equal(t, offer.StatusActive, sibling.Status())
		assert.Equal(t, order.StatusMatched, o.Status())
	})

	t.Run("別注文のオファーは承認できない", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		foreign := builder.NewOfferBuilder().BuildReconstructed()
		_, err := offer.Accept(foreign, o, nil, now)
		assert.ErrorIs(t, err, offer.ErrOrderMismatch)
		assert.Equal(t, order.StatusActive, o.Status())
	})
}

func TestExpireDue(t *testing.T) {
	t.Run("1時間の有効期限は2時間後の sweep で expired になり承認できない", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		f, err := offer.NewOffer(o, uuid.New(), nil, offer.CreateInput{ExpiresIn: time.Hour}, builder.FixedNow)
		require.NoError(t, err)

		later := builder.FixedNow.Add(2 * time.Hour)
		expired := offer.ExpireDue([]*offer.Offer{f}, later)
		require.Len(t, expired, 1)
		assert.Equal(t, offer.StatusExpired, f.Status())

		_, err = offer.Accept(f, o, []*offer.Offer{f}, later)
		assert.ErrorIs(t, err, offer.ErrOfferNotAcceptable)

		var se *offer.StateError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, offer.StatusExpired, se.Current)
		assert.Equal(t, order.StatusActive, o.Status())
	})

	t.Run("期限ちょうどは対象、未来と終端は対象外", func(t *testing.T) {
		now := builder.FixedNow
		due := builder.NewOfferBuilder().ExpiringAt(now).BuildReconstructed()
		future := builder.NewOfferBuilder().ExpiringAt(now.Add(time.Second)).BuildReconstructed()
		old := builder.NewOfferBuilder().ExpiringAt(now.Add(-time.Hour)).WithStatus(offer.StatusAccepted).BuildReconstructed()
		noExpiry := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.ExpiresAt = nil }).BuildReconstructed()

		expired := offer.ExpireDue([]*offer.Offer{due, future, old, noExpiry}, now)
		require.Len(t, expired, 1)
		assert.Same(t, due, expired[0])
		assert.Equal(t, offer.StatusActive, future.Status())
		assert.Equal(t, offer.StatusAccepted, old.Status())
		assert.Equal(t, offer.StatusActive, noExpiry.Status())
	})

	t.Run("2回目の sweep は何もしない", func(t *testing.T) {
		f := builder.NewOfferBuilder().ExpiringAt(builder.FixedNow).BuildReconstructed()
		require.Len(t, offer.ExpireDue([]*offer.Offer{f}, builder.FixedNow), 1)
		assert.Empty(t, offer.ExpireDue([]*offer.Offer{f}, builder.FixedNow.Add(time.Hour)))
	})
}

func TestWithdrawOpen(t *testing.T) {
	now := builder.FixedNow
	orderID := uuid.New()
	live := builder.NewOfferBuilder().ForOrder(orderID).BuildReconstructed()
	lapsed := builder.NewOfferBuilder().ForOrder(orderID).ExpiringAt(now.Add(-time.Minute)).BuildReconstructed()
	rejected := builder.NewOfferBuilder().ForOrder(orderID).WithStatus(offer.StatusRejected).BuildReconstructed()
	foreign := builder.NewOfferBuilder().BuildReconstructed()

	withdrawn := offer.WithdrawOpen([]*offer.Offer{live, lapsed, rejected, foreign}, orderID, now)

	require.Len(t, withdrawn, 1)
	assert.Same(t, live, withdrawn[0])
	assert.Equal(t, offer.StatusWithdrawn, live.Status())
	assert.Equal(t, offer.StatusActive, lapsed.Status())
	assert.Equal(t, offer.StatusRejected, rejected.Status())
	assert.Equal(t, offer.StatusActive, foreign.Status())
	assert.Empty(t, offer.WithdrawOpen([]*offer.Offer{live}, orderID, now))
}
