//go:build unit

package offer_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/domain/order"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	now := builder.FixedNow
	traveler := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		in := builder.NewOfferBuilder().BuildCreateInput()

		f, err := offer.NewOffer(o, traveler, nil, in, now)
		require.NoError(t, err)

		assert.Equal(t, offer.StatusActive, f.Status())
		assert.Equal(t, o.ID(), f.OrderID())
		assert.Equal(t, traveler, f.TravelerID())
		require.NotNil(t, f.ExpiresAt())
		assert.Equal(t, now.Add(offer.DefaultExpiry), *f.ExpiresAt())
		assert.True(t, f.IsActive(now))
	})

	t.Run("ExpiresIn 指定", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		f, err := offer.NewOffer(o, traveler, nil, offer.CreateInput{ExpiresIn: time.Hour}, now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), *f.ExpiresAt())
	})

	t.Run("自分の注文へのオファーNG", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		_, err := offer.NewOffer(o, o.ShopperID(), nil, offer.CreateInput{}, now)
		assert.ErrorIs(t, err, offer.ErrSelfOffer)
	})

	t.Run("active でない注文NG", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusDraft, order.StatusCancelled} {
			o := builder.NewOrderBuilder().WithStatus(s).BuildReconstructed()
			_, err := offer.NewOffer(o, traveler, nil, offer.CreateInput{}, now)
			assert.ErrorIs(t, err, offer.ErrOrderNotAcceptingOffers, s.String())
		}
	})

	t.Run("生きている重複オファーNG", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		existing := builder.NewOfferBuilder().ForOrder(o.ID()).ByTraveler(traveler).BuildReconstructed()

		_, err := offer.NewOffer(o, traveler, []*offer.Offer{existing}, offer.CreateInput{}, now)
		assert.ErrorIs(t, err, offer.ErrDuplicateActiveOffer)
	})

	t.Run("期限切れや取り下げ済みは重複に数えない", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		lapsed := builder.NewOfferBuilder().ForOrder(o.ID()).ByTraveler(traveler).ExpiringAt(now.Add(-time.Minute)).BuildReconstructed()
		withdrawn := builder.NewOfferBuilder().ForOrder(o.ID()).ByTraveler(traveler).WithStatus(offer.StatusWithdrawn).BuildReconstructed()

		_, err := offer.NewOffer(o, traveler, []*offer.Offer{lapsed, withdrawn}, offer.CreateInput{}, now)
		assert.NoError(t, err)
	})

	t.Run("条件の検証", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		zero := decimal.Zero
		past := now.Add(-time.Hour)
		long := strings.Repeat("a", offer.MaxMessageLength+1)

		cases := []struct {
			name  string
			in    offer.CreateInput
			errIs error
		}{
			{name: "金額0 NG", in: offer.CreateInput{ProposedAmount: &zero}, errIs: offer.ErrInvalidAmount},
			{name: "過去の配達日NG", in: offer.CreateInput{ProposedDeliveryDate: &past}, errIs: offer.ErrDateNotFuture},
			{name: "メッセージ長すぎNG", in: offer.CreateInput{Message: &long}, errIs: offer.ErrMessageTooLong},
			{name: "負の有効期限NG", in: offer.CreateInput{ExpiresIn: -time.Hour}, errIs: offer.ErrInvalidExpiry},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := offer.NewOffer(o, traveler, nil, c.in, now)
				assert.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestIsActive(t *testing.T) {
	expires := builder.FixedNow.Add(time.Hour)
	f := builder.NewOfferBuilder().ExpiringAt(expires).BuildReconstructed()

	assert.True(t, f.IsActive(expires.Add(-time.Second)))
	assert.True(t, f.IsActive(expires))
	assert.False(t, f.IsActive(expires.Add(time.Nanosecond)))

	noExpiry := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.ExpiresAt = nil }).BuildReconstructed()
	assert.True(t, noExpiry.IsActive(builder.FixedNow.Add(1000*time.Hour)))

	rejected := builder.NewOfferBuilder().WithStatus(offer.StatusRejected).BuildReconstructed()
	assert.False(t, rejected.IsActive(builder.FixedNow))
}

func TestWithdrawAndReject(t *testing.T) {
	now := builder.FixedNow.Add(time.Minute)

	t.Run("withdraw 成功", func(t *testing.T) {
		f := builder.NewOfferBuilder().BuildReconstructed()
		require.NoError(t, f.Withdraw(now))
		assert.Equal(t, offer.StatusWithdrawn, f.Status())
		assert.Equal(t, now, f.UpdatedAt())
	})

	t.Run("reject 成功", func(t *testing.T) {
		f := builder.NewOfferBuilder().BuildReconstructed()
		require.NoError(t, f.Reject(now))
		assert.Equal(t, offer.StatusRejected, f.Status())
	})

	t.Run("accepted は withdraw 不可", func(t *testing.T) {
		f := builder.NewOfferBuilder().WithStatus(offer.StatusAccepted).BuildReconstructed()
		err := f.Withdraw(now)
		assert.ErrorIs(t, err, offer.ErrNotWithdrawable)

		var se *offer.StateError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, offer.StatusAccepted, se.Current)
		assert.Equal(t, offer.StatusWithdrawn, se.Attempted)
		assert.False(t, se.Expired)
		assert.Equal(t, offer.StatusAccepted, f.Status())
	})

	t.Run("期限切れは reject 不可で Expired が立つ", func(t *testing.T) {
		f := builder.NewOfferBuilder().ExpiringAt(now.Add(-time.Second)).BuildReconstructed()
		err := f.Reject(now)
		assert.ErrorIs(t, err, offer.ErrNotRejectable)

		var se *offer.StateError
		require.True(t, errors.As(err, &se))
		assert.True(t, se.Expired)
		assert.Equal(t, offer.StatusActive, f.Status())
	})
}

func TestUpdateOffer(t *testing.T) {
	now := builder.FixedNow.Add(time.Minute)

	t.Run("条件を更新", func(t *testing.T) {
		f := builder.NewOfferBuilder().BuildReconstructed()
		amount := decimal.RequireFromString("80.005")
		msg := "  updated  "
		require.NoError(t, f.Update(offer.UpdateInput{ProposedAmount: &amount, Message: &msg}, now))

		require.NotNil(t, f.ProposedAmount())
		assert.True(t, decimal.RequireFromString("80.01").Equal(*f.ProposedAmount()))
		assert.Equal(t, "updated", *f.Message())
	})

	t.Run("終端状態は更新不可", func(t *testing.T) {
		f := builder.NewOfferBuilder().WithStatus(offer.StatusExpired).BuildReconstructed()
		msg := "x"
		assert.ErrorIs(t, f.Update(offer.UpdateInput{Message: &msg}, now), offer.ErrNotEditable)
	})
}
