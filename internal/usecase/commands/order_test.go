//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-api/internal/domain/conversation"
	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/offer"
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/ptr"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	h        *uowtest.Harness
	cmds     commands.OrderCommands
	shopper  shared.Actor
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.h = uowtest.New(s.mockCtrl)
	s.cmds = commands.NewOrderCommands(s.h.UoW, clock.NewMockClock(builder.FixedNow), config.NewTestConfig().Marketplace)
	s.shopper = shared.Actor{ID: uuid.New(), Role: user.RoleShopper}
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) TestCreate() {
	in := builder.NewOrderBuilder().Input
	key := uuid.New()

	s.Run("new key creates the order", func() {
		var createdID uuid.UUID
		s.h.Idempotency.EXPECT().
			TryInsert(gomock.Any(), gomock.Any(), key, s.shopper.ID, "POST /orders", gomock.Any(), builder.FixedNow, builder.FixedNow.Add(config.NewTestConfig().Marketplace.IdempotencyTTL)).
			Return(true, nil)
		s.h.Orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *order.Order, h *order.StatusHistory) error {
				createdID = o.ID()
				s.Equal(s.shopper.ID, o.ShopperID())
				s.Equal(order.StatusActive, o.Status())
				s.Equal("105.00", o.Pricing().TotalCost().StringFixed(2))
				s.Equal(order.StatusActive, h.NewStatus())
				return nil
			})
		s.h.Idempotency.EXPECT().Complete(gomock.Any(), gomock.Any(), key, s.shopper.ID, gomock.Any(), builder.FixedNow).Return(nil)

		res, err := s.cmds.Create(s.ctx, s.shopper, in, key)

		s.Require().NoError(err)
		s.False(res.IsReplayed)
		s.Equal(createdID, res.OrderID)
	})

	s.Run("completed key replays the stored order", func() {
		stored := uuid.New()
		var hash string
		s.h.Idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.shopper.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _, requestHash string, _, _ any) (bool, error) {
				hash = requestHash
				return false, nil
			})
		s.h.Idempotency.EXPECT().Get(gomock.Any(), gomock.Any(), key, s.shopper.ID).
			DoAndReturn(func(context.Context, any, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{Key: key, UserID: s.shopper.ID, Status: shared.IdempotencyCompleted, RequestHash: hash, ResultOrderID: &stored}, nil
			})

		res, err := s.cmds.Create(s.ctx, s.shopper, in, key)

		s.Require().NoError(err)
		s.True(res.IsReplayed)
		s.Equal(stored, res.OrderID)
	})

	s.Run("same key with different body is a mismatch", func() {
		s.h.Idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.h.Idempotency.EXPECT().Get(gomock.Any(), gomock.Any(), key, s.shopper.ID).
			Return(&shared.IdempotencyRecord{Status: shared.IdempotencyCompleted, RequestHash: "other"}, nil)

		_, err := s.cmds.Create(s.ctx, s.shopper, in, key)

		s.True(errs.Is(err, errs.ErrIdempotencyMismatch))
	})

	s.Run("key still processing", func() {
		var hash string
		s.h.Idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _, requestHash string, _, _ any) (bool, error) {
				hash = requestHash
				return false, nil
			})
		s.h.Idempotency.EXPECT().Get(gomock.Any(), gomock.Any(), key, s.shopper.ID).
			DoAndReturn(func(context.Context, any, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
				return &shared.IdempotencyRecord{Status: shared.IdempotencyProcessing, RequestHash: hash}, nil
			})

		_, err := s.cmds.Create(s.ctx, s.shopper, in, key)

		s.True(errs.Is(err, errs.ErrIdempotencyInProgress))
	})

	s.Run("missing key", func() {
		_, err := s.cmds.Create(s.ctx, s.shopper, in, uuid.Nil)
		s.True(errs.Is(err, errs.ErrIdempotencyKeyRequired))
	})

	s.Run("traveler cannot post orders", func() {
		_, err := s.cmds.Create(s.ctx, shared.Actor{ID: uuid.New(), Role: user.RoleTraveler}, in, key)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("invalid input is a validation error", func() {
		bad := in
		bad.RewardAmount = bad.RewardAmount.Neg()
		s.h.Idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := s.cmds.Create(s.ctx, s.shopper, bad, key)

		s.True(errs.Is(err, errs.ErrValidation))
		s.True(errs.Is(err, order.ErrInvalidReward))
	})
}

func (s *OrderCommandsTestSuite) TestUpdate() {
	o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).BuildReconstructed()

	s.Run("shopper updates an editable order", func() {
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Orders.EXPECT().Save(gomock.Any(), gomock.Any(), o).Return(nil)

		err := s.cmds.Update(s.ctx, s.shopper, o.ID(), order.UpdateInput{ProductName: ptr.Of("Matcha KitKat")})

		s.Require().NoError(err)
		s.Equal("Matcha KitKat", o.Product().Name())
	})

	s.Run("other user is forbidden", func() {
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)

		err := s.cmds.Update(s.ctx, shared.Actor{ID: uuid.New(), Role: user.RoleShopper}, o.ID(), order.UpdateInput{})

		s.ErrorIs(err, commands.ErrNotOrderShopper)
	})

	s.Run("matched order is not editable", func() {
		matched := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).
			MatchedTo(uuid.New(), order.StatusMatched).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), matched.ID()).Return(matched, nil)

		err := s.cmds.Update(s.ctx, s.shopper, matched.ID(), order.UpdateInput{ProductName: ptr.Of("x")})

		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("unknown order", func() {
		id := uuid.New()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("failed to lock order", nil, infra.KindNotFound))

		err := s.cmds.Update(s.ctx, s.shopper, id, order.UpdateInput{})

		s.ErrorIs(err, commands.ErrOrderNotFound)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *OrderCommandsTestSuite) TestDelete() {
	s.Run("active order is soft deleted", func() {
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Offers.EXPECT().LockByOrder(gomock.Any(), gomock.Any(), o.ID()).Return(nil, nil)
		s.h.Offers.EXPECT().SaveAll(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.h.Orders.EXPECT().Delete(gomock.Any(), gomock.Any(), o).Return(nil)

		s.NoError(s.cmds.Delete(s.ctx, s.shopper, o.ID()))
		s.Require().NotNil(o.DeletedAt())
		s.Equal(builder.FixedNow, *o.DeletedAt())
	})

	s.Run("live offers are withdrawn and their travelers told", func() {
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).BuildReconstructed()
		live := builder.NewOfferBuilder().ForOrder(o.ID()).BuildReconstructed()
		other := builder.NewOfferBuilder().ForOrder(o.ID()).BuildReconstructed()
		lapsed := builder.NewOfferBuilder().ForOrder(o.ID()).ExpiringAt(builder.FixedNow.Add(-time.Hour)).BuildReconstructed()
		rejected := builder.NewOfferBuilder().ForOrder(o.ID()).WithStatus(offer.StatusRejected).BuildReconstructed()

		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Offers.EXPECT().LockByOrder(gomock.Any(), gomock.Any(), o.ID()).
			Return([]*offer.Offer{live, other, lapsed, rejected}, nil)
		s.h.Offers.EXPECT().SaveAll(gomock.Any(), gomock.Any(), []*offer.Offer{live, other}).Return(nil)
		s.h.Orders.EXPECT().Delete(gomock.Any(), gomock.Any(), o).Return(nil)
		var told []uuid.UUID
		s.h.Notifications.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, job *notification.Job) error {
				msg, err := job.Message()
				s.Require().NoError(err)
				s.Equal(notification.TypeOfferDeclined, msg.Type)
				told = append(told, msg.UserID)
				return nil
			}).Times(2)

		s.Require().NoError(s.cmds.Delete(s.ctx, s.shopper, o.ID()))

		s.Equal(offer.StatusWithdrawn, live.Status())
		s.Equal(offer.StatusWithdrawn, other.Status())
		s.Equal(offer.StatusActive, lapsed.Status())
		s.Equal(offer.StatusRejected, rejected.Status())
		s.ElementsMatch([]uuid.UUID{live.TravelerID(), other.TravelerID()}, told)
	})

	s.Run("purchased order cannot be deleted", func() {
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).
			MatchedTo(uuid.New(), order.StatusPurchased).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)

		err := s.cmds.Delete(s.ctx, s.shopper, o.ID())

		s.True(errs.Is(err, errs.ErrConflict))
		s.True(errs.Is(err, order.ErrNotEditable))
		s.Nil(o.DeletedAt())
	})

	s.Run("only the shopper may delete", func() {
		o := builder.NewOrderBuilder().BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)

		s.ErrorIs(s.cmds.Delete(s.ctx, s.shopper, o.ID()), commands.ErrNotOrderShopper)
	})

	s.Run("database failure is not exposed as a client error", func() {
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Offers.EXPECT().LockByOrder(gomock.Any(), gomock.Any(), o.ID()).Return(nil, nil)
		s.h.Orders.EXPECT().Delete(gomock.Any(), gomock.Any(), o).Return(infra.WrapRepoErr("failed to delete order", errors.New("connection reset")))

		err := s.cmds.Delete(s.ctx, s.shopper, o.ID())

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *OrderCommandsTestSuite) TestChangeStatus() {
	traveler := shared.Actor{ID: uuid.New(), Role: user.RoleTraveler}
	matchedOrder := func(st order.Status) *order.Order {
		return builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).
			MatchedTo(traveler.ID, st).BuildReconstructed()
	}

	s.Run("shopper marks purchased and the traveler is told", func() {
		o := matchedOrder(order.StatusMatched)
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Orders.EXPECT().Save(gomock.Any(), gomock.Any(), o).Return(nil)
		s.h.Orders.EXPECT().AppendHistory(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, h *order.StatusHistory) error {
				s.Require().NotNil(h.OldStatus())
				s.Equal(order.StatusMatched, *h.OldStatus())
				s.Equal(order.StatusPurchased, h.NewStatus())
				return nil
			})
		s.h.Notifications.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, job *notification.Job) error {
				msg, err := job.Message()
				s.Require().NoError(err)
				s.Equal(traveler.ID, msg.UserID)
				s.Equal(notification.TypeOrderStatusChanged, msg.Type)
				return nil
			})

		err := s.cmds.ChangeStatus(s.ctx, s.shopper, o.ID(), commands.ChangeStatusRequest{Status: "purchased", Notes: "bought it"})

		s.Require().NoError(err)
		s.Equal(order.StatusPurchased, o.Status())
	})

	s.Run("traveler cannot mark purchased", func() {
		o := matchedOrder(order.StatusMatched)
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)

		err := s.cmds.ChangeStatus(s.ctx, traveler, o.ID(), commands.ChangeStatusRequest{Status: "purchased"})

		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("skipping a state is a conflict", func() {
		o := matchedOrder(order.StatusMatched)
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)

		err := s.cmds.ChangeStatus(s.ctx, traveler, o.ID(), commands.ChangeStatusRequest{Status: "delivered"})

		s.True(errs.Is(err, errs.ErrConflict))
		s.True(errs.Is(err, order.ErrInvalidTransition))
		s.Equal(order.StatusMatched, o.Status())
	})

	s.Run("matched is reachable only through offers", func() {
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)

		err := s.cmds.ChangeStatus(s.ctx, s.shopper, o.ID(), commands.ChangeStatusRequest{Status: "matched"})

		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("unknown status is a validation error", func() {
		err := s.cmds.ChangeStatus(s.ctx, s.shopper, uuid.New(), commands.ChangeStatusRequest{Status: "teleported"})
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("dispute notifies with the dispute type", func() {
		o := matchedOrder(order.StatusInTransit)
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Orders.EXPECT().Save(gomock.Any(), gomock.Any(), o).Return(nil)
		s.h.Orders.EXPECT().AppendHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.h.Notifications.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, job *notification.Job) error {
				msg, _ := job.Message()
				s.Equal(s.shopper.ID, msg.UserID)
				s.Equal(notification.TypeDisputeOpened, msg.Type)
				return nil
			})

		s.NoError(s.cmds.ChangeStatus(s.ctx, traveler, o.ID(), commands.ChangeStatusRequest{Status: "disputed"}))
	})

	s.Run("completing the order closes its conversation", func() {
		o := matchedOrder(order.StatusDelivered)
		conv := builder.NewConversationBuilder().With(func(b *builder.ConversationBuilder) {
			b.OrderID = o.ID()
			b.ShopperID = s.shopper.ID
			b.TravelerID = traveler.ID
		}).BuildDomain()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Orders.EXPECT().Save(gomock.Any(), gomock.Any(), o).Return(nil)
		s.h.Orders.EXPECT().AppendHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.h.Conversations.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(conv, nil)
		s.h.Conversations.EXPECT().Save(gomock.Any(), gomock.Any(), conv).Return(nil)
		s.h.Conversations.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, m *conversation.Message) error {
				s.Equal(conversation.MessageSystem, m.Type())
				s.Contains(m.Content(), "completed")
				return nil
			})
		s.h.ExpectEnqueue(1)

		s.Require().NoError(s.cmds.ChangeStatus(s.ctx, s.shopper, o.ID(), commands.ChangeStatusRequest{Status: "completed"}))

		s.False(conv.IsActive())
		s.ErrorIs(conv.CheckCanSend(traveler.ID), conversation.ErrConversationClosed)
	})

	s.Run("cancelling before a match has no conversation to close", func() {
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Orders.EXPECT().Save(gomock.Any(), gomock.Any(), o).Return(nil)
		s.h.Orders.EXPECT().AppendHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.h.Conversations.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).
			Return(nil, infra.WrapRepoErr("failed to lock order conversation", nil, infra.KindNotFound))

		s.Require().NoError(s.cmds.ChangeStatus(s.ctx, s.shopper, o.ID(), commands.ChangeStatusRequest{Status: "cancelled"}))
		s.Equal(order.StatusCancelled, o.Status())
	})
}
