//go:build unit

package commands_test

import (
	"context"
	"testing"

	"marketplace-api/internal/domain/escrow"
	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EscrowCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	h        *uowtest.Harness
	cmds     commands.EscrowCommands
	shopper  shared.Actor
	traveler shared.Actor
	admin    shared.Actor
}

func (s *EscrowCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.h = uowtest.New(s.mockCtrl)
	s.cmds = commands.NewEscrowCommands(s.h.UoW, clock.NewMockClock(builder.FixedNow))
	s.shopper = shared.Actor{ID: uuid.New(), Role: user.RoleShopper}
	s.traveler = shared.Actor{ID: uuid.New(), Role: user.RoleTraveler}
	s.admin = shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

func (s *EscrowCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEscrowCommandsSuite(t *testing.T) {
	suite.Run(t, new(EscrowCommandsTestSuite))
}

func (s *EscrowCommandsTestSuite) orderIn(st order.Status) *order.Order {
	return builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).
		MatchedTo(s.traveler.ID, st).BuildReconstructed()
}

func (s *EscrowCommandsTestSuite) TestFund() {
	s.Run("holding split comes from the order pricing", func() {
		o := s.orderIn(order.StatusMatched)
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, h *escrow.Holding) error {
				s.Equal(o.ID(), h.OrderID())
				s.Equal("105.00", h.TotalAmount().StringFixed(2))
				s.Equal("5.00", h.PlatformFee().StringFixed(2))
				s.Equal("100.00", h.TravelerPayout().StringFixed(2))
				s.Equal("pi_test_123", h.PaymentReference())
				return nil
			})

		s.NoError(s.cmds.Fund(s.ctx, s.shopper, o.ID(), "pi_test_123"))
	})

	s.Run("second holding for the order conflicts", func() {
		o := s.orderIn(order.StatusMatched)
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create escrow", nil, infra.KindDuplicateKey))

		s.ErrorIs(s.cmds.Fund(s.ctx, s.shopper, o.ID(), "pi_test_123"), commands.ErrEscrowExists)
	})

	s.Run("unmatched order cannot be funded", func() {
		o := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.ShopperID = s.shopper.ID }).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)

		err := s.cmds.Fund(s.ctx, s.shopper, o.ID(), "pi_test_123")

		s.True(errs.Is(err, errs.ErrConflict))
		s.True(errs.Is(err, escrow.ErrOrderNotFundable))
	})

	s.Run("only the shopper funds", func() {
		o := s.orderIn(order.StatusMatched)
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)

		s.ErrorIs(s.cmds.Fund(s.ctx, s.traveler, o.ID(), "pi_test_123"), commands.ErrNotOrderShopper)
	})
}

func (s *EscrowCommandsTestSuite) TestRelease() {
	s.Run("delivered order releases to the traveler and keeps its status", func() {
		o := s.orderIn(order.StatusDelivered)
		h := builder.NewHoldingBuilder().ForOrder(o.ID()).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(h, nil)
		s.h.Escrows.EXPECT().Save(gomock.Any(), gomock.Any(), h).Return(nil)
		s.h.Notifications.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, job *notification.Job) error {
				msg, _ := job.Message()
				s.Equal(s.traveler.ID, msg.UserID)
				s.Equal(notification.TypeEscrowReleased, msg.Type)
				s.Equal("100.00", msg.Data["amount"])
				return nil
			})

		s.Require().NoError(s.cmds.Release(s.ctx, s.shopper, o.ID()))
		s.True(h.IsReleased())
		s.Equal(order.StatusDelivered, o.Status())
	})

	s.Run("admin may release", func() {
		o := s.orderIn(order.StatusDelivered)
		h := builder.NewHoldingBuilder().ForOrder(o.ID()).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(h, nil)
		s.h.Escrows.EXPECT().Save(gomock.Any(), gomock.Any(), h).Return(nil)
		s.h.ExpectEnqueue(1)

		s.NoError(s.cmds.Release(s.ctx, s.admin, o.ID()))
	})

	s.Run("in-transit order is not releasable", func() {
		o := s.orderIn(order.StatusInTransit)
		h := builder.NewHoldingBuilder().ForOrder(o.ID()).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(h, nil)

		err := s.cmds.Release(s.ctx, s.shopper, o.ID())

		s.True(errs.Is(err, errs.ErrConflict))
		s.False(h.IsReleased())
	})

	s.Run("disputed holding is not releasable", func() {
		o := s.orderIn(order.StatusDelivered)
		h := builder.NewHoldingBuilder().ForOrder(o.ID()).AsDisputed().BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(h, nil)

		s.True(errs.Is(s.cmds.Release(s.ctx, s.shopper, o.ID()), escrow.ErrEscrowNotReleasable))
	})

	s.Run("missing holding", func() {
		o := s.orderIn(order.StatusDelivered)
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).
			Return(nil, infra.WrapRepoErr("failed to get escrow", nil, infra.KindNotFound))

		s.ErrorIs(s.cmds.Release(s.ctx, s.shopper, o.ID()), commands.ErrEscrowNotFound)
	})
}

func (s *EscrowCommandsTestSuite) TestDisputeAndResolve() {
	s.Run("traveler disputes and the shopper is told", func() {
		o := s.orderIn(order.StatusDelivered)
		h := builder.NewHoldingBuilder().ForOrder(o.ID()).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(h, nil)
		s.h.Escrows.EXPECT().Save(gomock.Any(), gomock.Any(), h).Return(nil)
		s.h.Notifications.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, job *notification.Job) error {
				msg, _ := job.Message()
				s.Equal(s.shopper.ID, msg.UserID)
				return nil
			})

		s.Require().NoError(s.cmds.Dispute(s.ctx, s.traveler, o.ID()))
		s.True(h.IsDisputed())
	})

	s.Run("outsider cannot dispute", func() {
		o := s.orderIn(order.StatusDelivered)
		h := builder.NewHoldingBuilder().ForOrder(o.ID()).BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(h, nil)

		err := s.cmds.Dispute(s.ctx, shared.Actor{ID: uuid.New(), Role: user.RoleBoth}, o.ID())

		s.ErrorIs(err, commands.ErrNotParticipant)
	})

	s.Run("released holding cannot be disputed", func() {
		o := s.orderIn(order.StatusCompleted)
		h := builder.NewHoldingBuilder().ForOrder(o.ID()).AsReleased().BuildReconstructed()
		s.h.Orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
		s.h.Escrows.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), o.ID()).Return(h, nil)

		s.True(errs.Is(s.cmds.Dispute(s.ctx, s.shopper, o.ID()), errs.ErrConflict))
	})

	s.Run("admin resolves", func() {
		orderID := uuid.New()
		h := builder.NewHoldingBuilder().ForOrder(orderID).AsDisputed().BuildReconstructed()
		s.h.Escrows.EXPECT().FindByOrderForUpdate(gomock.Any(), gomock.Any(), orderID).Return(h, nil)
		s.h.Escrows.EXPECT().Save(gomock.Any(), gomock.Any(), h).Return(nil)

		s.Require().NoError(s.cmds.Resolve(s.ctx, s.admin, orderID, "refund shopper"))
		s.Require().NotNil(h.DisputeResolution())
		s.Equal("refund shopper", *h.DisputeResolution())
	})

	s.Run("resolution needs admin and text", func() {
		s.ErrorIs(s.cmds.Resolve(s.ctx, s.shopper, uuid.New(), "x"), commands.ErrAdminRequired)
		s.ErrorIs(s.cmds.Resolve(s.ctx, s.admin, uuid.New(), ""), commands.ErrResolutionRequired)
		s.ErrorIs(s.cmds.Resolve(s.ctx, s.admin, uuid.New(), "  \t\n "), commands.ErrResolutionRequired)
	})
}
