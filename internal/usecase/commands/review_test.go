//go:build unit

package commands_test

import (
	"context"
	"testing"

	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/order"
	domreview "marketplace-api/internal/domain/review"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/ptr"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewCommands_Create(t *testing.T) {
	ctx := context.Background()
	rb := builder.NewReviewBuilder()

	testCases := []struct {
		name        string
		reviewer    uuid.UUID
		orderStatus order.Status
		req         commands.CreateReviewRequest
		setupMock   func(h *uowtest.Harness)
		wantErr     error
		wantPublic  bool
	}{
		{
			name:        "success: shopper reviews traveler, public by default",
			reviewer:    rb.ShopperID,
			orderStatus: order.StatusCompleted,
			req:         commands.CreateReviewRequest{Rating: 5, Comment: ptr.Of("Great")},
			setupMock: func(h *uowtest.Harness) {
				h.Reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				h.Notifications.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, job *notification.Job) error {
						msg, _ := job.Message()
						assert.Equal(t, rb.TravelerID, msg.UserID)
						assert.Equal(t, notification.TypeReviewReceived, msg.Type)
						return nil
					})
			},
			wantPublic: true,
		},
		{
			name:        "success: traveler leaves a private review",
			reviewer:    rb.TravelerID,
			orderStatus: order.StatusCompleted,
			req:         commands.CreateReviewRequest{Rating: 4, IsPublic: ptr.Of(false)},
			setupMock: func(h *uowtest.Harness) {
				h.Reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, rev *domreview.Review) error {
						assert.False(t, rev.IsPublic())
						assert.Equal(t, rb.ShopperID, rev.ReviewedID())
						return nil
					})
				h.ExpectEnqueue(1)
			},
		},
		{
			name:        "error: order not completed",
			reviewer:    rb.ShopperID,
			orderStatus: order.StatusDelivered,
			req:         commands.CreateReviewRequest{Rating: 5},
			setupMock:   func(h *uowtest.Harness) {},
			wantErr:     errs.ErrConflict,
		},
		{
			name:        "error: outsider",
			reviewer:    uuid.New(),
			orderStatus: order.StatusCompleted,
			req:         commands.CreateReviewRequest{Rating: 5},
			setupMock:   func(h *uowtest.Harness) {},
			wantErr:     errs.ErrForbidden,
		},
		{
			name:        "error: rating out of range",
			reviewer:    rb.ShopperID,
			orderStatus: order.StatusCompleted,
			req:         commands.CreateReviewRequest{Rating: 6},
			setupMock:   func(h *uowtest.Harness) {},
			wantErr:     errs.ErrValidation,
		},
		{
			name:        "error: second review by the same user",
			reviewer:    rb.ShopperID,
			orderStatus: order.StatusCompleted,
			req:         commands.CreateReviewRequest{Rating: 3},
			setupMock: func(h *uowtest.Harness) {
				h.Reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create review", nil, infra.KindDuplicateKey))
			},
			wantErr: commands.ErrDuplicateReview,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := uowtest.New(ctrl)
			o := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) {
				b.ShopperID = rb.ShopperID
				b.TravelerID = rb.TravelerID
				b.Status = tc.orderStatus
			}).BuildOrder()
			h.Orders.EXPECT().FindByID(gomock.Any(), gomock.Any(), o.ID()).Return(o, nil)
			tc.setupMock(h)

			cmds := commands.NewReviewCommands(h.UoW, clock.NewMockClock(builder.FixedNow))
			res, err := cmds.Create(ctx, shared.Actor{ID: tc.reviewer, Role: user.RoleBoth}, o.ID(), tc.req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, res.ReviewID)
		})
	}
}

func TestReviewCommands_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("reviewee responds once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		rb := builder.NewReviewBuilder()
		rev, err := rb.BuildDomain()
		require.NoError(t, err)

		h.Reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rev.ID()).Return(rev, nil)
		h.Reviews.EXPECT().SaveResponse(gomock.Any(), gomock.Any(), rev).Return(nil)

		cmds := commands.NewReviewCommands(h.UoW, clock.NewMockClock(builder.FixedNow))
		require.NoError(t, cmds.Respond(ctx, shared.Actor{ID: rb.TravelerID, Role: user.RoleTraveler}, rev.ID(), "Thanks!"))
		require.NotNil(t, rev.Response())
		assert.Equal(t, "Thanks!", rev.Response().String())
	})

	t.Run("reviewer cannot respond to their own review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		rb := builder.NewReviewBuilder()
		rev, err := rb.BuildDomain()
		require.NoError(t, err)

		h.Reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rev.ID()).Return(rev, nil)

		cmds := commands.NewReviewCommands(h.UoW, clock.NewMockClock(builder.FixedNow))
		err = cmds.Respond(ctx, shared.Actor{ID: rb.ShopperID, Role: user.RoleShopper}, rev.ID(), "Me too")
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("concurrent response loses the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		rb := builder.NewReviewBuilder()
		rev, err := rb.BuildDomain()
		require.NoError(t, err)

		h.Reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), rev.ID()).Return(rev, nil)
		h.Reviews.EXPECT().SaveResponse(gomock.Any(), gomock.Any(), rev).
			Return(infra.WrapRepoErr("review response already set", nil, infra.KindConflict))

		cmds := commands.NewReviewCommands(h.UoW, clock.NewMockClock(builder.FixedNow))
		err = cmds.Respond(ctx, shared.Actor{ID: rb.TravelerID, Role: user.RoleTraveler}, rev.ID(), "Thanks!")
		assert.True(t, errs.Is(err, domreview.ErrAlreadyResponded))
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})
}
