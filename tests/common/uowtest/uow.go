//go:build unit

package uowtest

import (
	"context"

	"marketplace-api/internal/infra/sqlstore"
	"marketplace-api/internal/usecase/shared"
	sharedmock "marketplace-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// Harness is a mocked unit of work whose transactions run the callback inline
// against a single mocked Tx. Tests set expectations on the repository mocks.
type Harness struct {
	UoW           *sharedmock.MockUnitOfWork
	Tx            *sharedmock.MockTx
	Orders        *sharedmock.MockOrderRepository
	Offers        *sharedmock.MockOfferRepository
	Escrows       *sharedmock.MockEscrowRepository
	Reviews       *sharedmock.MockReviewRepository
	Notifications *sharedmock.MockNotificationRepository
	Idempotency   *sharedmock.MockIdempotencyRepository
	Users         *sharedmock.MockUserRepository
	Conversations *sharedmock.MockConversationRepository
}

func New(ctrl *gomock.Controller) *Harness {
	h := &Harness{
		UoW:           sharedmock.NewMockUnitOfWork(ctrl),
		Tx:            sharedmock.NewMockTx(ctrl),
		Orders:        sharedmock.NewMockOrderRepository(ctrl),
		Offers:        sharedmock.NewMockOfferRepository(ctrl),
		Escrows:       sharedmock.NewMockEscrowRepository(ctrl),
		Reviews:       sharedmock.NewMockReviewRepository(ctrl),
		Notifications: sharedmock.NewMockNotificationRepository(ctrl),
		Idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		Users:         sharedmock.NewMockUserRepository(ctrl),
		Conversations: sharedmock.NewMockConversationRepository(ctrl),
	}

	h.Tx.EXPECT().Orders().Return(h.Orders).AnyTimes()
	h.Tx.EXPECT().Offers().Return(h.Offers).AnyTimes()
	h.Tx.EXPECT().Escrows().Return(h.Escrows).AnyTimes()
	h.Tx.EXPECT().Reviews().Return(h.Reviews).AnyTimes()
	h.Tx.EXPECT().Notifications().Return(h.Notifications).AnyTimes()
	h.Tx.EXPECT().Idempotency().Return(h.Idempotency).AnyTimes()
	h.Tx.EXPECT().Users().Return(h.Users).AnyTimes()
	h.Tx.EXPECT().Conversations().Return(h.Conversations).AnyTimes()
	h.Tx.EXPECT().DB().Return(nil).AnyTimes()

	h.UoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.Tx)
		}).AnyTimes()
	h.UoW.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlstore.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	h.UoW.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlstore.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	h.UoW.EXPECT().Direct().Return(h.Tx).AnyTimes()

	return h
}

// ExpectEnqueue accepts n queued notification jobs.
func (h *Harness) ExpectEnqueue(n int) *gomock.Call {
	return h.Notifications.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(n)
}
