//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace-api/internal/domain/notification"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/uowtest"
	commandsmock "marketplace-api/tests/mock/commands"
	sharedmock "marketplace-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func queuedJob(t *testing.T, userID uuid.UUID, attempts int) *notification.Job {
	t.Helper()
	msg, err := notification.NewMessage(userID, notification.TypeOfferReceived, "New offer received", "A traveler made an offer", map[string]any{"order_id": uuid.NewString()})
	require.NoError(t, err)
	job, err := notification.NewJob(msg, builder.FixedNow)
	require.NoError(t, err)
	return notification.ReconstructJob(job.ID(), job.Kind(), job.Topic(), job.Payload(), job.RunAt(), attempts, notification.JobQueued, nil, job.CreatedAt(), job.UpdatedAt())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotificationCommands_Dispatch(t *testing.T) {
	ctx := context.Background()
	recipient := uuid.New()

	t.Run("published job stores the in-app notification and is marked sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		publisher := commandsmock.NewMockPublisher(ctrl)
		job := queuedJob(t, recipient, 0)

		gomock.InOrder(
			h.Notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), builder.FixedNow, int32(10)).Return([]*notification.Job{job}, nil),
			h.Notifications.EXPECT().SaveJob(gomock.Any(), gomock.Any(), job).
				DoAndReturn(func(_ context.Context, _ any, j *notification.Job) error {
					assert.Equal(t, builder.FixedNow.Add(notification.ClaimLease), j.RunAt())
					assert.Equal(t, notification.JobQueued, j.Status())
					return nil
				}),
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, m notification.Message) error {
					assert.Equal(t, recipient, m.UserID)
					return nil
				}),
			h.Notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, n *notification.Notification) error {
					assert.Equal(t, recipient, n.UserID())
					assert.False(t, n.IsRead())
					return nil
				}),
			h.Notifications.EXPECT().SaveJob(gomock.Any(), gomock.Any(), job).Return(nil),
		)

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), publisher, discardLogger())
		res, err := cmds.Dispatch(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, &commands.DispatchResult{Sent: 1}, res)
		assert.Equal(t, notification.JobSent, job.Status())
	})

	t.Run("publishes with no transaction open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		publisher := commandsmock.NewMockPublisher(ctrl)
		job := queuedJob(t, recipient, 0)

		inTx := false
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				inTx = true
				defer func() { inTx = false }()
				return fn(ctx, h.Tx)
			}).Times(2)

		h.Notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*notification.Job{job}, nil)
		h.Notifications.EXPECT().SaveJob(gomock.Any(), gomock.Any(), job).Return(nil).Times(2)
		h.Notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, notification.Message) error {
				assert.False(t, inTx, "publish must not run inside the claiming transaction")
				return nil
			})

		cmds := commands.NewNotificationCommands(uow, clock.NewMockClock(builder.FixedNow), publisher, discardLogger())
		_, err := cmds.Dispatch(ctx, 10)
		require.NoError(t, err)
	})

	t.Run("settle failure does not publish twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		publisher := commandsmock.NewMockPublisher(ctrl)
		job := queuedJob(t, recipient, 0)

		h.Notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*notification.Job{job}, nil)
		h.Notifications.EXPECT().SaveJob(gomock.Any(), gomock.Any(), job).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		h.Notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), publisher, discardLogger())
		res, err := cmds.Dispatch(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, &commands.DispatchResult{}, res)
	})

	t.Run("publish failure requeues with backoff and writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		publisher := commandsmock.NewMockPublisher(ctrl)
		job := queuedJob(t, recipient, 1)

		h.Notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*notification.Job{job}, nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		h.Notifications.EXPECT().SaveJob(gomock.Any(), gomock.Any(), job).Return(nil).Times(2)

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), publisher, discardLogger())
		res, err := cmds.Dispatch(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Retry)
		assert.Equal(t, notification.JobQueued, job.Status())
		assert.Equal(t, 2, job.Attempts())
		assert.Equal(t, builder.FixedNow.Add(60*time.Second), job.RunAt())
		require.NotNil(t, job.LastError())
		assert.Equal(t, "redis down", *job.LastError())
	})

	t.Run("last attempt parks the job as failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		publisher := commandsmock.NewMockPublisher(ctrl)
		job := queuedJob(t, recipient, notification.MaxAttempts-1)

		h.Notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]*notification.Job{job}, nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		h.Notifications.EXPECT().SaveJob(gomock.Any(), gomock.Any(), job).Return(nil).Times(2)

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), publisher, discardLogger())
		res, err := cmds.Dispatch(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, &commands.DispatchResult{Failed: 1}, res)
		assert.Equal(t, notification.JobFailed, job.Status())
	})
}

func TestNotificationCommands_MarkRead(t *testing.T) {
	ctx := context.Background()
	owner := shared.Actor{ID: uuid.New(), Role: user.RoleShopper}

	newNotification := func() *notification.Notification {
		return notification.ReconstructNotification(uuid.New(), owner.ID, notification.TypeOfferReceived, "t", "m", nil, false, nil, builder.FixedNow)
	}

	t.Run("owner marks read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		n := newNotification()
		h.Notifications.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), n.ID()).Return(n, nil)
		h.Notifications.EXPECT().MarkRead(gomock.Any(), gomock.Any(), n).Return(nil)

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), commandsmock.NewMockPublisher(ctrl), discardLogger())
		require.NoError(t, cmds.MarkRead(ctx, owner, n.ID()))
		assert.True(t, n.IsRead())
	})

	t.Run("other user's notification is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		n := newNotification()
		h.Notifications.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), n.ID()).Return(n, nil)

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), commandsmock.NewMockPublisher(ctrl), discardLogger())
		err := cmds.MarkRead(ctx, shared.Actor{ID: uuid.New(), Role: user.RoleShopper}, n.ID())
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("mark all read returns the count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		h.Notifications.EXPECT().MarkAllRead(gomock.Any(), gomock.Any(), owner.ID, builder.FixedNow).Return(int64(3), nil)

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), commandsmock.NewMockPublisher(ctrl), discardLogger())
		n, err := cmds.MarkAllRead(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestNotificationCommands_Delete(t *testing.T) {
	ctx := context.Background()
	owner := shared.Actor{ID: uuid.New(), Role: user.RoleTraveler}

	t.Run("受信者は削除できる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		n := notification.ReconstructNotification(uuid.New(), owner.ID, notification.TypeOfferDeclined, "t", "m", nil, true, nil, builder.FixedNow)
		h.Notifications.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), n.ID()).Return(n, nil)
		h.Notifications.EXPECT().Delete(gomock.Any(), gomock.Any(), n.ID()).Return(nil)

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), commandsmock.NewMockPublisher(ctrl), discardLogger())
		require.NoError(t, cmds.Delete(ctx, owner, n.ID()))
	})

	t.Run("他人の通知は削除できない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		n := notification.ReconstructNotification(uuid.New(), uuid.New(), notification.TypeOfferDeclined, "t", "m", nil, false, nil, builder.FixedNow)
		h.Notifications.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), n.ID()).Return(n, nil)
		h.Notifications.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), commandsmock.NewMockPublisher(ctrl), discardLogger())
		err := cmds.Delete(ctx, owner, n.ID())
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("missing notification is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		id := uuid.New()
		h.Notifications.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("failed to lock notification", nil, infra.KindNotFound))

		cmds := commands.NewNotificationCommands(h.UoW, clock.NewMockClock(builder.FixedNow), commandsmock.NewMockPublisher(ctrl), discardLogger())
		assert.ErrorIs(t, cmds.Delete(ctx, owner, id), commands.ErrNotificationNotFound)
	})
}

func TestMaintenanceCommands_PurgeIdempotencyKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := uowtest.New(ctrl)
	h.Idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), builder.FixedNow).Return(int64(7), nil)

	n, err := commands.NewMaintenanceCommands(h.UoW, clock.NewMockClock(builder.FixedNow)).PurgeIdempotencyKeys(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
