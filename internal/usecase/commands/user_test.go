//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/ptr"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/uowtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserCommands_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	now := builder.FixedNow.Add(time.Hour)

	t.Run("プロフィールを更新して保存する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		u := builder.NewUserBuilder().BuildReconstructed()
		actor := shared.Actor{ID: u.ID(), Role: u.Role()}
		h.Users.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		h.Users.EXPECT().Save(gomock.Any(), gomock.Any(), u).
			DoAndReturn(func(_ context.Context, _ any, saved *user.User) error {
				assert.Equal(t, "Aki", saved.Name().First())
				assert.Equal(t, "JP", *saved.Profile().PrimaryCountry())
				assert.Equal(t, now, saved.UpdatedAt())
				return nil
			})

		cmds := commands.NewUserCommands(h.UoW, clock.NewMockClock(now))
		require.NoError(t, cmds.UpdateProfile(ctx, actor, user.ProfileUpdate{FirstName: ptr.Of("Aki"), PrimaryCountry: ptr.Of("jp")}))
	})

	t.Run("invalid field is a validation error and nothing is saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		u := builder.NewUserBuilder().BuildReconstructed()
		h.Users.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		h.Users.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		cmds := commands.NewUserCommands(h.UoW, clock.NewMockClock(now))
		err := cmds.UpdateProfile(ctx, shared.Actor{ID: u.ID(), Role: u.Role()}, user.ProfileUpdate{AvatarURL: ptr.Of("not a url")})

		assert.ErrorIs(t, err, user.ErrInvalidAvatarURL)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("missing account is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		actor := shared.Actor{ID: builder.NewUserBuilder().ID, Role: user.RoleBoth}
		h.Users.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), actor.ID).
			Return(nil, infra.WrapRepoErr("failed to lock user", nil, infra.KindNotFound))

		cmds := commands.NewUserCommands(h.UoW, clock.NewMockClock(now))
		err := cmds.UpdateProfile(ctx, actor, user.ProfileUpdate{Bio: ptr.Of("hi")})

		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}

func TestUserCommands_Deactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("退会すると非アクティブで保存される", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		u := builder.NewUserBuilder().BuildReconstructed()
		h.Users.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		h.Users.EXPECT().Save(gomock.Any(), gomock.Any(), u).
			DoAndReturn(func(_ context.Context, _ any, saved *user.User) error {
				assert.False(t, saved.IsActive())
				return nil
			})

		cmds := commands.NewUserCommands(h.UoW, clock.NewMockClock(builder.FixedNow))
		require.NoError(t, cmds.Deactivate(ctx, shared.Actor{ID: u.ID(), Role: u.Role()}))
	})

	t.Run("already deactivated account conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := uowtest.New(ctrl)
		u := builder.NewUserBuilder().AsInactive().BuildReconstructed()
		h.Users.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		h.Users.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		cmds := commands.NewUserCommands(h.UoW, clock.NewMockClock(builder.FixedNow))
		err := cmds.Deactivate(ctx, shared.Actor{ID: u.ID(), Role: u.Role()})

		assert.True(t, errs.Is(err, errs.ErrConflict))
	})
}
