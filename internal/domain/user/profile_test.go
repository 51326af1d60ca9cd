//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/ptr"
	"marketplace-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	tests := []struct {
		name  string
		in    user.ProfileInput
		errIs error
	}{
		{name: "空のプロフィールOK", in: user.ProfileInput{}},
		{name: "全項目OK", in: user.ProfileInput{
			DisplayName:    ptr.Of("Aki"),
			Bio:            ptr.Of("Flying Tokyo to Seattle monthly"),
			Phone:          ptr.Of("+81 90 0000 0000"),
			PrimaryCountry: ptr.Of("jp"),
			PrimaryCity:    ptr.Of("Tokyo"),
			AvatarURL:      ptr.Of("https://example.com/a.png"),
		}},
		{name: "表示名が長すぎるNG", in: user.ProfileInput{DisplayName: ptr.Of(strings.Repeat("a", user.MaxDisplayNameLength+1))}, errIs: user.ErrInvalidProfile},
		{name: "国コード3文字NG", in: user.ProfileInput{PrimaryCountry: ptr.Of("JPN")}, errIs: user.ErrInvalidCountry},
		{name: "avatar が ftp NG", in: user.ProfileInput{AvatarURL: ptr.Of("ftp://example.com/a.png")}, errIs: user.ErrInvalidAvatarURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewProfile(tt.in)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("国コードは大文字、空白だけの項目は未設定", func(t *testing.T) {
		p, err := user.NewProfile(user.ProfileInput{PrimaryCountry: ptr.Of(" us "), Bio: ptr.Of("   ")})
		require.NoError(t, err)
		require.NotNil(t, p.PrimaryCountry())
		assert.Equal(t, "US", *p.PrimaryCountry())
		assert.Nil(t, p.Bio())
	})
}

func TestUpdateProfile(t *testing.T) {
	later := builder.FixedNow.Add(time.Hour)

	t.Run("set fields change and others stay", func(t *testing.T) {
		u := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.Profile = user.ProfileInput{Bio: ptr.Of("old bio"), PrimaryCity: ptr.Of("Osaka")}
		}).BuildReconstructed()

		require.NoError(t, u.UpdateProfile(user.ProfileUpdate{FirstName: ptr.Of("Aki"), Bio: ptr.Of("new bio")}, later))

		assert.Equal(t, "Aki User", u.Name().Full())
		assert.Equal(t, "new bio", *u.Profile().Bio())
		assert.Equal(t, "Osaka", *u.Profile().PrimaryCity())
		assert.Equal(t, later, u.UpdatedAt())
	})

	t.Run("empty string clears an optional field", func(t *testing.T) {
		u := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.Profile = user.ProfileInput{Phone: ptr.Of("+1 206 000 0000")}
		}).BuildReconstructed()

		require.NoError(t, u.UpdateProfile(user.ProfileUpdate{Phone: ptr.Of("")}, later))
		assert.Nil(t, u.Profile().Phone())
	})

	t.Run("一つでも不正なら何も変えない", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildReconstructed()

		err := u.UpdateProfile(user.ProfileUpdate{FirstName: ptr.Of("Aki"), PrimaryCountry: ptr.Of("Japan")}, later)

		assert.ErrorIs(t, err, user.ErrInvalidCountry)
		assert.Equal(t, "Test User", u.Name().Full())
		assert.Equal(t, builder.FixedNow, u.UpdatedAt())
	})

	t.Run("blank first name is rejected", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildReconstructed()
		assert.ErrorIs(t, u.UpdateProfile(user.ProfileUpdate{FirstName: ptr.Of("  ")}, later), user.ErrInvalidName)
	})

	t.Run("deactivated account cannot be edited", func(t *testing.T) {
		u := builder.NewUserBuilder().AsInactive().BuildReconstructed()
		assert.ErrorIs(t, u.UpdateProfile(user.ProfileUpdate{Bio: ptr.Of("x")}, later), user.ErrAlreadyDeactivated)
	})
}

func TestDeactivate(t *testing.T) {
	u := builder.NewUserBuilder().BuildReconstructed()
	later := builder.FixedNow.Add(time.Minute)

	require.NoError(t, u.Deactivate(later))
	assert.False(t, u.IsActive())
	assert.Equal(t, later, u.UpdatedAt())
	assert.ErrorIs(t, u.Deactivate(later), user.ErrAlreadyDeactivated)
}
