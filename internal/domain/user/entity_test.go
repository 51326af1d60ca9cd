//go:build unit

package user_test

import (
	"strings"
	"testing"

	"marketplace-api/internal/domain/user"
	"marketplace-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewName("Test", "User")
		expected := user.NewUser(email, "hashed_password", user.RoleBoth, name, builder.FixedNow)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "Test User", actual.Name().Full())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字は小文字に正規化OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Valid@Example.COM") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "shopper ロールOK", mutate: func(b *builder.UserBuilder) { b.WithRole("shopper") }},
			{name: "traveler ロールOK", mutate: func(b *builder.UserBuilder) { b.WithRole("traveler") }},
			{name: "admin ロールOK", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "無効なロールNG", mutate: func(b *builder.UserBuilder) { b.WithRole("operator") }, errIs: user.ErrInvalidRole},
			{name: "空のロールNG", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "空の名NG", mutate: func(b *builder.UserBuilder) { b.WithName(" ", "User") }, errIs: user.ErrInvalidName},
			{
				name:   "長すぎる姓NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("Test", strings.Repeat("a", user.MaxNameLength+1)) },
				errIs:  user.ErrInvalidName,
			},
		})
	})
}

func TestRole(t *testing.T) {
	assert.True(t, user.RoleBoth.IsShopper())
	assert.True(t, user.RoleBoth.IsTraveler())
	assert.True(t, user.RoleShopper.IsShopper())
	assert.False(t, user.RoleShopper.IsTraveler())
	assert.False(t, user.RoleAdmin.IsShopper())

	role, err := user.NewSignupRole("")
	require.NoError(t, err)
	assert.Equal(t, user.RoleBoth, role)

	_, err = user.NewSignupRole("admin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	p, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
			}
		})
	}
}
