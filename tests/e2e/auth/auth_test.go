//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/pkg/cookie"
	"marketplace-api/tests/common/authtest"
	"marketplace-api/tests/common/dbtest"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupTest() {
	s.SharedSuite.SetupTest()

	dbtest.CreateTestUser(s.T(), s.DB, "shopper@example.com", string(user.RoleShopper))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleBoth))
	dbtest.DeactivateUser(s.T(), s.DB, "inactive@example.com")
}

func (s *authSuite) TestRegister() {
	s.Run("new account defaults to both roles", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:     "new@example.com",
			Password:  "password123",
			FirstName: "Nao",
			LastName:  "Sato",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.RegisterResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "both", res.User.Role)
		require.NotContains(t, w.Body.String(), "password")

		authtest.LoginUser(t, s.Router, "new@example.com", "password123")
	})

	s.Run("taken email conflicts", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:     "shopper@example.com",
			Password:  "password123",
			FirstName: "Dup",
			LastName:  "Licate",
		}, "")
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "shopper@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nonexistent@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "shopper@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "shopper@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res response.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken)
			require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))

			var lastLogin *string
			err := s.DB.QueryRow(t.Context(), "SELECT last_login_at::text FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login_at was not updated")
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh cookie issues a new access token", func() {
		t := s.T()
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "shopper@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, httptest.ExtractCookies(login), "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.TokenResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("body token is accepted", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "shopper@example.com", string(user.RoleShopper))
		token := s.jwt.GenerateRefreshToken(t, id, user.RoleShopper)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	for name, token := range map[string]string{
		"garbage token": "invalid-refresh-token",
		"missing token": "",
	} {
		s.Run(name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: token}, "")
			require.Equal(s.T(), http.StatusUnauthorized, w.Code)
		})
	}
}

func (s *authSuite) TestLogoutAndMe() {
	s.Run("me returns the profile without secrets", func() {
		t := s.T()
		session := authtest.CreateAndLogin(t, s.DB, s.Router, "traveler@example.com", string(user.RoleTraveler))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, session.Token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "traveler@example.com")
		require.Contains(t, w.Body.String(), "traveler")
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("logout clears the cookies", func() {
		t := s.T()
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "shopper@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(login))
	})

	for _, endpoint := range []struct{ method, path string }{
		{http.MethodPost, logoutURL},
		{http.MethodGet, meURL},
	} {
		s.Run("unauthenticated "+endpoint.path, func() {
			w := httptest.PerformRequest(s.T(), s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(s.T(), http.StatusUnauthorized, w.Code)
		})
	}
}

func (s *authSuite) TestTokenRules() {
	t := s.T()
	id := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleBoth))

	expired := s.jwt.CreateExpiredToken(t, id, user.RoleBoth)
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
	require.Equal(t, http.StatusUnauthorized, w.Code, "expired token must be refused")

	refresh := s.jwt.GenerateRefreshToken(t, id, user.RoleBoth)
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refresh)
	require.Equal(t, http.StatusUnauthorized, w.Code, "refresh token must not grant access")

	token1 := authtest.LoginUser(t, s.Router, "expiry@example.com", dbtest.DefaultPassword)
	token2 := s.jwt.GenerateToken(t, id, user.RoleBoth)
	for _, token := range []string{token1, token2} {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	}
}
