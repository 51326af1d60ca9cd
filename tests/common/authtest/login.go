//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/pkg/cookie"
	"marketplace-api/tests/common/dbtest"
	"marketplace-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Session is a logged-in fixture user.
type Session struct {
	UserID uuid.UUID
	Token  string
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) Session {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return Session{UserID: id, Token: LoginUser(t, router, email, dbtest.DefaultPassword)}
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
