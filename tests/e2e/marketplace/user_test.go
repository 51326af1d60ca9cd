//go:build e2e

package marketplace_test

import (
	"fmt"
	"net/http"

	"marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/pkg/ptr"
	"marketplace-api/tests/common/dbtest"
	"marketplace-api/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

const (
	usersURL = "/api/users"
	userURL  = "/api/users/%s"
	meURL    = "/api/users/me"
)

func (s *marketplaceSuite) TestProfileDirectoryAndDeactivation() {
	t := s.T()

	w := s.do(http.MethodPatch, meURL, request.UpdateProfileRequest{
		DisplayName:    ptr.Of("Skyline Runner"),
		Bio:            ptr.Of("Seattle to Tokyo every month"),
		Phone:          ptr.Of("+1 206 555 0100"),
		PrimaryCountry: ptr.Of("us"),
	}, s.traveler.Token)
	var me response.UserResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
	require.Equal(t, "US", *me.PrimaryCountry)

	w = s.do(http.MethodGet, fmt.Sprintf(userURL, s.traveler.UserID), nil, "")
	var public map[string]any
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &public)
	require.Equal(t, "Skyline Runner", public["display_name"])
	require.NotContains(t, public, "phone")
	require.NotContains(t, public, "email")

	w = s.do(http.MethodGet, usersURL+"?role=traveler&q=skyline", nil, "")
	var travelers response.Page[response.PublicUserResponse]
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &travelers)
	require.Len(t, travelers.Items, 1)
	require.Equal(t, s.traveler.UserID, travelers.Items[0].ID)

	w = s.do(http.MethodGet, usersURL+"?role=shopper", nil, "")
	var shoppers response.Page[response.PublicUserResponse]
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &shoppers)
	ids := make(map[string]bool)
	for _, u := range shoppers.Items {
		ids[u.ID.String()] = true
	}
	require.True(t, ids[s.shopper.UserID.String()])
	require.True(t, ids[s.rival.UserID.String()], "both-role accounts are listed as shoppers")
	require.False(t, ids[s.traveler.UserID.String()])

	w = s.do(http.MethodDelete, meURL, nil, s.traveler.Token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf(userURL, s.traveler.UserID), nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", request.LoginRequest{Email: "traveler@example.com", Password: dbtest.DefaultPassword}, "")
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = s.do(http.MethodDelete, meURL, nil, s.traveler.Token)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}
