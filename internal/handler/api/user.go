package api

import (
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/cookie"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds      commands.UserCommands
	q         queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries, cookieCfg config.CookieConfig) *UserHandler {
	return &UserHandler{cmds: cmds, q: q, cookieCfg: cookieCfg}
}

// @Summary Search users
// @Description Active shoppers and travelers, newest first
// @Tags users
// @Produce json
// @Param role query string false "shopper or traveler"
// @Param q query string false "Name fragment, at least 2 characters"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.PublicUserResponse]
// @Failure 400 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) Search(c *gin.Context) {
	filter := queries.UserSearchFilter{
		Role:  c.Query("role"),
		Query: optionalQuery(c, "q"),
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.Search(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicUserPage(items, next))
}

// @Summary Get public profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.PublicUserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicUserView(view))
}

// @Summary Update my profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), actor, req.ToUpdate()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Deactivate my account
// @Description Login and refresh are refused afterwards; auth cookies are cleared.
// @Tags users
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
