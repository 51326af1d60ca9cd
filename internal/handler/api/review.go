package api

import (
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review the counterpart of a completed order
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, orderID, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, result.ReviewID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary List reviews on an order
// @Description Private reviews are only included for their reviewer, the reviewed user and admins
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {array} resdto.ReviewResponse
// @Router /orders/{id}/reviews [get]
func (h *ReviewHandler) ListByOrder(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.q.ListByOrder(c.Request.Context(), actor, orderID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items))
}

// @Summary Get review
// @Description Get a review by ID
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Respond to review
// @Description Only the reviewed user, once
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.RespondReviewRequest true "Response"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews/{id}/response [post]
func (h *ReviewHandler) Respond(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RespondReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.Respond(c.Request.Context(), actor, id, req.Response); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary List user reviews
// @Description Public reviews received by a user, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "User ID"
// @Param reviewer_role query string false "shopper or traveler"
// @Param min_rating query int false "Minimum rating (1-5)"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ReviewResponse]
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	minRating, perr := optionalInt(c, "min_rating")
	if perr != nil {
		abortQuery(c, perr)
		return
	}
	filters := queries.ReviewFilters{
		ReviewerRole: optionalQuery(c, "reviewer_role"),
		MinRating:    minRating,
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByUser(c.Request.Context(), userID, filters, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewPage(items, next))
}

// @Summary User rating
// @Description Average rating and count per reviewer role
// @Tags reviews
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.RatingSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/rating [get]
func (h *ReviewHandler) Rating(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.q.RatingSummary(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingSummary(summary))
}
