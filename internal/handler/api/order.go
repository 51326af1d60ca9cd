package api

import (
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotentReplayedHeader = "Idempotent-Replayed"

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Create an order in draft, or active when publish is true. Requires an Idempotency-Key.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key (UUID)"
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.OrderResponse
// @Success 200 {object} resdto.OrderResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	key, ok := middleware.GetIdempotencyKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrIdempotencyKeyRequired, "Idempotency-Key header is required", nil)
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor, req.ToDomain(), key)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, result.OrderID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(idempotentReplayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromOrderView(view))
}

// @Summary Search orders
// @Description Search other shoppers' orders. Status defaults to active.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param destination_country query string false "ISO 3166-1 alpha-2"
// @Param destination_city query string false "City (case-insensitive)"
// @Param min_reward query number false "Minimum reward"
// @Param max_reward query number false "Maximum reward"
// @Param deadline_before query string false "Deadline upper bound (RFC 3339 or YYYY-MM-DD)"
// @Param deadline_after query string false "Deadline lower bound (RFC 3339 or YYYY-MM-DD)"
// @Param currency query string false "Reward currency"
// @Param q query string false "Text search over product name and description"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.OrderResponse]
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) Search(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	filter := queries.OrderSearchFilter{
		DestinationCountry: optionalQuery(c, "destination_country"),
		DestinationCity:    optionalQuery(c, "destination_city"),
		Currency:           optionalQuery(c, "currency"),
		Query:              optionalQuery(c, "q"),
	}
	if s := optionalQuery(c, "status"); s != nil {
		filter.Status = *s
	}
	var perr *queryParseError
	if filter.MinReward, perr = optionalDecimal(c, "min_reward"); perr != nil {
		abortQuery(c, perr)
		return
	}
	if filter.MaxReward, perr = optionalDecimal(c, "max_reward"); perr != nil {
		abortQuery(c, perr)
		return
	}
	if filter.DeadlineBefore, perr = optionalDate(c, "deadline_before"); perr != nil {
		abortQuery(c, perr)
		return
	}
	if filter.DeadlineAfter, perr = optionalDate(c, "deadline_after"); perr != nil {
		abortQuery(c, perr)
		return
	}

	cursor, limit := pageParams(c)
	items, next, err := h.q.Search(c.Request.Context(), actor, filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderPage(items, next))
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.OrderResponse]
// @Router /orders/mine [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListMine(c.Request.Context(), actor, optionalQuery(c, "status"), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderPage(items, next))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Update order
// @Description Shopper only, while the order is draft or active. Changing the reward recomputes pricing.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderRequest true "Fields to change"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id} [patch]
func (h *OrderHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actor, id, req.ToDomain()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithOrder(c, actor, id, http.StatusOK)
}

// @Summary Delete order
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change order status
// @Description Role-checked status transition. matched is only reachable by accepting an offer.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/status [post]
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), actor, id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithOrder(c, actor, id, http.StatusOK)
}

// @Summary Order status history
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {array} resdto.StatusHistoryResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/history [get]
func (h *OrderHandler) History(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.q.History(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusHistory(items))
}

func (h *OrderHandler) respondWithOrder(c *gin.Context, actor shared.Actor, id uuid.UUID, status int) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromOrderView(view))
}
