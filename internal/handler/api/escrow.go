package api

import (
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EscrowHandler struct {
	cmds commands.EscrowCommands
	q    queries.EscrowQueries
}

func NewEscrowHandler(cmds commands.EscrowCommands, q queries.EscrowQueries) *EscrowHandler {
	return &EscrowHandler{cmds: cmds, q: q}
}

// @Summary Fund escrow
// @Description Record the captured payment for a matched order (shopper)
// @Tags escrow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.FundEscrowRequest true "Capture reference"
// @Success 201 {object} resdto.EscrowResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/escrow [post]
func (h *EscrowHandler) Fund(c *gin.Context) {
	actor, orderID, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.FundEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.Fund(c.Request.Context(), actor, orderID, req.PaymentReference); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, actor, orderID, http.StatusCreated)
}

// @Summary Get escrow
// @Tags escrow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.EscrowResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/escrow [get]
func (h *EscrowHandler) Get(c *gin.Context) {
	actor, orderID, ok := h.target(c)
	if !ok {
		return
	}
	h.respond(c, actor, orderID, http.StatusOK)
}

// @Summary Release escrow
// @Description Pay out to the traveler once the order is delivered (shopper or admin)
// @Tags escrow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.EscrowResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/escrow/release [post]
func (h *EscrowHandler) Release(c *gin.Context) {
	actor, orderID, ok := h.target(c)
	if !ok {
		return
	}
	if err := h.cmds.Release(c.Request.Context(), actor, orderID); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, actor, orderID, http.StatusOK)
}

// @Summary Dispute escrow
// @Tags escrow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.EscrowResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/escrow/dispute [post]
func (h *EscrowHandler) Dispute(c *gin.Context) {
	actor, orderID, ok := h.target(c)
	if !ok {
		return
	}
	if err := h.cmds.Dispute(c.Request.Context(), actor, orderID); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, actor, orderID, http.StatusOK)
}

// @Summary Resolve dispute
// @Tags escrow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ResolveDisputeRequest true "Resolution"
// @Success 200 {object} resdto.EscrowResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /orders/{id}/escrow/resolve [post]
func (h *EscrowHandler) Resolve(c *gin.Context) {
	actor, orderID, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.Resolve(c.Request.Context(), actor, orderID, req.Resolution); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, actor, orderID, http.StatusOK)
}

func (h *EscrowHandler) target(c *gin.Context) (shared.Actor, uuid.UUID, bool) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return shared.Actor{}, uuid.Nil, false
	}
	orderID, ok := pathID(c, "id")
	return actor, orderID, ok
}

func (h *EscrowHandler) respond(c *gin.Context, actor shared.Actor, orderID uuid.UUID, status int) {
	view, err := h.q.GetByOrder(c.Request.Context(), actor, orderID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromEscrowView(view))
}
