package api

import (
	"context"
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

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Make an offer
// @Description Traveler role required. One live offer per traveler and order.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, orderID, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithOffer(c, actor, result.OfferID, http.StatusCreated)
}

// @Summary List offers on an order
// @Description Shopper of the order or admin
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status query string false "Offer status"
// @Success 200 {array} resdto.OfferResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/offers [get]
func (h *OfferHandler) ListByOrder(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.q.ListByOrder(c.Request.Context(), actor, orderID, optionalQuery(c, "status"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferList(items))
}

// @Summary List my offers
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Offer status"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.OfferResponse]
// @Failure 403 {object} httperr.Response
// @Router /offers/mine [get]
func (h *OfferHandler) ListMine(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromOfferPage(items, next))
}

// @Summary My offer statistics
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OfferStatsResponse
// @Failure 403 {object} httperr.Response
// @Router /offers/stats [get]
func (h *OfferHandler) Stats(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferStats(stats))
}

// @Summary Get offer
// @Description Visible to the offering traveler and the order's shopper
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWithOffer(c, actor, id, http.StatusOK)
}

// @Summary Update offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferRequest true "Fields to change"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id} [patch]
func (h *OfferHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actor, id, req.ToDomain()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithOffer(c, actor, id, http.StatusOK)
}

// @Summary Withdraw offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/withdraw [post]
func (h *OfferHandler) Withdraw(c *gin.Context) {
	h.act(c, h.cmds.Withdraw)
}

// @Summary Reject offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/reject [post]
func (h *OfferHandler) Reject(c *gin.Context) {
	h.act(c, h.cmds.Reject)
}

// @Summary Accept offer
// @Description Matches the order to the traveler and withdraws every other live offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/accept [post]
func (h *OfferHandler) Accept(c *gin.Context) {
	h.act(c, h.cmds.Accept)
}

// @Summary Expire due offers
// @Description Runs the expiry sweep immediately (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ExpireOffersResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/offers/expire [post]
func (h *OfferHandler) ExpireNow(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	n, err := h.cmds.ExpireNow(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ExpireOffersResponse{Expired: n})
}

type offerAction func(ctx context.Context, actor shared.Actor, offerID uuid.UUID) error

func (h *OfferHandler) act(c *gin.Context, fn offerAction) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithOffer(c, actor, id, http.StatusOK)
}

func (h *OfferHandler) respondWithOffer(c *gin.Context, actor shared.Actor, id uuid.UUID, status int) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromOfferView(view))
}
