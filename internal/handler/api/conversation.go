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

type ConversationHandler struct {
	cmds commands.ConversationCommands
	q    queries.ConversationQueries
}

func NewConversationHandler(cmds commands.ConversationCommands, q queries.ConversationQueries) *ConversationHandler {
	return &ConversationHandler{cmds: cmds, q: q}
}

// @Summary Get an order's conversation
// @Description Exists once the order is matched. Visible to its shopper, matched traveler and admins
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.ConversationResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/conversation [get]
func (h *ConversationHandler) GetByOrder(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByOrder(c.Request.Context(), actor, orderID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConversationView(view))
}

// @Summary List my conversations
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20, max 100)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ConversationResponse]
// @Router /conversations [get]
func (h *ConversationHandler) ListMine(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	page, err := h.q.ListMine(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConversationPage(page))
}

// @Summary List messages
// @Description Newest first
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.MessageResponse]
// @Failure 404 {object} httperr.Response
// @Router /conversations/{id}/messages [get]
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	page, err := h.q.ListMessages(c.Request.Context(), actor, id, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessagePage(page))
}

// @Summary Send a message
// @Tags conversations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.MessageSentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /conversations/{id}/messages [post]
func (h *ConversationHandler) Send(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	msgID, err := h.cmds.SendMessage(c.Request.Context(), actor, id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.MessageSentResponse{ID: msgID, ConversationID: id})
}

// @Summary Edit my message
// @Tags conversations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param messageId path string true "Message ID"
// @Param request body reqdto.EditMessageRequest true "New content"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /conversations/{id}/messages/{messageId} [patch]
func (h *ConversationHandler) Edit(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msgID, ok := pathID(c, "messageId")
	if !ok {
		return
	}
	var req reqdto.EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.EditMessage(c.Request.Context(), actor, id, msgID, req.Content); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark the counterpart's messages read
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Success 200 {object} resdto.MarkAllReadResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /conversations/{id}/read [post]
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	n, err := h.cmds.MarkRead(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MarkAllReadResponse{Updated: n})
}
