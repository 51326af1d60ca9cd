//go:build e2e

package marketplace_test

import (
	"fmt"
	"net/http"

	"marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/pkg/ptr"
	"marketplace-api/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	orderConversationURL = "/api/orders/%s/conversation"
	conversationsURL     = "/api/conversations"
	messagesURL          = "/api/conversations/%s/messages"
	messageURL           = "/api/conversations/%s/messages/%s"
	conversationReadURL  = "/api/conversations/%s/read"
)

func (s *marketplaceSuite) TestConversationFollowsTheOrder() {
	t := s.T()
	order := s.createOrder(uuid.NewString())

	w := s.do(http.MethodGet, fmt.Sprintf(orderConversationURL, order.ID), nil, s.shopper.Token)
	require.Equal(t, http.StatusNotFound, w.Code, "no conversation before a match")

	offer := s.makeOffer(order.ID, s.traveler.Token)
	w = s.do(http.MethodPost, fmt.Sprintf(offerActionURL, offer.ID, "accept"), nil, s.shopper.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf(orderConversationURL, order.ID), nil, s.traveler.Token)
	var conv response.ConversationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &conv)
	require.True(t, conv.IsUnlocked)
	require.True(t, conv.CanSend)
	require.Equal(t, int64(1), conv.UnreadCount, "the acceptance notice")

	w = s.do(http.MethodGet, fmt.Sprintf(orderConversationURL, order.ID), nil, s.rival.Token)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(http.MethodPost, fmt.Sprintf(messagesURL, conv.ID), request.SendMessageRequest{Content: "let me in"}, s.rival.Token)
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = s.do(http.MethodPost, fmt.Sprintf(messagesURL, conv.ID), request.SendMessageRequest{Content: "Landing Friday, where should I drop it?"}, s.traveler.Token)
	var sent response.MessageSentResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &sent)

	w = s.do(http.MethodPatch, fmt.Sprintf(messageURL, conv.ID, sent.ID), request.EditMessageRequest{Content: "Landing Saturday, where should I drop it?"}, s.shopper.Token)
	require.Equal(t, http.StatusForbidden, w.Code, "only the sender edits")
	w = s.do(http.MethodPatch, fmt.Sprintf(messageURL, conv.ID, sent.ID), request.EditMessageRequest{Content: "Landing Saturday, where should I drop it?"}, s.traveler.Token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(http.MethodPost, fmt.Sprintf(messagesURL, conv.ID), request.SendMessageRequest{
		Type:          "image",
		Content:       "the box",
		AttachmentURL: ptr.Of("https://cdn.example.com/box.jpg"),
	}, s.traveler.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf(orderConversationURL, order.ID), nil, s.shopper.Token)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &conv)
	require.Equal(t, int64(2), conv.UnreadCount)
	require.NotNil(t, conv.LastMessageAt)

	w = s.do(http.MethodGet, fmt.Sprintf(messagesURL, conv.ID)+"?limit=2", nil, s.shopper.Token)
	var page response.Page[response.MessageResponse]
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
	require.Len(t, page.Items, 2)
	require.Equal(t, "image", page.Items[0].Type, "newest first")
	require.Equal(t, "Landing Saturday, where should I drop it?", page.Items[1].Content)
	require.NotNil(t, page.Items[1].EditedAt)
	require.NotNil(t, page.NextCursor)

	w = s.do(http.MethodPost, fmt.Sprintf(conversationReadURL, conv.ID), nil, s.shopper.Token)
	var marked response.MarkAllReadResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &marked)
	require.Equal(t, int64(2), marked.Updated)

	w = s.do(http.MethodGet, conversationsURL, nil, s.shopper.Token)
	var mine response.Page[response.ConversationResponse]
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
	require.Len(t, mine.Items, 1)
	require.Zero(t, mine.Items[0].UnreadCount)

	var queued int
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT count(*) FROM notification_jobs WHERE topic = 'message_received' AND payload->>'user_id' = $1",
		s.shopper.UserID.String()).Scan(&queued))
	require.Equal(t, 2, queued)

	require.Equal(t, http.StatusOK, s.setStatus(order.ID, "cancelled", s.shopper.Token))

	w = s.do(http.MethodGet, fmt.Sprintf(orderConversationURL, order.ID), nil, s.traveler.Token)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &conv)
	require.False(t, conv.IsActive)
	require.False(t, conv.CanSend)
	require.NotNil(t, conv.ClosedAt)

	w = s.do(http.MethodPost, fmt.Sprintf(messagesURL, conv.ID), request.SendMessageRequest{Content: "still there?"}, s.traveler.Token)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}
