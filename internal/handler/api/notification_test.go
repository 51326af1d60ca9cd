//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/httptest"
	commandsmock "marketplace-api/tests/mock/commands"
	queriesmock "marketplace-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
	actor        shared.Actor
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	h := api.NewNotificationHandler(s.mockCommands, s.mockQueries)
	s.actor = shared.Actor{ID: uuid.New(), Role: user.RoleBoth}

	auth := fakeAuth(s.actor.ID, s.actor.Role)
	s.router.GET("/notifications", auth, h.List)
	s.router.POST("/notifications/read-all", auth, h.MarkAllRead)
	s.router.POST("/notifications/:id/read", auth, h.MarkRead)
	s.router.GET("/notifications/unread-count", auth, h.UnreadCount)
	s.router.GET("/notifications/:id", auth, h.Get)
	s.router.DELETE("/notifications/:id", auth, h.Delete)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func (s *NotificationHandlerTestSuite) TestList() {
	page := &queries.NotificationPage{
		Items: []*queries.NotificationView{{
			ID:        uuid.New(),
			UserID:    s.actor.ID,
			Type:      "offer_received",
			Title:     "New offer",
			Message:   "A traveler made an offer",
			Data:      map[string]any{"order_id": uuid.NewString()},
			CreatedAt: builder.FixedNow,
		}},
		UnreadCount: 7,
	}

	s.Run("unread only", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor, true, gomock.Any(), 10).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?unread=true&limit=10", nil, "token")

		var body resdto.NotificationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.UnreadCount)
		s.Require().Len(body.Items, 1)
		s.Equal("offer_received", body.Items[0].Type)
	})

	s.Run("all", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor, false, gomock.Any(), queries.DefaultListLimit).Return(page, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *NotificationHandlerTestSuite) TestMarkRead() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), s.actor, id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/"+id.String()+"/read", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: other user's notification is 404", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), s.actor, id).Return(commands.ErrNotificationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/"+id.String()+"/read", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *NotificationHandlerTestSuite) TestMarkAllRead() {
	s.mockCommands.EXPECT().MarkAllRead(gomock.Any(), s.actor).Return(int64(4), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/read-all", nil, "token")

	var body resdto.MarkAllReadResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(4), body.Updated)
}

func (s *NotificationHandlerTestSuite) TestUnreadCount() {
	s.mockQueries.EXPECT().UnreadCount(gomock.Any(), s.actor).Return(int64(3), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications/unread-count", nil, "token")

	var body resdto.UnreadCountResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(3), body.UnreadCount)
}

func (s *NotificationHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: 200", func() {
		view := &queries.NotificationView{ID: id, UserID: s.actor.ID, Type: "offer_declined", Title: "Offer declined", CreatedAt: builder.FixedNow}
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications/"+id.String(), nil, "token")

		var body resdto.NotificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("offer_declined", body.Type)
	})

	s.Run("error: someone else's notification is 404", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, id).Return(nil, queries.ErrNotificationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: malformed id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications/not-a-uuid", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *NotificationHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/notifications/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown notification is 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(commands.ErrNotificationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/notifications/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
