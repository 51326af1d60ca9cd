//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"marketplace-api/internal/domain/order"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/handler/validation"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/common/testutil"
	commandsmock "marketplace-api/tests/mock/commands"
	queriesmock "marketplace-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	shopperID    uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.shopperID = uuid.New()

	auth := fakeAuth(s.shopperID, user.RoleShopper)
	s.router.POST("/orders", auth, middleware.RequireIdempotencyKey(), s.handler.Create)
	s.router.GET("/orders", auth, s.handler.Search)
	s.router.GET("/orders/mine", auth, s.handler.ListMine)
	s.router.GET("/orders/:id", auth, s.handler.Get)
	s.router.PATCH("/orders/:id", auth, s.handler.Update)
	s.router.DELETE("/orders/:id", auth, s.handler.Delete)
	s.router.POST("/orders/:id/status", auth, s.handler.ChangeStatus)
	s.router.GET("/orders/:id/history", auth, s.handler.History)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) headers(key string) map[string]string {
	h := map[string]string{"Authorization": "Bearer token"}
	if key != "" {
		h["Idempotency-Key"] = key
	}
	return h
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	b := builder.NewOrderBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()
	key := uuid.New()

	s.Run("success: 201 with platform fee and allowed transitions", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), key).
			DoAndReturn(func(_ any, actor any, in order.CreateInput, _ uuid.UUID) (*commands.CreateOrderResult, error) {
				s.Equal("Tokyo Banana", in.Product.Name)
				s.True(in.RewardAmount.Equal(decimal.RequireFromString("100")))
				return &commands.CreateOrderResult{OrderID: view.ID}, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders", reqBody, s.headers(key.String()))

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("100.00", body.RewardAmount)
		s.Equal("5.00", body.PlatformFee)
		s.Equal("105.00", body.TotalCost)
		s.Equal("active", body.Status)
		s.NotEmpty(body.AllowedNext)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: replay returns 200 with the replay header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), key).
			Return(&commands.CreateOrderResult{OrderID: view.ID, IsReplayed: true}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders", reqBody, s.headers(key.String()))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 without Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders", reqBody, s.headers(""))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("error: 400 on non-uuid Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders", reqBody, s.headers("abc"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "must be a UUID")
	})

	s.Run("validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing product_name", testutil.Field("product_name", nil)},
			{"invalid product_url", testutil.Field("product_url", "not a url")},
			{"three letter country", testutil.Field("destination_country", "USA")},
			{"numeric currency", testutil.Field("reward_currency", "840")},
			{"zero reward", testutil.Field("reward_amount", "0")},
			{"negative reward", testutil.Field("reward_amount", "-5")},
			{"missing deadline", testutil.Field("deadline", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				m := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders", m, s.headers(uuid.NewString()))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps command errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"role", commands.ErrShopperRequired, http.StatusForbidden},
			{"deadline", errs.Mark(order.ErrDeadlineNotFuture, errs.ErrValidation), http.StatusBadRequest},
			{"in progress", errs.ErrIdempotencyInProgress, http.StatusConflict},
			{"mismatch", errs.ErrIdempotencyMismatch, http.StatusConflict},
			{"db", errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders", reqBody, s.headers(uuid.NewString()))
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

// ================================================================================
// TestSearch / TestListMine
// ================================================================================

func (s *OrderHandlerTestSuite) TestSearch() {
	s.Run("success: parses filters", func() {
		views := []*queries.OrderView{builder.NewOrderBuilder().BuildView()}
		s.mockQueries.EXPECT().
			Search(gomock.Any(), gomock.Any(), gomock.Any(), (*queries.Cursor)(nil), 5).
			DoAndReturn(func(_ any, _ any, f queries.OrderSearchFilter, _ *queries.Cursor, _ int) ([]*queries.OrderView, *queries.Cursor, error) {
				s.Equal("active", f.Status)
				s.Require().NotNil(f.DestinationCountry)
				s.Equal("US", *f.DestinationCountry)
				s.Require().NotNil(f.MinReward)
				s.True(f.MinReward.Equal(decimal.NewFromInt(10)))
				s.Require().NotNil(f.DeadlineBefore)
				s.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), *f.DeadlineBefore)
				s.Nil(f.MaxReward)
				return views, nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/orders?status=active&destination_country=US&min_reward=10&deadline_before=2025-07-01&limit=5", nil, "token")

		var body resdto.Page[resdto.OrderResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 on malformed decimal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?max_reward=lots", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameter")
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?deadline_after=tomorrow", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameter")
	})

	s.Run("limit falls back to default when malformed", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), queries.DefaultListLimit).
			Return(nil, nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?limit=abc", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *OrderHandlerTestSuite) TestListMine() {
	status := "draft"
	s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any(), &status, gomock.Any(), queries.DefaultListLimit).
		Return([]*queries.OrderView{builder.NewOrderBuilder().AsDraft().BuildView()}, &queries.Cursor{After: "c"}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/mine?status=draft", nil, "token")

	var body resdto.Page[resdto.OrderResponse]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Items, 1)
	s.Equal("draft", body.Items[0].Status)
	s.Require().NotNil(body.NextCursor)
}

// ================================================================================
// TestGet / TestUpdate / TestDelete
// ================================================================================

func (s *OrderHandlerTestSuite) TestGet() {
	view := builder.NewOrderBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: hidden draft is 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(nil, queries.ErrOrderNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "order not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/xyz", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *OrderHandlerTestSuite) TestUpdate() {
	view := builder.NewOrderBuilder().BuildView()
	url := "/orders/" + view.ID.String()

	s.Run("success: forwards only present fields", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ any, _ uuid.UUID, in order.UpdateInput) error {
				s.Require().NotNil(in.DestinationCity)
				s.Equal("Portland", *in.DestinationCity)
				s.Nil(in.ProductName)
				s.Nil(in.RewardAmount)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"destination_city": "Portland"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when no longer editable", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).
			Return(errs.Mark(order.ErrNotEditable, errs.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"destination_city": "Portland"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "draft or active")
	})

	s.Run("error: 403 for non-owner", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).
			Return(commands.ErrNotOrderShopper).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 3}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *OrderHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(commands.ErrOrderNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestChangeStatus / TestHistory
// ================================================================================

func (s *OrderHandlerTestSuite) TestChangeStatus() {
	view := builder.NewOrderBuilder().MatchedTo(uuid.New(), order.StatusPurchased).BuildView()
	url := "/orders/" + view.ID.String() + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			ChangeStatus(gomock.Any(), gomock.Any(), view.ID, commands.ChangeStatusRequest{Status: "purchased", Notes: "bought it"}).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "purchased", "notes": "bought it"}, "token")

		var body resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("purchased", body.Status)
	})

	s.Run("error: 400 without status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"notes": "x"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: illegal edge is 409", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).
			Return(errs.Mark(order.ErrInvalidTransition, errs.ErrConflict)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "completed"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "invalid order status transition")
	})

	s.Run("error: unpermitted actor is 403", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).
			Return(errs.Mark(order.ErrStatusNotPermitted, errs.ErrForbidden)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "shipped"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *OrderHandlerTestSuite) TestHistory() {
	id := uuid.New()
	created := "draft"
	items := []*queries.StatusHistoryView{
		{ID: uuid.New(), OrderID: id, NewStatus: "draft", CreatedAt: builder.FixedNow},
		{ID: uuid.New(), OrderID: id, OldStatus: &created, NewStatus: "active", CreatedAt: builder.FixedNow.Add(time.Minute)},
	}
	s.mockQueries.EXPECT().History(gomock.Any(), gomock.Any(), id).Return(items, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String()+"/history", nil, "token")

	var body []resdto.StatusHistoryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Nil(body[0].OldStatus)
	s.Equal("active", body[1].NewStatus)
}
