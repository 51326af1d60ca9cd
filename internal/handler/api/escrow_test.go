//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/escrow"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/validation"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/httptest"
	commandsmock "marketplace-api/tests/mock/commands"
	queriesmock "marketplace-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EscrowHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEscrowCommands
	mockQueries  *queriesmock.MockEscrowQueries
	orderID      uuid.UUID
	view         *queries.EscrowView
}

func (s *EscrowHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *EscrowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEscrowCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEscrowQueries(s.mockCtrl)
	h := api.NewEscrowHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(uuid.New(), user.RoleShopper)
	s.router.POST("/orders/:id/escrow", auth, h.Fund)
	s.router.GET("/orders/:id/escrow", auth, h.Get)
	s.router.POST("/orders/:id/escrow/release", auth, h.Release)
	s.router.POST("/orders/:id/escrow/dispute", auth, h.Dispute)
	s.router.POST("/orders/:id/escrow/resolve", auth, h.Resolve)

	hb := builder.NewHoldingBuilder()
	s.orderID = hb.OrderID
	s.view = &queries.EscrowView{
		ID:               hb.ID,
		OrderID:          hb.OrderID,
		PaymentReference: hb.PaymentReference,
		TotalAmount:      hb.Total,
		PlatformFee:      hb.Fee,
		TravelerPayout:   hb.Payout,
		Currency:         hb.Currency,
		OrderStatus:      "delivered",
		CanRelease:       true,
		CreatedAt:        hb.Now,
		UpdatedAt:        hb.Now,
	}
}

func (s *EscrowHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEscrowHandlerSuite(t *testing.T) {
	suite.Run(t, new(EscrowHandlerTestSuite))
}

func (s *EscrowHandlerTestSuite) url(suffix string) string {
	return "/orders/" + s.orderID.String() + "/escrow" + suffix
}

func (s *EscrowHandlerTestSuite) TestFund() {
	s.Run("success: 201 with split amounts", func() {
		s.mockCommands.EXPECT().Fund(gomock.Any(), gomock.Any(), s.orderID, "pi_test_123").Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByOrder(gomock.Any(), gomock.Any(), s.orderID).Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(""), map[string]any{"payment_reference": "pi_test_123"}, "token")

		var body resdto.EscrowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("105.00", body.TotalAmount)
		s.Equal("5.00", body.PlatformFee)
		s.Equal("100.00", body.TravelerPayout)
		s.True(body.CanRelease)
	})

	s.Run("error: 400 without payment reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(""), map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: 409 when already funded", func() {
		s.mockCommands.EXPECT().Fund(gomock.Any(), gomock.Any(), s.orderID, gomock.Any()).Return(commands.ErrEscrowExists).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(""), map[string]any{"payment_reference": "pi"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already has an escrow")
	})
}

func (s *EscrowHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByOrder(gomock.Any(), gomock.Any(), s.orderID).Return(s.view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: non-participant is 403", func() {
		s.mockQueries.EXPECT().GetByOrder(gomock.Any(), gomock.Any(), s.orderID).Return(nil, queries.ErrEscrowAccess).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *EscrowHandlerTestSuite) TestRelease() {
	s.Run("success", func() {
		released := *s.view
		released.IsReleased = true
		released.CanRelease = false
		s.mockCommands.EXPECT().Release(gomock.Any(), gomock.Any(), s.orderID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByOrder(gomock.Any(), gomock.Any(), s.orderID).Return(&released, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/release"), nil, "token")

		var body resdto.EscrowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.IsReleased)
	})

	s.Run("error: disputed holding is 409", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), gomock.Any(), s.orderID).
			Return(errs.Mark(escrow.ErrEscrowNotReleasable, errs.ErrConflict)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/release"), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not releasable")
	})
}

func (s *EscrowHandlerTestSuite) TestDisputeAndResolve() {
	s.Run("dispute", func() {
		s.mockCommands.EXPECT().Dispute(gomock.Any(), gomock.Any(), s.orderID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByOrder(gomock.Any(), gomock.Any(), s.orderID).Return(s.view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/dispute"), nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("resolve requires admin", func() {
		s.mockCommands.EXPECT().Resolve(gomock.Any(), gomock.Any(), s.orderID, "refund shopper").Return(commands.ErrAdminRequired).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/resolve"), map[string]any{"resolution": "refund shopper"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "admin role required")
	})

	s.Run("resolve without text is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/resolve"), map[string]any{"resolution": ""}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
