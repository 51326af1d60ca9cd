//go:build e2e

package marketplace_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/handler/dto/response"
	"marketplace-api/tests/common/authtest"
	"marketplace-api/tests/common/dbtest"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL        = "/api/orders"
	orderURL         = "/api/orders/%s"
	orderStatusURL   = "/api/orders/%s/status"
	orderHistoryURL  = "/api/orders/%s/history"
	orderOffersURL   = "/api/orders/%s/offers"
	orderEscrowURL   = "/api/orders/%s/escrow"
	orderReviewsURL  = "/api/orders/%s/reviews"
	offerURL         = "/api/offers/%s"
	offerActionURL   = "/api/offers/%s/%s"
	userRatingURL    = "/api/users/%s/rating"
	notificationsURL = "/api/notifications"
	expireOffersURL  = "/api/admin/offers/expire"
)

type marketplaceSuite struct {
	e2e.SharedSuite
	shopper  authtest.Session
	traveler authtest.Session
	rival    authtest.Session
}

func TestMarketplaceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(marketplaceSuite))
}

func (s *marketplaceSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.shopper = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "shopper@example.com", string(user.RoleShopper))
	s.traveler = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "traveler@example.com", string(user.RoleTraveler))
	s.rival = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "rival@example.com", string(user.RoleBoth))
}

func (s *marketplaceSuite) do(method, path string, body any, token string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, method, path, body, token)
}

func (s *marketplaceSuite) orderRequest() request.CreateOrderRequest {
	return request.CreateOrderRequest{
		ProductName:        "Tokyo Banana",
		ProductURL:         "https://example.com/tokyo-banana",
		ProductPrice:       decimal.RequireFromString("25.00"),
		ProductCurrency:    "JPY",
		Quantity:           2,
		DestinationCountry: "US",
		DestinationCity:    "Seattle",
		RewardAmount:       decimal.RequireFromString("100.00"),
		RewardCurrency:     "USD",
		Deadline:           time.Now().Add(7 * 24 * time.Hour).UTC(),
		Publish:            true,
	}
}

func (s *marketplaceSuite) createOrder(key string) *response.OrderResponse {
	t := s.T()
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, s.orderRequest(), map[string]string{
		"Authorization":   "Bearer " + s.shopper.Token,
		"Idempotency-Key": key,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var o response.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &o))
	return &o
}

func (s *marketplaceSuite) makeOffer(orderID uuid.UUID, token string) *response.OfferResponse {
	t := s.T()
	w := s.do(http.MethodPost, fmt.Sprintf(orderOffersURL, orderID), request.CreateOfferRequest{}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var o response.OfferResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &o))
	return &o
}

func (s *marketplaceSuite) setStatus(orderID uuid.UUID, status, token string) int {
	w := s.do(http.MethodPost, fmt.Sprintf(orderStatusURL, orderID), request.ChangeStatusRequest{Status: status}, token)
	return w.Code
}

func (s *marketplaceSuite) TestIdempotentOrderCreation() {
	t := s.T()
	key := uuid.NewString()
	first := s.createOrder(key)
	require.Equal(t, "active", first.Status)
	require.Equal(t, "105.00", first.TotalCost)

	headers := map[string]string{"Authorization": "Bearer " + s.shopper.Token, "Idempotency-Key": key}
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, s.orderRequest(), headers)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	require.Contains(t, w.Body.String(), first.ID.String())

	changed := s.orderRequest()
	changed.RewardAmount = decimal.RequireFromString("150.00")
	w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, changed, headers)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	var count int
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM orders").Scan(&count))
	require.Equal(t, 1, count)
}

func (s *marketplaceSuite) TestFullLifecycle() {
	t := s.T()
	order := s.createOrder(uuid.NewString())

	// Travelers don't see their own orders in search, shoppers don't either.
	w := s.do(http.MethodGet, ordersURL, nil, s.traveler.Token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), order.ID.String())
	w = s.do(http.MethodGet, ordersURL, nil, s.shopper.Token)
	require.NotContains(t, w.Body.String(), order.ID.String())

	winning := s.makeOffer(order.ID, s.traveler.Token)
	losing := s.makeOffer(order.ID, s.rival.Token)

	w = s.do(http.MethodPost, fmt.Sprintf(offerActionURL, winning.ID, "accept"), nil, s.shopper.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf(offerURL, losing.ID), nil, s.rival.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"status":"withdrawn"`)

	w = s.do(http.MethodPost, fmt.Sprintf(orderEscrowURL, order.ID), request.FundEscrowRequest{PaymentReference: "pi_123"}, s.shopper.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var holding response.EscrowResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &holding))
	require.Equal(t, "105.00", holding.TotalAmount)
	require.Equal(t, "100.00", holding.TravelerPayout)
	require.False(t, holding.CanRelease)

	require.Equal(t, http.StatusForbidden, s.setStatus(order.ID, "purchased", s.traveler.Token))
	require.Equal(t, http.StatusOK, s.setStatus(order.ID, "purchased", s.shopper.Token))
	require.Equal(t, http.StatusOK, s.setStatus(order.ID, "in_transit", s.traveler.Token))

	w = s.do(http.MethodPost, fmt.Sprintf(orderEscrowURL+"/release", order.ID), nil, s.shopper.Token)
	require.Equal(t, http.StatusConflict, w.Code, "release needs a delivered order")

	require.Equal(t, http.StatusOK, s.setStatus(order.ID, "delivered", s.traveler.Token))
	w = s.do(http.MethodPost, fmt.Sprintf(orderEscrowURL+"/release", order.ID), nil, s.shopper.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"is_released":true`)

	require.Equal(t, http.StatusOK, s.setStatus(order.ID, "completed", s.shopper.Token))

	w = s.do(http.MethodGet, fmt.Sprintf(orderHistoryURL, order.ID), nil, s.traveler.Token)
	require.Equal(t, http.StatusOK, w.Code)
	var history []*response.StatusHistoryResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &history))
	require.Len(t, history, 6, "active, matched, purchased, in_transit, delivered, completed")
	w = s.do(http.MethodGet, fmt.Sprintf(orderHistoryURL, order.ID), nil, s.rival.Token)
	require.Equal(t, http.StatusForbidden, w.Code)

	s.reviewBothWays(order.ID)
	s.drainNotifications()
}

func (s *marketplaceSuite) reviewBothWays(orderID uuid.UUID) {
	t := s.T()
	url := fmt.Sprintf(orderReviewsURL, orderID)

	w := s.do(http.MethodPost, url, request.CreateReviewRequest{Rating: 5}, s.shopper.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = s.do(http.MethodPost, url, request.CreateReviewRequest{Rating: 4}, s.shopper.Token)
	require.Equal(t, http.StatusConflict, w.Code, "one review per reviewer and order")
	w = s.do(http.MethodPost, url, request.CreateReviewRequest{Rating: 3}, s.rival.Token)
	require.Equal(t, http.StatusForbidden, w.Code)
	w = s.do(http.MethodPost, url, request.CreateReviewRequest{Rating: 3}, s.traveler.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf(userRatingURL, s.traveler.UserID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var rating response.RatingSummaryResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rating))
	require.Equal(t, int64(1), rating.Total)
	require.Equal(t, "5.00", rating.Average)
}

// drainNotifications runs the dispatcher once and checks the traveler's inbox.
func (s *marketplaceSuite) drainNotifications() {
	t := s.T()
	require.NoError(t, s.Workers.RunOnce(t.Context()))

	w := s.do(http.MethodGet, notificationsURL, nil, s.traveler.Token)
	require.Equal(t, http.StatusOK, w.Code)
	var page response.NotificationPageResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
	require.NotEmpty(t, page.Items)
	require.Equal(t, int64(len(page.Items)), page.UnreadCount)

	w = s.do(http.MethodPost, notificationsURL+"/read-all", nil, s.traveler.Token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), fmt.Sprintf(`"updated":%d`, len(page.Items)))
}

func (s *marketplaceSuite) TestOfferRules() {
	t := s.T()
	order := s.createOrder(uuid.NewString())

	w := s.do(http.MethodPost, fmt.Sprintf(orderOffersURL, order.ID), request.CreateOfferRequest{}, s.shopper.Token)
	require.Equal(t, http.StatusForbidden, w.Code, "shopper-only accounts cannot make offers")

	first := s.makeOffer(order.ID, s.traveler.Token)
	w = s.do(http.MethodPost, fmt.Sprintf(orderOffersURL, order.ID), request.CreateOfferRequest{}, s.traveler.Token)
	require.Equal(t, http.StatusConflict, w.Code, "one live offer per traveler and order")

	w = s.do(http.MethodPost, fmt.Sprintf(offerActionURL, first.ID, "withdraw"), nil, s.traveler.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := s.makeOffer(order.ID, s.traveler.Token)

	_, err := s.DB.Exec(t.Context(), "UPDATE offers SET expires_at = now() - interval '1 minute' WHERE id = $1", second.ID)
	require.NoError(t, err)

	w = s.do(http.MethodPost, fmt.Sprintf(offerActionURL, second.ID, "accept"), nil, s.shopper.Token)
	require.Equal(t, http.StatusConflict, w.Code, "expired offers cannot be accepted")

	w = s.do(http.MethodPost, expireOffersURL, nil, s.shopper.Token)
	require.Equal(t, http.StatusForbidden, w.Code)

	admin := authtest.LoginUser(t, s.Router, dbtest.AdminEmail, dbtest.DefaultPassword)
	w = s.do(http.MethodPost, expireOffersURL, nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"expired":1`)

	var status string
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT status FROM offers WHERE id = $1", second.ID).Scan(&status))
	require.Equal(t, "expired", status)
}

func (s *marketplaceSuite) TestDisputeResolution() {
	t := s.T()
	order := s.createOrder(uuid.NewString())
	offer := s.makeOffer(order.ID, s.traveler.Token)
	w := s.do(http.MethodPost, fmt.Sprintf(offerActionURL, offer.ID, "accept"), nil, s.shopper.Token)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodPost, fmt.Sprintf(orderEscrowURL, order.ID), request.FundEscrowRequest{PaymentReference: "pi_456"}, s.shopper.Token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodPost, fmt.Sprintf(orderEscrowURL+"/dispute", order.ID), nil, s.rival.Token)
	require.Equal(t, http.StatusForbidden, w.Code)
	w = s.do(http.MethodPost, fmt.Sprintf(orderEscrowURL+"/dispute", order.ID), nil, s.traveler.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"is_disputed":true`)

	w = s.do(http.MethodGet, fmt.Sprintf(orderURL, order.ID), nil, s.shopper.Token)
	require.Contains(t, w.Body.String(), `"status":"matched"`, "an escrow dispute leaves the order status alone")

	resolve := fmt.Sprintf(orderEscrowURL+"/resolve", order.ID)
	w = s.do(http.MethodPost, resolve, request.ResolveDisputeRequest{Resolution: "refund"}, s.shopper.Token)
	require.Equal(t, http.StatusForbidden, w.Code)

	admin := authtest.LoginUser(t, s.Router, dbtest.AdminEmail, dbtest.DefaultPassword)
	w = s.do(http.MethodPost, resolve, request.ResolveDisputeRequest{Resolution: "refund shopper"}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), "refund shopper")
}

func (s *marketplaceSuite) TestSoftDeleteKeepsHistory() {
	t := s.T()
	key := uuid.NewString()
	order := s.createOrder(key)
	offer := s.makeOffer(order.ID, s.traveler.Token)

	w := s.do(http.MethodDelete, fmt.Sprintf(orderURL, order.ID), nil, s.traveler.Token)
	require.Equal(t, http.StatusForbidden, w.Code)
	w = s.do(http.MethodDelete, fmt.Sprintf(orderURL, order.ID), nil, s.shopper.Token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(http.MethodGet, fmt.Sprintf(orderURL, order.ID), nil, s.shopper.Token)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(http.MethodGet, ordersURL, nil, s.traveler.Token)
	require.NotContains(t, w.Body.String(), order.ID.String())
	w = s.do(http.MethodDelete, fmt.Sprintf(orderURL, order.ID), nil, s.shopper.Token)
	require.Equal(t, http.StatusNotFound, w.Code)

	var status string
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT status FROM offers WHERE id = $1", offer.ID).Scan(&status))
	require.Equal(t, "withdrawn", status)

	var history, declined int
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM order_status_history WHERE order_id = $1", order.ID).Scan(&history))
	require.Equal(t, 1, history)
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT count(*) FROM notification_jobs WHERE topic = 'offer_declined' AND payload->>'user_id' = $1",
		s.traveler.UserID.String()).Scan(&declined))
	require.Equal(t, 1, declined)

	var resultOrderID *uuid.UUID
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT result_order_id FROM idempotency_keys WHERE key = $1", uuid.MustParse(key)).Scan(&resultOrderID))
	require.NotNil(t, resultOrderID)
	require.Equal(t, order.ID, *resultOrderID)
}
