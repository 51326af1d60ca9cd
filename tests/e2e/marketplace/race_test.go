//go:build e2e

package marketplace_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"

	"marketplace-api/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// raceRequest is one contender of race.
type raceRequest struct {
	method string
	path   string
	token  string
}

// race fires every request at once after a shared start barrier and returns the
// status codes in request order.
func (s *marketplaceSuite) race(reqs ...raceRequest) []int {
	codes := make([]int, len(reqs))
	start := make(chan struct{})
	var ready, done sync.WaitGroup
	for i, r := range reqs {
		ready.Add(1)
		done.Add(1)
		go func() {
			defer done.Done()
			req := nethttptest.NewRequest(r.method, r.path, nil)
			req.Header.Set("Authorization", "Bearer "+r.token)
			w := nethttptest.NewRecorder()
			ready.Done()
			<-start
			s.Router.ServeHTTP(w, req)
			codes[i] = w.Code
		}()
	}
	ready.Wait()
	close(start)
	done.Wait()
	return codes
}

func countStatus(codes []int, status int) int {
	n := 0
	for _, c := range codes {
		if c == status {
			n++
		}
	}
	return n
}

func (s *marketplaceSuite) TestConcurrentAcceptHasOneWinner() {
	t := s.T()
	order := s.createOrder(uuid.NewString())
	first := s.makeOffer(order.ID, s.traveler.Token)
	second := s.makeOffer(order.ID, s.rival.Token)

	codes := s.race(
		raceRequest{http.MethodPost, fmt.Sprintf(offerActionURL, first.ID, "accept"), s.shopper.Token},
		raceRequest{http.MethodPost, fmt.Sprintf(offerActionURL, second.ID, "accept"), s.shopper.Token},
	)

	require.Equal(t, 1, countStatus(codes, http.StatusOK), "codes %v", codes)
	require.Equal(t, 1, countStatus(codes, http.StatusConflict), "codes %v", codes)

	var accepted, withdrawn, matched int
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT count(*) FILTER (WHERE status = 'accepted'), count(*) FILTER (WHERE status = 'withdrawn') FROM offers WHERE order_id = $1",
		order.ID).Scan(&accepted, &withdrawn))
	require.Equal(t, 1, accepted)
	require.Equal(t, 1, withdrawn)
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT count(*) FROM order_status_history WHERE order_id = $1 AND new_status = 'matched'", order.ID).Scan(&matched))
	require.Equal(t, 1, matched)
}

func (s *marketplaceSuite) TestConcurrentReleasePaysOnce() {
	t := s.T()
	order := s.createOrder(uuid.NewString())
	offer := s.makeOffer(order.ID, s.traveler.Token)
	w := s.do(http.MethodPost, fmt.Sprintf(offerActionURL, offer.ID, "accept"), nil, s.shopper.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = s.do(http.MethodPost, fmt.Sprintf(orderEscrowURL, order.ID), request.FundEscrowRequest{PaymentReference: "pi_race"}, s.shopper.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Equal(t, http.StatusOK, s.setStatus(order.ID, "purchased", s.shopper.Token))
	require.Equal(t, http.StatusOK, s.setStatus(order.ID, "in_transit", s.traveler.Token))
	require.Equal(t, http.StatusOK, s.setStatus(order.ID, "delivered", s.traveler.Token))

	release := fmt.Sprintf(orderEscrowURL+"/release", order.ID)
	codes := s.race(
		raceRequest{http.MethodPost, release, s.shopper.Token},
		raceRequest{http.MethodPost, release, s.shopper.Token},
	)

	require.Equal(t, 1, countStatus(codes, http.StatusOK), "codes %v", codes)
	require.Equal(t, 1, countStatus(codes, http.StatusConflict), "codes %v", codes)

	var payouts int
	require.NoError(t, s.DB.QueryRow(t.Context(),
		"SELECT count(*) FROM notification_jobs WHERE topic = 'escrow_released' AND payload->'data'->>'order_id' = $1",
		order.ID.String()).Scan(&payouts))
	require.Equal(t, 1, payouts, "one release write enqueues one payout notice")
}
