// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route template and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route template.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	OrderTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Committed order status transitions.",
		},
		[]string{"from", "to"},
	)

	OfferAcceptancesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offer_acceptances_total",
		Help: "Offers accepted.",
	})

	OffersExpiredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offers_expired_total",
		Help: "Offers moved to expired by the sweep.",
	})

	EscrowReleasesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "escrow_releases_total",
		Help: "Escrow holdings released.",
	})

	NotificationJobsDispatchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_jobs_dispatched_total",
			Help: "Notification jobs processed by result (sent, retry, failed).",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

// Register adds all collectors to reg once per process.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			OrderTransitionsTotal,
			OfferAcceptancesTotal,
			OffersExpiredTotal,
			EscrowReleasesTotal,
			NotificationJobsDispatchedTotal,
		)
	})
}
