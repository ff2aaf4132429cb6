package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rms_http_requests_total",
		Help: "HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rms_http_request_duration_seconds",
		Help:    "HTTP request latency by method and path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	PaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rms_payments_recorded_total",
		Help: "Payments recorded through the ledger.",
	})

	PaymentAmountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rms_payment_amount_total",
		Help: "Sum of recorded payment amounts.",
	})

	CoinsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rms_coins_awarded_total",
		Help: "Incentive coins awarded for reaching daily targets.",
	})

	CoinsForfeited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rms_coins_forfeited_total",
		Help: "Incentive coins deducted for missed daily targets.",
	})
)
