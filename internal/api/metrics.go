package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tillpoint/pospay/internal/domain"
)

var (
	paymentsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pospay_payments_processed_total",
			Help: "Successfully processed payments by payment method.",
		},
		[]string{"method"},
	)

	paymentFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pospay_request_failures_total",
			Help: "Failed API requests by domain error kind.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(paymentsProcessed, paymentFailures)
}

func observeProcessed(method string) {
	paymentsProcessed.WithLabelValues(method).Inc()
}

func observeFailure(kind domain.ErrorKind) {
	paymentFailures.WithLabelValues(string(kind)).Inc()
}
