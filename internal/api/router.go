// Package api is the HTTP edge: it maps wire input onto the payment core
// and domain errors onto HTTP statuses. Nothing here owns business rules.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tillpoint/pospay/internal/payment"
)

// NewRouter creates the chi router with all API routes mounted.
func NewRouter(svc *payment.Service, logger *slog.Logger, metricsEnabled bool) http.Handler {
	h := &Handlers{svc: svc, logger: logger}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SetHeader("Content-Type", "application/json"))

		// Payments.
		r.Post("/payments", h.CreatePayment)

		// Reporting.
		r.Get("/sales-report", h.GetSalesReport)

		// Capability advertisement.
		r.Get("/payment-methods", h.ListPaymentMethods)
	})

	return r
}
