package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tillpoint/pospay/internal/domain"
	"github.com/tillpoint/pospay/internal/payment"
	"github.com/tillpoint/pospay/internal/rules"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	svc    *payment.Service
	logger *slog.Logger
}

// --- helpers ---

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "err", err)
	}
}

// errorResponse is the wire shape for every failed request.
type errorResponse struct {
	Error   domain.ErrorKind `json:"error"`
	Message string           `json:"message"`
	Field   string           `json:"field,omitempty"`
}

// writeError maps a domain error to an HTTP status and the error wire
// shape. Anything that is not a domain error surfaces as a generic
// INTERNAL_ERROR; details stay in the logs.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	de, ok := domain.AsDomainError(err)
	if !ok {
		h.logger.Error("internal error", "err", err)
		de = domain.NewInternalError()
	}

	status := http.StatusUnprocessableEntity
	if de.Kind == domain.KindInternal {
		status = http.StatusInternalServerError
	}

	observeFailure(de.Kind)
	h.writeJSON(w, status, errorResponse{Error: de.Kind, Message: de.Message, Field: de.Field})
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

// --- CreatePayment ---

type paymentRequest struct {
	CustomerID     string            `json:"customerId"`
	Price          string            `json:"price"`
	PriceModifier  json.Number       `json:"priceModifier"`
	PaymentMethod  string            `json:"paymentMethod"`
	Datetime       time.Time         `json:"datetime"`
	AdditionalItem map[string]string `json:"additionalItem,omitempty"`
}

type paymentResponse struct {
	FinalPrice string `json:"finalPrice"`
	Points     int64  `json:"points"`
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, domain.NewValidationError("", "invalid request body: %v", err))
		return
	}

	result, err := h.svc.Process(payment.ProcessRequest{
		CustomerID:     req.CustomerID,
		Price:          req.Price,
		PriceModifier:  req.PriceModifier.String(),
		Method:         req.PaymentMethod,
		AdditionalItem: req.AdditionalItem,
		Datetime:       req.Datetime,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	observeProcessed(req.PaymentMethod)
	h.writeJSON(w, http.StatusCreated, paymentResponse{
		FinalPrice: result.FinalPrice.StringFixed(2),
		Points:     result.Points,
	})
}

// --- GetSalesReport ---

type hourlySalesEntry struct {
	Datetime string `json:"datetime"`
	Sales    string `json:"sales"`
	Points   int64  `json:"points"`
}

func (h *Handlers) GetSalesReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, ok := parseTime(q.Get("from"))
	if !ok {
		h.writeError(w, domain.NewValidationError("startDateTime",
			"from must be an RFC3339 timestamp or YYYY-MM-DD date"))
		return
	}
	end, ok := parseTime(q.Get("to"))
	if !ok {
		h.writeError(w, domain.NewValidationError("endDateTime",
			"to must be an RFC3339 timestamp or YYYY-MM-DD date"))
		return
	}

	buckets, err := h.svc.SalesReport(start, end)
	if err != nil {
		h.writeError(w, err)
		return
	}

	entries := make([]hourlySalesEntry, 0, len(buckets))
	for _, b := range buckets {
		entries = append(entries, hourlySalesEntry{
			Datetime: b.Hour.Format(time.RFC3339),
			Sales:    b.Sales.StringFixed(2),
			Points:   b.Points,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"sales": entries})
}

// --- ListPaymentMethods ---

type methodEntry struct {
	Method      string `json:"method"`
	MinModifier string `json:"minModifier"`
	MaxModifier string `json:"maxModifier"`
	PointsRate  string `json:"pointsRate"`
}

func (h *Handlers) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods := h.svc.SupportedMethods()
	entries := make([]methodEntry, 0, len(methods))
	for _, m := range methods {
		rs, err := rules.Lookup(m)
		if err != nil {
			h.writeError(w, err)
			return
		}
		entries = append(entries, methodEntry{
			Method:      string(m),
			MinModifier: rs.MinModifier.StringFixed(2),
			MaxModifier: rs.MaxModifier.StringFixed(2),
			PointsRate:  rs.PointsRate.StringFixed(2),
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"paymentMethods": entries})
}
