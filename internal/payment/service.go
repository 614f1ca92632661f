// Package payment implements the transaction processing core: per-method
// validation, price and point calculation, and the service layer that maps
// raw caller input onto it and persists the result.
package payment

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillpoint/pospay/internal/domain"
	"github.com/tillpoint/pospay/internal/report"
	"github.com/tillpoint/pospay/internal/rules"
)

// Store is the persistence collaborator. The service saves successful
// payments through it and reads payments back for sales reports; any
// consistency guarantee for persisted data is the store's responsibility.
type Store interface {
	Insert(p *domain.Payment) error
	ListBetween(start, end time.Time) ([]domain.Payment, error)
}

// Service orchestrates payment processing and sales reporting.
type Service struct {
	store Store
}

// NewService creates a new payment service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ProcessRequest is the raw, wire-shaped input for one payment. Price and
// PriceModifier arrive as strings so no precision is lost before the
// decimal parse.
type ProcessRequest struct {
	CustomerID     string
	Price          string
	PriceModifier  string
	Method         string
	AdditionalItem map[string]string
	Datetime       time.Time
}

// ProcessResult is returned to the caller on success.
type ProcessResult struct {
	FinalPrice decimal.Decimal
	Points     int64
}

// Process validates the raw request, runs the payment-method pipeline, and
// persists the resulting payment. Malformed input is mapped to the same
// domain.Error shape the core pipeline produces, so callers see one error
// taxonomy regardless of where validation failed.
func (s *Service) Process(req ProcessRequest) (*ProcessResult, error) {
	customerID := strings.TrimSpace(req.CustomerID)
	if customerID == "" {
		return nil, domain.NewValidationError("customerId", "customer ID is required")
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, domain.NewValidationError("price",
			"invalid price %q: must be a valid decimal number", req.Price)
	}
	if !price.IsPositive() {
		return nil, domain.NewValidationError("price", "price must be greater than zero")
	}

	modifier, err := decimal.NewFromString(req.PriceModifier)
	if err != nil {
		return nil, domain.NewValidationError("priceModifier",
			"invalid price modifier %q", req.PriceModifier)
	}

	method := domain.Method(req.Method)
	if _, err := rules.Lookup(method); err != nil {
		return nil, err
	}

	if req.Datetime.IsZero() {
		return nil, domain.NewValidationError("datetime", "transaction datetime is required")
	}

	outcome, err := Process(price, modifier, method, req.AdditionalItem)
	if err != nil {
		return nil, err
	}

	p := &domain.Payment{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		Price:          price,
		PriceModifier:  modifier,
		FinalPrice:     outcome.FinalPrice,
		Points:         outcome.Points,
		Method:         method,
		AdditionalItem: outcome.AdditionalItem,
		Datetime:       req.Datetime.UTC(),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.store.Insert(p); err != nil {
		return nil, err
	}

	return &ProcessResult{FinalPrice: outcome.FinalPrice, Points: outcome.Points}, nil
}

// SalesReport fetches payments in [start, end] from the store and reduces
// them into ascending hourly buckets. The aggregation re-filters the
// fetched set, so the report stays correct even if the store returns a
// superset of the range.
func (s *Service) SalesReport(start, end time.Time) ([]domain.HourlySales, error) {
	if !start.Before(end) {
		return nil, domain.NewValidationError("startDateTime",
			"start datetime must be before end datetime")
	}

	payments, err := s.store.ListBetween(start, end)
	if err != nil {
		return nil, err
	}

	return report.Aggregate(payments, start, end)
}

// SupportedMethods advertises the payment methods this service accepts, in
// stable order.
func (s *Service) SupportedMethods() []domain.Method {
	return rules.SupportedMethods()
}
