package payment

import (
	"github.com/shopspring/decimal"

	"github.com/tillpoint/pospay/internal/domain"
	"github.com/tillpoint/pospay/internal/rules"
)

// Outcome is the result of a fully validated payment: the quantized final
// price, the loyalty points, and the sanitized additional item. It is only
// ever produced on full success — no partial outcome escapes a failed
// validation step.
type Outcome struct {
	FinalPrice     decimal.Decimal
	Points         int64
	AdditionalItem map[string]string
}

// Process runs the validation and calculation pipeline for one transaction:
//
//  1. resolve the method's rule set
//  2. check the price modifier against the method's inclusive bounds
//  3. validate and sanitize the method-specific additional item
//  4. compute finalPrice = round(price * modifier, 2) and
//     points = floor(price * rate), points from the original price
//
// Each step short-circuits with a *domain.Error. Process is a pure
// function: no I/O, no shared state, safe for arbitrary concurrent use.
func Process(price, modifier decimal.Decimal, method domain.Method, item map[string]string) (*Outcome, error) {
	rs, err := rules.Lookup(method)
	if err != nil {
		return nil, err
	}

	if err := rs.CheckModifier(modifier); err != nil {
		return nil, err
	}

	sanitized, err := rs.ValidateItem(item)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		FinalPrice:     rs.FinalPrice(price, modifier),
		Points:         rs.Points(price),
		AdditionalItem: sanitized,
	}, nil
}
