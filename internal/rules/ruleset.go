// Package rules holds the payment-method rule catalogue: per-method price
// modifier bounds, loyalty point rates, and additional-item validation.
// Everything here is immutable after package init and safe for concurrent
// use.
package rules

import (
	"github.com/shopspring/decimal"

	"github.com/tillpoint/pospay/internal/domain"
)

// itemValidator checks the method-specific additional item and returns the
// sanitized subset of recognized fields, or a domain error pointing at the
// offending sub-field.
type itemValidator func(item map[string]string) (map[string]string, error)

// RuleSet bundles the constants and validation behaviour of one payment
// method. Modifier bounds are inclusive multipliers (1.0 = no change);
// PointsRate is the fraction of the original price awarded as points.
type RuleSet struct {
	MinModifier decimal.Decimal
	MaxModifier decimal.Decimal
	PointsRate  decimal.Decimal

	validateItem itemValidator
}

// CheckModifier validates that m lies within [MinModifier, MaxModifier].
func (rs RuleSet) CheckModifier(m decimal.Decimal) error {
	if m.LessThan(rs.MinModifier) || m.GreaterThan(rs.MaxModifier) {
		return domain.NewValidationError("priceModifier",
			"price modifier must be between %s and %s for this payment method, got %s",
			rs.MinModifier, rs.MaxModifier, m)
	}
	return nil
}

// ValidateItem runs the method-specific additional-item validator. The
// returned map contains only the fields the method recognizes, trimmed and
// case-normalized as required; unknown fields are dropped.
func (rs RuleSet) ValidateItem(item map[string]string) (map[string]string, error) {
	return rs.validateItem(item)
}

// FinalPrice applies the modifier to the original price and quantizes to
// two decimal places using banker's rounding.
func (rs RuleSet) FinalPrice(price, modifier decimal.Decimal) decimal.Decimal {
	return price.Mul(modifier).RoundBank(2)
}

// Points returns the loyalty points for a payment: floor(price * rate),
// always computed from the original price so discounts never reduce points.
func (rs RuleSet) Points(price decimal.Decimal) int64 {
	return price.Mul(rs.PointsRate).IntPart()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newRuleSet(min, max, rate string, v itemValidator) RuleSet {
	return RuleSet{
		MinModifier:  dec(min),
		MaxModifier:  dec(max),
		PointsRate:   dec(rate),
		validateItem: v,
	}
}
