package rules

import (
	"github.com/tillpoint/pospay/internal/domain"
)

// catalogue is the closed dispatch table of payment methods. Adding a
// method means adding a domain.Method constant and a row here; there is no
// runtime registration.
var catalogue = map[domain.Method]RuleSet{
	domain.MethodCash:           newRuleSet("0.9", "1.0", "0.05", validateNone),
	domain.MethodCashOnDelivery: newRuleSet("1.0", "1.02", "0.05", validateCourier),
	domain.MethodVisa:           newRuleSet("0.95", "1.0", "0.03", validateLast4),
	domain.MethodMastercard:     newRuleSet("0.95", "1.0", "0.03", validateLast4),
	domain.MethodAmex:           newRuleSet("0.98", "1.01", "0.02", validateLast4),
	domain.MethodJCB:            newRuleSet("0.95", "1.0", "0.05", validateLast4),
	domain.MethodLinePay:        newRuleSet("1.0", "1.0", "0.01", validateNone),
	domain.MethodPayPay:         newRuleSet("1.0", "1.0", "0.01", validateNone),
	domain.MethodPoints:         newRuleSet("1.0", "1.0", "0", validateNone),
	domain.MethodGrabPay:        newRuleSet("1.0", "1.0", "0.01", validateNone),
	domain.MethodBankTransfer:   newRuleSet("1.0", "1.0", "0", validateBankDetails("account_number")),
	domain.MethodCheque:         newRuleSet("0.9", "1.0", "0", validateBankDetails("cheque_number")),
}

// methodOrder fixes the order SupportedMethods advertises. One entry per
// catalogue row.
var methodOrder = []domain.Method{
	domain.MethodCash,
	domain.MethodCashOnDelivery,
	domain.MethodVisa,
	domain.MethodMastercard,
	domain.MethodAmex,
	domain.MethodJCB,
	domain.MethodLinePay,
	domain.MethodPayPay,
	domain.MethodPoints,
	domain.MethodGrabPay,
	domain.MethodBankTransfer,
	domain.MethodCheque,
}

// Lookup resolves the rule set for a payment method. Unknown methods fail
// with UNSUPPORTED_METHOD; callers normally validate the method name
// upstream, but the catalogue does not trust that.
func Lookup(method domain.Method) (RuleSet, error) {
	rs, ok := catalogue[method]
	if !ok {
		return RuleSet{}, domain.NewUnsupportedMethodError(
			"unsupported payment method %q", string(method))
	}
	return rs, nil
}

// SupportedMethods lists every catalogued method in stable declaration
// order. The returned slice is a copy.
func SupportedMethods() []domain.Method {
	out := make([]domain.Method, len(methodOrder))
	copy(out, methodOrder)
	return out
}
