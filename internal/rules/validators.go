package rules

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tillpoint/pospay/internal/domain"
)

var last4Pattern = regexp.MustCompile(`^[0-9]{4}$`)

// validCouriers are the courier services accepted for cash on delivery.
var validCouriers = map[string]struct{}{
	"YAMATO": {},
	"SAGAWA": {},
}

// validateNone accepts any input and sanitizes to an empty item: methods
// without additional-data requirements keep nothing.
func validateNone(map[string]string) (map[string]string, error) {
	return map[string]string{}, nil
}

// validateLast4 requires exactly four numeric characters under "last4".
func validateLast4(item map[string]string) (map[string]string, error) {
	last4, ok := item["last4"]
	if !ok {
		return nil, domain.NewValidationError("additionalItem.last4",
			"card payments require the last 4 digits of the card in additionalItem")
	}
	if !last4Pattern.MatchString(last4) {
		return nil, domain.NewValidationError("additionalItem.last4",
			"invalid card last4 %q: must be exactly 4 digits", last4)
	}
	return map[string]string{"last4": last4}, nil
}

// validateCourier requires a known courier service, case-insensitive on
// input and uppercased in the sanitized output.
func validateCourier(item map[string]string) (map[string]string, error) {
	courier, ok := item["courier"]
	if !ok {
		return nil, domain.NewValidationError("additionalItem.courier",
			"cash on delivery requires a courier service in additionalItem")
	}
	courier = strings.ToUpper(strings.TrimSpace(courier))
	if _, ok := validCouriers[courier]; !ok {
		return nil, domain.NewValidationError("additionalItem.courier",
			"invalid courier service %q: valid options are %s", courier, courierList())
	}
	return map[string]string{"courier": courier}, nil
}

// validateBankDetails requires a non-empty bank name plus one non-empty
// reference field (account number or cheque number), all trimmed.
func validateBankDetails(refField string) itemValidator {
	return func(item map[string]string) (map[string]string, error) {
		if len(item) == 0 {
			return nil, domain.NewValidationError("additionalItem",
				"this payment method requires bank and %s in additionalItem", refField)
		}
		bank := strings.TrimSpace(item["bank"])
		if bank == "" {
			return nil, domain.NewValidationError("additionalItem.bank",
				"the bank name is required in additionalItem")
		}
		ref := strings.TrimSpace(item[refField])
		if ref == "" {
			return nil, domain.NewValidationError("additionalItem."+refField,
				"the %s is required in additionalItem", refField)
		}
		return map[string]string{"bank": bank, refField: ref}, nil
	}
}

func courierList() string {
	names := make([]string, 0, len(validCouriers))
	for c := range validCouriers {
		names = append(names, c)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
