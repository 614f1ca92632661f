package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for the API boundary.
type ErrorKind string

const (
	KindValidation        ErrorKind = "VALIDATION_ERROR"
	KindUnsupportedMethod ErrorKind = "UNSUPPORTED_METHOD"
	KindInternal          ErrorKind = "INTERNAL_ERROR"
)

// Error is the structured error surfaced by the payment core. Field holds
// the path of the offending input ("priceModifier", "additionalItem.last4")
// so callers can render field-attributable messages. Domain errors are
// pure values — no infrastructure dependency, never logged or retried by
// the core.
type Error struct {
	Kind    ErrorKind
	Message string
	Field   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %s)", e.Kind, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewValidationError builds a VALIDATION_ERROR attributed to field.
func NewValidationError(field, format string, args ...any) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
	}
}

// NewUnsupportedMethodError builds an UNSUPPORTED_METHOD error.
func NewUnsupportedMethodError(format string, args ...any) *Error {
	return &Error{
		Kind:    KindUnsupportedMethod,
		Message: fmt.Sprintf(format, args...),
		Field:   "paymentMethod",
	}
}

// NewInternalError builds an INTERNAL_ERROR. The message is deliberately
// generic; details belong in server logs, not on the wire.
func NewInternalError() *Error {
	return &Error{Kind: KindInternal, Message: "an unexpected error occurred"}
}

// AsDomainError unwraps err into a *Error if it is one.
func AsDomainError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
