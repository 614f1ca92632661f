package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/pospay/internal/domain"
)

func TestLookup_AllSupportedMethods(t *testing.T) {
	for _, m := range SupportedMethods() {
		rs, err := Lookup(m)
		require.NoError(t, err, "method %s", m)
		assert.True(t, rs.MinModifier.LessThanOrEqual(rs.MaxModifier), "method %s", m)
		assert.False(t, rs.PointsRate.IsNegative(), "method %s", m)
	}
}

func TestLookup_Unsupported(t *testing.T) {
	_, err := Lookup(domain.Method("BITCOIN"))
	require.Error(t, err)

	de, ok := domain.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindUnsupportedMethod, de.Kind)
	assert.Equal(t, "paymentMethod", de.Field)
	assert.Contains(t, de.Message, "BITCOIN")
}

func TestSupportedMethods_Order(t *testing.T) {
	want := []domain.Method{
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
	assert.Equal(t, want, SupportedMethods())

	// Every advertised method has a catalogue row and vice versa.
	assert.Len(t, catalogue, len(want))
}

func TestSupportedMethods_ReturnsCopy(t *testing.T) {
	first := SupportedMethods()
	first[0] = domain.Method("MUTATED")
	assert.Equal(t, domain.MethodCash, SupportedMethods()[0])
}
