package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/pospay/internal/domain"
)

func newTestRepo(t *testing.T) *PaymentRepo {
	t.Helper()
	db, err := InitDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPaymentRepo(db)
}

func samplePayment(id string, at time.Time) domain.Payment {
	return domain.Payment{
		ID:             id,
		CustomerID:     "C001",
		Price:          decimal.RequireFromString("100.00"),
		PriceModifier:  decimal.RequireFromString("0.95"),
		FinalPrice:     decimal.RequireFromString("95.00"),
		Points:         3,
		Method:         domain.MethodVisa,
		AdditionalItem: map[string]string{"last4": "4242"},
		Datetime:       at,
		CreatedAt:      at,
	}
}

func TestPaymentRepo_InsertAndListRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	at := time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC)

	require.NoError(t, repo.Insert(ptr(samplePayment("p1", at))))

	got, err := repo.ListBetween(at.Add(-time.Hour), at.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "C001", p.CustomerID)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, p.PriceModifier.Equal(decimal.RequireFromString("0.95")))
	assert.True(t, p.FinalPrice.Equal(decimal.RequireFromString("95.00")))
	assert.Equal(t, int64(3), p.Points)
	assert.Equal(t, domain.MethodVisa, p.Method)
	assert.Equal(t, map[string]string{"last4": "4242"}, p.AdditionalItem)
	assert.True(t, p.Datetime.Equal(at))
}

func TestPaymentRepo_NoAdditionalItem(t *testing.T) {
	repo := newTestRepo(t)
	at := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	p := samplePayment("p1", at)
	p.Method = domain.MethodCash
	p.AdditionalItem = nil
	require.NoError(t, repo.Insert(&p))

	got, err := repo.ListBetween(at.Add(-time.Hour), at.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].AdditionalItem)
}

func TestPaymentRepo_ListBetweenInclusiveAndOrdered(t *testing.T) {
	repo := newTestRepo(t)
	start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	for i, at := range []time.Time{
		end,                      // at upper bound
		start,                    // at lower bound
		start.Add(2 * time.Hour), // inside
		start.Add(-time.Second),  // outside
		end.Add(time.Second),     // outside
	} {
		p := samplePayment(string(rune('a'+i)), at)
		require.NoError(t, repo.Insert(&p))
	}

	got, err := repo.ListBetween(start, end)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Datetime.Before(got[i-1].Datetime))
	}
}

func TestPaymentRepo_BulkInsertSkipsDuplicates(t *testing.T) {
	repo := newTestRepo(t)
	at := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	payments := []domain.Payment{
		samplePayment("p1", at),
		samplePayment("p2", at.Add(time.Minute)),
		samplePayment("p1", at.Add(2*time.Minute)), // duplicate ID
	}

	inserted, err := repo.BulkInsert(payments)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPaymentRepo_CountEmpty(t *testing.T) {
	repo := newTestRepo(t)
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func ptr(p domain.Payment) *domain.Payment { return &p }
