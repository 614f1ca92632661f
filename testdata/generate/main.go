// Command generate writes a deterministic sample payment dataset to
// testdata/payments.json, for seeding a fresh database.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillpoint/pospay/internal/domain"
	"github.com/tillpoint/pospay/internal/payment"
)

type sample struct {
	method   domain.Method
	modifier string
	item     map[string]string
}

func main() {
	rng := rand.New(rand.NewSource(42))
	baseDir := findTestdataDir()

	// One business week, store hours 09:00-21:00 UTC.
	startDate := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	samples := []sample{
		{domain.MethodCash, "0.95", nil},
		{domain.MethodCash, "1.0", nil},
		{domain.MethodCashOnDelivery, "1.02", map[string]string{"courier": "YAMATO"}},
		{domain.MethodCashOnDelivery, "1.0", map[string]string{"courier": "sagawa"}},
		{domain.MethodVisa, "0.95", map[string]string{"last4": "4242"}},
		{domain.MethodMastercard, "0.97", map[string]string{"last4": "5100"}},
		{domain.MethodAmex, "1.01", map[string]string{"last4": "3782"}},
		{domain.MethodJCB, "0.96", map[string]string{"last4": "3566"}},
		{domain.MethodLinePay, "1.0", nil},
		{domain.MethodPayPay, "1.0", nil},
		{domain.MethodPoints, "1.0", nil},
		{domain.MethodGrabPay, "1.0", nil},
		{domain.MethodBankTransfer, "1.0", map[string]string{"bank": "Mizuho", "account_number": "1234567"}},
		{domain.MethodCheque, "0.9", map[string]string{"bank": "MUFG", "cheque_number": "000321"}},
	}

	var payments []domain.Payment
	for day := 0; day < 5; day++ {
		for _, s := range samples {
			price := decimal.NewFromInt(int64(500 + rng.Intn(19500))).Div(decimal.NewFromInt(100))
			modifier := decimal.RequireFromString(s.modifier)

			outcome, err := payment.Process(price, modifier, s.method, s.item)
			if err != nil {
				fmt.Fprintf(os.Stderr, "process %s: %v\n", s.method, err)
				os.Exit(1)
			}

			hour := 9 + rng.Intn(12)
			minute := rng.Intn(60)
			at := startDate.AddDate(0, 0, day).Add(
				time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute,
			)

			payments = append(payments, domain.Payment{
				ID:             uuid.NewString(),
				CustomerID:     fmt.Sprintf("C%03d", 1+rng.Intn(40)),
				Price:          price,
				PriceModifier:  modifier,
				FinalPrice:     outcome.FinalPrice,
				Points:         outcome.Points,
				Method:         s.method,
				AdditionalItem: outcome.AdditionalItem,
				Datetime:       at,
				CreatedAt:      at,
			})
		}
	}

	outPath := filepath.Join(baseDir, "payments.json")
	data, err := json.MarshalIndent(payments, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d payments to %s\n", len(payments), outPath)
}

func findTestdataDir() string {
	candidates := []string{"testdata", filepath.Join("..", "..", "testdata")}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c
		}
	}
	return "testdata"
}
