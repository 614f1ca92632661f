package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Method identifies one payment method from the closed catalogue.
type Method string

const (
	MethodCash           Method = "CASH"
	MethodCashOnDelivery Method = "CASH_ON_DELIVERY"
	MethodVisa           Method = "VISA"
	MethodMastercard     Method = "MASTERCARD"
	MethodAmex           Method = "AMEX"
	MethodJCB            Method = "JCB"
	MethodLinePay        Method = "LINE_PAY"
	MethodPayPay         Method = "PAYPAY"
	MethodPoints         Method = "POINTS"
	MethodGrabPay        Method = "GRAB_PAY"
	MethodBankTransfer   Method = "BANK_TRANSFER"
	MethodCheque         Method = "CHEQUE"
)

// Payment is one processed point-of-sale transaction.
// Price and FinalPrice are exact decimals; Points are computed from the
// original price, not the discounted one.
type Payment struct {
	ID             string            `json:"id"`
	CustomerID     string            `json:"customer_id"`
	Price          decimal.Decimal   `json:"price"`
	PriceModifier  decimal.Decimal   `json:"price_modifier"`
	FinalPrice     decimal.Decimal   `json:"final_price"`
	Points         int64             `json:"points"`
	Method         Method            `json:"payment_method"`
	AdditionalItem map[string]string `json:"additional_item,omitempty"`
	Datetime       time.Time         `json:"datetime"`
	CreatedAt      time.Time         `json:"created_at"`
}

// HourlySales is one aggregation bucket: all payments whose timestamp falls
// within the UTC hour starting at Hour.
type HourlySales struct {
	Hour   time.Time       `json:"datetime"`
	Sales  decimal.Decimal `json:"sales"`
	Points int64           `json:"points"`
}
