package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the single currency used by the demo catalog and cart engine.
const DefaultCurrency = "USD"

// Money is an amount paired with its ISO currency code.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// NewMoney parses amount (e.g. "34.00") into Money. Invalid input yields zero.
func NewMoney(amount, currency string) Money {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		d = decimal.Zero
	}
	return Money{Amount: d, CurrencyCode: currency}
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero, CurrencyCode: currency}
}

// Mul returns m multiplied by qty, rounded to cents.
func (m Money) Mul(qty int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(qty))).Round(2), CurrencyCode: m.CurrencyCode}
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.Amount.StringFixed(2)
}

// MarshalJSON always renders amounts with two decimal places.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currencyCode"`
	}{
		Amount:       m.Amount.StringFixed(2),
		CurrencyCode: m.CurrencyCode,
	})
}
