package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a currency-tagged exact decimal amount. Arithmetic between
// differing currencies is disallowed; conversion must be explicit.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"` // ISO 4217 three-letter code
}

// NewMoney creates a Money value in the given currency.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// transactionFee is the fixed charge applied to withdrawals and outbound
// transfers, in the source account's own currency.
var transactionFee = decimal.RequireFromString("5.00")

// TransactionFee returns the fixed withdrawal/transfer fee denominated in the
// given currency.
func TransactionFee(currency string) Money {
	return Money{Amount: transactionFee, Currency: currency}
}

// Add returns m + other. It fails if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub returns m - other. It fails if the currencies differ.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Convert returns the amount converted into the target currency at the given
// rate. The rate is expressed as target units per one unit of m.Currency.
func (m Money) Convert(rate decimal.Decimal, targetCurrency string) Money {
	return Money{Amount: m.Amount.Mul(rate), Currency: targetCurrency}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// LessThan reports whether m < other. Panics are avoided by requiring the
// caller to compare like currencies only.
func (m Money) LessThan(other Money) (bool, error) {
	if m.Currency != other.Currency {
		return false, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return m.Amount.LessThan(other.Amount), nil
}

func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency
}
