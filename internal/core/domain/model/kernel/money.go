package kernel

import (
	"github.com/shopspring/decimal"
)

// Money is an exact-decimal amount. All fees, declared values, insurance
// amounts, and reconciliation figures in the engine are Money values; floats
// are never used for financial arithmetic.
//
// The zero value is a valid amount of zero. Money is immutable; arithmetic
// methods return new values.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from an int64 amount in the company's
// smallest accounting unit.
func NewMoney(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// NewMoneyFromDecimal wraps an exact decimal amount.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString parses a decimal string such as "1500" or "199.50".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d}, nil
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other. The result may be negative; a negative difference
// at session validation means the counted cash fell short of the expectation.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul returns m scaled by the given decimal factor, used for insurance
// rate application.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by value, ignoring exponent representation.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the plain decimal representation, e.g. "1700".
func (m Money) String() string {
	return m.amount.String()
}
