// Package types provides money helpers shared by domain records.
package types

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount with full precision.
type Money = decimal.Decimal

// NewMoneyFromString parses a monetary amount. Preferred over float input.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney parses a monetary amount and panics on error. Constants and tests only.
func MustMoney(s string) Money {
	return decimal.RequireFromString(s)
}

// Zero returns a zero amount.
func Zero() Money {
	return decimal.Zero
}

// RoundMinor rounds an amount to the number of minor-unit digits of a currency
// (2 for INR and USD, 0 for JPY) using banker's rounding.
func RoundMinor(m Money, decimalPlaces int) Money {
	return m.RoundBank(int32(decimalPlaces))
}

// Sum adds amounts.
func Sum(amounts ...Money) Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
