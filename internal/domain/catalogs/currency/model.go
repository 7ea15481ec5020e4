// Package currency converts money between the currencies stores trade in.
package currency

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/types"
)

var isoCode = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency describes a monetary unit.
type Currency struct {
	// ISOCode is the ISO 4217 alphabetic code (e.g., "INR", "USD")
	ISOCode string `json:"isoCode"`

	Symbol string `json:"symbol"`

	// DecimalPlaces is the number of minor-unit digits
	DecimalPlaces int `json:"decimalPlaces"`
}

var known = map[string]Currency{
	"INR": {ISOCode: "INR", Symbol: "₹", DecimalPlaces: 2},
	"USD": {ISOCode: "USD", Symbol: "$", DecimalPlaces: 2},
	"EUR": {ISOCode: "EUR", Symbol: "€", DecimalPlaces: 2},
	"GBP": {ISOCode: "GBP", Symbol: "£", DecimalPlaces: 2},
	"AED": {ISOCode: "AED", Symbol: "د.إ", DecimalPlaces: 2},
	"SGD": {ISOCode: "SGD", Symbol: "S$", DecimalPlaces: 2},
	"JPY": {ISOCode: "JPY", Symbol: "¥", DecimalPlaces: 0},
	"KWD": {ISOCode: "KWD", Symbol: "KD", DecimalPlaces: 3},
}

// Lookup returns the currency for an ISO code. Well-formed codes that are not
// in the table get two decimal places and the code as symbol.
func Lookup(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if c, ok := known[code]; ok {
		return c, nil
	}
	if !isoCode.MatchString(code) {
		return Currency{}, apperror.NewValidation("currency must be an ISO 4217 code").
			WithDetail("value", code)
	}
	return Currency{ISOCode: code, Symbol: code, DecimalPlaces: 2}, nil
}

// Round rounds an amount to the currency's minor units.
func (c Currency) Round(amount decimal.Decimal) decimal.Decimal {
	return types.RoundMinor(amount, c.DecimalPlaces)
}

// Format renders an amount with its symbol, e.g. "₹1250.50".
func (c Currency) Format(amount decimal.Decimal) string {
	return c.Symbol + c.Round(amount).StringFixed(int32(c.DecimalPlaces))
}
