package currency

import (
	"context"

	"github.com/shopspring/decimal"

	"storeadmin/internal/core/apperror"
)

// RateProvider returns how many units of to one unit of from buys.
type RateProvider interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Conversion is the result of converting an amount.
type Conversion struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Rate      decimal.Decimal `json:"rate"`
	Result    decimal.Decimal `json:"result"`
	Formatted string          `json:"formatted"`
}

// Converter converts money using a RateProvider.
type Converter struct {
	rates RateProvider
}

// NewConverter creates a converter. rates may be nil, in which case only
// same-currency conversions succeed.
func NewConverter(rates RateProvider) *Converter {
	return &Converter{rates: rates}
}

// Convert converts amount from one currency to another and rounds the result
// to the target currency's minor units.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (Conversion, error) {
	src, err := Lookup(from)
	if err != nil {
		return Conversion{}, err
	}
	dst, err := Lookup(to)
	if err != nil {
		return Conversion{}, err
	}
	if amount.IsNegative() {
		return Conversion{}, apperror.NewValidation("amount must not be negative").WithDetail("field", "amount")
	}

	rate := decimal.NewFromInt(1)
	if src.ISOCode != dst.ISOCode {
		if c.rates == nil {
			return Conversion{}, apperror.NewBusinessRule(apperror.CodeBusinessRule, "currency conversion is not configured")
		}
		rate, err = c.rates.Rate(ctx, src.ISOCode, dst.ISOCode)
		if err != nil {
			return Conversion{}, err
		}
	}

	result := dst.Round(amount.Mul(rate))
	return Conversion{
		Amount:    amount,
		From:      src.ISOCode,
		To:        dst.ISOCode,
		Rate:      rate,
		Result:    result,
		Formatted: dst.Format(result),
	}, nil
}
