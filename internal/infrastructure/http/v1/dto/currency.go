package dto

import (
	"github.com/shopspring/decimal"

	"storeadmin/internal/domain/catalogs/currency"
)

// ConvertQuery holds the query of GET /currency/convert.
type ConvertQuery struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required,len=3"`
	To     string `form:"to" binding:"required,len=3"`
}

// ConversionResponse is the result of a conversion.
type ConversionResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Rate      decimal.Decimal `json:"rate"`
	Result    decimal.Decimal `json:"result"`
	Formatted string          `json:"formatted"`
}

// FromConversion maps a conversion to its response.
func FromConversion(c currency.Conversion) ConversionResponse {
	return ConversionResponse(c)
}
