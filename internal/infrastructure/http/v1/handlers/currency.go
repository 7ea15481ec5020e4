package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/domain/catalogs/currency"
	"storeadmin/internal/infrastructure/http/v1/dto"
)

// CurrencyHandler handles currency conversion.
type CurrencyHandler struct {
	*BaseHandler
	converter *currency.Converter
}

// NewCurrencyHandler creates a new currency handler.
func NewCurrencyHandler(base *BaseHandler, converter *currency.Converter) *CurrencyHandler {
	return &CurrencyHandler{BaseHandler: base, converter: converter}
}

// Convert handles GET /currency/convert?amount=&from=&to=
func (h *CurrencyHandler) Convert(c *gin.Context) {
	var q dto.ConvertQuery
	if !h.BindQuery(c, &q) {
		return
	}
	amount, err := decimal.NewFromString(q.Amount)
	if err != nil {
		h.Error(c, apperror.NewInvalidInput("amount", "amount must be a decimal number"))
		return
	}

	conv, err := h.converter.Convert(c.Request.Context(), amount, q.From, q.To)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromConversion(conv))
}
