package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/domain/documents/payout"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/http/v1/dto"
)

// PayoutHandler handles payout endpoints.
type PayoutHandler struct {
	*RecordHandler[*payout.Payout, dto.CreatePayoutRequest, struct{}, dto.PayoutResponse]
	service *payout.Service
}

// NewPayoutHandler creates a new payout handler.
func NewPayoutHandler(base *BaseHandler, service *payout.Service) *PayoutHandler {
	return &PayoutHandler{
		RecordHandler: NewRecordHandler(base, RecordHandlerConfig[*payout.Payout, dto.CreatePayoutRequest, struct{}, dto.PayoutResponse]{
			Service:      service,
			SearchFields: payout.SearchFields,
			MapCreateDTO: func(ctx context.Context, st *store.Store, req dto.CreatePayoutRequest) (*payout.Payout, error) {
				return req.ToEntity(st.ID, st.Currency), nil
			},
			MapToDTO: dto.FromPayout,
		}),
		service: service,
	}
}

// UpdateStatus handles PUT /payouts/:id/status
func (h *PayoutHandler) UpdateStatus(c *gin.Context) {
	st, ok := h.Store(c)
	if !ok {
		return
	}
	payoutID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePayoutStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}
	switch req.Status {
	case payout.StatusProcessing, payout.StatusPaid, payout.StatusFailed:
	default:
		h.Error(c, apperror.NewValidation("unknown payout status").WithDetail("field", "status"))
		return
	}

	p, err := h.service.UpdateStatus(c.Request.Context(), st.ID, payoutID, req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromPayout(p))
}
