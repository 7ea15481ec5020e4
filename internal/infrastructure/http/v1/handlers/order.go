package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/domain/documents/order"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	*RecordHandler[*order.Order, dto.CreateOrderRequest, struct{}, dto.OrderResponse]
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{
		RecordHandler: NewRecordHandler(base, RecordHandlerConfig[*order.Order, dto.CreateOrderRequest, struct{}, dto.OrderResponse]{
			Service:      service,
			SearchFields: order.SearchFields,
			MapCreateDTO: func(ctx context.Context, st *store.Store, req dto.CreateOrderRequest) (*order.Order, error) {
				o, err := req.ToEntity(st.ID, st.Currency)
				if err != nil {
					return nil, apperror.NewValidation("invalid id in order").WithCause(err)
				}
				return o, nil
			},
			MapToDTO: dto.FromOrder,
		}),
		service: service,
	}
}

// UpdateStatus handles PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	st, ok := h.Store(c)
	if !ok {
		return
	}
	orderID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if !req.Status.Valid() {
		h.Error(c, apperror.NewValidation("unknown order status").WithDetail("field", "status"))
		return
	}

	o, err := h.service.UpdateStatus(c.Request.Context(), st.ID, orderID, req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrder(o))
}
