package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/id"
	"storeadmin/internal/domain/documents/delivery"
	"storeadmin/internal/domain/documents/order"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/http/v1/dto"
)

// DeliveryHandler handles delivery endpoints.
type DeliveryHandler struct {
	*RecordHandler[*delivery.Delivery, dto.CreateDeliveryRequest, struct{}, dto.DeliveryResponse]
	service *delivery.Service
}

// NewDeliveryHandler creates a new delivery handler. New deliveries copy the
// number of their order, which must belong to the same store.
func NewDeliveryHandler(base *BaseHandler, service *delivery.Service, orders RecordService[*order.Order]) *DeliveryHandler {
	h := &DeliveryHandler{service: service}
	h.RecordHandler = NewRecordHandler(base, RecordHandlerConfig[*delivery.Delivery, dto.CreateDeliveryRequest, struct{}, dto.DeliveryResponse]{
		Service:      service,
		SearchFields: delivery.SearchFields,
		MapCreateDTO: func(ctx context.Context, st *store.Store, req dto.CreateDeliveryRequest) (*delivery.Delivery, error) {
			orderID, err := id.Parse(req.OrderID)
			if err != nil {
				return nil, apperror.NewInvalidInput("orderId", "invalid id format")
			}
			o, err := orders.GetByID(ctx, st.ID, orderID)
			if err != nil {
				return nil, err
			}
			return delivery.New(st.ID, o.ID, o.Number, req.Courier, req.City), nil
		},
		MapToDTO: dto.FromDelivery,
	})
	return h
}

// Dispatch handles POST /deliveries/:id/dispatch
func (h *DeliveryHandler) Dispatch(c *gin.Context) {
	st, ok := h.Store(c)
	if !ok {
		return
	}
	deliveryID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.DispatchRequest
	if !h.BindJSON(c, &req) {
		return
	}

	d, err := h.service.Dispatch(c.Request.Context(), st.ID, deliveryID, req.TrackingCode)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDelivery(d))
}

// MarkDelivered handles POST /deliveries/:id/delivered
func (h *DeliveryHandler) MarkDelivered(c *gin.Context) {
	st, ok := h.Store(c)
	if !ok {
		return
	}
	deliveryID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	d, err := h.service.MarkDelivered(c.Request.Context(), st.ID, deliveryID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDelivery(d))
}
