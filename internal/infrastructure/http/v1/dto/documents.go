package dto

import (
	"time"

	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
	"storeadmin/internal/domain/documents/delivery"
	"storeadmin/internal/domain/documents/order"
	"storeadmin/internal/domain/documents/payout"
)

// --- Order ---

// OrderLineRequest is one line of a new order.
type OrderLineRequest struct {
	ProductID string      `json:"productId" binding:"required,uuid"`
	Name      string      `json:"name" binding:"required"`
	Quantity  int64       `json:"quantity" binding:"required,min=1"`
	UnitPrice types.Money `json:"unitPrice"`
}

// CreateOrderRequest is the body of POST /orders. Currency defaults to the store currency.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customerId" binding:"omitempty,uuid"`
	CustomerName string             `json:"customerName" binding:"required,max=200"`
	Currency     string             `json:"currency" binding:"omitempty,len=3"`
	Lines        []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToEntity builds an order of the store.
func (r CreateOrderRequest) ToEntity(storeID id.ID, storeCurrency string) (*order.Order, error) {
	lines := make([]order.Line, len(r.Lines))
	for i, l := range r.Lines {
		productID, err := id.Parse(l.ProductID)
		if err != nil {
			return nil, err
		}
		lines[i] = order.Line{ProductID: productID, Name: l.Name, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	currency := r.Currency
	if currency == "" {
		currency = storeCurrency
	}
	o := order.New(storeID, r.CustomerName, currency, lines)
	if r.CustomerID != "" {
		customerID, err := id.Parse(r.CustomerID)
		if err != nil {
			return nil, err
		}
		o.CustomerID = &customerID
	}
	return o, nil
}

// UpdateOrderStatusRequest is the body of PUT /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

// OrderResponse is an order as returned by the API.
type OrderResponse struct {
	BaseResponse
	Number        string              `json:"number"`
	CustomerID    *string             `json:"customerId,omitempty"`
	CustomerName  string              `json:"customerName"`
	Status        order.Status        `json:"status"`
	PaymentStatus order.PaymentStatus `json:"paymentStatus"`
	Currency      string              `json:"currency"`
	Lines         []order.Line        `json:"lines"`
	Total         types.Money         `json:"total"`
	ItemCount     int64               `json:"itemCount"`
	PlacedAt      time.Time           `json:"placedAt"`
}

// FromOrder maps an order to its response.
func FromOrder(o *order.Order) OrderResponse {
	resp := OrderResponse{
		BaseResponse:  fromBase(o.Base),
		Number:        o.Number,
		CustomerName:  o.CustomerName,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Currency:      o.Currency,
		Lines:         o.Lines,
		Total:         o.Total,
		ItemCount:     o.ItemCount,
		PlacedAt:      o.PlacedAt,
	}
	if o.CustomerID != nil {
		s := o.CustomerID.String()
		resp.CustomerID = &s
	}
	return resp
}

// --- Delivery ---

// CreateDeliveryRequest is the body of POST /deliveries.
type CreateDeliveryRequest struct {
	OrderID string `json:"orderId" binding:"required,uuid"`
	Courier string `json:"courier" binding:"required,max=100"`
	City    string `json:"city" binding:"required,max=100"`
}

// DispatchRequest is the body of POST /deliveries/:id/dispatch.
type DispatchRequest struct {
	TrackingCode string `json:"trackingCode" binding:"required,max=64"`
}

// DeliveryResponse is a delivery as returned by the API.
type DeliveryResponse struct {
	BaseResponse
	OrderID      string          `json:"orderId"`
	OrderNumber  string          `json:"orderNumber"`
	Courier      string          `json:"courier"`
	City         string          `json:"city"`
	Status       delivery.Status `json:"status"`
	TrackingCode string          `json:"trackingCode,omitempty"`
	DispatchedAt *time.Time      `json:"dispatchedAt,omitempty"`
	DeliveredAt  *time.Time      `json:"deliveredAt,omitempty"`
}

// FromDelivery maps a delivery to its response.
func FromDelivery(d *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		BaseResponse: fromBase(d.Base),
		OrderID:      d.OrderID.String(),
		OrderNumber:  d.OrderNumber,
		Courier:      d.Courier,
		City:         d.City,
		Status:       d.Status,
		TrackingCode: d.TrackingCode,
		DispatchedAt: d.DispatchedAt,
		DeliveredAt:  d.DeliveredAt,
	}
}

// --- Payout ---

// CreatePayoutRequest is the body of POST /payouts. Currency defaults to the store currency.
type CreatePayoutRequest struct {
	Amount   types.Money   `json:"amount"`
	Currency string        `json:"currency" binding:"omitempty,len=3"`
	Method   payout.Method `json:"method" binding:"required"`
}

// ToEntity builds a payout request of the store.
func (r CreatePayoutRequest) ToEntity(storeID id.ID, storeCurrency string) *payout.Payout {
	currency := r.Currency
	if currency == "" {
		currency = storeCurrency
	}
	return payout.Request(storeID, r.Amount, currency, r.Method)
}

// UpdatePayoutStatusRequest is the body of PUT /payouts/:id/status.
type UpdatePayoutStatusRequest struct {
	Status payout.Status `json:"status" binding:"required"`
}

// PayoutResponse is a payout as returned by the API.
type PayoutResponse struct {
	BaseResponse
	Reference   string        `json:"reference"`
	Status      payout.Status `json:"status"`
	Method      payout.Method `json:"method"`
	Amount      types.Money   `json:"amount"`
	Currency    string        `json:"currency"`
	RequestedAt time.Time     `json:"requestedAt"`
	PaidAt      *time.Time    `json:"paidAt,omitempty"`
}

// FromPayout maps a payout to its response.
func FromPayout(p *payout.Payout) PayoutResponse {
	return PayoutResponse{
		BaseResponse: fromBase(p.Base),
		Reference:    p.Reference,
		Status:       p.Status,
		Method:       p.Method,
		Amount:       p.Amount,
		Currency:     p.Currency,
		RequestedAt:  p.RequestedAt,
		PaidAt:       p.PaidAt,
	}
}
