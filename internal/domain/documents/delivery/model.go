// Package delivery tracks shipments of orders to customers.
package delivery

import (
	"context"
	"strings"
	"time"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
)

// Status is the shipment state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Delivery is the shipment of one order.
type Delivery struct {
	entity.Base

	OrderID      id.ID      `db:"order_id" json:"orderId"`
	OrderNumber  string     `db:"order_number" json:"orderNumber"`
	Courier      string     `db:"courier" json:"courier"`
	City         string     `db:"city" json:"city"`
	Status       Status     `db:"status" json:"status"`
	TrackingCode string     `db:"tracking_code" json:"trackingCode,omitempty"`
	DispatchedAt *time.Time `db:"dispatched_at" json:"dispatchedAt,omitempty"`
	DeliveredAt  *time.Time `db:"delivered_at" json:"deliveredAt,omitempty"`
}

// New creates a pending delivery for an order.
func New(storeID, orderID id.ID, orderNumber, courier, city string) *Delivery {
	return &Delivery{
		Base:        entity.NewBase(storeID),
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Courier:     strings.TrimSpace(courier),
		City:        strings.TrimSpace(city),
		Status:      StatusPending,
	}
}

// Validate implements entity.Validatable.
func (d *Delivery) Validate(ctx context.Context) error {
	if id.IsNil(d.OrderID) {
		return apperror.NewValidation("order is required").WithDetail("field", "orderId")
	}
	if d.Courier == "" {
		return apperror.NewValidation("courier is required").WithDetail("field", "courier")
	}
	if d.City == "" {
		return apperror.NewValidation("city is required").WithDetail("field", "city")
	}
	if d.DeliveredAt != nil && d.DispatchedAt != nil && d.DeliveredAt.Before(*d.DispatchedAt) {
		return apperror.NewValidation("delivered before dispatch").WithDetail("field", "deliveredAt")
	}
	return nil
}

// Dispatch hands the parcel to the courier.
func (d *Delivery) Dispatch(trackingCode string, at time.Time) error {
	if d.Status != StatusPending {
		return apperror.NewInvalidTransition("delivery", string(d.Status), string(StatusInTransit))
	}
	d.Status = StatusInTransit
	d.TrackingCode = trackingCode
	d.DispatchedAt = &at
	return nil
}

// MarkDelivered records the hand-over to the customer.
func (d *Delivery) MarkDelivered(at time.Time) error {
	if d.Status != StatusInTransit {
		return apperror.NewInvalidTransition("delivery", string(d.Status), string(StatusDelivered))
	}
	d.Status = StatusDelivered
	d.DeliveredAt = &at
	return nil
}

// MarkFailed records an unsuccessful attempt.
func (d *Delivery) MarkFailed() error {
	if d.Status != StatusInTransit {
		return apperror.NewInvalidTransition("delivery", string(d.Status), string(StatusFailed))
	}
	d.Status = StatusFailed
	return nil
}

// Clone returns an independent copy.
func (d *Delivery) Clone() *Delivery {
	c := *d
	if d.DispatchedAt != nil {
		t := *d.DispatchedAt
		c.DispatchedAt = &t
	}
	if d.DeliveredAt != nil {
		t := *d.DeliveredAt
		c.DeliveredAt = &t
	}
	return &c
}
