// Package order provides customer orders and their status workflow.
package order

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
)

// Status is the fulfilment state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// transitions lists the statuses reachable from each status.
var transitions = map[Status][]Status{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusShipped, StatusCancelled},
	StatusShipped: {StatusDelivered, StatusCancelled},
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks money received for an order.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Line is one product position of an order.
type Line struct {
	ProductID id.ID       `json:"productId"`
	Name      string      `json:"name"`
	Quantity  int64       `json:"quantity"`
	UnitPrice types.Money `json:"unitPrice"`
}

// Amount is quantity times unit price.
func (l Line) Amount() types.Money {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Order is a customer purchase.
type Order struct {
	entity.Base

	Number        string        `db:"number" json:"number"`
	CustomerID    *id.ID        `db:"customer_id" json:"customerId,omitempty"`
	CustomerName  string        `db:"customer_name" json:"customerName"`
	Status        Status        `db:"status" json:"status"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"paymentStatus"`
	Currency      string        `db:"currency" json:"currency"`
	Lines         []Line        `db:"lines" json:"lines"`
	Total         types.Money   `db:"total" json:"total"`
	ItemCount     int64         `db:"item_count" json:"itemCount"`
	PlacedAt      time.Time     `db:"placed_at" json:"placedAt"`
}

// New creates a pending order and computes its totals.
func New(storeID id.ID, customerName, currency string, lines []Line) *Order {
	base := entity.NewBase(storeID)
	o := &Order{
		Base:          base,
		Number:        id.ShortCode("ORD", base.ID),
		CustomerName:  strings.TrimSpace(customerName),
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
		Currency:      strings.ToUpper(currency),
		Lines:         lines,
		PlacedAt:      base.CreatedAt,
	}
	o.Recalculate()
	return o
}

// Recalculate derives Total and ItemCount from the lines.
func (o *Order) Recalculate() {
	total := types.Zero()
	var items int64
	for _, l := range o.Lines {
		total = total.Add(l.Amount())
		items += l.Quantity
	}
	o.Total = total
	o.ItemCount = items
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if o.CustomerName == "" {
		return apperror.NewValidation("customer name is required").WithDetail("field", "customerName")
	}
	if len(o.Currency) != 3 {
		return apperror.NewValidation("currency must be an ISO 4217 code").WithDetail("field", "currency")
	}
	if !o.Status.Valid() {
		return apperror.NewValidation("unknown status").WithDetail("field", "status")
	}
	if len(o.Lines) == 0 {
		return apperror.NewValidation("order has no lines").WithDetail("field", "lines")
	}
	for i, l := range o.Lines {
		if l.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("line", i)
		}
		if l.UnitPrice.IsNegative() {
			return apperror.NewValidation("unit price cannot be negative").
				WithDetail("field", "lines").
				WithDetail("line", i)
		}
	}
	return nil
}

// TransitionTo moves the order to next if the workflow allows it.
// Paying an order also marks its payment as received.
func (o *Order) TransitionTo(next Status) error {
	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			o.Status = next
			if next == StatusPaid {
				o.PaymentStatus = PaymentPaid
			}
			if next == StatusCancelled && o.PaymentStatus == PaymentPaid {
				o.PaymentStatus = PaymentRefunded
			}
			return nil
		}
	}
	return apperror.NewInvalidTransition("order", string(o.Status), string(next))
}

// Clone returns an independent copy.
func (o *Order) Clone() *Order {
	c := *o
	c.Lines = append([]Line(nil), o.Lines...)
	if o.CustomerID != nil {
		cid := *o.CustomerID
		c.CustomerID = &cid
	}
	return &c
}
