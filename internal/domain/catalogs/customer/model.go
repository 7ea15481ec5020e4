// Package customer provides the store's customer directory.
package customer

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
)

// Customer is a buyer of a store.
type Customer struct {
	entity.Base

	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`
	City  string `db:"city" json:"city"`

	// TotalSales is the lifetime spend in the store currency
	TotalSales types.Money `db:"total_sales" json:"totalSales"`
	OrderCount int64       `db:"order_count" json:"orderCount"`
	JoinedAt   time.Time   `db:"joined_at" json:"joinedAt"`
}

// New creates a customer who joined now.
func New(storeID id.ID, name, email, phone, city string) *Customer {
	base := entity.NewBase(storeID)
	return &Customer{
		Base:       base,
		Name:       strings.TrimSpace(name),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Phone:      strings.TrimSpace(phone),
		City:       strings.TrimSpace(city),
		TotalSales: types.Zero(),
		JoinedAt:   base.CreatedAt,
	}
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if c.Email == "" && c.Phone == "" {
		return apperror.NewValidation("email or phone is required").WithDetail("field", "email")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return apperror.NewValidation("invalid email").
				WithDetail("field", "email").
				WithCause(err)
		}
	}
	if c.TotalSales.IsNegative() {
		return apperror.NewValidation("total sales cannot be negative").WithDetail("field", "totalSales")
	}
	return nil
}

// RecordOrder adds a placed order to the customer's totals.
func (c *Customer) RecordOrder(total types.Money) {
	c.TotalSales = c.TotalSales.Add(total)
	c.OrderCount++
}

// Clone returns an independent copy.
func (c *Customer) Clone() *Customer {
	cp := *c
	return &cp
}
