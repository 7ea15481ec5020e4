// Package product provides the store's product catalog and inventory.
package product

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
)

// Status is the publication state of a product.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return true
	}
	return false
}

// Product is a sellable item of a store.
type Product struct {
	entity.Base

	Name        string      `db:"name" json:"name"`
	SKU         string      `db:"sku" json:"sku"`
	Category    string      `db:"category" json:"category"`
	Description string      `db:"description" json:"description,omitempty"`
	Status      Status      `db:"status" json:"status"`
	Price       types.Money `db:"price" json:"price"`

	// Stock is the number of units on hand
	Stock int64 `db:"stock" json:"stock"`
}

// New creates a draft product.
func New(storeID id.ID, name, sku string, price types.Money) *Product {
	return &Product{
		Base:   entity.NewBase(storeID),
		Name:   name,
		SKU:    strings.ToUpper(strings.TrimSpace(sku)),
		Status: StatusDraft,
		Price:  price,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if strings.TrimSpace(p.SKU) == "" {
		return apperror.NewValidation("sku is required").WithDetail("field", "sku")
	}
	if !p.Status.Valid() {
		return apperror.NewValidation("unknown status").
			WithDetail("field", "status").
			WithDetail("value", p.Status)
	}
	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").WithDetail("field", "price")
	}
	if p.Stock < 0 {
		return apperror.NewValidation("stock cannot be negative").WithDetail("field", "stock")
	}
	return nil
}

// AdjustStock adds delta units (negative to remove) and refuses to go below zero.
func (p *Product) AdjustStock(delta int64) error {
	if p.Stock+delta < 0 {
		return apperror.NewInsufficientStock(p.ID.String(), -delta, p.Stock)
	}
	p.Stock += delta
	return nil
}

// InStock reports whether at least one unit is on hand.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// StockValue is price times units on hand.
func (p *Product) StockValue() types.Money {
	return p.Price.Mul(decimal.NewFromInt(p.Stock))
}

// Clone returns an independent copy.
func (p *Product) Clone() *Product {
	c := *p
	return &c
}
