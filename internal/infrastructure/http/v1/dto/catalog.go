package dto

import (
	"strings"
	"time"

	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
	"storeadmin/internal/domain/catalogs/customer"
	"storeadmin/internal/domain/catalogs/product"
)

// --- Product ---

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name        string         `json:"name" binding:"required,max=200"`
	SKU         string         `json:"sku" binding:"required,max=64"`
	Category    string         `json:"category" binding:"max=100"`
	Description string         `json:"description" binding:"max=2000"`
	Status      product.Status `json:"status"`
	Price       types.Money    `json:"price"`
	Stock       int64          `json:"stock" binding:"min=0"`
}

// ToEntity builds a product of the store.
func (r CreateProductRequest) ToEntity(storeID id.ID) *product.Product {
	p := product.New(storeID, r.Name, r.SKU, r.Price)
	p.Category = strings.TrimSpace(r.Category)
	p.Description = r.Description
	p.Stock = r.Stock
	if r.Status != "" {
		p.Status = r.Status
	}
	return p
}

// UpdateProductRequest is the body of PUT /products/:id. Stock changes go through the stock endpoint.
type UpdateProductRequest struct {
	Name        string         `json:"name" binding:"required,max=200"`
	SKU         string         `json:"sku" binding:"required,max=64"`
	Category    string         `json:"category" binding:"max=100"`
	Description string         `json:"description" binding:"max=2000"`
	Status      product.Status `json:"status" binding:"required"`
	Price       types.Money    `json:"price"`
	Version     int            `json:"version" binding:"required,min=1"`
}

// Apply copies the request onto an existing product.
func (r UpdateProductRequest) Apply(p *product.Product) *product.Product {
	p.Name = strings.TrimSpace(r.Name)
	p.SKU = strings.ToUpper(strings.TrimSpace(r.SKU))
	p.Category = strings.TrimSpace(r.Category)
	p.Description = r.Description
	p.Status = r.Status
	p.Price = r.Price
	p.Version = r.Version
	return p
}

// AdjustStockRequest is the body of POST /products/:id/stock.
type AdjustStockRequest struct {
	Delta   int64 `json:"delta" binding:"required"`
	Version int   `json:"version"`
}

// ProductResponse is a product as returned by the API.
type ProductResponse struct {
	BaseResponse
	Name        string         `json:"name"`
	SKU         string         `json:"sku"`
	Category    string         `json:"category"`
	Description string         `json:"description,omitempty"`
	Status      product.Status `json:"status"`
	Price       types.Money    `json:"price"`
	Stock       int64          `json:"stock"`
	InStock     bool           `json:"inStock"`
	StockValue  types.Money    `json:"stockValue"`
}

// FromProduct maps a product to its response.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		BaseResponse: fromBase(p.Base),
		Name:         p.Name,
		SKU:          p.SKU,
		Category:     p.Category,
		Description:  p.Description,
		Status:       p.Status,
		Price:        p.Price,
		Stock:        p.Stock,
		InStock:      p.InStock(),
		StockValue:   p.StockValue(),
	}
}

// --- Customer ---

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"max=32"`
	City  string `json:"city" binding:"max=100"`
}

// ToEntity builds a customer of the store.
func (r CreateCustomerRequest) ToEntity(storeID id.ID) *customer.Customer {
	return customer.New(storeID, r.Name, r.Email, r.Phone, r.City)
}

// UpdateCustomerRequest is the body of PUT /customers/:id.
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=32"`
	City    string `json:"city" binding:"max=100"`
	Version int    `json:"version" binding:"required,min=1"`
}

// Apply copies the request onto an existing customer.
func (r UpdateCustomerRequest) Apply(c *customer.Customer) *customer.Customer {
	c.Name = strings.TrimSpace(r.Name)
	c.Email = strings.ToLower(strings.TrimSpace(r.Email))
	c.Phone = strings.TrimSpace(r.Phone)
	c.City = strings.TrimSpace(r.City)
	c.Version = r.Version
	return c
}

// CustomerResponse is a customer as returned by the API.
type CustomerResponse struct {
	BaseResponse
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	City       string      `json:"city"`
	TotalSales types.Money `json:"totalSales"`
	OrderCount int64       `json:"orderCount"`
	JoinedAt   time.Time   `json:"joinedAt"`
}

// FromCustomer maps a customer to its response.
func FromCustomer(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		BaseResponse: fromBase(c.Base),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		City:         c.City,
		TotalSales:   c.TotalSales,
		OrderCount:   c.OrderCount,
		JoinedAt:     c.JoinedAt,
	}
}
