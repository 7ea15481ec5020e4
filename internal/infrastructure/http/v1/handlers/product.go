package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"storeadmin/internal/domain/catalogs/product"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	*RecordHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse]
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{
		RecordHandler: NewRecordHandler(base, RecordHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse]{
			Service:      service,
			SearchFields: product.SearchFields,
			MapCreateDTO: func(ctx context.Context, st *store.Store, req dto.CreateProductRequest) (*product.Product, error) {
				return req.ToEntity(st.ID), nil
			},
			MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
				return req.Apply(existing)
			},
			MapToDTO: dto.FromProduct,
		}),
		service: service,
	}
}

// AdjustStock handles POST /products/:id/stock
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	st, ok := h.Store(c)
	if !ok {
		return
	}
	productID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.AdjustStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.AdjustStock(c.Request.Context(), st.ID, productID, req.Delta, req.Version)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(p))
}
