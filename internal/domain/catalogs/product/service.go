package product

import (
	"context"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/id"
	"storeadmin/internal/domain"
	"storeadmin/pkg/logger"
)

// Repository is the product storage port.
type Repository = domain.Repository[*Product]

// Service provides product catalog and inventory operations.
type Service struct {
	*domain.CatalogService[*Product]
}

// NewService creates a product service.
func NewService(repo Repository, viewCacheSize int) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:          repo,
		Schema:        Schema,
		EntityName:    "product",
		ViewCacheSize: viewCacheSize,
	})
	svc := &Service{CatalogService: base}
	base.Hooks().OnBeforeCreate(svc.checkSKUUnique)
	base.Hooks().OnBeforeUpdate(svc.checkSKUUnique)
	return svc
}

// checkSKUUnique rejects a SKU already used by another product of the store.
func (s *Service) checkSKUUnique(ctx context.Context, p *Product) error {
	records, err := s.Records(ctx, p.StoreID)
	if err != nil {
		return err
	}
	for _, other := range records {
		if other.SKU == p.SKU && other.ID != p.ID {
			return apperror.NewDuplicate("product", "sku", p.SKU)
		}
	}
	return nil
}

// AdjustStock changes units on hand by delta. version must match the stored record.
func (s *Service) AdjustStock(ctx context.Context, storeID, productID id.ID, delta int64, version int) (*Product, error) {
	p, err := s.GetByID(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	if version != 0 && version != p.Version {
		return nil, apperror.NewConcurrentModification("product", productID.String())
	}
	if err := p.AdjustStock(delta); err != nil {
		return nil, err
	}
	if err := s.Update(ctx, p); err != nil {
		return nil, err
	}
	logger.Info(ctx, "stock adjusted", "product_id", productID, "delta", delta, "stock", p.Stock)
	return p, nil
}
