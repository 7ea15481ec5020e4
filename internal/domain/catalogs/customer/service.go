package customer

import (
	"context"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
	"storeadmin/internal/domain"
)

// Repository is the customer storage port.
type Repository = domain.Repository[*Customer]

// Service provides customer directory operations.
type Service struct {
	*domain.CatalogService[*Customer]
}

// NewService creates a customer service.
func NewService(repo Repository, viewCacheSize int) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
			Repo:          repo,
			Schema:        Schema,
			EntityName:    "customer",
			ViewCacheSize: viewCacheSize,
		}),
	}
}

// recordOrderAttempts bounds retries of a ledger write that lost an optimistic lock.
const recordOrderAttempts = 3

// RecordOrder adds an order total to a customer's lifetime sales. A write that
// races with another update of the customer is retried on a fresh copy.
func (s *Service) RecordOrder(ctx context.Context, storeID, customerID id.ID, total types.Money) error {
	var err error
	for range recordOrderAttempts {
		var c *Customer
		c, err = s.GetByID(ctx, storeID, customerID)
		if err != nil {
			return err
		}
		c.RecordOrder(total)
		if err = s.Update(ctx, c); !apperror.IsConcurrentModification(err) {
			return err
		}
	}
	return err
}
