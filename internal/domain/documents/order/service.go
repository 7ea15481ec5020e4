package order

import (
	"context"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
	"storeadmin/internal/domain"
	"storeadmin/internal/domain/catalogs/customer"
	"storeadmin/pkg/logger"
)

// Repository is the order storage port.
type Repository = domain.Repository[*Order]

// CustomerLedger resolves an order's customer and receives placed orders so
// customer totals stay current.
type CustomerLedger interface {
	GetByID(ctx context.Context, storeID, customerID id.ID) (*customer.Customer, error)
	RecordOrder(ctx context.Context, storeID, customerID id.ID, total types.Money) error
}

// Service provides order operations.
type Service struct {
	*domain.CatalogService[*Order]
	customers CustomerLedger
}

// NewService creates an order service. customers may be nil.
func NewService(repo Repository, customers CustomerLedger, viewCacheSize int) *Service {
	svc := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Order]{
			Repo:          repo,
			Schema:        Schema,
			EntityName:    "order",
			ViewCacheSize: viewCacheSize,
		}),
		customers: customers,
	}
	svc.Hooks().OnBeforeCreate(func(ctx context.Context, o *Order) error {
		o.Recalculate()
		return nil
	})
	svc.Hooks().OnBeforeCreate(svc.checkCustomer)
	svc.Hooks().OnAfterCreate(svc.recordForCustomer)
	return svc
}

// checkCustomer rejects an order whose customer is not in the order's store.
func (s *Service) checkCustomer(ctx context.Context, o *Order) error {
	if s.customers == nil || o.CustomerID == nil {
		return nil
	}
	_, err := s.customers.GetByID(ctx, o.StoreID, *o.CustomerID)
	if apperror.IsNotFound(err) {
		return apperror.NewValidation("unknown customer").
			WithDetail("field", "customerId").
			WithDetail("value", o.CustomerID.String())
	}
	return err
}

func (s *Service) recordForCustomer(ctx context.Context, o *Order) error {
	if s.customers == nil || o.CustomerID == nil {
		return nil
	}
	return s.customers.RecordOrder(ctx, o.StoreID, *o.CustomerID, o.Total)
}

// UpdateStatus moves an order through its workflow.
func (s *Service) UpdateStatus(ctx context.Context, storeID, orderID id.ID, next Status) (*Order, error) {
	o, err := s.GetByID(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}
	prev := o.Status
	if err := o.TransitionTo(next); err != nil {
		return nil, err
	}
	if err := s.Update(ctx, o); err != nil {
		return nil, err
	}
	logger.Info(ctx, "order status changed", "order", o.Number, "from", prev, "to", next)
	return o, nil
}
