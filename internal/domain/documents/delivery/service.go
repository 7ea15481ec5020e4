package delivery

import (
	"context"
	"time"

	"storeadmin/internal/core/id"
	"storeadmin/internal/domain"
)

// Repository is the delivery storage port.
type Repository = domain.Repository[*Delivery]

// Service provides delivery tracking operations.
type Service struct {
	*domain.CatalogService[*Delivery]
	now func() time.Time
}

// NewService creates a delivery service.
func NewService(repo Repository, viewCacheSize int) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Delivery]{
			Repo:          repo,
			Schema:        Schema,
			EntityName:    "delivery",
			ViewCacheSize: viewCacheSize,
		}),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Dispatch hands a delivery to its courier.
func (s *Service) Dispatch(ctx context.Context, storeID, deliveryID id.ID, trackingCode string) (*Delivery, error) {
	return s.change(ctx, storeID, deliveryID, func(d *Delivery) error {
		return d.Dispatch(trackingCode, s.now())
	})
}

// MarkDelivered completes a delivery.
func (s *Service) MarkDelivered(ctx context.Context, storeID, deliveryID id.ID) (*Delivery, error) {
	return s.change(ctx, storeID, deliveryID, func(d *Delivery) error {
		return d.MarkDelivered(s.now())
	})
}

func (s *Service) change(ctx context.Context, storeID, deliveryID id.ID, apply func(*Delivery) error) (*Delivery, error) {
	d, err := s.GetByID(ctx, storeID, deliveryID)
	if err != nil {
		return nil, err
	}
	if err := apply(d); err != nil {
		return nil, err
	}
	if err := s.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
