package payout

import (
	"context"
	"time"

	"storeadmin/internal/core/id"
	"storeadmin/internal/domain"
	"storeadmin/pkg/logger"
)

// Repository is the payout storage port.
type Repository = domain.Repository[*Payout]

// Service provides payout operations.
type Service struct {
	*domain.CatalogService[*Payout]
	now func() time.Time
}

// NewService creates a payout service.
func NewService(repo Repository, viewCacheSize int) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Payout]{
			Repo:          repo,
			Schema:        Schema,
			EntityName:    "payout",
			ViewCacheSize: viewCacheSize,
		}),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// UpdateStatus advances a payout through processing to paid or failed.
func (s *Service) UpdateStatus(ctx context.Context, storeID, payoutID id.ID, next Status) (*Payout, error) {
	p, err := s.GetByID(ctx, storeID, payoutID)
	if err != nil {
		return nil, err
	}
	if err := p.TransitionTo(next, s.now()); err != nil {
		return nil, err
	}
	if err := s.Update(ctx, p); err != nil {
		return nil, err
	}
	logger.Info(ctx, "payout status changed", "reference", p.Reference, "status", next)
	return p, nil
}
