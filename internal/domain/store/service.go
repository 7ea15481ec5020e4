package store

import (
	"context"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/id"
	"storeadmin/internal/domain"
	"storeadmin/internal/listview"
	"storeadmin/pkg/logger"
)

// Repository stores shops and finds them by owner.
type Repository interface {
	domain.Repository[*Store]

	// ListByOwner returns the owner's stores in creation order.
	ListByOwner(ctx context.Context, ownerID id.ID) ([]*Store, error)
}

// Service provides store operations and the store access check used by the API.
type Service struct {
	repo Repository
}

// NewService creates a store service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create opens a new store for ownerID.
func (s *Service) Create(ctx context.Context, ownerID id.ID, name, currency string) (*Store, error) {
	st := New(ownerID, name, currency)
	if err := st.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, storageErr(err)
	}
	logger.Info(ctx, "store created", "store_id", st.ID, "name", st.Name)
	return st, nil
}

// ListForOwner runs a list view over the owner's stores.
func (s *Service) ListForOwner(ctx context.Context, ownerID id.ID, q listview.Query) (listview.Result[*Store], error) {
	stores, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return listview.Result[*Store]{}, storageErr(err)
	}
	return listview.View(Schema, stores, q), nil
}

// CheckAccess returns the store if userID owns it. Stores of other users are
// reported as not found so their ids do not leak.
func (s *Service) CheckAccess(ctx context.Context, userID, storeID id.ID) (*Store, error) {
	st, err := s.repo.GetByID(ctx, storeID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("store", storeID.String())
		}
		return nil, storageErr(err)
	}
	if !st.OwnedBy(userID) {
		return nil, apperror.NewNotFound("store", storeID.String())
	}
	return st, nil
}

func storageErr(err error) error {
	if _, ok := apperror.AsAppError(err); ok {
		return err
	}
	return apperror.NewInternal(err)
}
