package memory

import (
	"context"

	"storeadmin/internal/core/id"
	"storeadmin/internal/domain/store"
)

var _ store.Repository = (*StoreRepo)(nil)

// StoreRepo keeps stores in memory.
type StoreRepo struct {
	*Repo[*store.Store]
}

// NewStoreRepo creates an empty store repository.
func NewStoreRepo() *StoreRepo {
	return &StoreRepo{Repo: NewRepo("store", (*store.Store).Clone)}
}

func (r *StoreRepo) ListByOwner(ctx context.Context, ownerID id.ID) ([]*store.Store, error) {
	return r.Find(func(s *store.Store) bool { return s.OwnerID == ownerID }), nil
}
