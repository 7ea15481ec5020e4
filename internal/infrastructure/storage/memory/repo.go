// Package memory provides in-process repositories. It is the default storage
// backend and the one used by tests.
package memory

import (
	"context"
	"sync"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
	"storeadmin/internal/domain"
)

var _ domain.Repository[entity.Entity] = (*Repo[entity.Entity])(nil)

// Repo is a mutex-guarded map of records that keeps insertion order.
// Records are copied on the way in and out so callers never share memory
// with the store.
type Repo[T entity.Entity] struct {
	entityName string
	clone      func(T) T

	mu    sync.RWMutex
	items map[id.ID]T
	order []id.ID
}

// NewRepo creates an empty repository. clone must return an independent copy of a record.
func NewRepo[T entity.Entity](entityName string, clone func(T) T) *Repo[T] {
	return &Repo[T]{
		entityName: entityName,
		clone:      clone,
		items:      make(map[id.ID]T),
	}
}

func (r *Repo[T]) Create(ctx context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[e.GetID()]; exists {
		return apperror.NewDuplicate(r.entityName, "id", e.GetID().String())
	}
	r.items[e.GetID()] = r.clone(e)
	r.order = append(r.order, e.GetID())
	return nil
}

func (r *Repo[T]) GetByID(ctx context.Context, recordID id.ID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[recordID]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound(r.entityName, recordID.String())
	}
	return r.clone(e), nil
}

func (r *Repo[T]) Update(ctx context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[e.GetID()]
	if !ok {
		return apperror.NewNotFound(r.entityName, e.GetID().String())
	}
	if stored.GetVersion() != e.GetVersion() {
		return apperror.NewConcurrentModification(r.entityName, e.GetID().String())
	}
	e.SetVersion(e.GetVersion() + 1)
	r.items[e.GetID()] = r.clone(e)
	return nil
}

func (r *Repo[T]) ListByStore(ctx context.Context, storeID id.ID) ([]T, error) {
	return r.Find(func(e T) bool { return e.GetStoreID() == storeID }), nil
}

// Find returns copies of the records matching keep, in insertion order.
func (r *Repo[T]) Find(keep func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0)
	for _, recordID := range r.order {
		if e := r.items[recordID]; keep(e) {
			out = append(out, r.clone(e))
		}
	}
	return out
}

// Len returns the number of stored records.
func (r *Repo[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
