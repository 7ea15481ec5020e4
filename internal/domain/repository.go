// Package domain provides the generic service and storage contracts shared by the console's record types.
package domain

import (
	"context"

	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
)

// Repository stores records of one type, scoped by store.
type Repository[T entity.Entity] interface {
	// Create inserts a new record.
	Create(ctx context.Context, e T) error

	// GetByID returns apperror NotFound when the record does not exist.
	GetByID(ctx context.Context, id id.ID) (T, error)

	// Update writes e if its version matches the stored one and advances the version.
	Update(ctx context.Context, e T) error

	// ListByStore returns the full base collection of a store in creation order.
	ListByStore(ctx context.Context, storeID id.ID) ([]T, error)
}

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, e T) error

// HookRegistry stores lifecycle hooks for a record type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{hooks: make(map[HookEvent][]Hook[T])}
}

// On registers a hook for the event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes hooks of the event in registration order and stops at the first error.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, e T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) { r.On(BeforeCreate, hook) }
func (r *HookRegistry[T]) OnAfterCreate(hook Hook[T])  { r.On(AfterCreate, hook) }
func (r *HookRegistry[T]) OnBeforeUpdate(hook Hook[T]) { r.On(BeforeUpdate, hook) }
func (r *HookRegistry[T]) OnAfterUpdate(hook Hook[T])  { r.On(AfterUpdate, hook) }
