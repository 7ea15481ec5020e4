// Package store manages the shops a console user owns. Every other record
// type is scoped by the id of a store.
package store

import (
	"context"
	"strings"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
)

// Store is a shop owned by one console user.
type Store struct {
	entity.Base

	OwnerID  id.ID  `db:"owner_id" json:"ownerId"`
	Name     string `db:"name" json:"name"`
	Currency string `db:"currency" json:"currency"`
}

// New creates a store. A store is its own scope, so StoreID equals ID.
func New(ownerID id.ID, name, currency string) *Store {
	base := entity.NewBase(id.Nil)
	base.StoreID = base.ID
	return &Store{
		Base:     base,
		OwnerID:  ownerID,
		Name:     strings.TrimSpace(name),
		Currency: strings.ToUpper(strings.TrimSpace(currency)),
	}
}

// Validate implements entity.Validatable.
func (s *Store) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if len(s.Name) > 120 {
		return apperror.NewValidation("name is too long").WithDetail("field", "name")
	}
	if len(s.Currency) != 3 {
		return apperror.NewValidation("currency must be an ISO 4217 code").WithDetail("field", "currency")
	}
	if id.IsNil(s.OwnerID) {
		return apperror.NewValidation("owner is required").WithDetail("field", "ownerId")
	}
	return nil
}

// OwnedBy reports whether userID owns the store.
func (s *Store) OwnedBy(userID id.ID) bool {
	return s.OwnerID == userID
}

// Clone returns an independent copy.
func (s *Store) Clone() *Store {
	c := *s
	return &c
}
