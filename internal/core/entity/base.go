// Package entity holds the fields and contracts shared by every stored record.
package entity

import (
	"context"
	"time"

	"storeadmin/internal/core/id"
)

// Validatable is implemented by records that check their own invariants.
// Validation never touches storage.
type Validatable interface {
	// Validate returns nil or an AppError with field details.
	Validate(ctx context.Context) error
}

// Entity is the contract repositories and services rely on.
type Entity interface {
	Validatable
	GetID() id.ID
	GetStoreID() id.ID
	GetVersion() int
	SetVersion(v int)
	Touch()
}

// Base contains the common fields of store-scoped records.
type Base struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// StoreID scopes the record to one store
	StoreID id.ID `db:"store_id" json:"storeId"`

	// Version for optimistic locking
	Version int `db:"version" json:"version"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBase creates a Base for a store with a fresh ID.
func NewBase(storeID id.ID) Base {
	now := time.Now().UTC()
	return Base{
		ID:        id.New(),
		StoreID:   storeID,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b Base) GetID() id.ID      { return b.ID }
func (b Base) GetStoreID() id.ID { return b.StoreID }
func (b Base) GetVersion() int   { return b.Version }

// SetVersion is used by repositories after a successful write.
func (b *Base) SetVersion(v int) {
	b.Version = v
}

// Touch bumps UpdatedAt. The version is advanced by the repository.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}
