package dto

import (
	"time"

	"storeadmin/internal/domain/store"
)

// CreateStoreRequest is the body of POST /stores.
type CreateStoreRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Currency string `json:"currency" binding:"required,len=3"`
}

// StoreResponse is a store as returned by the API.
type StoreResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromStore maps a store to its response.
func FromStore(s *store.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID.String(),
		OwnerID:   s.OwnerID.String(),
		Name:      s.Name,
		Currency:  s.Currency,
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
	}
}
