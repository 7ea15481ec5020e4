package auth

import (
	"context"

	"storeadmin/internal/core/id"
)

// UserRepository defines user storage operations.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves user by ID.
	GetByID(ctx context.Context, userID id.ID) (*User, error)

	// GetByEmail retrieves user by normalized email. Returns apperror NotFound when absent.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update writes user data with optimistic locking.
	Update(ctx context.Context, user *User) error
}
