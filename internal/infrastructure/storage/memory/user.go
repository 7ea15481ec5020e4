package memory

import (
	"context"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/domain/auth"
)

var _ auth.UserRepository = (*UserRepo)(nil)

// UserRepo keeps console users in memory.
type UserRepo struct {
	*Repo[*auth.User]
}

// NewUserRepo creates an empty user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{Repo: NewRepo("user", (*auth.User).Clone)}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	found := r.Find(func(u *auth.User) bool { return u.Email == email })
	if len(found) == 0 {
		return nil, apperror.NewNotFound("user", email)
	}
	return found[0], nil
}
