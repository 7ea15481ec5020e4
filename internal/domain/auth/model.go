// Package auth provides console user registration, login and sessions.
package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"storeadmin/internal/core/apperror"
	appctx "storeadmin/internal/core/context"
	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
)

// User is a console account. Users are not scoped by store, so StoreID stays nil.
type User struct {
	entity.Base

	Email               string       `db:"email" json:"email"`
	PasswordHash        string       `db:"password_hash" json:"-"`
	DisplayName         string       `db:"display_name" json:"displayName,omitempty"`
	Theme               appctx.Theme `db:"theme" json:"theme"`
	FailedLoginAttempts int          `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time   `db:"locked_until" json:"-"`
	LastLoginAt         *time.Time   `db:"last_login_at" json:"lastLoginAt,omitempty"`
}

// NewUser creates a user with the light theme.
func NewUser(email, passwordHash string) *User {
	return &User{
		Base:         entity.NewBase(id.Nil),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Theme:        appctx.ThemeLight,
	}
}

// NormalizeEmail trims and lowercases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return apperror.NewValidation("email is invalid").WithDetail("field", "email")
	}
	if !u.Theme.Valid() {
		return apperror.NewValidation("unknown theme").WithDetail("field", "theme")
	}
	return nil
}

// IsLocked reports whether the account is locked at now.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// RecordFailedLogin counts a failed attempt and locks the account once maxAttempts is reached.
func (u *User) RecordFailedLogin(maxAttempts int, lockDuration time.Duration, now time.Time) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		until := now.Add(lockDuration)
		u.LockedUntil = &until
		u.FailedLoginAttempts = 0
	}
}

// RecordSuccessfulLogin resets the failure counter.
func (u *User) RecordSuccessfulLogin(now time.Time) {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	u.LastLoginAt = &now
}

// Clone returns an independent copy.
func (u *User) Clone() *User {
	c := *u
	if u.LockedUntil != nil {
		t := *u.LockedUntil
		c.LockedUntil = &t
	}
	if u.LastLoginAt != nil {
		t := *u.LastLoginAt
		c.LastLoginAt = &t
	}
	return &c
}

// Credentials for login.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest for user registration.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName,omitempty" binding:"max=120"`
}

// TokenPair is returned by a successful login.
type TokenPair struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	TokenType   string    `json:"tokenType"`
}
