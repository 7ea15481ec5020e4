package dto

import (
	"time"

	appctx "storeadmin/internal/core/context"
	"storeadmin/internal/domain/auth"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName" binding:"max=120"`
}

// ToAuthRequest converts to the domain request.
func (r RegisterRequest) ToAuthRequest() auth.RegisterRequest {
	return auth.RegisterRequest{Email: r.Email, Password: r.Password, DisplayName: r.DisplayName}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts to domain credentials.
func (r LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{Email: r.Email, Password: r.Password}
}

// ThemeRequest is the body of PUT /session/theme.
type ThemeRequest struct {
	Theme appctx.Theme `json:"theme" binding:"required"`
}

// TokenResponse carries an access token.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	TokenType   string    `json:"tokenType"`
}

// FromTokenPair maps a token pair to its response.
func FromTokenPair(t *auth.TokenPair) TokenResponse {
	return TokenResponse{AccessToken: t.AccessToken, ExpiresAt: t.ExpiresAt, TokenType: t.TokenType}
}

// UserResponse is a console user as returned by the API.
type UserResponse struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	DisplayName string       `json:"displayName,omitempty"`
	Theme       appctx.Theme `json:"theme"`
	LastLoginAt *time.Time   `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// FromUser maps a user to its response.
func FromUser(u *auth.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Theme:       u.Theme,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Tokens TokenResponse `json:"tokens"`
	User   UserResponse  `json:"user"`
}

// SessionResponse describes the current application context.
type SessionResponse struct {
	User          UserResponse `json:"user"`
	Authenticated bool         `json:"authenticated"`
	Theme         appctx.Theme `json:"theme"`
	ExpiresAt     time.Time    `json:"expiresAt"`
}
