package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"storeadmin/internal/core/apperror"
	appctx "storeadmin/internal/core/context"
	"storeadmin/internal/core/id"
)

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret         string
	Issuer         string
	AccessTokenTTL time.Duration

	// RevocationSize bounds the number of logged-out token ids remembered.
	RevocationSize int
}

// DefaultJWTConfig returns default JWT configuration.
func DefaultJWTConfig(secret string) JWTConfig {
	return JWTConfig{
		Secret:         secret,
		Issuer:         "storeadmin",
		AccessTokenTTL: time.Hour,
		RevocationSize: 10_000,
	}
}

// Claims represents JWT claims. The registered ID claim carries the token id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string       `json:"uid"`
	Email  string       `json:"email"`
	Theme  appctx.Theme `json:"theme,omitempty"`
}

// JWTService issues and validates access tokens.
//
// Logged-out token ids are kept in an expiring LRU whose TTL equals the
// token lifetime, so an entry lives at least as long as the token it blocks.
type JWTService struct {
	config  JWTConfig
	revoked *expirable.LRU[string, struct{}]
}

// NewJWTService creates a new JWT service.
func NewJWTService(config JWTConfig) *JWTService {
	size := config.RevocationSize
	if size <= 0 {
		size = 10_000
	}
	return &JWTService{
		config:  config,
		revoked: expirable.NewLRU[string, struct{}](size, nil, config.AccessTokenTTL),
	}
}

// GenerateAccessToken issues a token for user and returns it with the session it encodes.
func (s *JWTService) GenerateAccessToken(user *User, now time.Time) (string, *appctx.Session, error) {
	expiresAt := now.Add(s.config.AccessTokenTTL)
	tokenID := id.New().String()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: user.ID.String(),
		Email:  user.Email,
		Theme:  user.Theme,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return tokenString, sessionFromClaims(&claims), nil
}

// ValidateToken validates a token and returns the session it carries.
func (s *JWTService) ValidateToken(tokenString string) (*appctx.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.NewUnauthorized("token expired").WithCause(err)
		}
		return nil, apperror.NewUnauthorized("invalid token").WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, apperror.NewUnauthorized("invalid token claims")
	}
	if s.IsRevoked(claims.ID) {
		return nil, apperror.NewUnauthorized("token revoked")
	}
	return sessionFromClaims(claims), nil
}

// Revoke blocks a token id until it would have expired anyway.
func (s *JWTService) Revoke(tokenID string) {
	if tokenID != "" {
		s.revoked.Add(tokenID, struct{}{})
	}
}

// IsRevoked reports whether the token id was logged out.
func (s *JWTService) IsRevoked(tokenID string) bool {
	return s.revoked.Contains(tokenID)
}

func sessionFromClaims(c *Claims) *appctx.Session {
	sess := &appctx.Session{
		UserID:  c.UserID,
		Email:   c.Email,
		TokenID: c.ID,
		Theme:   c.Theme,
	}
	if c.IssuedAt != nil {
		sess.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		sess.ExpiresAt = c.ExpiresAt.Time
	}
	return sess
}
