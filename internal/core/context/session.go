package context

import (
	"context"
	"time"
)

// Theme is the console colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Session is the application context of a signed-in console user: who they
// are and how the console should look. It is created at login, travels with
// each request and ends at logout.
type Session struct {
	UserID    string
	Email     string
	TokenID   string
	Theme     Theme
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Authenticated reports whether the session belongs to a signed-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}

type sessionKey struct{}

// WithSession adds the Session to context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// GetSession returns the Session from context or nil.
func GetSession(ctx context.Context) *Session {
	if v, ok := ctx.Value(sessionKey{}).(*Session); ok {
		return v
	}
	return nil
}

// GetUserID returns the session user ID or empty string.
func GetUserID(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.UserID
	}
	return ""
}

type storeKey struct{}

// WithStoreID records the store a request operates on.
func WithStoreID(ctx context.Context, storeID string) context.Context {
	return context.WithValue(ctx, storeKey{}, storeID)
}

// GetStoreID returns the store of the request or empty string.
func GetStoreID(ctx context.Context) string {
	if v, ok := ctx.Value(storeKey{}).(string); ok {
		return v
	}
	return ""
}
