package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storeadmin/internal/core/apperror"
	appctx "storeadmin/internal/core/context"
	"storeadmin/internal/domain/auth"
	"storeadmin/internal/infrastructure/storage/memory"
)

const secret = "test-secret-0123456789"

func newService(t *testing.T) *auth.Service {
	t.Helper()
	cfg := auth.DefaultServiceConfig()
	cfg.MaxLoginAttempts = 3
	cfg.BcryptCost = bcrypt.MinCost
	return auth.NewService(memory.NewUserRepo(), auth.NewJWTService(auth.DefaultJWTConfig(secret)), cfg)
}

func register(t *testing.T, svc *auth.Service, email, password string) *auth.User {
	t.Helper()
	u, err := svc.Register(context.Background(), auth.RegisterRequest{Email: email, Password: password})
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u := register(t, svc, "  Owner@Example.com ", "correct-horse")
	assert.Equal(t, "owner@example.com", u.Email)
	assert.NotEqual(t, "correct-horse", u.PasswordHash)
	assert.Equal(t, appctx.ThemeLight, u.Theme)

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "OWNER@example.com", Password: "another-pass"})
	assert.True(t, apperror.HasCode(err, apperror.CodeConflict))

	_, err = svc.Register(ctx, auth.RegisterRequest{Email: "short@example.com", Password: "abc"})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	_, err = svc.Register(ctx, auth.RegisterRequest{Email: "not-an-email", Password: "long-enough"})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestLoginLogout(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	u := register(t, svc, "owner@example.com", "correct-horse")

	pair, got, err := svc.Login(ctx, auth.Credentials{Email: "OWNER@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotNil(t, got.LastLoginAt)

	sess, err := svc.JWT().ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, u.ID.String(), sess.UserID)
	assert.NotEmpty(t, sess.TokenID)

	me, err := svc.Me(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", me.Email)

	require.NoError(t, svc.Logout(ctx, sess))
	_, err = svc.JWT().ValidateToken(pair.AccessToken)
	assert.True(t, apperror.HasCode(err, apperror.CodeUnauthorized))
}

func TestLogin_WrongPasswordLocksAccount(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	register(t, svc, "owner@example.com", "correct-horse")

	creds := auth.Credentials{Email: "owner@example.com", Password: "wrong"}
	for i := 0; i < 2; i++ {
		_, _, err := svc.Login(ctx, creds)
		assert.True(t, apperror.HasCode(err, apperror.CodeUnauthorized), "attempt %d", i+1)
	}
	_, _, err := svc.Login(ctx, creds)
	assert.True(t, apperror.HasCode(err, apperror.CodeAccountLocked))

	_, _, err = svc.Login(ctx, auth.Credentials{Email: "owner@example.com", Password: "correct-horse"})
	assert.True(t, apperror.HasCode(err, apperror.CodeAccountLocked))
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, _, err := newService(t).Login(context.Background(), auth.Credentials{Email: "ghost@example.com", Password: "x"})
	assert.True(t, apperror.HasCode(err, apperror.CodeUnauthorized))
}

func TestSetTheme(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	register(t, svc, "owner@example.com", "correct-horse")
	pair, _, err := svc.Login(ctx, auth.Credentials{Email: "owner@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	sess, err := svc.JWT().ValidateToken(pair.AccessToken)
	require.NoError(t, err)

	u, err := svc.SetTheme(ctx, sess, appctx.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, appctx.ThemeDark, u.Theme)
	assert.Equal(t, appctx.ThemeDark, sess.Theme)

	_, err = svc.SetTheme(ctx, sess, appctx.Theme("neon"))
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestLogout_RequiresSession(t *testing.T) {
	err := newService(t).Logout(context.Background(), nil)
	assert.True(t, apperror.HasCode(err, apperror.CodeUnauthorized))
}

func TestJWT_RejectsForeignTokens(t *testing.T) {
	u := auth.NewUser("owner@example.com", "hash")
	issuer := auth.NewJWTService(auth.DefaultJWTConfig("another-secret-0123456789"))
	token, _, err := issuer.GenerateAccessToken(u, time.Now())
	require.NoError(t, err)

	verifier := auth.NewJWTService(auth.DefaultJWTConfig(secret))
	_, err = verifier.ValidateToken(token)
	assert.True(t, apperror.HasCode(err, apperror.CodeUnauthorized))

	_, err = verifier.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	svc := auth.NewJWTService(auth.DefaultJWTConfig(secret))
	token, _, err := svc.GenerateAccessToken(auth.NewUser("owner@example.com", "hash"), time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "token expired", appErr.Message)
}
