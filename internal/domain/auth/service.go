package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storeadmin/internal/core/apperror"
	appctx "storeadmin/internal/core/context"
	"storeadmin/internal/core/id"
	"storeadmin/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	MaxLoginAttempts  int
	LockDuration      time.Duration
	PasswordMinLength int

	// BcryptCost defaults to bcrypt.DefaultCost when zero.
	BcryptCost int
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxLoginAttempts:  5,
		LockDuration:      15 * time.Minute,
		PasswordMinLength: 8,
		BcryptCost:        bcrypt.DefaultCost,
	}
}

// Service provides registration, login and session operations.
type Service struct {
	userRepo   UserRepository
	jwtService *JWTService
	config     ServiceConfig
	now        func() time.Time
}

// NewService creates a new auth service.
func NewService(userRepo UserRepository, jwtService *JWTService, config ServiceConfig) *Service {
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:   userRepo,
		jwtService: jwtService,
		config:     config,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// JWT returns the token service used by the auth middleware.
func (s *Service) JWT() *JWTService {
	return s.jwtService
}

// Register creates a new console user.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if len(req.Password) < s.config.PasswordMinLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		).WithDetail("field", "password")
	}
	if len(req.Password) > 72 {
		return nil, apperror.NewValidation("password must be at most 72 bytes").WithDetail("field", "password")
	}

	email := NormalizeEmail(req.Email)
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperror.NewConflict("email already registered").WithDetail("email", email)
	} else if !apperror.IsNotFound(err) {
		return nil, storageErr(err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("hash password: %w", err))
	}

	user := NewUser(email, string(passwordHash))
	user.DisplayName = req.DisplayName
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, storageErr(err)
	}

	logger.Info(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login checks credentials and starts a session.
func (s *Service) Login(ctx context.Context, creds Credentials) (*TokenPair, *User, error) {
	now := s.now()

	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(creds.Email))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, nil, storageErr(err)
	}
	if user.IsLocked(now) {
		return nil, nil, apperror.NewAccountLocked().WithDetail("lockedUntil", user.LockedUntil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		user.RecordFailedLogin(s.config.MaxLoginAttempts, s.config.LockDuration, now)
		if err := s.userRepo.Update(ctx, user); err != nil {
			logger.Warn(ctx, "failed to record login failure", "user_id", user.ID, "error", err)
		}
		if user.IsLocked(now) {
			logger.Warn(ctx, "account locked", "user_id", user.ID)
			return nil, nil, apperror.NewAccountLocked().WithDetail("lockedUntil", user.LockedUntil)
		}
		return nil, nil, apperror.NewUnauthorized("invalid credentials")
	}

	user.RecordSuccessfulLogin(now)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, nil, storageErr(err)
	}

	token, sess, err := s.jwtService.GenerateAccessToken(user, now)
	if err != nil {
		return nil, nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID)
	return &TokenPair{
		AccessToken: token,
		ExpiresAt:   sess.ExpiresAt,
		TokenType:   "Bearer",
	}, user, nil
}

// Logout ends the session by revoking its token.
func (s *Service) Logout(ctx context.Context, sess *appctx.Session) error {
	if !sess.Authenticated() {
		return apperror.NewUnauthorized("not signed in")
	}
	s.jwtService.Revoke(sess.TokenID)
	logger.Info(ctx, "user logged out", "user_id", sess.UserID)
	return nil
}

// Me returns the user of the session.
func (s *Service) Me(ctx context.Context, sess *appctx.Session) (*User, error) {
	userID, err := SessionUserID(sess)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("user no longer exists")
		}
		return nil, storageErr(err)
	}
	return user, nil
}

// SetTheme stores the console theme preference of the session user.
func (s *Service) SetTheme(ctx context.Context, sess *appctx.Session, theme appctx.Theme) (*User, error) {
	if !theme.Valid() {
		return nil, apperror.NewValidation("unknown theme").WithDetail("field", "theme")
	}
	user, err := s.Me(ctx, sess)
	if err != nil {
		return nil, err
	}
	user.Theme = theme
	user.Touch()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, storageErr(err)
	}
	sess.Theme = theme
	return user, nil
}

// SessionUserID parses the user id of an authenticated session.
func SessionUserID(sess *appctx.Session) (id.ID, error) {
	if !sess.Authenticated() {
		return id.Nil, apperror.NewUnauthorized("not signed in")
	}
	userID, err := id.Parse(sess.UserID)
	if err != nil {
		return id.Nil, apperror.NewUnauthorized("invalid session")
	}
	return userID, nil
}

func storageErr(err error) error {
	if _, ok := apperror.AsAppError(err); ok {
		return err
	}
	return apperror.NewInternal(err)
}
