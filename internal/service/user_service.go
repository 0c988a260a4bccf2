package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskq-api/internal/domain"
	"github.com/phrazzld/taskq-api/internal/service/auth"
	"github.com/phrazzld/taskq-api/internal/store"
)

// UserService registers users and exchanges credentials for identity tokens.
type UserService interface {
	// Register creates a user with the given credentials.
	// Returns store.ErrUsernameExists if the username is taken, or an error
	// wrapping domain.ErrValidation if the credentials are malformed.
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// Authenticate verifies the credentials and issues a token for the user.
	// Returns ErrInvalidCredentials for an unknown user or a wrong password.
	Authenticate(ctx context.Context, username, password string) (*auth.Token, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With("component", "user_service"),
	}
}

// Register creates a new user. The store hashes the password before saving.
func (s *UserServiceImpl) Register(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := domain.NewUser(username, password)
	if err != nil {
		s.logger.Debug("rejected registration",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register an existing username",
				"username", username)
		} else {
			s.logger.Error("failed to save user",
				"error", err,
				"username", username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// Authenticate looks the user up by username, compares the password against
// the stored hash and, on success, issues a token carrying the user ID.
func (s *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (*auth.Token, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login for unknown username", "username", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login with wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token",
			"error", err,
			"user_id", user.ID)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Debug("user authenticated", "user_id", user.ID)
	return token, nil
}
