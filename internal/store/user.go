package store

import (
	"context"

	"github.com/phrazzld/taskq-api/internal/domain"
)

// UserStore is the credential store: a key-value lookup from username to a
// salted password hash.
type UserStore interface {
	// Create hashes the user's plaintext password and saves the record.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
