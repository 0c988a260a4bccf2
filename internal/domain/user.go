package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Username and password limits. 72 bytes is bcrypt's input limit.
const (
	MaxUsernameLength = 64
	MaxPasswordLength = 72
)

// User validation errors
var (
	ErrEmptyUserID     = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyUsername   = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrUsernameTooLong = fmt.Errorf(
		"%w: username must be at most %d characters long",
		ErrValidation,
		MaxUsernameLength,
	)
	ErrEmptyPassword   = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooLong = fmt.Errorf(
		"%w: password must be at most %d bytes long",
		ErrValidation,
		MaxPasswordLength,
	)
)

// User is a registered account. Its ID is the identity every queue operation
// is namespaced by.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // Plaintext, only set during registration
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with a fresh ID and the given credentials.
// The caller is responsible for hashing the password before storage.
func NewUser(username, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}

	// A stored user carries only the hash; a new one carries the plaintext.
	if u.Password != "" {
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
