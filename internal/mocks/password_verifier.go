package mocks

import (
	"errors"

	"github.com/phrazzld/taskq-api/internal/service/auth"
)

// ErrPasswordMismatch is returned by MockPasswordVerifier when comparison fails.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// ShouldSucceed determines whether the password comparison should succeed
	ShouldSucceed bool

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	// Calls records the arguments of every Compare call, oldest first.
	Calls []CompareCall
}

// CompareCall is one recorded Compare invocation.
type CompareCall struct {
	HashedPassword string
	Password       string
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.Calls = append(m.Calls, CompareCall{HashedPassword: hashedPassword, Password: password})

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return ErrPasswordMismatch
}
