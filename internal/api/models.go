package api

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

// LoginResponse defines the successful response of the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// EnqueueRequest carries one task. Task may be any JSON value, null included;
// only an absent "task" key is rejected.
type EnqueueRequest struct {
	Task json.RawMessage `json:"task"`
}
