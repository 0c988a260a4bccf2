package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService issues and verifies identity tokens.
type JWTService interface {
	// GenerateToken creates a signed token carrying the user's identity.
	GenerateToken(ctx context.Context, userID uuid.UUID) (*Token, error)

	// ValidateToken verifies the signature and expiry of tokenString and
	// returns its claims. It returns ErrExpiredToken once the token has
	// expired and ErrInvalidToken for every other failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Token is a signed identity token and the time it stops being accepted.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Claims is the verified content of an identity token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
