package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps them to HTTP
// status codes.
var (
	// ErrInvalidCredentials is returned by Authenticate when the username is
	// unknown or the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
