package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskq-api/internal/api/shared"
	"github.com/phrazzld/taskq-api/internal/mocks"
	"github.com/phrazzld/taskq-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name            string
		authHeader      string
		validateErr     error
		claims          *auth.Claims
		expectedStatus  int
		expectedMessage string
		expectValidate  bool
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectValidate: true,
		},
		{
			name:            "missing auth header",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Authorization header required",
		},
		{
			name:            "no scheme",
			authHeader:      "valid-token",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid authorization format",
		},
		{
			name:            "wrong scheme",
			authHeader:      "Basic dXNlcjpwYXNz",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid authorization format",
		},
		{
			name:            "lowercase scheme",
			authHeader:      "bearer valid-token",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid authorization format",
		},
		{
			name:            "empty token",
			authHeader:      "Bearer ",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid authorization format",
		},
		{
			name:            "extra segments",
			authHeader:      "Bearer one two",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid authorization format",
		},
		{
			name:            "expired token",
			authHeader:      "Bearer expired-token",
			validateErr:     auth.ErrExpiredToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token expired",
			expectValidate:  true,
		},
		{
			name:            "invalid token",
			authHeader:      "Bearer invalid-token",
			validateErr:     auth.ErrInvalidToken,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
			expectValidate:  true,
		},
		{
			name:            "unexpected validation error",
			authHeader:      "Bearer some-token",
			validateErr:     errors.New("boom"),
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
			expectValidate:  true,
		},
		{
			name:            "claims without user",
			authHeader:      "Bearer some-token",
			claims:          &auth.Claims{},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
			expectValidate:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{Claims: tt.claims, ValidateErr: tt.validateErr}
			mw := NewAuthMiddleware(jwtService)

			var gotUserID uuid.UUID
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				id, ok := GetUserID(r)
				require.True(t, ok)
				gotUserID = id
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected-route", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectValidate, jwtService.ValidateCalls == 1)
			if tt.expectedStatus == http.StatusOK {
				assert.True(t, called)
				assert.Equal(t, userID, gotUserID)
				return
			}
			assert.False(t, called, "handler must not run for rejected requests")
			assert.Contains(t, rec.Body.String(), tt.expectedMessage)
		})
	}
}

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	TraceMiddleware(base)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, traceID)
	assert.Equal(t, traceID, rec.Header().Get(TraceIDHeader))
	assert.Contains(t, logs.String(), traceID)
}
