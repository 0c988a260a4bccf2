package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskq-api/internal/config"
	"github.com/phrazzld/taskq-api/internal/mocks"
	"github.com/phrazzld/taskq-api/internal/service"
	"github.com/phrazzld/taskq-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
		BCryptCost:           4,
	})
	require.NoError(t, err)
	return svc
}

type authFixture struct {
	users   *mocks.MockUserStore
	jwt     auth.JWTService
	handler *AuthHandler
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	users := mocks.NewMockUserStore()
	jwtService := newTestJWTService(t)
	userService := service.NewUserService(users, jwtService, auth.NewBcryptVerifier(), discardLogger())
	return &authFixture{
		users:   users,
		jwt:     jwtService,
		handler: NewAuthHandler(userService),
	}
}

func doJSON(t *testing.T, h http.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
