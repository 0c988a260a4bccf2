package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp 127.0.0.1:6379: connection refused") }

	tests := []struct {
		name       string
		checks     map[string]HealthCheck
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all healthy",
			checks:     map[string]HealthCheck{"redis": up, "database": up},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","checks":{"redis":"ok","database":"ok"}}`,
		},
		{
			name:       "redis down",
			checks:     map[string]HealthCheck{"redis": down, "database": up},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unhealthy","checks":{"redis":"down","database":"ok"}}`,
		},
		{
			name:       "no checks",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			NewHealthHandler(tt.checks).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
