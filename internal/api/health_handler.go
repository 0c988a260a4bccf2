package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/phrazzld/taskq-api/internal/api/shared"
	"github.com/phrazzld/taskq-api/internal/platform/logger"
	"github.com/phrazzld/taskq-api/internal/redact"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

// HealthHandler serves GET /health by running every registered check.
type HealthHandler struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthHandler creates a health handler. checks maps a dependency name
// ("redis", "database") to its check.
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 3 * time.Second}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ServeHTTP implements http.Handler.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			logger.FromContext(r.Context()).Warn("health check failed",
				"check", name,
				redact.Err(err))
			results[name] = "down"
			healthy = false
			continue
		}
		results[name] = "ok"
	}

	if !healthy {
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Checks: results,
		})
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok", Checks: results})
}
