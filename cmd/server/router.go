package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskq-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskq-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.SecureHeaders())
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.PrometheusMiddleware)

	authLimit, err := apiMiddleware.NewIPRateLimiter(app.config.RateLimit.Auth)
	if err != nil {
		return nil, err
	}

	authHandler := api.NewAuthHandler(app.userService)
	taskHandler := api.NewTaskHandler(app.taskService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Public authentication endpoints
	r.Group(func(r chi.Router) {
		r.Use(authLimit)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/enqueue", taskHandler.Enqueue)
		r.Get("/protected-route", taskHandler.Protected)
	})

	r.Handle("/health", app.healthHandler())
	r.Handle("/metrics", promhttp.Handler())

	return r, nil
}

// healthHandler checks the dependencies the application actually holds.
func (app *application) healthHandler() http.Handler {
	checks := make(map[string]api.HealthCheck)
	if app.queueStore != nil {
		checks["redis"] = app.queueStore.Ping
	}
	if app.db != nil {
		checks["database"] = func(ctx context.Context) error {
			return app.db.PingContext(ctx)
		}
	}
	return api.NewHealthHandler(checks)
}
