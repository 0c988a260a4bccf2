package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskq-api/internal/config"
	"github.com/phrazzld/taskq-api/internal/platform/postgres"
	"github.com/phrazzld/taskq-api/internal/platform/redis"
	"github.com/phrazzld/taskq-api/internal/service"
	"github.com/phrazzld/taskq-api/internal/service/auth"
	"github.com/phrazzld/taskq-api/internal/store"
	goredis "github.com/redis/go-redis/v9"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Owned connections, closed by cleanup. Either may be nil in tests.
	db          *sql.DB
	redisClient goredis.UniversalClient

	userStore  store.UserStore
	queueStore *redis.QueueStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	taskService      service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. The database and Redis connections are established by the
// caller and handed over; the application closes them on shutdown.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	redisClient goredis.UniversalClient,
) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		redisClient: redisClient,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()
	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost)
	app.queueStore = redis.NewQueueStore(redisClient, time.Duration(cfg.Redis.OpTimeoutMS)*time.Millisecond)

	app.wireServices()

	logger.Info("Application initialized successfully")
	return app, nil
}

// wireServices builds the services from the stores already set on app.
func (app *application) wireServices() {
	app.userService = service.NewUserService(app.userStore, app.jwtService, app.passwordVerifier, app.logger)
	app.taskService = service.NewTaskService(app.queueStore, app.logger)
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("Error closing Redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
