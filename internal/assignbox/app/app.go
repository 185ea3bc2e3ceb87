package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/assignbox/internal/assignbox/domain"
	httpapi "github.com/aussiebroadwan/assignbox/internal/assignbox/http"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/service"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/store"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/store/drivers/mongo"
	"github.com/aussiebroadwan/assignbox/internal/assignbox/store/drivers/sqlite"
	"github.com/aussiebroadwan/assignbox/pkg/httpx"
	"github.com/aussiebroadwan/assignbox/pkg/jwtx"
	"github.com/aussiebroadwan/assignbox/pkg/slogx"
)

const (
	// BuildVersion is overridden at build time via ldflags.
	BuildVersion = "v0.1.0"

	storeConnectTimeout = 10 * time.Second
)

// Application owns the store, services and HTTP server of one process.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier

	userService       *service.IdentityService
	adminService      *service.IdentityService
	assignmentService *service.AssignmentService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "assignbox",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates an Application with every dependency initialised and the
// store migrated.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
	defer cancel()

	db, err := OpenStore(ctx, cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	if err := db.ApplyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply store migrations: %w", err)
	}
	app.logger.Info("store migrations applied successfully", "driver", cfg.StoreDriver)

	app.signer, app.verifier, err = InitSessionKeys(cfg, app.logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the server and blocks until it fails or a shutdown signal
// arrives.
func (app *Application) Run() error {
	app.logger.Info("assignbox starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down assignbox...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("assignbox stopped")
	return nil
}

// Handler exposes the configured router.
func (app *Application) Handler() http.Handler {
	return app.router
}

// OpenStore connects to the driver selected by cfg and checks it answers.
func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger) (store.Store, error) {
	var (
		db  store.Store
		err error
	)

	switch cfg.StoreDriver {
	case DriverSQLite:
		db, err = sqlite.NewStore(cfg.SQLiteDSN())
		if err == nil {
			logger.Info("sqlite store opened", "file", cfg.DatabaseFile)
		}
	case DriverMongo:
		db, err = mongo.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err == nil {
			logger.Info("mongo store connected", "database", cfg.MongoDatabase)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", cfg.StoreDriver, DriverSQLite, DriverMongo)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store is not reachable: %w", err)
	}

	return db, nil
}

// Migrate applies the store schema for cfg and closes the store.
func Migrate(ctx context.Context, cfg Config, logger *slog.Logger) error {
	db, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ApplyMigrations(ctx); err != nil {
		return fmt.Errorf("failed to apply store migrations: %w", err)
	}

	logger.Info("store migrations applied successfully", "driver", cfg.StoreDriver)
	return nil
}

func (app *Application) initServices() {
	app.userService = &service.IdentityService{
		Store:      app.db,
		Role:       domain.RoleUser,
		Signer:     app.signer,
		Issuer:     app.cfg.JWTIssuer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.adminService = &service.IdentityService{
		Store:      app.db,
		Role:       domain.RoleAdmin,
		Signer:     app.signer,
		Issuer:     app.cfg.JWTIssuer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.assignmentService = &service.AssignmentService{
		Store:            app.db,
		EnforceOwnership: app.cfg.EnforceOwnership,
	}

	if !app.cfg.EnforceOwnership {
		app.logger.Warn("assignment ownership not enforced; any admin may accept or reject any assignment")
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
		httpapi.Options{
			Cookie: httpx.CookieConfig{
				Name:   "token",
				MaxAge: app.cfg.CookieMaxAge,
				Secure: app.cfg.CookieSecure,
			},
			CORSOrigin:   app.cfg.CORSOrigin,
			ExposeErrors: app.cfg.ExposeErrors,
		},
	)

	router.UserService = app.userService
	router.AdminService = app.adminService
	router.AssignmentService = app.assignmentService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
