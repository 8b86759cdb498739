package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/nexproctor/proctor-server/internal/config"
	"github.com/nexproctor/proctor-server/internal/dependencies/clock"
	"github.com/nexproctor/proctor-server/internal/dependencies/random"
	"github.com/nexproctor/proctor-server/internal/services/auth"
	"github.com/nexproctor/proctor-server/internal/services/code"
	"github.com/nexproctor/proctor-server/internal/services/report"
	"github.com/nexproctor/proctor-server/internal/storage"
	"github.com/nexproctor/proctor-server/internal/storage/memory"
	redisstorage "github.com/nexproctor/proctor-server/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Default account seeded when configuration provisions no proctors
const (
	DefaultProctorUsername = "admin"
	DefaultProctorPassword = "admin123"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService  *auth.Service
	CodeRegistry *code.Registry
	ReportStore  *report.Store
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
	// Proctors are the accounts to provision at startup. If empty, the
	// default admin account is seeded.
	Proctors []config.ProctorConfig
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, clk, rnd, cfg.AuthConfig)

	if err := provisionProctors(ctx, app.AuthService, cfg.Proctors, logger); err != nil {
		return nil, err
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config) *App {
	authService := auth.New(store, clk, authCfg)
	codeRegistry := code.NewRegistry(store, clk, rnd)
	reportStore := report.NewStore(store, codeRegistry, clk)

	return &App{
		Storage:      store,
		Clock:        clk,
		Random:       rnd,
		AuthService:  authService,
		CodeRegistry: codeRegistry,
		ReportStore:  reportStore,
	}
}

// provisionProctors seeds the configured proctor accounts, falling back
// to the default admin account when none are configured
func provisionProctors(ctx context.Context, authService *auth.Service, proctors []config.ProctorConfig, logger *slog.Logger) error {
	if len(proctors) == 0 {
		logger.Warn("no proctor accounts configured, seeding default account",
			slog.String("username", DefaultProctorUsername))
		return authService.ProvisionAccount(ctx, DefaultProctorUsername, DefaultProctorPassword)
	}

	for _, p := range proctors {
		var err error
		if p.PasswordHash != "" {
			err = authService.ProvisionAccountWithHash(ctx, p.Username, p.PasswordHash)
		} else {
			err = authService.ProvisionAccount(ctx, p.Username, p.Password)
		}
		if err != nil {
			return err
		}
		logger.Info("provisioned proctor account", slog.String("username", p.Username))
	}
	return nil
}
