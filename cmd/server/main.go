package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nexproctor/proctor-server/internal/api"
	"github.com/nexproctor/proctor-server/internal/config"
	"github.com/nexproctor/proctor-server/internal/factory"
	"github.com/nexproctor/proctor-server/internal/middleware"
	"github.com/nexproctor/proctor-server/internal/services/auth"
	redisstorage "github.com/nexproctor/proctor-server/internal/storage/redis"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	flag.Parse()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tokenTTL, err := cfg.TokenTTL()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config from loaded configuration
	factoryCfg := factory.Config{
		StorageType: cfg.Storage.Type,
		AuthConfig: auth.Config{
			SigningKey: cfg.JWT.SigningKey,
			Issuer:     cfg.JWT.Issuer,
			TokenTTL:   tokenTTL,
		},
		Proctors: cfg.Proctors,
		Logger:   logger,
	}

	if cfg.Storage.Type == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create application factory
	app, err := factory.New(ctx, factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router with HTTP metrics on the default registry
	metrics := middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)
	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		AuthService:  app.AuthService,
		CodeRegistry: app.CodeRegistry,
		ReportStore:  app.ReportStore,
		Metrics:      metrics,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Addr = cfg.Addr()
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
