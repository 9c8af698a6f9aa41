package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/modaloft/storefront/api/routes"
	"github.com/modaloft/storefront/internal/catalog"
	"github.com/modaloft/storefront/internal/session"
	"github.com/modaloft/storefront/internal/storage"
	"github.com/modaloft/storefront/pkg/config"
	"github.com/modaloft/storefront/pkg/logger"
	"github.com/modaloft/storefront/pkg/metrics"
	"github.com/modaloft/storefront/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	snapshots, err := newSnapshotStore(context.Background(), cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap snapshot storage", err)
		os.Exit(1)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(promRegistry)

	registry := session.NewRegistry(snapshots, cfg.Checkout, logg, storeMetrics)
	defer func() {
		if err := registry.Close(); err != nil {
			logg.Error(context.Background(), "error closing snapshot storage", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"backend":  cfg.Storage.NormalizedBackend(),
		"products": cat.Len(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, cat, registry, snapshots, promRegistry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func newSnapshotStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.NormalizedBackend() {
	case config.StorageBackendRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return storage.NewRedis(client)
	case config.StorageBackendSQLite:
		return storage.NewSQLite(cfg.Storage.SQLitePath)
	default:
		return storage.NewMemory(), nil
	}
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path != "" {
		return catalog.LoadFile(cfg.Catalog.Path)
	}
	return catalog.Seed()
}
