package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	landingpage "storefront/contexts/content-studio/landing-page-service"
	"storefront/contexts/content-studio/landing-page-service/adapters/catalog"
	postgresadapter "storefront/contexts/content-studio/landing-page-service/adapters/postgres"
	"storefront/contexts/content-studio/landing-page-service/application"
	workerapp "storefront/contexts/content-studio/landing-page-service/application/workers"
	"storefront/internal/platform/config"
	"storefront/internal/platform/db"
	"storefront/internal/platform/httpserver"
	"storefront/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

const idempotencyTTL = 7 * 24 * time.Hour

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  workerapp.OutboxRelay
	relayEnabled bool
	pollInterval time.Duration
	logger       *slog.Logger
}

// BuildAPI wires the landing module against Postgres when POSTGRES_DSN is
// set and against the in-memory store otherwise.
func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	library, err := catalog.Load(cfg.LandingCatalogPath)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		logger.Warn("postgres dsn not set, using in-memory landing store",
			"event", "bootstrap_in_memory_store",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		module := landingpage.NewInMemoryModule(library, cfg.LandingPreviewConcurrency, logger)
		return &APIApp{
			server: httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort)),
			logger: logger,
		}, nil
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repo.AutoMigrate(ctx); err != nil {
		_ = pg.Close()
		return nil, err
	}
	if err := seedStarterKits(ctx, repo, library); err != nil {
		_ = pg.Close()
		return nil, err
	}

	module := landingpage.NewModule(landingpage.Dependencies{
		Catalog:            library,
		Kits:               repo,
		Pages:              repo,
		Idempotency:        repo,
		Clock:              postgresadapter.SystemClock{},
		IDGenerator:        postgresadapter.UUIDGenerator{},
		BlockIDs:           postgresadapter.UUIDGenerator{},
		IdempotencyTTL:     idempotencyTTL,
		PreviewConcurrency: cfg.LandingPreviewConcurrency,
		Logger:             logger,
	})

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: workerapp.OutboxRelay{
			Outbox:    repo,
			Publisher: kafka,
			Clock:     postgresadapter.SystemClock{},
			Topic:     application.PageDraftedEventType,
			BatchSize: 100,
			Logger:    logger,
		},
		relayEnabled: cfg.EnableLandingOutboxRelay,
		pollInterval: cfg.OutboxPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if !w.relayEnabled {
		w.logger.Info("landing outbox relay disabled",
			"event", "bootstrap_worker_relay_disabled",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

// seedStarterKits stores the catalog's kits on an empty kit table. Existing
// rows are never overwritten.
func seedStarterKits(ctx context.Context, repo *postgresadapter.Repository, library *catalog.Catalog) error {
	existing, err := repo.ListKits(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	now := postgresadapter.SystemClock{}.Now()
	for _, kit := range library.StarterKits() {
		if err := repo.UpsertKit(ctx, kit, now); err != nil {
			return fmt.Errorf("seed kit %s: %w", kit.Name, err)
		}
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
