package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	catalogservice "toolhub/contexts/commerce/catalog-service"
	catalogpostgres "toolhub/contexts/commerce/catalog-service/adapters/postgres"
	orderservice "toolhub/contexts/commerce/order-service"
	orderevents "toolhub/contexts/commerce/order-service/adapters/events"
	orderpostgres "toolhub/contexts/commerce/order-service/adapters/postgres"
	orderworkers "toolhub/contexts/commerce/order-service/application/workers"
	blogservice "toolhub/contexts/community/blog-service"
	blogpostgres "toolhub/contexts/community/blog-service/adapters/postgres"
	reviewservice "toolhub/contexts/community/review-service"
	reviewpostgres "toolhub/contexts/community/review-service/adapters/postgres"
	authorization "toolhub/contexts/identity-access/authorization-service"
	authzpostgres "toolhub/contexts/identity-access/authorization-service/adapters/postgres"
	authzerrors "toolhub/contexts/identity-access/authorization-service/domain/errors"
	authzports "toolhub/contexts/identity-access/authorization-service/ports"
	tokenservice "toolhub/contexts/identity-access/token-service"
	userservice "toolhub/contexts/identity-access/user-service"
	userpostgres "toolhub/contexts/identity-access/user-service/adapters/postgres"
	"toolhub/internal/platform/config"
	"toolhub/internal/platform/db"
	"toolhub/internal/platform/httpserver"
	"toolhub/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  orderworkers.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	tokens := tokenservice.NewModule(tokenservice.Dependencies{
		Secret:   []byte(cfg.AccessTokenSecret),
		TokenTTL: cfg.AccessTokenTTL,
		Logger:   logger,
	})

	authzModule := authorization.NewModule(authorization.Dependencies{
		Repository: authzpostgres.NewRepository(pg.DB, logger),
		Clock:      authzpostgres.SystemClock{},
		Logger:     logger,
	})
	if err := seedAdmins(authzModule, cfg.AdminEmails, logger); err != nil {
		return nil, err
	}

	orders := orderservice.NewModule(orderservice.Dependencies{
		Repository:   orderpostgres.NewRepository(pg.DB, logger),
		IDGenerator:  orderpostgres.UUIDGenerator{},
		Clock:        orderpostgres.SystemClock{},
		StoreTimeout: cfg.StoreTimeout,
		Logger:       logger,
	})

	catalog := catalogservice.NewModule(catalogservice.Dependencies{
		Repository:  catalogpostgres.NewRepository(pg.DB, logger),
		IDGenerator: catalogpostgres.UUIDGenerator{},
		Clock:       catalogpostgres.SystemClock{},
		Logger:      logger,
	})

	users := userservice.NewModule(userservice.Dependencies{
		Repository: userpostgres.NewRepository(pg.DB, logger),
		Clock:      userpostgres.SystemClock{},
		Logger:     logger,
	})

	reviews := reviewservice.NewModule(reviewservice.Dependencies{
		Repository:  reviewpostgres.NewRepository(pg.DB),
		IDGenerator: reviewpostgres.UUIDGenerator{},
		Clock:       reviewpostgres.SystemClock{},
		Logger:      logger,
	})

	blogs := blogservice.NewModule(blogservice.Dependencies{
		Repository:  blogpostgres.NewRepository(pg.DB),
		IDGenerator: blogpostgres.UUIDGenerator{},
		Clock:       blogpostgres.SystemClock{},
		Logger:      logger,
	})

	server := httpserver.New(httpserver.Modules{
		Tokens:        tokens,
		Authorization: authzModule,
		Orders:        orders,
		Catalog:       catalog,
		Users:         users,
		Reviews:       reviews,
		Blogs:         blogs,
	}, logger, normalizeAddr(cfg.HTTPPort))

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
		return nil, err
	}

	repo := orderpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: orderworkers.OutboxRelay{
			Outbox:    repo,
			Publisher: orderevents.NewPublisher(kafka, logger),
			Clock:     orderpostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

// seedAdmins grants the admin role to configured emails. Already-granted
// emails are skipped.
func seedAdmins(authzModule authorization.Module, emails []string, logger *slog.Logger) error {
	for _, email := range emails {
		_, err := authzModule.Service.GrantRole(context.Background(), email, "system", authzports.RoleAdmin)
		if err != nil && !errors.Is(err, authzerrors.ErrRoleAlreadyAssigned) {
			return err
		}
		logger.Info("admin role seeded",
			"event", "bootstrap_admin_seeded",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"email", email,
		)
	}
	return nil
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
