package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/fuel-backend/internal/data/db"
	httpserver "github.com/yungbote/fuel-backend/internal/http"
	"github.com/yungbote/fuel-backend/internal/observability"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

const otelFlushTimeout = 5 * time.Second

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Metrics  *observability.Metrics
	Repos    Repos
	Services Services
	Handlers Handlers
	Server   *httpserver.Server

	pg           *db.PostgresService
	otelShutdown func(context.Context) error
}

// New builds the logger, connects to Postgres, migrates when configured and
// wires every layer. The caller owns Close.
func New(ctx context.Context, cfg Config, version string) (*App, error) {
	log, err := logger.NewWithOptions(cfg.Log.Mode, logger.Options{
		Level:    cfg.Log.Level,
		HashSalt: cfg.Log.HashSalt,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	pg, err := db.NewPostgresService(cfg.Postgres(), log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if cfg.DB.AutoMigrate {
		if err := pg.AutoMigrateAll(); err != nil {
			_ = pg.Close()
			log.Sync()
			return nil, fmt.Errorf("postgres automigrate: %w", err)
		}
	}

	a := newApp(cfg, log, pg.DB())
	a.pg = pg
	a.otelShutdown = observability.InitOTel(ctx, log, cfg.OTel(version))
	log.Info("App initialized", "env", cfg.Env, "addr", cfg.HTTP.Addr, "version", version)
	return a, nil
}

func newApp(cfg Config, log *logger.Logger, theDB *gorm.DB) *App {
	var metrics *observability.Metrics
	if cfg.Observability.MetricsEnabled {
		metrics = observability.NewMetrics()
	}
	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet, metrics)
	handlerset := wireHandlers(log, serviceset)

	return &App{
		Log:      log,
		DB:       theDB,
		Cfg:      cfg,
		Metrics:  metrics,
		Repos:    reposet,
		Services: serviceset,
		Handlers: handlerset,
		Server:   wireServer(cfg, log, handlerset, metrics),
	}
}

// Run serves HTTP until ctx is cancelled or the server fails. On the way out
// it flushes pending spans.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Server.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutdown requested")
		if a.otelShutdown == nil {
			return nil
		}
		flushCtx, cancel := context.WithTimeout(context.Background(), otelFlushTimeout)
		defer cancel()
		if err := a.otelShutdown(flushCtx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		return nil
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.pg != nil {
		if err := a.pg.Close(); err != nil && a.Log != nil {
			a.Log.Warn("postgres close failed", "error", err)
		}
		a.pg = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
