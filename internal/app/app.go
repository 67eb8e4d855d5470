package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-backend/internal/data/db"
	"github.com/skillpath/skillpath-backend/internal/events"
	httpsrv "github.com/skillpath/skillpath-backend/internal/http"
	"github.com/skillpath/skillpath-backend/internal/observability"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *httpsrv.Server
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Bus      events.Bus

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "skillpath-backend",
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	bus, err := events.NewRedisBus(log)
	if err != nil {
		log.Warn("redis event bus unavailable, running without progress events", "error", err)
		bus = events.NewNoopBus()
	}

	// Published events flow bus -> forwarder -> hub -> per-learner SSE
	// streams. The forwarder goroutine stops when the bus closes.
	hub := events.NewHub(log)
	if err := bus.StartForwarder(context.Background(), hub.Broadcast); err != nil {
		log.Warn("event forwarder not started, SSE streams will stay silent", "error", err)
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, bus)
	handlerset := wireHandlers(log, serviceset, hub)
	server := wireServer(log, handlerset)

	return &App{
		Log:          log,
		DB:           theDB,
		Server:       server,
		Router:       server.Engine,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Bus:          bus,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(":" + a.Cfg.Port)
}

// Shutdown stops accepting connections and drains in-flight requests.
// Run returns nil once the drain completes.
func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return nil
	}
	return a.Server.Shutdown(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Bus != nil {
		_ = a.Bus.Close()
	}
	if a.otelShutdown != nil {
		_ = a.otelShutdown(context.Background())
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
