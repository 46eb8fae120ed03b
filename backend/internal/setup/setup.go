package setup

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/backend/internal/storage/kv"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/logger"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

// Storage is what a storage driver must provide to back the whole API.
type Storage interface {
	service.ThreadRepository
	service.CommentRepository
	service.UserRepository
	Ping(ctx context.Context) error
	Cleanup() error
}

var (
	_ Storage = (*pg.Storage)(nil)
	_ Storage = (*kv.Store)(nil)
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	Metrics        *metrics.Metrics
	Registry       *prometheus.Registry
}

// SetupDependencies opens the configured storage and wires the use cases on top of it.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewDependencies(cfg, storage), nil
}

func OpenStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Public.Storage.Driver {
	case config.DriverPostgres:
		if cfg.Public.Storage.MigrateOnStart {
			if err := pg.MigrateUp(cfg.PgURL()); err != nil {
				return nil, err
			}
		}
		logger.Log.Info("connecting to postgres", "host", cfg.Public.Pg.Host, "db", cfg.Public.Pg.Dbname)
		return pg.New(ctx, cfg.PgDSN())
	case config.DriverBadger:
		logger.Log.Info("opening badger", "dir", cfg.Public.Storage.BadgerDir)
		return kv.Open(cfg.Public.Storage.BadgerDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Public.Storage.Driver)
	}
}

// NewDependencies builds each use case once over storage.
func NewDependencies(cfg *config.Config, storage Storage) *Dependencies {
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	uc := handler.UseCases{
		AddThread:     service.NewAddThreadUseCase(storage),
		DetailThread:  service.NewDetailThreadUseCase(storage, storage),
		AddComment:    service.NewAddCommentUseCase(storage, storage),
		DeleteComment: service.NewDeleteCommentUseCase(storage, storage),
		Auth:          service.NewAuth(storage, jwtService),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        handler.New(uc, storage),
		AuthMiddleware: mw.NewAuth(jwtService),
		Metrics:        metrics.New(registry),
		Registry:       registry,
	}
}
