package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/itchan-dev/forum/backend/internal/router"
	"github.com/itchan-dev/forum/backend/internal/setup"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
)

var configFolder string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "forum-api",
		Short:         "Forum threads and comments API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")

	root.AddCommand(newServeCommand(), newMigrateCommand())
	return root
}

func loadConfig() *config.Config {
	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.Format)
	return cfg
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Runs the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), loadConfig())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up dependencies: %w", err)
	}
	defer func() {
		if err := deps.Storage.Cleanup(); err != nil {
			logger.Log.Error("failed to close storage", "error", err)
		}
	}()

	server := &http.Server{
		Addr:         cfg.Public.Server.Addr,
		Handler:      router.New(deps),
		ReadTimeout:  cfg.Public.Server.ReadTimeout,
		WriteTimeout: cfg.Public.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("server started", "addr", server.Addr, "storage", cfg.Public.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Public.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newMigrateCommand() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Applies or rolls back postgres migrations",
	}
	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Applies all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := postgresConfig()
				if err != nil {
					return err
				}
				return pg.MigrateUp(cfg.PgURL())
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Rolls back all migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := postgresConfig()
				if err != nil {
					return err
				}
				return pg.MigrateDown(cfg.PgURL())
			},
		},
	)
	return migrate
}

func postgresConfig() (*config.Config, error) {
	cfg := loadConfig()
	if cfg.Public.Storage.Driver != config.DriverPostgres {
		return nil, fmt.Errorf("migrations need the postgres driver, configured %q", cfg.Public.Storage.Driver)
	}
	return cfg, nil
}
