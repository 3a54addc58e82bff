package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Kirill2434/yatube/internal/adapter/postgres"
	"github.com/Kirill2434/yatube/internal/config"
	"github.com/Kirill2434/yatube/migrations"
)

// Options adjust a Run.
type Options struct {
	// Migrate applies pending migrations before serving.
	Migrate bool
}

// Run serves the site until ctx is cancelled, then shuts the server down
// gracefully within the configured timeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if opts.Migrate {
		if err := Migrate(ctx, cfg, logger, MigrateUp); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, err := NewRouter(cfg, logger, pool, reg)
	if err != nil {
		return err
	}
	defer router.Close()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// Migration directions understood by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate runs one goose command against the configured database.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger, direction string) error {
	m, err := postgres.NewMigrator(cfg.Database.DSN, migrations.FS)
	if err != nil {
		return err
	}
	defer m.Close()

	switch direction {
	case MigrateUp:
		return m.Up(ctx, logger)
	case MigrateDown:
		return m.Down(ctx, logger)
	case MigrateStatus:
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Version),
				slog.String("path", s.Path),
				slog.Bool("applied", s.Applied),
			)
		}
		return nil
	default:
		return fmt.Errorf("unknown migrate command %q", direction)
	}
}
