package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/gotrs-io/lpa-frontend/internal/api"
	"github.com/gotrs-io/lpa-frontend/internal/cache"
	"github.com/gotrs-io/lpa-frontend/internal/config"
	"github.com/gotrs-io/lpa-frontend/internal/sirius"
	"github.com/gotrs-io/lpa-frontend/internal/telemetry"
	"github.com/gotrs-io/lpa-frontend/internal/template"
	"github.com/gotrs-io/lpa-frontend/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the frontend HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(ctx, cfg)
	},
}

// newRefDataStore picks Redis when it is enabled and reachable, falling back
// to the in-process cache.
func newRefDataStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (cache.Store, func()) {
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisCache(ctx, &cache.RedisConfig{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			KeyPrefix:  cfg.Redis.Prefix,
			DefaultTTL: cfg.RefDataTTL,
		})
		if err == nil {
			return rc, func() { _ = rc.Close() }
		}
		logger.Warn("redis unavailable, using local cache", "addr", cfg.Redis.Addr, "error", err)
	}

	lc := cache.NewLocalCache(&cache.LocalCacheConfig{
		MaxSize:         cfg.Local.MaxSize,
		DefaultTTL:      cfg.RefDataTTL,
		CleanupInterval: cfg.Local.CleanupInterval,
	})
	return lc, lc.Stop
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := telemetry.NewLogger(os.Stdout, cfg.App.Name, cfg.Logging.Format, cfg.Logging.Level)
	slog.SetDefault(logger)

	if err := config.ValidateOnStartup(cfg, logger); err != nil {
		return err
	}

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracing shutdown", "error", err)
		}
	}()

	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	store, closeStore := newRefDataStore(ctx, cfg.Cache, logger)
	defer closeStore()

	var cacheMetrics *cache.Metrics
	if reg != nil {
		cacheMetrics = cache.NewMetrics(reg, "lpa_frontend")
	}

	client := sirius.NewClient(&sirius.Config{
		BaseURL:    cfg.Sirius.URL,
		Timeout:    cfg.Sirius.Timeout,
		RetryCount: cfg.Sirius.RetryCount,
		Transport:  telemetry.Transport(http.DefaultTransport),
		RefData:    cache.NewRefDataCache(store, cfg.Cache.RefDataTTL, cacheMetrics),
	})

	publicURL := cfg.Sirius.PublicURL
	if publicURL == "" {
		publicURL = cfg.Sirius.URL
	}

	renderer, err := template.New(template.Options{
		Dir:             filepath.Join(cfg.Server.WebDir, "template"),
		Prefix:          cfg.Server.Prefix,
		SiriusPublicURL: publicURL,
		StaticHash:      version.Commit,
		Debug:           cfg.App.Debug,
	})
	if err != nil {
		return err
	}

	router := api.NewRouter(client, renderer, api.Options{
		Prefix:          cfg.Server.Prefix,
		SiriusPublicURL: publicURL,
		WebDir:          cfg.Server.WebDir,
		InsecureCookies: cfg.Server.InsecureCookies,
		Logger:          logger,
		Registry:        reg,
		MetricsPath:     cfg.Metrics.Path,
	})

	srv := &http.Server{
		Addr:              cfg.Server.GetServerAddr(),
		Handler:           telemetry.Handler(router, cfg.Tracing.ServiceName),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	return run(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// run serves until ctx is cancelled, then drains in-flight requests for up to
// timeout.
func run(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", srv.Addr, "version", version.String())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
