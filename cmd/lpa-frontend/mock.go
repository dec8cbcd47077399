package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/gotrs-io/lpa-frontend/internal/config"
	"github.com/gotrs-io/lpa-frontend/internal/mockserver"
	"github.com/gotrs-io/lpa-frontend/internal/telemetry"
)

var mockPort int

var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Run the stub Sirius server used by the browser tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Mock.Port = mockPort
		}
		return serveMock(ctx, cfg)
	},
}

func init() {
	mockServerCmd.Flags().IntVar(&mockPort, "port", 0, "Port to listen on (overrides mock.port)")
}

// newMockHandler builds the stub server with the mappings from dir as its
// reset baseline, plus a /metrics endpoint for the match counters.
func newMockHandler(dir string, logger *slog.Logger) (http.Handler, int, error) {
	store := mockserver.NewStore()
	if dir != "" {
		mappings, err := mockserver.LoadDir(dir)
		if err != nil {
			return nil, 0, fmt.Errorf("loading mappings: %w", err)
		}
		store.SetBaseline(mappings)
	}

	reg := prometheus.NewRegistry()
	server := mockserver.New(store, logger, reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/", server.Handler())

	return mux, len(store.List()), nil
}

func serveMock(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(gin.ReleaseMode)

	logger := telemetry.NewLogger(os.Stdout, "mock-server", cfg.Logging.Format, cfg.Logging.Level)

	handler, loaded, err := newMockHandler(cfg.Mock.MappingsDir, logger)
	if err != nil {
		return err
	}
	logger.Info("mappings loaded", "dir", cfg.Mock.MappingsDir, "count", loaded)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Mock.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return run(ctx, srv, 5*time.Second, logger)
}
