package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/app/service"
	"bscscan_node/internal/infrastructure/restapi"
	"bscscan_node/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(root *rootOptions) *cobra.Command {
	var listenPort string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(root)
			if err != nil {
				return err
			}
			defer a.close()
			if listenPort != "" {
				a.cfg.Server.Port = listenPort
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		},
	}

	cmd.Flags().StringVar(&listenPort, "port", "", "Override the configured listen port")
	return cmd
}

func serve(ctx context.Context, a *app) error {
	log := a.log.Named("Server")

	var actions port.ActionService = a.actionService()
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		actions = service.NewInstrumentedActionService(actions, a.registry, a.networks, metrics.MustRegisterMetrics())
		metricsPath = a.cfg.Metrics.Path
	}

	if a.cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := restapi.NewActionHandler(actions, a.registry, a.networks, a.log)
	router := restapi.SetupRouter(handler, restapi.RouterOptions{
		Limiter:     rate.NewLimiter(rate.Limit(a.cfg.RateLimit.RequestsPerSecond), a.cfg.RateLimit.Burst),
		MetricsPath: metricsPath,
		Logger:      a.log,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", a.cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.cfg.Server.IdleTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Starting HTTP server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}
