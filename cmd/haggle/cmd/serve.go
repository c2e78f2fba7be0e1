package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/haggle/internal/api/handlers"
	mw "github.com/donaldgifford/haggle/internal/api/middleware"
	"github.com/donaldgifford/haggle/internal/config"
	"github.com/donaldgifford/haggle/internal/engine"
	"github.com/donaldgifford/haggle/internal/telemetry"
	"github.com/donaldgifford/haggle/internal/web"
	"github.com/donaldgifford/haggle/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server, web form and scheduler",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(tctx); err != nil {
			log.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	sched, err := engine.NewScheduler(a.engine, a.store, a.provider.Cache(), cfg.Schedule, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	e := newServer(cfg, a, sched, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Error("server error", "error", err)
		}
	}

	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(sctx); err != nil {
		log.Warn("server shutdown failed", "error", err)
	}
	<-sched.Stop().Done()
	if err := a.engine.Wait(sctx); err != nil {
		log.Warn("pending notifications abandoned", "error", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the echo server with the API, web form and probe routes.
func newServer(cfg *config.Config, a *app, runner handlers.JobRunner, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(a.store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("haggle API", Version))
	handlers.RegisterAnalyzeRoutes(api, handlers.NewAnalyzeHandler(a.engine, a.engine))
	handlers.RegisterOutcomeRoutes(api, handlers.NewOutcomesHandler(a.engine, a.store))
	handlers.RegisterSellerRoutes(api, handlers.NewSellersHandler(a.store))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(a.store, runner))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(a.limiter))

	web.NewHandler(a.engine, web.WithLogger(log)).Register(e)

	return e
}
