// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/sprintdeck/scrumcore/internal/adapters/http"
	"github.com/sprintdeck/scrumcore/internal/adapters/http/handlers"
	"github.com/sprintdeck/scrumcore/internal/adapters/http/middleware"

	"github.com/sprintdeck/scrumcore/internal/adapters/events"
	"github.com/sprintdeck/scrumcore/internal/adapters/storage/sqlite"
	"github.com/sprintdeck/scrumcore/internal/app"
	"github.com/sprintdeck/scrumcore/internal/platform/config"
	"github.com/sprintdeck/scrumcore/internal/platform/health"
	"github.com/sprintdeck/scrumcore/internal/platform/httpclient"
	"github.com/sprintdeck/scrumcore/internal/platform/logging"
	"github.com/sprintdeck/scrumcore/internal/platform/telemetry"
	"github.com/sprintdeck/scrumcore/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	db := do.MustInvoke[*sqlite.DB](injector)
	registry.Register(db)
	if cfg.Webhook.Enabled {
		registry.Register(do.MustInvoke[*httpclient.Client](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := db.Close(); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Storage.
	do.Provide(injector, func(_ do.Injector) (*sqlite.DB, error) {
		return sqlite.Open(cfg.DB.Path, cfg.DB.BusyTimeout)
	})

	do.Provide(injector, func(i do.Injector) (ports.TeamRepository, error) {
		return sqlite.NewTeamRepository(do.MustInvoke[*sqlite.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BacklogRepository, error) {
		return sqlite.NewBacklogRepository(do.MustInvoke[*sqlite.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SprintRepository, error) {
		return sqlite.NewSprintRepository(do.MustInvoke[*sqlite.DB](i)), nil
	})

	// Outbound event delivery.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Webhook.Client, "webhook-gateway", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventDispatcher, error) {
		if !cfg.Webhook.Enabled {
			return events.NewLogDispatcher(logger), nil
		}
		client := do.MustInvoke[*httpclient.Client](i)
		return events.NewWebhookDispatcher(client, cfg.Webhook.Endpoint, cfg.Webhook.Workers, logger), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.TeamService, error) {
		return app.NewTeamService(
			do.MustInvoke[ports.TeamRepository](i),
			do.MustInvoke[ports.EventDispatcher](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BacklogService, error) {
		return app.NewBacklogService(
			do.MustInvoke[ports.BacklogRepository](i),
			do.MustInvoke[ports.TeamRepository](i),
			do.MustInvoke[ports.EventDispatcher](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SprintService, error) {
		return app.NewSprintService(
			do.MustInvoke[ports.SprintRepository](i),
			do.MustInvoke[ports.BacklogRepository](i),
			do.MustInvoke[ports.TeamRepository](i),
			do.MustInvoke[ports.EventDispatcher](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Handlers.
	do.Provide(injector, func(i do.Injector) (*handlers.TeamHandler, error) {
		return handlers.NewTeamHandler(do.MustInvoke[ports.TeamService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BacklogHandler, error) {
		return handlers.NewBacklogHandler(do.MustInvoke[ports.BacklogService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SprintHandler, error) {
		return handlers.NewSprintHandler(do.MustInvoke[ports.SprintService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		teamH := do.MustInvoke[*handlers.TeamHandler](i)
		backlogH := do.MustInvoke[*handlers.BacklogHandler](i)
		sprintH := do.MustInvoke[*handlers.SprintHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(teamH, backlogH, sprintH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
