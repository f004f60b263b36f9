package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"comodatos-admin/internal/config"
	"comodatos-admin/internal/database"
	"comodatos-admin/internal/middleware"
	"comodatos-admin/internal/models"
	"comodatos-admin/internal/repositories"
	"comodatos-admin/internal/selector"
	"comodatos-admin/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const (
	sessionSweepInterval = time.Minute
	visitorSweepInterval = time.Minute
	gaugeInterval        = 15 * time.Second
	shutdownTimeout      = 10 * time.Second
)

// App is the assembled admin service
type App struct {
	Echo        *echo.Echo
	Store       *selector.Store
	RateLimiter *middleware.RateLimiter
	DB          *database.DB

	addr    string
	logger  *slog.Logger
	metrics services.MetricsRecorderInterface
}

// Build opens the audit database and wires the services behind the HTTP
// surface.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := database.Initialize(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)
	adminLogger := services.NewAdminLogger(logger)

	breaker := services.NewCircuitBreaker(
		services.CircuitBreakerConfigFromBackend(&cfg.Backend),
		func(from, to models.CircuitBreakerState) {
			adminLogger.LogCircuitBreakerStateChange(context.Background(), "backend", from.String(), to.String())
			metrics.RecordGauge("circuit_breaker_state", float64(to), map[string]string{"service": "backend"})
		},
	)
	backend := services.NewBackendClient(&cfg.Backend, breaker, metrics, logger)

	store := selector.NewStore(func(onSelect func(int64)) *selector.Selector {
		return selector.New(backend, logger, metrics, selector.Options{
			ShowSelected:    cfg.Selector.ShowSelected,
			PlaceholderLogo: cfg.Selector.PlaceholderLogo,
			NewClientRoute:  cfg.Selector.ClientCreateRoute,
			FetchTimeout:    cfg.Backend.Timeout,
			OnSelect:        onSelect,
		})
	}, cfg.Selector.SessionIdle, logger)

	audit := services.NewSelectionAuditService(
		repositories.NewSelectionEventRepository(db.DB),
		adminLogger,
		metrics,
	)
	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e := New(Dependencies{
		Config:      cfg,
		Logger:      logger,
		Registry:    registry,
		DB:          db,
		Backend:     backend,
		Store:       store,
		Listing:     services.NewComodatoListingService(backend, adminLogger, metrics),
		Exporter:    services.NewComodatoPDFExporter(metrics),
		Audit:       audit,
		AdminLogger: adminLogger,
		RateLimiter: rateLimiter,
	})

	return &App{
		Echo:        e,
		Store:       store,
		RateLimiter: rateLimiter,
		DB:          db,
		addr:        cfg.Addr(),
		logger:      logger,
		metrics:     metrics,
	}, nil
}

// Run serves HTTP and the background loops until ctx is done or one of them
// fails, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("starting server", "addr", a.addr)
		if err := a.Echo.Start(a.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return a.Store.Run(ctx, sessionSweepInterval)
	})

	g.Go(func() error {
		return a.RateLimiter.Cleanup(ctx, visitorSweepInterval)
	})

	g.Go(func() error {
		return a.reportSessions(ctx)
	})

	err := g.Wait()
	if closeErr := a.DB.Close(); closeErr != nil {
		a.logger.Error("failed to close database", "error", closeErr)
	}
	return err
}

func (a *App) reportSessions(ctx context.Context) error {
	ticker := time.NewTicker(gaugeInterval)
	defer ticker.Stop()

	for {
		a.metrics.RecordGauge("selector_sessions", float64(a.Store.Len()), nil)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
