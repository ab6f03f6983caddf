package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rewards-dashboard/internal/config"
	"rewards-dashboard/internal/database"
	"rewards-dashboard/internal/handlers"
	"rewards-dashboard/internal/logging"
	"rewards-dashboard/internal/middleware"
	"rewards-dashboard/internal/models"
	"rewards-dashboard/internal/repositories"
	"rewards-dashboard/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.NewLogger(os.Stdout, cfg.Server.LogLevel, cfg.Server.LogFormat)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := services.NewPrometheusMetrics(nil)
	clock := services.NewSystemClock(cfg.Filter.Location())

	breaker := services.NewCircuitBreaker(
		services.CircuitBreakerConfig{
			MaxFailures:     cfg.Feed.BreakerMaxFailures,
			ResetTimeout:    cfg.Feed.BreakerResetTimeout,
			HalfOpenMaxSucc: 1,
		},
		clock,
		func(oldState, newState models.CircuitBreakerState) {
			logger.Warn("transaction feed circuit breaker changed state",
				"from", oldState.String(),
				"to", newState.String(),
			)
			metrics.RecordGauge("circuit_breaker.state", float64(newState), map[string]string{"service": "transaction_feed"})
		},
	)

	snapshotRepo := repositories.NewFeedSnapshotRepository(db.DB)
	feed := services.NewTransactionFeedService(
		&cfg.Feed,
		snapshotRepo,
		breaker,
		metrics,
		clock,
		logger.With("component", "transaction_feed"),
	)
	processor := services.NewDateRangeProcessorWithWindow(clock, cfg.Filter.WindowMonths)
	filterStore := services.NewFilterStore(metrics, logger.With("component", "filter_store"))
	tableView := services.NewTableViewService()

	e := newServer(cfg, logger)
	registerRoutes(e,
		handlers.NewHealthCheckHandler(db.DB, snapshotRepo, feed),
		handlers.NewTransactionHandler(feed, processor, filterStore, tableView, metrics, logger),
		handlers.NewFilterHandler(filterStore, logger),
	)
	if cfg.IsDevelopment() {
		dev := handlers.NewDevHandler(snapshotRepo, services.NewDemoDataGenerator(clock, uint64(time.Now().UnixNano())), logger)
		e.POST("/api/v1/dev/demo-snapshot", dev.GenerateDemoSnapshot)
		logger.Info("development endpoints enabled")
	}

	go feed.StartRefreshing(ctx, cfg.Feed.RefreshInterval)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("server starting", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
}

func newServer(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit("64K"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			)
			return nil
		},
	}))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	return e
}

func registerRoutes(
	e *echo.Echo,
	health *handlers.HealthCheckHandler,
	transactions *handlers.TransactionHandler,
	filter *handlers.FilterHandler,
) {
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/transactions", transactions.ListTransactions)
	api.POST("/transactions/refresh", transactions.RefreshTransactions)
	api.GET("/filter", filter.GetFilter)
	api.POST("/filter/actions", filter.DispatchAction)
}
