package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/clients/yahoo"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	shutdownTimeout   = 10 * time.Second
	flushTimeout      = 30 * time.Second
	limiterCleanupGap = time.Minute
	priceProviderName = "yahoo_chart"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting fintrack", "env", cfg.Server.Environment, "db_driver", cfg.Database.Driver)

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	gateway := repositories.NewPersistenceGateway(db.DB)
	ledgerLogger := services.NewLedgerLogger(logger)
	metrics := services.NewPrometheusMetrics(nil)

	txLog := services.NewTransactionLogService(gateway, ledgerLogger, metrics)
	budget := services.NewBudgetLedgerService(gateway, txLog, ledgerLogger, metrics)
	holdings := services.NewHoldingsLedgerService(gateway, ledgerLogger, metrics)

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Forecast.BreakerMaxFailures,
		ResetTimeout:    cfg.Forecast.BreakerResetTimeout,
		HalfOpenMaxSucc: cfg.Forecast.BreakerHalfOpenMaxSucc,
	}, func(from, to models.CircuitBreakerState) {
		ledgerLogger.LogCircuitBreakerStateChange(context.Background(), priceProviderName, from.String(), to.String())
		metrics.RecordGauge(services.MetricCircuitBreakerState, float64(to), map[string]string{"service": priceProviderName})
	})

	provider := yahoo.NewClient(yahoo.Config{
		BaseURL:   cfg.Provider.BaseURL,
		Range:     cfg.Forecast.HistoryRange,
		Timeout:   cfg.Provider.HTTPTimeout,
		UserAgent: cfg.Provider.UserAgent,
	}, logger)

	forecaster, err := services.NewForecastingService(services.ForecastConfig{
		Horizon:         cfg.Forecast.Horizon,
		Period:          cfg.Forecast.Period,
		ProviderTimeout: cfg.Forecast.ProviderTimeout,
	}, provider, breaker, ledgerLogger, metrics)
	if err != nil {
		return err
	}

	if cfg.Persistence.RetryEnabled {
		retryJob := services.NewPersistenceRetryJob(map[string]services.PendingFlusherInterface{
			"transactions": txLog,
			"holdings":     holdings,
		}, flushTimeout, logger)
		if err := retryJob.Start(cfg.Persistence.RetrySchedule); err != nil {
			return err
		}
		defer retryJob.Stop()
	}

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	go limiter.RunCleanup(limiterCleanupGap, stopCleanup)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.RequestMetrics())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderContentType, middleware.OwnerIDHeader, middleware.TraceIDHeader},
	}))
	e.Use(limiter.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	router := &handlers.Router{
		Budget:       handlers.NewBudgetHandler(budget, txLog),
		Transactions: handlers.NewTransactionHandler(txLog, budget),
		Holdings:     handlers.NewHoldingsHandler(holdings),
		Forecast:     handlers.NewForecastHandler(forecaster),
		Health:       handlers.NewHealthCheckHandler(gateway),
	}
	router.Register(e, middleware.RequireOwner())

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// last attempt to store entries still held in memory
	for name, flusher := range map[string]services.PendingFlusherInterface{"transactions": txLog, "holdings": holdings} {
		for _, owner := range flusher.PendingOwners() {
			if _, err := flusher.Flush(ctx, owner); err != nil {
				logger.Warn("pending entries lost on shutdown", "log", name, "owner_id", owner, "error", err)
			}
		}
	}

	logger.Info("server stopped")
	return nil
}
