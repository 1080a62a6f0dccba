package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"expense-tracker/internal/cache"
	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/events"
	"expense-tracker/internal/handlers"
	"expense-tracker/internal/middleware"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type costPublisher interface {
	services.CostEventPublisherInterface
	Close() error
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})).With("service", cfg.Server.ServiceName)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	reportLocation, _ := cfg.Report.Location()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err, "driver", cfg.Database.Driver)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repositories.NewUserRepository(db.DB)
	costRepo := repositories.NewCostRepository(db.DB)
	requestLogRepo := repositories.NewRequestLogRepository(db.DB)

	var reportCache repositories.ReportCacheInterface = repositories.NewReportRepository(db.DB)
	var tier *cache.TieredReportCache
	if cfg.Report.MemoryTierEnabled {
		tier = cache.NewTieredReportCache(reportCache, cfg.Report.MemoryTierTTL)
		reportCache = tier
		logger.Info("In-memory report tier enabled", "ttl", cfg.Report.MemoryTierTTL.String())
	}

	metrics := services.NewPrometheusMetrics(nil)

	publisher := newPublisher(cfg, logger)
	defer publisher.Close()

	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig("amqp"), metrics, nil)

	reportService := services.NewReportService(userRepo, costRepo, reportCache, metrics, services.SystemClock{}, reportLocation)
	costService := services.NewCostService(userRepo, costRepo, publisher, breaker, metrics, services.SystemClock{})
	userService := services.NewUserService(userRepo, costRepo, metrics)
	requestLogService := services.NewRequestLogService(requestLogRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	go rateLimiter.Run(ctx, time.Minute)

	if tier != nil {
		hangup := make(chan os.Signal, 1)
		signal.Notify(hangup, syscall.SIGHUP)
		defer signal.Stop(hangup)
		go tier.FlushOn(ctx, hangup)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(requestLogService, cfg.Server.ServiceName, logger, "/health", "/metrics"))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(echomw.BodyLimit("64K"))
	e.Use(rateLimiter.Middleware())

	handlers.RegisterRoutes(e, handlers.Handlers{
		Health: handlers.NewHealthCheckHandler(db.DB, cfg.Server.Port),
		Report: handlers.NewReportHandler(reportService),
		Cost:   handlers.NewCostHandler(costService),
		User:   handlers.NewUserHandler(userService),
		Log:    handlers.NewLogHandler(requestLogService),
		About:  handlers.NewAboutHandler(cfg.TeamMembers),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           e,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	go func() {
		logger.Info("Starting expense tracker",
			"port", cfg.Server.Port,
			"env", cfg.Server.Environment,
			"driver", cfg.Database.Driver,
			"report_timezone", reportLocation.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err, "port", cfg.Server.Port)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped gracefully")
}

// newPublisher connects to the broker when AMQP_URL is set. A broker that is
// down at startup downgrades to the no-op publisher.
func newPublisher(cfg *config.Config, logger *slog.Logger) costPublisher {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL not set, cost events disabled")
		return events.NewNoopPublisher()
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue, logger)
	if err != nil {
		logger.Warn("Failed to connect to AMQP broker, cost events disabled", "error", err)
		return events.NewNoopPublisher()
	}
	return publisher
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
