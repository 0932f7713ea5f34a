package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/amirhossein-jamali/calendar-units/internal/domain/port/persistence"
	calendarUseCase "github.com/amirhossein-jamali/calendar-units/internal/domain/usecase/calendar"

	calport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/calendar"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/api/routes"
	calendarAdapter "github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/calendar"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/calendar-units/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/calendar-units/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	loggerOpts := logger.Options{Level: cfg.Logger.Level, Format: cfg.Logger.Format}
	if cfg.Logger.Output != "" {
		loggerOpts.OutputPaths = []string{cfg.Logger.Output}
	}
	appLogger, err := logger.NewZapLogger(loggerOpts)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	if warnings := cfg.Warnings(); len(warnings) > 0 {
		appLogger.Warn("Potential issues in production configuration", map[string]any{
			"warnings": warnings,
		})
	}

	policy, err := calendarAdapter.ParseFieldPolicy(cfg.Calendar.FieldPolicy)
	if err != nil {
		appLogger.Error("Invalid calendar field policy", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	tp := timeProvider.NewRealTimeProvider()

	registry := prometheus.NewRegistry()
	if cfg.Server.MetricsEnabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	ctx := context.Background()

	// Calendar profile store
	var (
		calendarRepo persistence.CalendarRepository
		store        handler.Pinger
	)
	switch cfg.Calendar.Store {
	case config.StorePostgres:
		dbManager := database.NewManager(database.FromAppConfig(cfg.Database, cfg.Logger.Level), appLogger, tp, registry)
		db, err := dbManager.Connect(ctx)
		if err != nil {
			appLogger.Error("Failed to connect to database", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer dbManager.Close()

		if err := dbManager.Migrate(ctx); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		queryMetrics, err := database.NewMetricsCollector(registry, appLogger, tp, cfg.Database.SlowThreshold)
		if err != nil {
			appLogger.Error("Failed to register database metrics", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		calendarRepo = repository.NewCalendarRepository(db, appLogger, dbManager.ErrorMapper(), queryMetrics)
		store = dbManager
	default:
		calendarRepo = repository.NewMemoryCalendarRepository()
	}

	newCalendar := func(location *time.Location) calport.CalendarService {
		return calendarAdapter.NewGregorian(location, tp, policy)
	}

	calendarUseCaseImpl := calendarUseCase.NewCalendarUseCase(
		calendarRepo,
		newCalendar,
		tp,
		appLogger,
		calendarUseCase.Defaults{
			Name:     cfg.Calendar.DefaultCalendar,
			TimeZone: cfg.Calendar.DefaultTimeZone,
		},
	)

	if err := calendarUseCaseImpl.CreateDefaultCalendars(ctx); err != nil {
		appLogger.Error("Failed to create default calendars", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize Gin router
	router := gin.New()

	var httpMetrics *middleware.HTTPMetrics
	var metricsHandler http.Handler
	if cfg.Server.MetricsEnabled {
		httpMetrics, err = middleware.NewHTTPMetrics(registry)
		if err != nil {
			appLogger.Error("Failed to register HTTP metrics", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	routes.SetupMiddlewares(router, appLogger, tp, httpMetrics)
	routes.SetupRoutes(router, routes.Handlers{
		Calendar:   handler.NewCalendarHandler(calendarUseCaseImpl, appLogger),
		Arithmetic: handler.NewArithmeticHandler(calendarUseCaseImpl, tp, appLogger),
		Health:     handler.NewHealthHandler(store, appLogger),
		Metrics:    metricsHandler,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serve(server, appLogger, cfg)
}

// serve runs the server until SIGINT or SIGTERM, then shuts it down gracefully
func serve(server *http.Server, appLogger coreport.Logger, cfg *config.Config) {
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":  server.Addr,
			"env":   cfg.Environment,
			"store": cfg.Calendar.Store,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
