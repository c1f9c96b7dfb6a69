package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/polaris_reporting/internal/core/ports/repositories"
	"github.com/SscSPs/polaris_reporting/internal/core/services"
	"github.com/SscSPs/polaris_reporting/internal/handlers"
	"github.com/SscSPs/polaris_reporting/internal/middleware"
	"github.com/SscSPs/polaris_reporting/internal/platform/config"
	"github.com/SscSPs/polaris_reporting/internal/repositories/database/pgsql"
	"github.com/SscSPs/polaris_reporting/internal/repositories/memory"
	"github.com/SscSPs/polaris_reporting/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Polaris Reporting API
// @version 1.0
// @description Trial balance classification, financial totals, zakat and cash flow reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := memory.NewRepositoryProvider()
	var health handlers.HealthCheck

	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer dbPool.Close()
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		repos = pgsql.NewRepositoryProvider(dbPool)
		health = dbPool.Ping
	} else {
		logger.Warn("No database configured, pipeline steps are kept in memory")
	}

	if err := run(cfg, repos, health, logger); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, repos repositories.RepositoryProvider, health handlers.HealthCheck, logger *slog.Logger) error {
	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		return err
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, health)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}
