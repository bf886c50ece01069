package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/retailbank/bank_backend/internal/core/services"
	"github.com/retailbank/bank_backend/internal/dto"
	"github.com/retailbank/bank_backend/internal/handlers"
	"github.com/retailbank/bank_backend/internal/middleware"
	"github.com/retailbank/bank_backend/internal/platform/config"
	"github.com/retailbank/bank_backend/internal/platform/rates"
	"github.com/retailbank/bank_backend/internal/platform/seed"
	"github.com/retailbank/bank_backend/internal/repositories/database/pgsql"
	"github.com/retailbank/bank_backend/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	if err := seed.Bootstrap(context.Background(), cfg, repos, logger); err != nil {
		logger.Error("Failed to bootstrap seed data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateClient := rates.NewClient(cfg.RateAPIBaseURL, cfg.RateAPIKey, cfg.RateAPITimeout)
	serviceContainer := services.NewServiceContainer(repos, rateClient)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if cfg.RateLimitPerMinute > 0 {
		rate := limiter.Rate{Period: time.Minute, Limit: int64(cfg.RateLimitPerMinute)}
		limiterInstance := limiter.New(memory.NewStore(), rate)
		r.Use(middleware.RateLimit(limiterInstance))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer migrationDB.Close()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied")
	}
	return nil
}
