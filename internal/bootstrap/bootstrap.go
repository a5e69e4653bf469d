package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/hrmslite/backend/internal/app/controllers"
	appMigrations "github.com/hrmslite/backend/internal/app/migrations"
	appRepos "github.com/hrmslite/backend/internal/app/repositories"
	appRoutes "github.com/hrmslite/backend/internal/app/routes"
	appServices "github.com/hrmslite/backend/internal/app/services"
	"github.com/hrmslite/backend/internal/config"
	"github.com/hrmslite/backend/internal/db"
	appMetrics "github.com/hrmslite/backend/internal/metrics"
	appMiddleware "github.com/hrmslite/backend/internal/middleware"
	"github.com/hrmslite/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	EmployeeService      appServices.EmployeeService
	AttendanceService    appServices.AttendanceService
	DashboardService     appServices.DashboardService
	EmployeeController   *appControllers.EmployeeController
	AttendanceController *appControllers.AttendanceController
	DashboardController  *appControllers.DashboardController
	Repos                *appRepos.Repositories
	Metrics              *appMetrics.Metrics
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready.")
	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Metrics = appMetrics.NewMetrics()
	deps.Repos = appRepos.NewRepositories(dbPool, deps.Metrics)

	deps.EmployeeService = appServices.NewEmployeeService(deps.Repos.Employee)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.Attendance, deps.Repos.Employee)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.Dashboard)

	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.Metrics(deps.Metrics))

	appRoutes.SetupRouter(router,
		deps.EmployeeController,
		deps.AttendanceController,
		deps.DashboardController,
		dbPool,
	)
	appRoutes.SetupSwagger(router)
	appRoutes.SetupMetrics(router, deps.Metrics)

	return router
}
