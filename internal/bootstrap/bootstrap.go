package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/schoolerp/student-service/docs" // generated swagger docs
	appControllers "github.com/schoolerp/student-service/internal/app/controllers"
	appMigrations "github.com/schoolerp/student-service/internal/app/migrations"
	appRepos "github.com/schoolerp/student-service/internal/app/repositories"
	appRoutes "github.com/schoolerp/student-service/internal/app/routes"
	appServices "github.com/schoolerp/student-service/internal/app/services"
	"github.com/schoolerp/student-service/internal/config"
	"github.com/schoolerp/student-service/internal/db"
	appMiddleware "github.com/schoolerp/student-service/internal/middleware"
	"github.com/schoolerp/student-service/internal/pkg/logger"
	"github.com/schoolerp/student-service/internal/pkg/objectstorage"
	"github.com/schoolerp/student-service/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services
	Storage  objectstorage.ObjectStorage

	StudentController      *appControllers.StudentController
	IdCardController       *appControllers.IdCardController
	MarksheetController    *appControllers.MarksheetController
	DocumentController     *appControllers.DocumentController
	FeeStructureController *appControllers.FeeStructureController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the lookup data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Missing lookup rows only break promotions, not startup
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes the object storage, repositories, services
// and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	storage, err := setupObjectStorage(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	deps.Storage = storage

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Services = appServices.NewServices(deps.Repos, database, storage)

	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.IdCardController = appControllers.NewIdCardController(deps.Services.IdCardService)
	deps.MarksheetController = appControllers.NewMarksheetController(deps.Services.MarksheetService)
	deps.DocumentController = appControllers.NewDocumentController(deps.Services.DocumentService)
	deps.FeeStructureController = appControllers.NewFeeStructureController(deps.Services.FeeStructureService)

	return deps, nil
}

func setupObjectStorage(cfg *config.Config, lgr zerolog.Logger) (objectstorage.ObjectStorage, error) {
	switch cfg.Storage.Provider {
	case "oss":
		lgr.Info().Str("bucket", cfg.Storage.Bucket).Msg("Using OSS object storage")
		return objectstorage.NewOSSStorage(
			cfg.Storage.Endpoint,
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			cfg.Storage.Bucket,
		)
	case "local":
		baseURL := cfg.Storage.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:" + cfg.Server.Port + "/files"
		}
		lgr.Info().Str("path", cfg.Storage.LocalPath).Msg("Using local object storage")
		return objectstorage.NewLocalStorage(cfg.Storage.LocalPath, baseURL)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.Correlation())

	// Swagger docs are generated with `swag init`
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.IdCardController,
		deps.MarksheetController,
		deps.DocumentController,
		deps.FeeStructureController,
	)

	return router
}
