package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/locvowork/presentation_gateway/internal/config"
	"github.com/locvowork/presentation_gateway/internal/database"
	"github.com/locvowork/presentation_gateway/internal/handler"
	"github.com/locvowork/presentation_gateway/internal/logger"
	"github.com/locvowork/presentation_gateway/internal/service"
)

type App struct {
	Echo *echo.Echo
	DB   *sql.DB
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// The database is optional; charts can still be built from request
	// payloads when no DB is configured.
	if config.DefaultEnvConfig.DB_HOST != "" {
		dbConfig := database.Config{
			Host:            config.DefaultEnvConfig.DB_HOST,
			Port:            config.DefaultEnvConfig.DB_PORT,
			User:            config.DefaultEnvConfig.DB_USER,
			Password:        config.DefaultEnvConfig.DB_PASSWORD,
			DBName:          config.DefaultEnvConfig.DB_NAME,
			SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
			MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
			MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
			ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
		}

		db, err := database.NewPostgresDB(ctx, dbConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		a.DB = db
	} else {
		logger.InfoLog(ctx, "DB_HOST not set, starting without a database")
	}

	// Initialize dependencies
	presSvc := service.NewPresentationService(a.DB)
	presHandler := handler.NewPresentationHandler(presSvc)

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(presHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(presHandler *handler.PresentationHandler) {
	a.Echo.POST("/presentations", presHandler.BuildHandler)
	a.Echo.POST("/presentations/from-query", presHandler.BuildFromQueryHandler)
	a.Echo.GET("/healthz", presHandler.HealthHandler)
}

func (a *App) Run() error {
	return a.Echo.Start(":" + config.DefaultEnvConfig.PORT)
}

func (a *App) Shutdown(ctx context.Context) error {
	if a.DB != nil {
		a.DB.Close()
	}
	return a.Echo.Shutdown(ctx)
}
