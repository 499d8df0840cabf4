package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/database"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/routes"
)

func Run() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := OpenDatabase(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := SeedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	corsHandler, err := NewCORSHandler(cfg, ginRouter)
	if err != nil {
		logger.Fatal("Invalid CORS configuration", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := http.ListenAndServe(address, corsHandler); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// NewCORSHandler wraps next with the configured origin allow-list so
// unlisted origins are rejected at the transport layer. An empty list is
// refused: rs/cors would fall back to allowing every origin.
func NewCORSHandler(cfg *config.Config, next http.Handler) (http.Handler, error) {
	if len(cfg.CORS.AllowedOrigins) == 0 {
		return nil, errors.New("cors.allowed_origins must list at least one origin")
	}

	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(next), nil
}

// OpenDatabase picks the driver from the DSN: postgres URLs go through the
// postgres driver, everything else is treated as a sqlite path.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// SetupRouter builds the gin engine with all middleware and routes. Tests
// call this directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.DBMiddleware(gormDB),
	)

	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}
