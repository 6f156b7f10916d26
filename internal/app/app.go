package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recruitflow_backend/internal/auth"
	"recruitflow_backend/internal/config"
	"recruitflow_backend/internal/database"
	"recruitflow_backend/internal/email"
	"recruitflow_backend/internal/handlers"
	"recruitflow_backend/internal/logger"
	"recruitflow_backend/internal/middleware"
	"recruitflow_backend/internal/repositories"
	"recruitflow_backend/internal/routes"
	"recruitflow_backend/internal/services"
	"recruitflow_backend/internal/validator"
	"recruitflow_backend/internal/workers"
	"recruitflow_backend/pkg/apperrors"
)

// Run loads configuration, connects the database, migrates the schema and
// serves until the process is killed.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)
	apperrors.Init(cfg.Server.Env == "development")

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories depend on.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}
	logger.Info("schema migrated")

	workers.NewDeadlineWorker(gormDB).Start(context.Background())

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Split from Run so the integration tests can mount the full surface on an
// httptest server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	emailProvider := newEmailProvider(cfg)

	hrRepo := repositories.NewHRRepository()
	seekerRepo := repositories.NewJobSeekerRepository()
	jobRepo := repositories.NewJobOpeningRepository()
	appRepo := repositories.NewJobApplicationRepository()

	authService := services.NewAuthService(hrRepo, seekerRepo, tokens, emailProvider, cfg)
	jobService := services.NewJobService(jobRepo, hrRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, seekerRepo)
	hrService := services.NewHRService(hrRepo, jobRepo)
	statsService := services.NewStatsService(hrRepo, seekerRepo, jobRepo, appRepo)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, authService, statsService, cfg),
		HRHandler:          handlers.NewHRHandler(base, authService, hrService),
		JobHandler:         handlers.NewJobHandler(base, jobService),
		ApplicationHandler: handlers.NewApplicationHandler(base, applicationService),
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg))
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

// newEmailProvider picks SMTP when configured and falls back to logging the
// URLs, which is what development runs want anyway.
func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, email delivery is log-only")
		return email.NewLogProvider()
	}

	return email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
}
