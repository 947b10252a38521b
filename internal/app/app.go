package app

import (
	"fmt"

	"bcpartners_backend/database"
	"bcpartners_backend/internal/auth"
	"bcpartners_backend/internal/config"
	"bcpartners_backend/internal/email"
	"bcpartners_backend/internal/handlers"
	"bcpartners_backend/internal/logger"
	"bcpartners_backend/internal/middleware"
	"bcpartners_backend/internal/models"
	"bcpartners_backend/internal/repositories"
	"bcpartners_backend/internal/routes"
	"bcpartners_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the application: config, logging, database, seed, router.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Starting directory backend", "env", cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err := seedFirstOperator(db, cfg); err != nil {
		return fmt.Errorf("seed operator: %w", err)
	}

	router := SetupRouter(db, buildEmailProvider(cfg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Listening", "addr", addr)
	return router.Run(addr)
}

// SetupRouter assembles the gin engine with the full middleware chain.
// Tests call this directly with their own database handle and provider.
func SetupRouter(db *gorm.DB, emailProvider email.Provider) *gin.Engine {
	cfg := config.GetConfig()
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.DBMiddleware(db))

	svc := services.NewServiceContainer(emailProvider)
	h := handlers.NewAppHandlers(svc)
	routes.RegisterRoutes(r, h)

	return r
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, using mock email provider")
		return NewMockEmailProvider()
	}
	return email.NewSMTPProvider(cfg)
}

// seedFirstOperator creates the initial moderation account when the user
// table is empty. Without it there is no way to log in to a fresh install.
func seedFirstOperator(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := auth.ValidatePassword(cfg.FirstAdminPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	userRepo := repositories.NewUserRepository()
	user := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := userRepo.Create(db, user); err != nil {
		return err
	}

	logger.Info("Seeded first operator account", "email", cfg.FirstAdminEmail)
	return nil
}
