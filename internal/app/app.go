package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/handlers"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/routes"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	store := repositories.NewStore()
	if err := repositories.Seed(store); err != nil {
		logger.Fatal("Failed to seed store", "error", err)
	}
	logger.Info("In-memory store seeded")

	ginRouter := SetupRouter(cfg, store)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires services, handlers and middleware into a ready engine.
// Tests call it directly with their own store.
func SetupRouter(cfg *config.Config, store *repositories.Store) *gin.Engine {
	serviceContainer := initializeServices(cfg, store)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, store *repositories.Store) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailService = &MockEmailProvider{}
		logger.Warn("SMTP not configured, using mock email provider")
	}

	return services.NewServiceContainer(store, emailService)
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(base, serviceContainer.AuthService),
		UserHandler:    handlers.NewUserHandler(base, serviceContainer.UserService),
		MentorHandler:  handlers.NewMentorHandler(base, serviceContainer.MentorService),
		SkillHandler:   handlers.NewSkillHandler(base, serviceContainer.SkillService),
		ReviewHandler:  handlers.NewReviewHandler(base, serviceContainer.ReviewService),
		BookingHandler: handlers.NewBookingHandler(base, serviceContainer.BookingService),
		MessageHandler: handlers.NewMessageHandler(base, serviceContainer.MessageService),
		HealthHandler:  handlers.NewHealthHandler(),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	return ginRouter
}
