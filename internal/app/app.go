package app

import (
	"fmt"

	"tradelab_backend/internal/config"
	"tradelab_backend/internal/database"
	"tradelab_backend/internal/handlers"
	"tradelab_backend/internal/logger"
	"tradelab_backend/internal/middleware"
	"tradelab_backend/internal/routes"
	"tradelab_backend/internal/services"
	"tradelab_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	if cfg.Seed.Catalog {
		if err := database.SeedCatalog(gormDB); err != nil {
			// Каталог - часть контракта хранилища; без него не стартуем
			logger.Fatal("Failed to seed catalog", "error", err)
		}
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := services.NewServiceContainer(gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		ClientHandler:      handlers.NewClientHandler(baseHandler, sc.ClientService),
		CatalogHandler:     handlers.NewCatalogHandler(baseHandler, sc.CatalogService),
		BookingHandler:     handlers.NewBookingHandler(baseHandler, sc.BookingService),
		PaymentHandler:     handlers.NewPaymentHandler(baseHandler, sc.PaymentService),
		ContactHandler:     handlers.NewContactHandler(baseHandler, sc.ContactService),
		NewsletterHandler:  handlers.NewNewsletterHandler(baseHandler, sc.NewsletterService),
		PerformanceHandler: handlers.NewPerformanceHandler(baseHandler, sc.PerformanceService),
		ReportingHandler:   handlers.NewReportingHandler(baseHandler, sc.ReportingService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
