package app

import (
	"errors"
	"fmt"

	"gameconnect_backend/database"
	"gameconnect_backend/internal/auth"
	"gameconnect_backend/internal/config"
	"gameconnect_backend/internal/handlers"
	"gameconnect_backend/internal/logger"
	"gameconnect_backend/internal/middleware"
	"gameconnect_backend/internal/models"
	"gameconnect_backend/internal/repositories"
	"gameconnect_backend/internal/routes"
	"gameconnect_backend/internal/services"
	"gameconnect_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func Run() {
	// .env опционален: в продакшене переменные приходят из окружения
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
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
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := SeedOwner(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed platform owner", "error", err)
	}
	if err := ValidateSingleOwner(gormDB); err != nil {
		logger.Fatal("Owner invariant violated", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, cfg)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	adminRepo := repositories.NewAdminRepository()
	followRepo := repositories.NewFollowRepository()
	profileViewRepo := repositories.NewProfileViewRepository()
	listingRepo := repositories.NewListingRepository()
	historyRepo := repositories.NewSearchHistoryRepository()

	authService := services.NewAuthService(userRepo, adminRepo, cfg)
	userService := services.NewUserService(userRepo, followRepo)
	followService := services.NewFollowService(followRepo, userRepo)
	playerService := services.NewPlayerService(userRepo, followRepo, profileViewRepo, listingRepo, historyRepo)
	listingService := services.NewListingService(listingRepo)
	adminService := services.NewAdminService(adminRepo, userRepo, followRepo, profileViewRepo, listingRepo, historyRepo)

	return &services.ServiceContainer{
		AuthService:    authService,
		UserService:    userService,
		FollowService:  followService,
		PlayerService:  playerService,
		ListingService: listingService,
		AdminService:   adminService,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, container.AuthService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, container.UserService),
		PlayerHandler:  handlers.NewPlayerHandler(baseHandler, container.PlayerService, container.FollowService),
		PublicHandler:  handlers.NewPublicHandler(baseHandler, container.ListingService),
		ListingHandler: handlers.NewListingHandler(baseHandler, container.ListingService),
		OwnerHandler:   handlers.NewOwnerHandler(baseHandler, container.AdminService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// SeedOwner создает владельца платформы из конфига, если его еще нет.
// Владелец - это обычный User с поднятым флагом IsOwner.
func SeedOwner(db *gorm.DB, cfg *config.Config) error {
	username := cfg.Bootstrap.OwnerUsername
	password := cfg.Bootstrap.OwnerPassword

	if username == "" || password == "" {
		logger.Warn("Owner bootstrap credentials are not set. Skipping owner seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var owner models.User
	result := tx.Where("is_owner = ?", true).First(&owner)
	if result.Error == nil {
		logger.Info("Platform owner already exists. Skipping creation.", "username", owner.Username)
		tx.Rollback()
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for platform owner: %w", result.Error)
	}

	logger.Warn("No platform owner found. Creating owner account...", "username", username)

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}

	newOwner := &models.User{
		Username:     username,
		Email:        cfg.Bootstrap.OwnerEmail,
		PasswordHash: hashedPassword,
		Name:         "Platform Owner",
		IsActive:     true,
		IsOwner:      true,
	}
	if err := tx.Create(newOwner).Error; err != nil {
		return fmt.Errorf("failed to create platform owner: %w", err)
	}

	logger.Info("Successfully created platform owner", "username", username)
	return tx.Commit().Error
}

// ValidateSingleOwner гарантирует инвариант единственного владельца.
// Несколько владельцев в базе - ошибка конфигурации, сервер не стартует.
func ValidateSingleOwner(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("is_owner = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count owners: %w", err)
	}
	if count > 1 {
		return fmt.Errorf("expected at most one platform owner, found %d", count)
	}
	return nil
}
