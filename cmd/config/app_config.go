package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"myfridge-backend/internal/api/handlers"
	"myfridge-backend/internal/api/routes"
	"myfridge-backend/internal/middleware"
	"myfridge-backend/internal/utils"
	"myfridge-backend/internal/utils/mailing"
	"myfridge-backend/internal/utils/storage"
	"myfridge-backend/pkg/gemini"
	"myfridge-backend/pkg/jwt"
	"myfridge-backend/pkg/notification"
	"myfridge-backend/pkg/product"
	"myfridge-backend/pkg/recipe"
	"myfridge-backend/pkg/scan"
	"myfridge-backend/pkg/storageplace"
	"myfridge-backend/pkg/user"
)

func NewApp(db *gorm.DB, cfg *utils.Config) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	zapLogger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	// utils
	s3, err := storage.NewAwsS3(cfg)
	if err != nil {
		return nil, err
	}
	mailer := mailing.NewMailer(cfg)
	aiClient := gemini.NewClient(cfg, zapLogger)
	pushSender := notification.NewExpoSender(cfg)

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)
	storageRepository := storageplace.NewStorageRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg)
	storageService := storageplace.NewStorageService(storageRepository)
	userService := user.NewUserService(userRepository, storageService, jwtService)
	productService := product.NewProductService(productRepository, storageRepository)
	scanService := scan.NewScanService(aiClient, s3, zapLogger)
	recipeService := recipe.NewRecipeService(aiClient, zapLogger)
	notificationService := notification.NewNotificationService(productRepository, pushSender, mailer, zapLogger)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	storageHandler := handlers.NewStorageHandler(storageService, validator)
	scanHandler := handlers.NewScanHandler(scanService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, cfg)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ProductHandler:      productHandler,
		StorageHandler:      storageHandler,
		ScanHandler:         scanHandler,
		RecipeHandler:       recipeHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
