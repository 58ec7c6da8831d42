package routes

import (
	"github.com/gofiber/fiber/v2"

	"myfridge-backend/internal/api/handlers"
	"myfridge-backend/internal/middleware"
	"myfridge-backend/pkg/jwt"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ProductHandler      handlers.ProductHandler
	StorageHandler      handlers.StorageHandler
	ScanHandler         handlers.ScanHandler
	RecipeHandler       handlers.RecipeHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Products()
	c.StoragePlaces()
	c.AI()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetMe)
		user.Patch("/push-token", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePushToken)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))
	{
		products.Get("", c.ProductHandler.GetProducts)
		products.Post("", c.ProductHandler.CreateProduct)
		products.Post("/batch", c.ProductHandler.CreateProductsBatch)
		products.Get("/:id", c.ProductHandler.GetProductByID)
		products.Patch("/:id", c.ProductHandler.UpdateProduct)
		products.Patch("/:id/favorite", c.ProductHandler.UpdateFavorite)
		products.Delete("/:id", c.ProductHandler.DeleteProduct)
	}
}

func (c *Config) StoragePlaces() {
	storage := c.App.Group("/api/v1/storage-places", c.Middleware.AuthMiddleware(c.JWTService))
	{
		storage.Get("", c.StorageHandler.GetStoragePlaces)
		storage.Post("", c.StorageHandler.CreateStoragePlace)
		storage.Delete("/:id", c.StorageHandler.DeleteStoragePlace)
	}
}

func (c *Config) AI() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	c.App.Post("/api/v1/scan/product", auth, c.ScanHandler.ScanProduct)
	c.App.Post("/api/v1/recipes/generate", auth, c.RecipeHandler.GenerateRecipes)
}

// Notifications has no auth middleware; the handler checks the cron key.
func (c *Config) Notifications() {
	c.App.Post("/api/v1/notifications/send-daily-reminders", c.NotificationHandler.SendDailyReminders)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
