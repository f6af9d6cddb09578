package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"cement-crm-go-be/database"
	"cement-crm-go-be/handlers"
)

func main() {
	// .env is optional; deployed environments set real env vars
	_ = godotenv.Load()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	})))

	// Connect to Database
	database.ConnectDB()

	// Initialize Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Public health endpoints for uptime monitoring (no auth)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "service": "cement-crm-backend"})
	})

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "status": "up"})
	})

	api.Post("/login", handlers.Login)
	api.Get("/me", handlers.Protected, handlers.Me)

	// Bulk import and reminders (before the generic :entity routes)
	api.Post("/import", handlers.Protected, handlers.Import)
	api.Get("/birthdays", handlers.Protected, handlers.UpcomingBirthdays)

	// User management (admin only)
	api.Get("/users", handlers.Protected, handlers.RequireAdmin, handlers.ListUsers)
	api.Post("/users", handlers.Protected, handlers.RequireAdmin, handlers.CreateUser)
	api.Put("/users/:id", handlers.Protected, handlers.RequireAdmin, handlers.UpdateUser)
	api.Delete("/users/:id", handlers.Protected, handlers.RequireAdmin, handlers.DeleteUser)

	// Generic entity CRUD; must stay after the specific routes
	api.Get("/:entity", handlers.Protected, handlers.ListEntities)
	api.Post("/:entity", handlers.Protected, handlers.CreateEntity)
	api.Put("/:entity/:id", handlers.Protected, handlers.UpdateEntity)
	api.Delete("/:entity/:id", handlers.Protected, handlers.DeleteEntity)

	// Start Server
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Fatal(app.Listen(":" + port))
}
