package main

import (
	"os"

	"shopapi/config"
	"shopapi/db"
	"shopapi/events"
	"shopapi/handlers"
	"shopapi/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Initialize database
	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Infof("Database connected successfully at %s", cfg.DatabasePath)

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat(cfg.UploadDir); os.IsNotExist(err) {
		os.Mkdir(cfg.UploadDir, 0755)
	}

	// Catalog change feed
	hub := events.NewHub(log)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(recover.New())

	// Serve static files
	app.Static("/uploads", cfg.UploadDir)

	// Setup routes
	routes.SetupRoutes(app, routes.Handlers{
		Categories: handlers.NewCategoryHandler(database, hub, log),
		Products:   handlers.NewProductHandler(database, hub, log),
		Uploads:    handlers.NewUploadHandler(cfg.UploadDir, log),
		Feed:       hub,
		Log:        log,
	})

	// Start server
	log.Fatal(app.Listen(cfg.Port))
}
