package routes

import (
	"shopapi/events"
	"shopapi/handlers"
	"shopapi/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/sirupsen/logrus"
)

// EmployeeRole is the capability required for every write endpoint.
const EmployeeRole = "employee"

// Handlers carries everything SetupRoutes wires in. Feed and Uploads
// are optional; the v1 surface works without them.
type Handlers struct {
	Categories *handlers.CategoryHandler
	Products   *handlers.ProductHandler
	Uploads    *handlers.UploadHandler
	Feed       *events.Hub
	Log        *logrus.Logger
}

func SetupRoutes(app *fiber.App, h Handlers) {
	employee := middleware.RequireRole(EmployeeRole, h.Log)

	// Catalog change feed
	if h.Feed != nil {
		app.Get("/ws", adaptor.HTTPHandlerFunc(h.Feed.Handler))
	}

	// Image upload route
	if h.Uploads != nil {
		app.Post("/upload", employee, h.Uploads.Image)
	}

	v1 := app.Group("/v1")

	// Category routes
	categories := v1.Group("/Categories")
	categories.Get("/", h.Categories.GetAll)
	categories.Get("/:id", h.Categories.GetByID)
	categories.Post("/", employee, h.Categories.Create)
	categories.Put("/:id", employee, h.Categories.Update)
	categories.Delete("/:id", employee, h.Categories.Delete)

	// Product routes; the category listing registers before the id
	// lookup so /categories/:id does not match as an id.
	products := v1.Group("/products")
	products.Get("/", h.Products.GetAll)
	products.Get("/categories/:id", h.Products.GetByCategory)
	products.Get("/:id", h.Products.GetByID)
	products.Post("/", employee, h.Products.Create)
}
