package handlers

import (
	"errors"

	"shopapi/events"
	"shopapi/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProductHandler struct {
	db       *gorm.DB
	validate *validator.Validate
	events   *events.Hub
	log      *logrus.Logger
}

func NewProductHandler(db *gorm.DB, hub *events.Hub, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		db:       db,
		validate: validator.New(),
		events:   hub,
		log:      log,
	}
}

// GetAll - GET /v1/products
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	products := []models.Product{}

	if err := h.db.Preload("Category").Find(&products).Error; err != nil {
		h.log.Errorf("Failed to get products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(products)
}

// GetByID - GET /v1/products/:id
//
// Same null-body policy as the category read: absence is a 200, not a
// 404.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product

	if err := h.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		h.log.Errorf("Failed to get product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product",
		})
	}

	return c.JSON(product)
}

// GetByCategory - GET /v1/products/categories/:id
func (h *ProductHandler) GetByCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	products := []models.Product{}

	if err := h.db.Preload("Category").Where("category_id = ?", id).Find(&products).Error; err != nil {
		h.log.Errorf("Failed to get products for category %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(products)
}

// Create - POST /v1/products (employee only)
//
// The referential check on category_id is the store's job: a missing
// category surfaces here as a persistence failure, not a pre-check.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	product.ID = 0
	product.Category = models.Category{}

	if err := h.db.Create(product).Error; err != nil {
		h.log.Errorf("Failed to create product %q: %v", product.Name, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"Message": "could not create product",
		})
	}

	h.events.Publish("product.created", product)
	return c.JSON(product)
}
