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

type CategoryHandler struct {
	db       *gorm.DB
	validate *validator.Validate
	events   *events.Hub
	log      *logrus.Logger
}

func NewCategoryHandler(db *gorm.DB, hub *events.Hub, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		db:       db,
		validate: validator.New(),
		events:   hub,
		log:      log,
	}
}

// GetAll - GET /v1/Categories
func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	var categories []models.Category

	if err := h.db.Find(&categories).Error; err != nil {
		h.log.Errorf("Failed to get categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}

	return c.JSON(categories)
}

// GetByID - GET /v1/Categories/:id
//
// A missing row answers 200 with a null body rather than 404; clients
// of this endpoint already depend on that.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.Category

	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(nil)
		}
		h.log.Errorf("Failed to get category %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get category",
		})
	}

	return c.JSON(category)
}

// Create - POST /v1/Categories (employee only)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := h.validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	// The store assigns the id; every row starts at version 1.
	category.ID = 0
	category.Version = 1

	if err := h.db.Create(category).Error; err != nil {
		h.log.Errorf("Failed to create category %q: %v", category.Name, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"Message": "could not create category",
		})
	}

	h.events.Publish("category.created", category)
	return c.JSON(category)
}

// Update - PUT /v1/Categories/:id (employee only)
//
// Full-replace semantics: the body must carry the id it was read with
// and the version it was read at. A version that no longer matches the
// stored row (or an id that no longer exists) is a concurrency
// conflict.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 0 || uint(id) != category.ID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "category not found",
		})
	}

	if err := h.validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrors(err),
		})
	}

	result := h.db.Model(&models.Category{}).
		Where("id = ? AND version = ?", category.ID, category.Version).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
			"image":       category.Image,
			"version":     category.Version + 1,
		})
	if result.Error != nil {
		h.log.Errorf("Failed to update category %d: %v", category.ID, result.Error)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"Message": "could not update category",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"Message": "record already updated",
		})
	}

	// Re-read so the response carries the stored timestamps.
	h.db.First(category, category.ID)

	h.events.Publish("category.updated", category)
	return c.JSON(category)
}

// Delete - DELETE /v1/Categories/:id (employee only)
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.Category

	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"Message": "category not found",
			})
		}
		h.log.Errorf("Failed to find category %s: %v", id, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"Message": "could not remove category",
		})
	}

	if err := h.db.Delete(&category).Error; err != nil {
		h.log.Errorf("Failed to delete category %d: %v", category.ID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"Message": "could not remove category",
		})
	}

	h.events.Publish("category.deleted", category)
	return c.JSON(fiber.Map{
		"Message": "category removed successfully",
	})
}
