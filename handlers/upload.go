package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	dir string
	log *logrus.Logger
}

func NewUploadHandler(dir string, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{dir: dir, log: log}
}

// Image - POST /upload (employee only)
//
// Stores the uploaded file under a unique name and returns the path
// to put in a category or product image field.
func (h *UploadHandler) Image(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get uploaded file",
		})
	}

	// Generate unique filename
	ext := filepath.Ext(file.Filename)
	filename := uuid.New().String() + ext

	if err := c.SaveFile(file, filepath.Join(h.dir, filename)); err != nil {
		h.log.Errorf("Failed to save uploaded file %q: %v", filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save file",
		})
	}

	// Return the file path that can be stored in the database
	return c.JSON(fiber.Map{
		"filename": filename,
		"path":     "/uploads/" + filename,
	})
}
