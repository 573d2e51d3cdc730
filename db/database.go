package db

import (
	"os"
	"path/filepath"

	"shopapi/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the sqlite database at dbPath and migrates the
// schema. The handle is returned to the caller so it can be injected
// into the handlers; there is no package-level connection and no
// state shared between requests beyond the store itself.
func Open(dbPath string) (*gorm.DB, error) {
	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto migrate the schema
	if err := database.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
	); err != nil {
		return nil, err
	}

	return database, nil
}
