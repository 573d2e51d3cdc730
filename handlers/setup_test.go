package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopapi/db"
	"shopapi/handlers"
	"shopapi/middleware"
	"shopapi/models"
	"shopapi/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestApp wires the full route surface against a fresh in-memory
// database. No event hub: handlers must work without one.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.Open(":memory:")
	require.NoError(t, err)

	log := quietLogger()
	app := fiber.New()
	routes.SetupRoutes(app, routes.Handlers{
		Categories: handlers.NewCategoryHandler(database, nil, log),
		Products:   handlers.NewProductHandler(database, nil, log),
		Log:        log,
	})
	return app, database
}

func doRequest(t *testing.T, app *fiber.App, method, path, body, roles string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if roles != "" {
		req.Header.Set(middleware.RoleHeader, roles)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return strings.TrimSpace(string(b))
}

func seedCategory(t *testing.T, database *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Version: 1}
	require.NoError(t, database.Create(&category).Error)
	return category
}

func seedProduct(t *testing.T, database *gorm.DB, name string, categoryID uint) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.NewFromInt(10),
		CategoryID:  categoryID,
	}
	require.NoError(t, database.Create(&product).Error)
	return product
}
