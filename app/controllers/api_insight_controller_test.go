package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/braincapital/braincap/app/models"
	"github.com/braincapital/braincap/app/repository"
	"github.com/braincapital/braincap/internal/pkg/insights"
)

func setupInsightApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&models.Country{},
		&models.Pillar{},
		&models.Dimension{},
		&models.Indicator{},
		&models.Insight{},
	))
	require.NoError(t, db.Create(&models.Country{Code: "USA", Name: "United States"}).Error)

	repos := repository.NewRepositories(db)
	svc := insights.NewService(repos, insights.NewRuleBasedGenerator("rule-based-v1"), 24*time.Hour)
	ct := NewInsightAPIController(svc)

	app := fiber.New()
	app.Post("/insights/generate", ct.HandleGenerateInsight)
	app.Get("/insights/:id", ct.HandleGetInsight)
	app.Post("/insights/:id/feedback", ct.HandleInsightFeedback)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (map[string]any, int) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded, resp.StatusCode
}

func TestHandleGenerateInsightStatusCodes(t *testing.T) {
	app := setupInsightApp(t)

	body := map[string]any{"insight_type": "comparative"}

	first, status := postJSON(t, app, "/insights/generate", body)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.NotEmpty(t, first["insight_text"])

	// The second identical request is served from the cache
	second, status := postJSON(t, app, "/insights/generate", body)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, first["id"], second["id"])
}

func TestHandleGenerateInsightRequiresType(t *testing.T) {
	app := setupInsightApp(t)

	decoded, status := postJSON(t, app, "/insights/generate", map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "bad_request", decoded["error"])
}

func TestHandleGetInsightNotFound(t *testing.T) {
	app := setupInsightApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/insights/9999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleInsightFeedback(t *testing.T) {
	app := setupInsightApp(t)

	created, status := postJSON(t, app, "/insights/generate", map[string]any{"insight_type": "generic"})
	require.Equal(t, fiber.StatusCreated, status)
	id := int(created["id"].(float64))

	rated, status := postJSON(t, app, fmt.Sprintf("/insights/%d/feedback", id), map[string]any{"rating": 4})
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 4, rated["user_feedback"])

	// Out-of-range ratings are rejected
	_, status = postJSON(t, app, fmt.Sprintf("/insights/%d/feedback", id), map[string]any{"rating": 6})
	assert.Equal(t, fiber.StatusBadRequest, status)

	_, status = postJSON(t, app, "/insights/9999/feedback", map[string]any{"rating": 4})
	assert.Equal(t, fiber.StatusNotFound, status)
}
