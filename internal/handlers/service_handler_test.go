package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"homeservices-backend/internal/config"
	"homeservices-backend/internal/database"
	"homeservices-backend/internal/middleware"
	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/translate"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type nopStore struct{}

func (nopStore) DeleteFile(string) error { return nil }

// testApp wires a fiber app with the service routes over an in-memory stack.
func testApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gdb))
	require.NoError(t, database.SeedLanguages(gdb))
	db := database.New(gdb, 5*time.Second)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	registry, err := services.NewLanguageRegistry(context.Background(), repository.NewLanguageRepository(db))
	require.NoError(t, err)

	repo := repository.NewReplicatedRepository[models.Service](db, "slug")
	svc := services.NewServiceService(
		repo,
		services.NewReplicator(repo, registry, translate.Static{}, log, "service"),
		nopStore{}, log,
	)

	authCfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		CookieName:    "admin_token",
		AdminEmail:    "admin@example.com",
		AdminPassword: "s3cret-pass",
	}
	authSvc := services.NewAuthService(repository.NewAdminRepository(db), nil, authCfg, log)
	require.NoError(t, authSvc.SeedAdmin(context.Background()))

	token, _, err := authSvc.Login(context.Background(), "admin@example.com", "s3cret-pass")
	require.NoError(t, err)

	handler := NewServiceHandler(svc, log)
	requireAuth := middleware.RequireAuth(authSvc, authCfg.CookieName)
	optionalAuth := middleware.OptionalAuth(authSvc, authCfg.CookieName)

	app := fiber.New()
	app.Get("/api/v1/services", optionalAuth, handler.List)
	app.Get("/api/v1/services/:slug", handler.Get)
	app.Post("/api/v1/services", requireAuth, handler.Create)
	app.Post("/api/v1/services/reorder", requireAuth, handler.Reorder)
	app.Put("/api/v1/services/:slug", requireAuth, handler.Update)
	app.Delete("/api/v1/services/:slug", requireAuth, handler.Delete)

	return app, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestServiceEndpoints(t *testing.T) {
	app, token := testApp(t)

	t.Run("create requires auth", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/services", "", map[string]any{"name": "Deep Cleaning"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, false, body["success"])
	})

	t.Run("create replicates across languages", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/services", token, map[string]any{
			"name":  "Deep Cleaning",
			"title": "Spotless homes",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, body["success"])

		rows, ok := body["services"].([]any)
		require.True(t, ok)
		assert.Len(t, rows, 7)

		first := rows[0].(map[string]any)
		assert.Equal(t, "deep-cleaning", first["slug"])
		assert.Equal(t, true, first["isActive"])
	})

	t.Run("public list returns one language with pagination", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/services?lang=ar", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		rows := body["services"].([]any)
		require.Len(t, rows, 1)
		pagination := body["pagination"].(map[string]any)
		assert.Equal(t, float64(1), pagination["total"])
	})

	t.Run("public list clamps degenerate paging values", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/services?lang=en&limit=0&page=0", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		pagination := body["pagination"].(map[string]any)
		assert.Equal(t, float64(1), pagination["page"])
		assert.Equal(t, float64(20), pagination["limit"])
		assert.Equal(t, float64(1), pagination["totalPages"])
	})

	t.Run("allLangs without auth is rejected", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/services?allLangs=true", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("allLangs with auth returns grouped translations", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/services?allLangs=true", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		grouped := body["services"].([]any)
		require.Len(t, grouped, 1)
		item := grouped[0].(map[string]any)
		assert.Equal(t, "deep-cleaning", item["key"])
		translations := item["translations"].(map[string]any)
		assert.Len(t, translations, 7)
	})

	t.Run("get by slug", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/services/deep-cleaning?lang=fr", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		row := body["service"].(map[string]any)
		assert.Equal(t, "Deep Cleaning", row["name"], "untranslated language falls back to source text")
	})

	t.Run("404 on unknown slug", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/services/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("reorder", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/services/reorder", token, map[string]any{"key": "deep-cleaning", "order": 3})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		_, body := doJSON(t, app, http.MethodGet, "/api/v1/services/deep-cleaning", "", nil)
		row := body["service"].(map[string]any)
		assert.Equal(t, float64(3), row["order"])
	})

	t.Run("delete removes every language row", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, "/api/v1/services/deep-cleaning", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/services/deep-cleaning", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
