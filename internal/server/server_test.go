package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/internal/config"
	"atelier/internal/models"
	"atelier/internal/repository"
	"atelier/internal/seed"
	"atelier/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Status{},
		&models.Project{},
		&models.Moodboard{},
		&models.Image{},
		&models.Lane{},
		&models.Card{},
	))
	require.NoError(t, seed.Statuses(db))

	return db
}

// newTestServer wires a Server over an in-memory database. Metrics are left
// out so tests don't fight over the global Prometheus registry.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret-key-for-handler-tests", Env: "test"}

	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	laneRepo := repository.NewLaneRepository(db)
	cardRepo := repository.NewCardRepository(db)
	moodboardRepo := repository.NewMoodboardRepository(db)
	imageRepo := repository.NewImageRepository(db)
	authz := service.NewAuthorizer(projectRepo, laneRepo, cardRepo, moodboardRepo, imageRepo)

	s := &Server{
		config:        cfg,
		db:            db,
		userRepo:      userRepo,
		statusRepo:    statusRepo,
		projectRepo:   projectRepo,
		laneRepo:      laneRepo,
		cardRepo:      cardRepo,
		moodboardRepo: moodboardRepo,
		imageRepo:     imageRepo,
	}
	s.authService = service.NewAuthService(userRepo, cfg.JWTSecret)
	s.projectService = service.NewProjectService(projectRepo, statusRepo, moodboardRepo, imageRepo, authz)
	s.laneService = service.NewLaneService(laneRepo, authz)
	s.cardService = service.NewCardService(cardRepo, authz)
	s.imageService = service.NewImageService(imageRepo, authz)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

var testUserSeq int

// signUpAndIn registers a fresh user through the API and returns their token.
func signUpAndIn(t *testing.T, app *fiber.App) string {
	t.Helper()

	testUserSeq++
	email := fmt.Sprintf("user%d@example.com", testUserSeq)

	resp, _ := doJSON(t, app, http.MethodPost, "/sign-up", "", map[string]string{
		"name":            fmt.Sprintf("User %d", testUserSeq),
		"email":           email,
		"password":        "password123",
		"confirmPassword": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/sign-in", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createProjectVia creates a project through the API and returns its id.
func createProjectVia(t *testing.T, app *fiber.App, token, name string) uint {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/projects", token, map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, ok := body["id"].(float64)
	require.True(t, ok, "project response missing id: %v", body)
	return uint(id)
}
