// Package testutil provides the shared test database and app scaffolding.
// Tests run against the real route table over an in-memory sqlite database
// so no Postgres instance is needed.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"minhas-backend/internal/config"
	"minhas-backend/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	AdminUsername = "Aamir"
	AdminPassword = "test-password-1"
)

// TestConfig returns a config suitable for handler tests. Uploads land in
// a per-test temp dir.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		HTTPPort:      "0",
		JWTSecret:     "0123456789abcdef0123456789abcdef",
		CORSOrigins:   "http://localhost:5173",
		UploadPath:    t.TempDir(),
		AdminUsername: AdminUsername,
		AdminPassword: AdminPassword,
		MaxUploadMB:   4,
	}
}

// OpenTestDB points database.DB at a fresh in-memory sqlite database,
// migrated and seeded with the admin user. The previous handle is restored
// on cleanup so packages sharing the global do not leak state.
func OpenTestDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	// Unique shared-cache name per test: a plain :memory: DSN gives every
	// pooled connection its own empty database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	if err := database.SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// Login authenticates as the seeded admin and returns the bearer token.
func Login(t *testing.T, app *fiber.App) string {
	t.Helper()

	req := JSONRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": AdminUsername,
		"password": AdminPassword,
	}, "")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	DecodeBody(t, resp, &body)
	if body.Token == "" {
		t.Fatal("login returned empty token")
	}
	return body.Token
}

// JSONRequest builds an *http.Request with a JSON body and optional bearer
// token.
func JSONRequest(t *testing.T, method, target string, body any, token string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// DecodeBody decodes a JSON response body into out.
func DecodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
