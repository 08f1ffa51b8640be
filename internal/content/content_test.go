package content_test

import (
	"fmt"
	"net/http"
	"testing"

	"minhas-backend/internal/server"
	"minhas-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycle(t *testing.T) {
	cfg := testutil.TestConfig(t)
	testutil.OpenTestDB(t, cfg)
	app := server.New(cfg)
	token := testutil.Login(t, app)

	// Create via authenticated POST
	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/projects", map[string]any{
		"title":       "X",
		"category":    "Facades",
		"location":    "Y",
		"description": "Z",
		"images":      []string{},
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	testutil.DecodeBody(t, resp, &created)
	assert.Equal(t, "X", created["title"])
	assert.NotNil(t, created["id"])
	id := created["id"].(float64)

	// Unauthenticated list must include it
	resp, err = app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/projects", nil, ""), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	testutil.DecodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Facades", list[0]["category"])
	assert.Equal(t, []any{}, list[0]["images"])

	// Authenticated delete removes it
	resp, err = app.Test(testutil.JSONRequest(t, http.MethodDelete, fmt.Sprintf("/api/projects/%.0f", id), nil, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/projects", nil, ""), -1)
	require.NoError(t, err)
	testutil.DecodeBody(t, resp, &list)
	assert.Empty(t, list)
}

func TestProjectPartialUpdateLeavesOtherFields(t *testing.T) {
	cfg := testutil.TestConfig(t)
	testutil.OpenTestDB(t, cfg)
	app := server.New(cfg)
	token := testutil.Login(t, app)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/projects", map[string]any{
		"title":    "Tower Facade",
		"category": "Facades",
		"location": "Lahore",
		"images":   []string{"/uploads/a.jpg", "/uploads/b.jpg"},
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	testutil.DecodeBody(t, resp, &created)
	id := created["id"].(float64)

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodPut, fmt.Sprintf("/api/projects/%.0f", id), map[string]any{
		"location": "Islamabad",
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]any
	testutil.DecodeBody(t, resp, &updated)
	assert.Equal(t, "Islamabad", updated["location"])
	assert.Equal(t, "Tower Facade", updated["title"])
	assert.Equal(t, "Facades", updated["category"])
	assert.Len(t, updated["images"], 2)
}

func TestProjectUnknownIDReturnsNotFound(t *testing.T) {
	cfg := testutil.TestConfig(t)
	testutil.OpenTestDB(t, cfg)
	app := server.New(cfg)
	token := testutil.Login(t, app)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPut, "/api/projects/9999", map[string]any{"title": "nope"}, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodDelete, "/api/projects/9999", nil, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNonNumericIDReturnsBadRequest(t *testing.T) {
	cfg := testutil.TestConfig(t)
	testutil.OpenTestDB(t, cfg)
	app := server.New(cfg)
	token := testutil.Login(t, app)

	// A garbage :id is a malformed request, not a missing record
	for _, path := range []string{"/api/projects/abc", "/api/services/abc", "/api/clients/abc"} {
		resp, err := app.Test(testutil.JSONRequest(t, http.MethodPut, path, map[string]any{"title": "X"}, token), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "PUT %s", path)

		resp, err = app.Test(testutil.JSONRequest(t, http.MethodDelete, path, nil, token), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "DELETE %s", path)
	}
}

func TestProjectMutationsRequireAuth(t *testing.T) {
	cfg := testutil.TestConfig(t)
	testutil.OpenTestDB(t, cfg)
	app := server.New(cfg)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/projects", map[string]any{"title": "X"}, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodPut, "/api/projects/1", map[string]any{"title": "X"}, "bad.token.here"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodDelete, "/api/projects/1", nil, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProjectCreateRequiresTitle(t *testing.T) {
	cfg := testutil.TestConfig(t)
	testutil.OpenTestDB(t, cfg)
	app := server.New(cfg)
	token := testutil.Login(t, app)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/projects", map[string]any{
		"category": "Facades",
	}, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServiceLifecycle(t *testing.T) {
	cfg := testutil.TestConfig(t)
	testutil.OpenTestDB(t, cfg)
	app := server.New(cfg)
	token := testutil.Login(t, app)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/services", map[string]any{
		"title":        "Aluminium Windows",
		"description":  "Short",
		"details":      "Long details",
		"icon":         "window",
		"features":     []string{"Thermal break", "Powder coated"},
		"qualitySpecs": "EN 12207",
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	testutil.DecodeBody(t, resp, &created)
	id := created["id"].(float64)
	assert.Equal(t, []any{}, created["images"], "missing list fields default to empty")
	assert.Len(t, created["features"], 2)

	// Partial update keeps features intact
	resp, err = app.Test(testutil.JSONRequest(t, http.MethodPut, fmt.Sprintf("/api/services/%.0f", id), map[string]any{
		"icon": "glass",
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]any
	testutil.DecodeBody(t, resp, &updated)
	assert.Equal(t, "glass", updated["icon"])
	assert.Len(t, updated["features"], 2)
	assert.Equal(t, "EN 12207", updated["qualitySpecs"])

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/services", nil, ""), -1)
	require.NoError(t, err)
	var list []map[string]any
	testutil.DecodeBody(t, resp, &list)
	require.Len(t, list, 1)

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodDelete, fmt.Sprintf("/api/services/%.0f", id), nil, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestClientLifecycleAndRatingBounds(t *testing.T) {
	cfg := testutil.TestConfig(t)
	testutil.OpenTestDB(t, cfg)
	app := server.New(cfg)
	token := testutil.Login(t, app)

	resp, err := app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/clients", map[string]any{
		"name":     "Bilal Ahmed",
		"role":     "Architect",
		"feedback": "Great work",
		"rating":   5,
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	testutil.DecodeBody(t, resp, &created)
	id := created["id"].(float64)
	assert.Equal(t, float64(5), created["rating"])

	// Out-of-range rating rejected
	resp, err = app.Test(testutil.JSONRequest(t, http.MethodPost, "/api/clients", map[string]any{
		"name":   "Nope",
		"rating": 6,
	}, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodPut, fmt.Sprintf("/api/clients/%.0f", id), map[string]any{
		"rating": -1,
	}, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Valid partial update
	resp, err = app.Test(testutil.JSONRequest(t, http.MethodPut, fmt.Sprintf("/api/clients/%.0f", id), map[string]any{
		"feedback": "Outstanding facade work",
	}, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]any
	testutil.DecodeBody(t, resp, &updated)
	assert.Equal(t, "Outstanding facade work", updated["feedback"])
	assert.Equal(t, "Bilal Ahmed", updated["name"])

	resp, err = app.Test(testutil.JSONRequest(t, http.MethodGet, "/api/clients", nil, ""), -1)
	require.NoError(t, err)
	var list []map[string]any
	testutil.DecodeBody(t, resp, &list)
	assert.Len(t, list, 1)
}

func TestMalformedJSONBodyReturnsBadRequest(t *testing.T) {
	cfg := testutil.TestConfig(t)
	testutil.OpenTestDB(t, cfg)
	app := server.New(cfg)
	token := testutil.Login(t, app)

	req := testutil.JSONRequest(t, http.MethodPost, "/api/projects", nil, token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
