// Package testutil boots an API instance against a throwaway sqlite
// database so endpoint tests can run the full stack, auth included.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "pustakaku_backend/internals/databases"
	routes "pustakaku_backend/internals/route"
)

// NewTestDB opens a per-test sqlite database with FK enforcement on and
// the full schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_fk=1", filepath.Join(t.TempDir(), "api_test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewTestApp wires the real route tree onto a fresh app + DB.
func NewTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := NewTestDB(t)
	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

// DoJSON performs a request against the app. Empty token leaves the
// Authorization header unset.
func DoJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeBody parses a JSON response body into a generic map.
func DecodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", string(raw))
	return out
}

// Data pulls the "data" object out of a success envelope.
func Data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", body)
	return data
}

// RegisterUser registers a user through the API and returns its id and
// bearer token.
func RegisterUser(t *testing.T, app *fiber.App, name, email, password string) (int, string) {
	t.Helper()

	resp := DoJSON(t, app, http.MethodPost, "/users/create/", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := Data(t, DecodeBody(t, resp))
	id, ok := data["userID"].(float64)
	require.True(t, ok, "registration response missing userID: %v", data)
	token, ok := data["token"].(string)
	require.True(t, ok, "registration response missing token: %v", data)
	return int(id), token
}

// CreateBook creates a book through the API and returns its id.
func CreateBook(t *testing.T, app *fiber.App, token, title, isbn, publishedDate, genre string) int {
	t.Helper()

	resp := DoJSON(t, app, http.MethodPost, "/books/create/", token, map[string]any{
		"title":          title,
		"isbn":           isbn,
		"published_date": publishedDate,
		"genre":          genre,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := Data(t, DecodeBody(t, resp))
	id, ok := data["bookID"].(float64)
	require.True(t, ok, "book response missing bookID: %v", data)
	return int(id)
}
