package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/withyourgoal-dev/withyourgoal/db"
	"github.com/withyourgoal-dev/withyourgoal/internal/auth"
	"github.com/withyourgoal-dev/withyourgoal/internal/models"
	"github.com/withyourgoal-dev/withyourgoal/internal/router"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTest wires an in-memory database into db.DB and returns the
// real router so tests exercise the full middleware chain.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")

	if err := auth.InitJWTSecret(); err != nil {
		t.Fatalf("failed to init JWT secret: %v", err)
	}

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Category{}, &models.Goal{}, &models.Rule{}, &models.Process{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	db.DB = gdb

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access underlying DB: %v", err)
	}
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}
		db.DB = nil
	})

	return router.NewRouter()
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
}

// registerAndLogin creates a user and returns a valid bearer token.
func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register %s: status %d, body %s", username, w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodPost, "/api/login", "", gin.H{
		"username": username,
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("failed to log in %s: status %d, body %s", username, w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)

	if resp.Token == "" {
		t.Fatalf("login response for %s has no token", username)
	}

	return resp.Token
}

func findCategoryID(t *testing.T, name string, username string) uint {
	t.Helper()

	var category models.Category

	err := db.DB.Joins("JOIN users ON users.id = categories.user_id").
		Where("categories.name = ? AND users.username = ?", name, username).
		First(&category).Error
	if err != nil {
		t.Fatalf("failed to find category %q for %s: %v", name, username, err)
	}

	return category.ID
}

func findGoalID(t *testing.T, title string, username string) uint {
	t.Helper()

	var goal models.Goal

	err := db.DB.Joins("JOIN categories ON categories.id = goals.category_id").
		Joins("JOIN users ON users.id = categories.user_id").
		Where("goals.title = ? AND users.username = ?", title, username).
		First(&goal).Error
	if err != nil {
		t.Fatalf("failed to find goal %q for %s: %v", title, username, err)
	}

	return goal.ID
}

func countRows(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64

	if err := db.DB.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}

	return count
}
