package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/withyourgoal-dev/withyourgoal/internal/models"
)

func TestCreateCategory(t *testing.T) {
	r := setupTest(t)

	token := registerAndLogin(t, r, "alice")

	w := doRequest(t, r, http.MethodPost, "/api/category", token, gin.H{"name": "Reading"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category: status %d, body %s", w.Code, w.Body.String())
	}

	if count := countRows(t, &models.Category{}, "name = ?", "Reading"); count != 1 {
		t.Fatalf("expected 1 Reading category, got %d", count)
	}

	w = doRequest(t, r, http.MethodPost, "/api/category", token, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: status %d", w.Code)
	}
}

func TestDeleteCategoryCascade(t *testing.T) {
	r := setupTest(t)

	aliceToken := registerAndLogin(t, r, "alice")
	bobToken := registerAndLogin(t, r, "bob")

	healthID := findCategoryID(t, "Health", "alice")
	bobHealthID := findCategoryID(t, "Health", "bob")
	goalID := findGoalID(t, "45 kg", "alice")

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/category/%d", healthID), aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete category: status %d, body %s", w.Code, w.Body.String())
	}

	if count := countRows(t, &models.Category{}, "id = ?", healthID); count != 0 {
		t.Fatalf("category row survived the cascade")
	}
	if count := countRows(t, &models.Goal{}, "category_id = ?", healthID); count != 0 {
		t.Fatalf("goal rows survived the cascade")
	}
	if count := countRows(t, &models.Rule{}, "goal_id = ?", goalID); count != 0 {
		t.Fatalf("rule rows survived the cascade")
	}
	if count := countRows(t, &models.Process{}, "goal_id = ?", goalID); count != 0 {
		t.Fatalf("process rows survived the cascade")
	}

	// Bob's identically named subtree must be untouched.
	if count := countRows(t, &models.Category{}, "id = ?", bobHealthID); count != 1 {
		t.Fatalf("cascade crossed user boundary: bob's category gone")
	}
	if count := countRows(t, &models.Goal{}, "category_id = ?", bobHealthID); count != 1 {
		t.Fatalf("cascade crossed user boundary: bob's goal gone")
	}

	w = doRequest(t, r, http.MethodGet, "/api/goals", bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("bob list goals: status %d", w.Code)
	}
}

func TestDeleteCategoryCrossOwner(t *testing.T) {
	r := setupTest(t)

	registerAndLogin(t, r, "alice")
	bobToken := registerAndLogin(t, r, "bob")

	healthID := findCategoryID(t, "Health", "alice")
	goalID := findGoalID(t, "45 kg", "alice")

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/category/%d", healthID), bobToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("cross-owner delete: status %d, body %s", w.Code, w.Body.String())
	}

	if count := countRows(t, &models.Category{}, "id = ?", healthID); count != 1 {
		t.Fatalf("forbidden delete removed the category")
	}
	if count := countRows(t, &models.Rule{}, "goal_id = ?", goalID); count != 3 {
		t.Fatalf("forbidden delete touched child rows")
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	r := setupTest(t)

	token := registerAndLogin(t, r, "alice")

	w := doRequest(t, r, http.MethodDelete, "/api/category/99999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing category: status %d, body %s", w.Code, w.Body.String())
	}
}
