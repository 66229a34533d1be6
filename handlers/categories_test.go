package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quantumbitsystems/backend/models"
	"github.com/quantumbitsystems/backend/testutil"
)

func TestCategoriesSortedByName(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewCategoryHandler(conn, cfg)

	for _, c := range []models.CategoryRequest{
		{Name: "Toner Cartridges", Value: "toner"},
		{Name: "Fuser Rollers", Value: "fuser"},
		{Name: "Ink Cartridges", Value: "ink"},
	} {
		req := testutil.MakeRequest("POST", "/api/categories", c, nil)
		w := httptest.NewRecorder()
		handler.Create(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	req := testutil.MakeRequest("GET", "/api/categories", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var categories []models.Category
	testutil.AssertJSON(t, w, &categories)
	if len(categories) != 3 {
		t.Fatalf("Expected 3 categories, got %d", len(categories))
	}
	wantOrder := []string{"Fuser Rollers", "Ink Cartridges", "Toner Cartridges"}
	for i, name := range wantOrder {
		if categories[i].Name != name {
			t.Errorf("Expected %q at position %d, got %q", name, i, categories[i].Name)
		}
	}
}

func TestCategoryUniqueName(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewCategoryHandler(conn, cfg)

	for i, wantStatus := range []int{http.StatusOK, http.StatusInternalServerError} {
		req := testutil.MakeRequest("POST", "/api/categories", models.CategoryRequest{
			Name:  "Toner Cartridges",
			Value: "toner",
		}, nil)
		w := httptest.NewRecorder()
		handler.Create(w, req)
		if w.Code != wantStatus {
			t.Fatalf("Attempt %d: expected status %d, got %d", i+1, wantStatus, w.Code)
		}
	}
}
