package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quantumbitsystems/backend/models"
	"github.com/quantumbitsystems/backend/testutil"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

func TestCreateProduct(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProductHandler(conn, cfg)

	tests := []struct {
		name       string
		body       models.ProductRequest
		wantStatus int
	}{
		{
			name: "valid product",
			body: models.ProductRequest{
				Brand:    "HP",
				Model:    "CF217A",
				Price:    floatPtr(8500),
				Stock:    intPtr(15),
				Category: "toner",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing brand",
			body: models.ProductRequest{
				Model:    "CF217A",
				Price:    floatPtr(8500),
				Stock:    intPtr(15),
				Category: "toner",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing price",
			body: models.ProductRequest{
				Brand:    "HP",
				Model:    "CF217A",
				Stock:    intPtr(15),
				Category: "toner",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing stock",
			body: models.ProductRequest{
				Brand:    "HP",
				Model:    "CF217A",
				Price:    floatPtr(8500),
				Category: "toner",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/products", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusOK {
				var resp models.CreateResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ID == 0 {
					t.Error("Expected non-zero product ID")
				}
			}
		})
	}
}

func TestProductRoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProductHandler(conn, cfg)

	body := models.ProductRequest{
		Brand:    "HP",
		Model:    "CF217A",
		Price:    floatPtr(8500),
		Stock:    intPtr(15),
		Category: "toner",
		ImageURL: strPtr("https://example.com/cf217a.jpg"),
	}
	req := testutil.MakeRequest("POST", "/api/products", body, nil)
	w := httptest.NewRecorder()
	handler.Create(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var created models.CreateResponse
	testutil.AssertJSON(t, w, &created)

	req = testutil.MakeRequest("GET", "/api/products/1", nil, nil)
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.Product
	testutil.AssertJSON(t, w, &got)

	if got.Brand != "HP" || got.Model != "CF217A" || got.Price != 8500 || got.Stock != 15 || got.Category != "toner" {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.ImageURL == nil || *got.ImageURL != "https://example.com/cf217a.jpg" {
		t.Errorf("Expected image_url to survive the round trip, got %v", got.ImageURL)
	}
}

func TestGetProductNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProductHandler(conn, cfg)

	req := testutil.MakeRequest("GET", "/api/products/999", nil, nil)
	req.SetPathValue("id", "999")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateProduct(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProductHandler(conn, cfg)

	testutil.CreateTestProduct(t, conn, "HP", "CF217A", 8500, 15)

	body := models.ProductRequest{
		Brand:    "HP",
		Model:    "CF217A",
		Price:    floatPtr(9000),
		Stock:    intPtr(20),
		Category: "toner",
	}
	req := testutil.MakeRequest("PUT", "/api/products/1", body, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.Update(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var price float64
	var stock int
	if err := conn.QueryRow(`SELECT price, stock FROM products WHERE id = 1`).Scan(&price, &stock); err != nil {
		t.Fatalf("Failed to read product back: %v", err)
	}
	if price != 9000 || stock != 20 {
		t.Errorf("Expected price=9000 stock=20, got price=%v stock=%v", price, stock)
	}
}

func TestDeleteProduct(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProductHandler(conn, cfg)

	testutil.CreateTestProduct(t, conn, "HP", "CF217A", 8500, 15)

	req := testutil.MakeRequest("DELETE", "/api/products/1", nil, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		t.Fatalf("Failed to count products: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 products after delete, got %d", count)
	}
}

func TestListProducts(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProductHandler(conn, cfg)

	testutil.CreateTestProduct(t, conn, "HP", "CF217A", 8500, 15)
	testutil.CreateTestProduct(t, conn, "Canon", "CRG-337", 6800, 12)

	req := testutil.MakeRequest("GET", "/api/products", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var products []models.Product
	testutil.AssertJSON(t, w, &products)
	if len(products) != 2 {
		t.Errorf("Expected 2 products, got %d", len(products))
	}
}
