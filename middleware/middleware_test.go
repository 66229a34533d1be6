package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWithAdminAuth(t *testing.T) {
	const token = "test-token"

	called := false
	handler := WithAdminAuth(token, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	// No header
	req := httptest.NewRequest("GET", "/api/admin/blog", nil)
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusUnauthorized || called {
		t.Errorf("Expected 401 and no handler call, got %d called=%v", w.Code, called)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if resp.Error != "Unauthorized" {
		t.Errorf("Expected Unauthorized error body, got %q", resp.Error)
	}

	// Valid header
	req = httptest.NewRequest("GET", "/api/admin/blog", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK || !called {
		t.Errorf("Expected handler to run with valid token, got %d called=%v", w.Code, called)
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusOK, map[string]string{"message": "hello"})

	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected application/json, got %q", got)
	}
	if !strings.Contains(w.Body.String(), `"message":"hello"`) {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestErrorResponseShape(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "Product not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if resp.Error != "Product not found" {
		t.Errorf("Expected error field, got %q", resp.Error)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{"quantity": 2}`))

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("Expected valid body to parse, got %v", err)
	}
	if body.Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", body.Quantity)
	}

	req = httptest.NewRequest("POST", "/api/orders", strings.NewReader(`not json`))
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("Expected malformed body to error")
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	reached := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest("OPTIONS", "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 on preflight, got %d", w.Code)
	}
	if reached {
		t.Error("Expected preflight to stop before the wrapped handler")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin echoed, got %q", got)
	}

	// Non-preflight requests pass through with headers set
	req = httptest.NewRequest("GET", "/api/products", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if !reached {
		t.Error("Expected GET to reach the wrapped handler")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard origin without Origin header, got %q", got)
	}
}
