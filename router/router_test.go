package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quantumbitsystems/backend/testutil"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return NewRouter(conn, testutil.GetTestConfig(), &testutil.FakeMailer{})
}

func TestAdminRoutesRequireToken(t *testing.T) {
	handler := setupRouter(t)

	adminRoutes := []struct {
		method string
		path   string
	}{
		{"POST", "/api/products"},
		{"PUT", "/api/products/1"},
		{"DELETE", "/api/products/1"},
		{"PATCH", "/api/admin/orders/1"},
		{"GET", "/api/admin/testimonials"},
		{"PUT", "/api/admin/testimonials/1/approve"},
		{"DELETE", "/api/admin/testimonials/1"},
		{"GET", "/api/admin/subscribers"},
		{"GET", "/api/admin/blog"},
		{"POST", "/api/admin/blog"},
		{"PUT", "/api/admin/blog/1"},
		{"DELETE", "/api/admin/blog/1"},
		{"GET", "/api/admin/settings"},
		{"POST", "/api/admin/settings"},
	}

	for _, route := range adminRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			// No token
			req := testutil.MakeRequest(route.method, route.path, nil, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			// Wrong token
			req = testutil.MakeRequest(route.method, route.path, nil, map[string]string{
				"Authorization": "Bearer wrong-token",
			})
			w = httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			// Valid token gets past the gate (handler may still 4xx/5xx
			// on the empty body or missing row)
			req = testutil.MakeRequest(route.method, route.path, nil, testutil.AdminHeaders())
			w = httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code == http.StatusUnauthorized {
				t.Errorf("Expected valid token to pass the gate, got 401")
			}
		})
	}
}

func TestPublicRoutesReachable(t *testing.T) {
	handler := setupRouter(t)

	publicRoutes := []string{
		"/api/products",
		"/api/products/1/reviews",
		"/api/categories",
		"/api/projects",
		"/api/orders",
		"/api/testimonials",
		"/api/blog",
	}

	for _, path := range publicRoutes {
		t.Run(path, func(t *testing.T) {
			req := testutil.MakeRequest("GET", path, nil, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, http.StatusOK)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	handler := setupRouter(t)

	req := testutil.MakeRequest("GET", "/health", nil, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body OK, got %q", w.Body.String())
	}
}

func TestRootBanner(t *testing.T) {
	handler := setupRouter(t)

	req := testutil.MakeRequest("GET", "/", nil, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var banner map[string]string
	testutil.AssertJSON(t, w, &banner)
	if banner["message"] == "" {
		t.Errorf("Expected a banner message, got %v", banner)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := setupRouter(t)

	req := testutil.MakeRequest("OPTIONS", "/api/products", nil, map[string]string{
		"Origin": "http://localhost:3000",
	})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Error("Expected allowed headers on preflight response")
	}
}
