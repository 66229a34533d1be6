/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms),
correlated by a generated request_id.

# Admin Gate

Wrap admin handlers with the bearer token check:

	mux.HandleFunc("POST /api/products",
		middleware.WithLogging(middleware.WithAdminAuth(cfg.AdminToken, h.Create)))

Requests without the correct token get 401 before the handler runs.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, PATCH, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Error bodies are {"error": "message"}, the format the frontend surfaces
in its toasts.

Parse JSON request bodies:

	var req models.CreateOrderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
