package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/quantumbitsystems/backend/cliparse"
	"github.com/quantumbitsystems/backend/middleware"
	"github.com/quantumbitsystems/backend/models"
)

type ProductHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewProductHandler(db *sql.DB, cfg cliparse.Config) *ProductHandler {
	return &ProductHandler{db: db, cfg: cfg}
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, brand, model, price, stock, COALESCE(category, ''), image_url, created_at
		FROM products
	`)
	if err != nil {
		slog.Error("failed to query products", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Brand, &p.Model, &p.Price, &p.Stock, &p.Category, &p.ImageURL, &p.CreatedAt); err != nil {
			slog.Error("failed to scan product", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		products = append(products, p)
	}

	middleware.JSONResponse(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var p models.Product
	err := h.db.QueryRow(`
		SELECT id, brand, model, price, stock, COALESCE(category, ''), image_url, created_at
		FROM products
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Brand, &p.Model, &p.Price, &p.Stock, &p.Category, &p.ImageURL, &p.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("failed to query product", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

// Create handles POST /api/products (admin)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProductRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	if req.Brand == "" || req.Model == "" || req.Category == "" || req.Price == nil || req.Stock == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	res, err := h.db.Exec(`
		INSERT INTO products (brand, model, price, stock, category, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.Brand, req.Model, *req.Price, *req.Stock, req.Category, req.ImageURL, time.Now())

	if err != nil {
		slog.Error("failed to insert product", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add product")
		return
	}

	id, _ := res.LastInsertId()
	slog.Info("product created", "product_id", id, "brand", req.Brand, "model", req.Model)

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{
		ID:      id,
		Message: "Product added successfully",
	})
}

// Update handles PUT /api/products/{id} (admin)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.ProductRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	if req.Brand == "" || req.Model == "" || req.Category == "" || req.Price == nil || req.Stock == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid product data")
		return
	}

	_, err := h.db.Exec(`
		UPDATE products
		SET brand = ?, model = ?, price = ?, stock = ?, category = ?, image_url = ?
		WHERE id = ?
	`, req.Brand, req.Model, *req.Price, *req.Stock, req.Category, req.ImageURL, id)

	if err != nil {
		slog.Error("failed to update product", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	slog.Info("product updated", "product_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Product updated successfully",
	})
}

// Delete handles DELETE /api/products/{id} (admin)
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	_, err := h.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		slog.Error("failed to delete product", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	slog.Info("product deleted", "product_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Product deleted successfully",
	})
}
