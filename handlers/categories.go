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

type CategoryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCategoryHandler(db *sql.DB, cfg cliparse.Config) *CategoryHandler {
	return &CategoryHandler{db: db, cfg: cfg}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, value, created_at
		FROM categories
		ORDER BY name
	`)
	if err != nil {
		slog.Error("failed to query categories", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Value, &c.CreatedAt); err != nil {
			slog.Error("failed to scan category", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		categories = append(categories, c)
	}

	middleware.JSONResponse(w, http.StatusOK, categories)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.db.Exec(`
		INSERT INTO categories (name, value, created_at)
		VALUES (?, ?, ?)
	`, req.Name, req.Value, time.Now())

	if err != nil {
		slog.Error("failed to insert category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	id, _ := res.LastInsertId()
	slog.Info("category created", "category_id", id, "name", req.Name)

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{
		ID:      id,
		Message: "Category added successfully",
	})
}
