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

// ReviewHandler serves per-product reviews. Submissions land in pending
// and the public list only returns approved rows; there is currently no
// endpoint that flips a review to approved.
type ReviewHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewReviewHandler(db *sql.DB, cfg cliparse.Config) *ReviewHandler {
	return &ReviewHandler{db: db, cfg: cfg}
}

// List handles GET /api/products/{id}/reviews (approved only)
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	rows, err := h.db.Query(`
		SELECT id, product_id, customer_name, rating, comment, status, created_at
		FROM product_reviews
		WHERE product_id = ? AND status = ?
		ORDER BY created_at DESC
	`, productID, models.StatusApproved)
	if err != nil {
		slog.Error("failed to query reviews", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	reviews := []models.ProductReview{}
	for rows.Next() {
		var rev models.ProductReview
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.CustomerName, &rev.Rating, &rev.Comment, &rev.Status, &rev.CreatedAt); err != nil {
			slog.Error("failed to scan review", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		reviews = append(reviews, rev)
	}

	middleware.JSONResponse(w, http.StatusOK, reviews)
}

// Create handles POST /api/products/{id}/reviews
// Rating bounds are enforced by the table's CHECK constraint.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	var req models.ReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.db.Exec(`
		INSERT INTO product_reviews (product_id, customer_name, rating, comment, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, productID, req.CustomerName, req.Rating, req.Comment, models.StatusPending, time.Now())

	if err != nil {
		slog.Error("failed to insert review", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	id, _ := res.LastInsertId()
	slog.Info("review submitted", "review_id", id, "product_id", productID)

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{
		ID:      id,
		Message: "Review submitted for approval",
	})
}
