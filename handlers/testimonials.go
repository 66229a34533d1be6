package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/quantumbitsystems/backend/cliparse"
	"github.com/quantumbitsystems/backend/mailer"
	"github.com/quantumbitsystems/backend/middleware"
	"github.com/quantumbitsystems/backend/models"
)

type TestimonialHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	mail mailer.Mailer
}

func NewTestimonialHandler(db *sql.DB, cfg cliparse.Config, mail mailer.Mailer) *TestimonialHandler {
	return &TestimonialHandler{db: db, cfg: cfg, mail: mail}
}

const testimonialColumns = `id, customer_name, customer_email, COALESCE(company, ''), rating, message, status, created_at`

// List handles GET /api/testimonials (public, approved only)
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT `+testimonialColumns+`
		FROM testimonials
		WHERE status = ?
		ORDER BY created_at DESC
	`, models.StatusApproved)
	if err != nil {
		slog.Error("failed to query testimonials", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	testimonials, err := scanTestimonials(rows)
	if err != nil {
		slog.Error("failed to scan testimonial", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, testimonials)
}

// Create handles POST /api/testimonials (public, lands in pending)
// Rating bounds are enforced by the table's CHECK constraint.
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TestimonialRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.db.Exec(`
		INSERT INTO testimonials (customer_name, customer_email, company, rating, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.CustomerName, req.CustomerEmail, req.Company, req.Rating, req.Message, models.StatusPending, time.Now())

	if err != nil {
		slog.Error("failed to insert testimonial", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	id, _ := res.LastInsertId()
	slog.Info("testimonial submitted", "testimonial_id", id, "customer", req.CustomerName)

	go func() {
		msg := mailer.TestimonialNotification(h.cfg.AdminEmail, req.CustomerName, req.Company, req.Rating, req.Message)
		if err := h.mail.Send(msg); err != nil {
			slog.Error("failed to send testimonial notification", "error", err, "testimonial_id", id)
		}
	}()

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{
		ID:      id,
		Message: "Testimonial submitted successfully",
	})
}

// AdminList handles GET /api/admin/testimonials (admin, all statuses)
func (h *TestimonialHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT ` + testimonialColumns + `
		FROM testimonials
		ORDER BY created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query testimonials", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	testimonials, err := scanTestimonials(rows)
	if err != nil {
		slog.Error("failed to scan testimonial", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, testimonials)
}

// Approve handles PUT /api/admin/testimonials/{id}/approve (admin)
func (h *TestimonialHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	_, err := h.db.Exec(`UPDATE testimonials SET status = ? WHERE id = ?`, models.StatusApproved, id)
	if err != nil {
		slog.Error("failed to approve testimonial", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("testimonial approved", "testimonial_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Testimonial approved",
	})
}

// Delete handles DELETE /api/admin/testimonials/{id} (admin)
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	_, err := h.db.Exec(`DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		slog.Error("failed to delete testimonial", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("testimonial deleted", "testimonial_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Testimonial deleted successfully",
	})
}

func scanTestimonials(rows *sql.Rows) ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.CustomerName, &t.CustomerEmail, &t.Company, &t.Rating, &t.Message, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}
