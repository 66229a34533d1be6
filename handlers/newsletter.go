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

type NewsletterHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	mail mailer.Mailer
}

func NewNewsletterHandler(db *sql.DB, cfg cliparse.Config, mail mailer.Mailer) *NewsletterHandler {
	return &NewsletterHandler{db: db, cfg: cfg, mail: mail}
}

// Subscribe handles POST /api/newsletter/subscribe
// Idempotent: a duplicate email is a silent no-op (INSERT OR IGNORE), and
// the admin notification still goes out.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email is required")
		return
	}

	_, err := h.db.Exec(`
		INSERT OR IGNORE INTO newsletter_subscribers (email, subscribed_at)
		VALUES (?, ?)
	`, req.Email, time.Now())

	if err != nil {
		slog.Error("failed to insert subscriber", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("newsletter subscription", "email", req.Email)

	go func() {
		msg := mailer.SubscriberNotification(h.cfg.AdminEmail, req.Email)
		if err := h.mail.Send(msg); err != nil {
			slog.Error("failed to send subscriber notification", "error", err)
		}
	}()

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Subscribed successfully",
	})
}

// AdminList handles GET /api/admin/subscribers (admin)
func (h *NewsletterHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, email, subscribed_at, status
		FROM newsletter_subscribers
		ORDER BY subscribed_at DESC
	`)
	if err != nil {
		slog.Error("failed to query subscribers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	subscribers := []models.Subscriber{}
	for rows.Next() {
		var s models.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt, &s.Status); err != nil {
			slog.Error("failed to scan subscriber", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		subscribers = append(subscribers, s)
	}

	middleware.JSONResponse(w, http.StatusOK, subscribers)
}
