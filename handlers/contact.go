package handlers

import (
	"log/slog"
	"net/http"

	"github.com/quantumbitsystems/backend/cliparse"
	"github.com/quantumbitsystems/backend/mailer"
	"github.com/quantumbitsystems/backend/middleware"
	"github.com/quantumbitsystems/backend/models"
)

// ContactHandler forwards contact-form submissions by email. Nothing is
// persisted, so this is the one notification the response waits on: if
// the relay rejects the message the submission is lost and the client
// must hear about it.
type ContactHandler struct {
	cfg  cliparse.Config
	mail mailer.Mailer
}

func NewContactHandler(cfg cliparse.Config, mail mailer.Mailer) *ContactHandler {
	return &ContactHandler{cfg: cfg, mail: mail}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	msg := mailer.ContactSubmission(h.cfg.AdminEmail, req.FirstName, req.LastName, req.Email, req.Phone, req.Service, req.Message)
	if err := h.mail.Send(msg); err != nil {
		slog.Error("failed to send contact email", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	slog.Info("contact form submitted", "email", req.Email, "service", req.Service)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Message sent successfully",
	})
}
