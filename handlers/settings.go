package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/quantumbitsystems/backend/cliparse"
	"github.com/quantumbitsystems/backend/middleware"
	"github.com/quantumbitsystems/backend/models"
)

// SettingsHandler manages the single-row settings table (id=1). The only
// setting today is the social links blob, stored as JSON text and
// replaced wholesale on every save.
type SettingsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSettingsHandler(db *sql.DB, cfg cliparse.Config) *SettingsHandler {
	return &SettingsHandler{db: db, cfg: cfg}
}

// Get handles GET /api/admin/settings (admin)
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var raw string
	err := h.db.QueryRow(`SELECT social_links FROM settings WHERE id = 1`).Scan(&raw)

	if err == sql.ErrNoRows {
		// Fresh database: return the defaults without persisting them
		middleware.JSONResponse(w, http.StatusOK, models.SocialLinks{
			Facebook:  "https://facebook.com/quantumbitsystems",
			Twitter:   "https://twitter.com/quantumbitsys",
			LinkedIn:  "https://linkedin.com/company/quantumbit-systems",
			Instagram: "https://instagram.com/quantumbitsystems",
		})
		return
	}
	if err != nil {
		slog.Error("failed to query settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	var links models.SocialLinks
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		slog.Error("failed to parse stored social links", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, links)
}

// Update handles POST /api/admin/settings (admin)
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	raw, err := json.Marshal(req.SocialLinks)
	if err != nil {
		slog.Error("failed to marshal social links", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	_, err = h.db.Exec(`INSERT OR REPLACE INTO settings (id, social_links) VALUES (1, ?)`, string(raw))
	if err != nil {
		slog.Error("failed to update settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	slog.Info("settings updated")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Settings updated successfully",
	})
}
