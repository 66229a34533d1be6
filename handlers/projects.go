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

// ProjectHandler serves the portfolio. Project writes are not behind the
// admin gate; the dashboard is the only caller in practice but nothing
// enforces that.
type ProjectHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewProjectHandler(db *sql.DB, cfg cliparse.Config) *ProjectHandler {
	return &ProjectHandler{db: db, cfg: cfg}
}

// List handles GET /api/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, title, description, category, image_url, project_url, technologies, features, status, created_at
		FROM projects
		ORDER BY created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.ImageURL, &p.ProjectURL,
			&p.Technologies, &p.Features, &p.Status, &p.CreatedAt); err != nil {
			slog.Error("failed to scan project", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		projects = append(projects, p)
	}

	middleware.JSONResponse(w, http.StatusOK, projects)
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.db.Exec(`
		INSERT INTO projects (title, description, category, image_url, project_url, technologies, features, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, req.Title, req.Description, req.Category, req.ImageURL, req.ProjectURL, req.Technologies, req.Features, time.Now())

	if err != nil {
		slog.Error("failed to insert project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	id, _ := res.LastInsertId()
	slog.Info("project created", "project_id", id, "title", req.Title)

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{
		ID:      id,
		Message: "Project added successfully",
	})
}

// Update handles PUT /api/projects/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.ProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	_, err := h.db.Exec(`
		UPDATE projects
		SET title = ?, description = ?, category = ?, image_url = ?, project_url = ?, technologies = ?, features = ?
		WHERE id = ?
	`, req.Title, req.Description, req.Category, req.ImageURL, req.ProjectURL, req.Technologies, req.Features, id)

	if err != nil {
		slog.Error("failed to update project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("project updated", "project_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Project updated successfully",
	})
}

// Delete handles DELETE /api/projects/{id}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	_, err := h.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		slog.Error("failed to delete project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("project deleted", "project_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Project deleted successfully",
	})
}
