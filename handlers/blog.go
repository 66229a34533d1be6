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

type BlogHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewBlogHandler(db *sql.DB, cfg cliparse.Config) *BlogHandler {
	return &BlogHandler{db: db, cfg: cfg}
}

const blogColumns = `id, title, excerpt, content, category, author, status, created_at`

// List handles GET /api/blog (public, published only)
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT `+blogColumns+`
		FROM blog_posts
		WHERE status = ?
		ORDER BY created_at DESC
	`, models.BlogStatusPublished)
	if err != nil {
		slog.Error("failed to query blog posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	posts, err := scanBlogPosts(rows)
	if err != nil {
		slog.Error("failed to scan blog post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, posts)
}

// Get handles GET /api/blog/{id} (public, published only)
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var p models.BlogPost
	err := h.db.QueryRow(`
		SELECT `+blogColumns+`
		FROM blog_posts
		WHERE id = ? AND status = ?
	`, id, models.BlogStatusPublished).Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Category, &p.Author, &p.Status, &p.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Blog post not found")
		return
	}
	if err != nil {
		slog.Error("failed to query blog post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

// AdminList handles GET /api/admin/blog (admin, all statuses)
func (h *BlogHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT ` + blogColumns + `
		FROM blog_posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query blog posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	posts, err := scanBlogPosts(rows)
	if err != nil {
		slog.Error("failed to scan blog post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, posts)
}

// Create handles POST /api/admin/blog (admin)
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.BlogPostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.Title == "" || req.Excerpt == "" || req.Content == "" || req.Category == "" || req.Author == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.Status == "" {
		req.Status = models.BlogStatusPublished
	}

	res, err := h.db.Exec(`
		INSERT INTO blog_posts (title, excerpt, content, category, author, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.Title, req.Excerpt, req.Content, req.Category, req.Author, req.Status, time.Now())

	if err != nil {
		slog.Error("failed to insert blog post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add blog post")
		return
	}

	id, _ := res.LastInsertId()
	slog.Info("blog post created", "post_id", id, "title", req.Title)

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponse{
		ID:      id,
		Message: "Blog post added successfully",
	})
}

// Update handles PUT /api/admin/blog/{id} (admin)
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.BlogPostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.Title == "" || req.Excerpt == "" || req.Content == "" || req.Category == "" || req.Author == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.Status == "" {
		req.Status = models.BlogStatusPublished
	}

	_, err := h.db.Exec(`
		UPDATE blog_posts
		SET title = ?, excerpt = ?, content = ?, category = ?, author = ?, status = ?
		WHERE id = ?
	`, req.Title, req.Excerpt, req.Content, req.Category, req.Author, req.Status, id)

	if err != nil {
		slog.Error("failed to update blog post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update blog post")
		return
	}

	slog.Info("blog post updated", "post_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Blog post updated successfully",
	})
}

// Delete handles DELETE /api/admin/blog/{id} (admin)
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	_, err := h.db.Exec(`DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		slog.Error("failed to delete blog post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}

	slog.Info("blog post deleted", "post_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Blog post deleted successfully",
	})
}

func scanBlogPosts(rows *sql.Rows) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Category, &p.Author, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
