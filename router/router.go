package router

import (
	"database/sql"
	"net/http"

	"github.com/quantumbitsystems/backend/cliparse"
	"github.com/quantumbitsystems/backend/handlers"
	"github.com/quantumbitsystems/backend/mailer"
	"github.com/quantumbitsystems/backend/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, mail mailer.Mailer) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	productHandler := handlers.NewProductHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, cfg, mail)
	testimonialHandler := handlers.NewTestimonialHandler(db, cfg, mail)
	reviewHandler := handlers.NewReviewHandler(db, cfg)
	blogHandler := handlers.NewBlogHandler(db, cfg)
	projectHandler := handlers.NewProjectHandler(db, cfg)
	categoryHandler := handlers.NewCategoryHandler(db, cfg)
	newsletterHandler := handlers.NewNewsletterHandler(db, cfg, mail)
	contactHandler := handlers.NewContactHandler(cfg, mail)
	settingsHandler := handlers.NewSettingsHandler(db, cfg)

	// admin wraps a handler with the bearer token gate
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithAdminAuth(cfg.AdminToken, next)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Product catalog
	mux.HandleFunc("GET /api/products", middleware.WithLogging(productHandler.List))
	mux.HandleFunc("GET /api/products/{id}", middleware.WithLogging(productHandler.Get))
	mux.HandleFunc("POST /api/products", middleware.WithLogging(admin(productHandler.Create)))
	mux.HandleFunc("PUT /api/products/{id}", middleware.WithLogging(admin(productHandler.Update)))
	mux.HandleFunc("DELETE /api/products/{id}", middleware.WithLogging(admin(productHandler.Delete)))

	// Product reviews (public submission; no approval route exists)
	mux.HandleFunc("GET /api/products/{id}/reviews", middleware.WithLogging(reviewHandler.List))
	mux.HandleFunc("POST /api/products/{id}/reviews", middleware.WithLogging(reviewHandler.Create))

	// Categories
	mux.HandleFunc("GET /api/categories", middleware.WithLogging(categoryHandler.List))
	mux.HandleFunc("POST /api/categories", middleware.WithLogging(categoryHandler.Create))

	// Portfolio projects (writes not admin-gated)
	mux.HandleFunc("GET /api/projects", middleware.WithLogging(projectHandler.List))
	mux.HandleFunc("POST /api/projects", middleware.WithLogging(projectHandler.Create))
	mux.HandleFunc("PUT /api/projects/{id}", middleware.WithLogging(projectHandler.Update))
	mux.HandleFunc("DELETE /api/projects/{id}", middleware.WithLogging(projectHandler.Delete))

	// Orders
	mux.HandleFunc("POST /api/orders", middleware.WithLogging(orderHandler.Create))
	mux.HandleFunc("GET /api/orders", middleware.WithLogging(orderHandler.List))
	mux.HandleFunc("PATCH /api/admin/orders/{id}", middleware.WithLogging(admin(orderHandler.UpdateStatus)))

	// Contact form
	mux.HandleFunc("POST /api/contact", middleware.WithLogging(contactHandler.Submit))

	// Testimonials
	mux.HandleFunc("GET /api/testimonials", middleware.WithLogging(testimonialHandler.List))
	mux.HandleFunc("POST /api/testimonials", middleware.WithLogging(testimonialHandler.Create))
	mux.HandleFunc("GET /api/admin/testimonials", middleware.WithLogging(admin(testimonialHandler.AdminList)))
	mux.HandleFunc("PUT /api/admin/testimonials/{id}/approve", middleware.WithLogging(admin(testimonialHandler.Approve)))
	mux.HandleFunc("DELETE /api/admin/testimonials/{id}", middleware.WithLogging(admin(testimonialHandler.Delete)))

	// Newsletter
	mux.HandleFunc("POST /api/newsletter/subscribe", middleware.WithLogging(newsletterHandler.Subscribe))
	mux.HandleFunc("GET /api/admin/subscribers", middleware.WithLogging(admin(newsletterHandler.AdminList)))

	// Blog
	mux.HandleFunc("GET /api/blog", middleware.WithLogging(blogHandler.List))
	mux.HandleFunc("GET /api/blog/{id}", middleware.WithLogging(blogHandler.Get))
	mux.HandleFunc("GET /api/admin/blog", middleware.WithLogging(admin(blogHandler.AdminList)))
	mux.HandleFunc("POST /api/admin/blog", middleware.WithLogging(admin(blogHandler.Create)))
	mux.HandleFunc("PUT /api/admin/blog/{id}", middleware.WithLogging(admin(blogHandler.Update)))
	mux.HandleFunc("DELETE /api/admin/blog/{id}", middleware.WithLogging(admin(blogHandler.Delete)))

	// Site settings
	mux.HandleFunc("GET /api/admin/settings", middleware.WithLogging(admin(settingsHandler.Get)))
	mux.HandleFunc("POST /api/admin/settings", middleware.WithLogging(admin(settingsHandler.Update)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, map[string]string{
			"message": "Quantum Backend API is running!",
		})
	})

	return middleware.CORS(mux)
}
