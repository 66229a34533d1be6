package models

import "time"

// Order status constants. The set the admin dashboard offers; the server
// stores whatever string the admin sends and does not validate transitions.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Moderation status constants (testimonials and product reviews)
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Blog post status constants
const (
	BlogStatusPublished = "published"
	BlogStatusDraft     = "draft"
)

// Request types

type ProductRequest struct {
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Category string   `json:"category"`
	ImageURL *string  `json:"image_url"`
}

// Quantity is a pointer so an omitted field (defaults to 1) can be told
// apart from an explicit zero (rejected).
type CreateOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	ProductID     int    `json:"product_id"`
	Quantity      *int   `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

type TestimonialRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Company       string `json:"company"`
	Rating        int    `json:"rating"`
	Message       string `json:"message"`
}

type ReviewRequest struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type BlogPostRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Status   string `json:"status"`
}

type ProjectRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	ImageURL     *string `json:"image_url"`
	ProjectURL   *string `json:"project_url"`
	Technologies *string `json:"technologies"`
	Features     *string `json:"features"`
}

type CategoryRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type UpdateSettingsRequest struct {
	SocialLinks SocialLinks `json:"socialLinks"`
}

// Response types

type CreateResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type CreateOrderResponse struct {
	ID          int64   `json:"id"`
	Message     string  `json:"message"`
	TotalAmount float64 `json:"total_amount"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type Product struct {
	ID        int       `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Order rows are returned joined with the ordered product's brand and model
// for display convenience.
type Order struct {
	ID            int       `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	ProductID     int       `json:"product_id"`
	Quantity      int       `json:"quantity"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
}

type Testimonial struct {
	ID            int       `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Company       string    `json:"company"`
	Rating        int       `json:"rating"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ProductReview struct {
	ID           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BlogPost struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Project technologies and features are stored as comma-joined strings,
// split client-side.
type Project struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	ImageURL     *string   `json:"image_url"`
	ProjectURL   *string   `json:"project_url"`
	Technologies *string   `json:"technologies"`
	Features     *string   `json:"features"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

type Subscriber struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
	Status       string    `json:"status"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
