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

type OrderHandler struct {
	db   *sql.DB
	cfg  cliparse.Config
	mail mailer.Mailer
}

func NewOrderHandler(db *sql.DB, cfg cliparse.Config, mail mailer.Mailer) *OrderHandler {
	return &OrderHandler{db: db, cfg: cfg, mail: mail}
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	// Validate input
	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerPhone == "" || req.ProductID == 0 || quantity == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// Get product details
	var product models.Product
	err := h.db.QueryRow(`
		SELECT id, brand, model, price, stock
		FROM products
		WHERE id = ?
	`, req.ProductID).Scan(&product.ID, &product.Brand, &product.Model, &product.Price, &product.Stock)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("failed to query product", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if product.Stock < quantity {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Insufficient stock")
		return
	}

	totalAmount := product.Price * float64(quantity)

	// Create order
	res, err := h.db.Exec(`
		INSERT INTO orders (customer_name, customer_email, customer_phone, product_id, quantity, total_amount, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.ProductID, quantity, totalAmount, models.OrderStatusPending, time.Now())

	if err != nil {
		slog.Error("failed to insert order", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	orderID, _ := res.LastInsertId()

	// Update stock. Not atomic with the insert above: a crash in between
	// leaves the order row without the decrement, and two simultaneous
	// orders for the last unit can both pass the stock check.
	if _, err := h.db.Exec(`UPDATE products SET stock = stock - ? WHERE id = ?`, quantity, req.ProductID); err != nil {
		slog.Error("failed to decrement stock", "error", err, "order_id", orderID)
	}

	slog.Info("order created", "order_id", orderID, "product_id", req.ProductID, "quantity", quantity, "total", totalAmount)

	// Notifications are best-effort; the order stands even if the relay is down
	go func() {
		msg := mailer.OrderConfirmation(req.CustomerEmail, req.CustomerName, product.Brand, product.Model, quantity, totalAmount)
		if err := h.mail.Send(msg); err != nil {
			slog.Error("failed to send order confirmation", "error", err, "order_id", orderID)
		}

		msg = mailer.OrderNotification(h.cfg.AdminEmail, orderID, req.CustomerName, req.CustomerEmail, req.CustomerPhone, product.Brand, product.Model, quantity, totalAmount)
		if err := h.mail.Send(msg); err != nil {
			slog.Error("failed to send order notification", "error", err, "order_id", orderID)
		}
	}()

	middleware.JSONResponse(w, http.StatusOK, models.CreateOrderResponse{
		ID:          orderID,
		Message:     "Order created successfully",
		TotalAmount: totalAmount,
	})
}

// List handles GET /api/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT o.id, o.customer_name, o.customer_email, o.customer_phone, o.product_id,
		       o.quantity, o.total_amount, o.status, o.created_at, p.brand, p.model
		FROM orders o
		JOIN products p ON o.product_id = p.id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		slog.Error("failed to query orders", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.ProductID,
			&o.Quantity, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.Brand, &o.Model); err != nil {
			slog.Error("failed to scan order", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		orders = append(orders, o)
	}

	middleware.JSONResponse(w, http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/admin/orders/{id} (admin)
// Any status string is accepted; the enumerated set lives in the dashboard UI.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateOrderStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	_, err := h.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, req.Status, id)
	if err != nil {
		slog.Error("failed to update order status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("order status updated", "order_id", id, "status", req.Status)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Order status updated successfully",
	})
}
