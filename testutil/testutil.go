package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/quantumbitsystems/backend/cliparse"
	"github.com/quantumbitsystems/backend/db"
	"github.com/quantumbitsystems/backend/mailer"
)

// TestAdminToken is the bearer token used by test configurations
const TestAdminToken = "test-admin-token"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Max one open connection: each connection to ":memory:" would otherwise get
// its own empty database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3001,
		DatabasePath: ":memory:",
		AdminToken:   TestAdminToken,
		AdminEmail:   "admin@example.com",
	}
}

// AdminHeaders returns headers carrying the test admin token
func AdminHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + TestAdminToken}
}

// CreateTestProduct inserts a product and returns its ID
func CreateTestProduct(t *testing.T, conn *sql.DB, brand, model string, price float64, stock int) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO products (brand, model, price, stock, category, created_at)
		VALUES (?, ?, ?, ?, 'toner', ?)
	`, brand, model, price, stock, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}

	id, _ := res.LastInsertId()
	return id
}

// CreateTestTestimonial inserts a testimonial with the given status
func CreateTestTestimonial(t *testing.T, conn *sql.DB, name, status string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO testimonials (customer_name, customer_email, company, rating, message, status, created_at)
		VALUES (?, 'customer@example.com', 'Test Co', 5, 'Great service', ?, ?)
	`, name, status, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test testimonial: %v", err)
	}

	id, _ := res.LastInsertId()
	return id
}

// CreateTestBlogPost inserts a blog post with the given status
func CreateTestBlogPost(t *testing.T, conn *sql.DB, title, status string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO blog_posts (title, excerpt, content, category, author, status, created_at)
		VALUES (?, 'An excerpt', 'Full content', 'networking', 'Test Author', ?, ?)
	`, title, status, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test blog post: %v", err)
	}

	id, _ := res.LastInsertId()
	return id
}

// FakeMailer records sent messages instead of dialing a relay.
// Set Err to make every Send fail.
type FakeMailer struct {
	mu   sync.Mutex
	Err  error
	sent []mailer.Message
}

func (f *FakeMailer) Send(msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// Sent returns a copy of the messages recorded so far
func (f *FakeMailer) Sent() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]mailer.Message, len(f.sent))
	copy(out, f.sent)
	return out
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
