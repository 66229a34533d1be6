package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quantumbitsystems/backend/models"
	"github.com/quantumbitsystems/backend/testutil"
)

func TestTestimonialModeration(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewTestimonialHandler(conn, cfg, &testutil.FakeMailer{})

	// Public submission lands in pending
	req := testutil.MakeRequest("POST", "/api/testimonials", models.TestimonialRequest{
		CustomerName:  "Sarah Johnson",
		CustomerEmail: "sarah@techstart.com",
		Company:       "TechStart Inc.",
		Rating:        5,
		Message:       "Outstanding service",
	}, nil)
	w := httptest.NewRecorder()
	handler.Create(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Not visible on the public list yet
	req = testutil.MakeRequest("GET", "/api/testimonials", nil, nil)
	w = httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var visible []models.Testimonial
	testutil.AssertJSON(t, w, &visible)
	if len(visible) != 0 {
		t.Fatalf("Expected no approved testimonials, got %d", len(visible))
	}

	// Admin sees it as pending
	req = testutil.MakeRequest("GET", "/api/admin/testimonials", nil, nil)
	w = httptest.NewRecorder()
	handler.AdminList(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var all []models.Testimonial
	testutil.AssertJSON(t, w, &all)
	if len(all) != 1 || all[0].Status != models.StatusPending {
		t.Fatalf("Expected one pending testimonial, got %+v", all)
	}

	// Approve, then it appears publicly
	req = testutil.MakeRequest("PUT", "/api/admin/testimonials/1/approve", nil, nil)
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()
	handler.Approve(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/api/testimonials", nil, nil)
	w = httptest.NewRecorder()
	handler.List(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	testutil.AssertJSON(t, w, &visible)
	if len(visible) != 1 || visible[0].CustomerName != "Sarah Johnson" {
		t.Fatalf("Expected approved testimonial to be public, got %+v", visible)
	}
}

func TestTestimonialRatingConstraint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewTestimonialHandler(conn, cfg, &testutil.FakeMailer{})

	// Rating bounds live in the table CHECK; out-of-range surfaces as 500
	req := testutil.MakeRequest("POST", "/api/testimonials", models.TestimonialRequest{
		CustomerName:  "Sarah Johnson",
		CustomerEmail: "sarah@techstart.com",
		Rating:        7,
		Message:       "Too enthusiastic",
	}, nil)
	w := httptest.NewRecorder()
	handler.Create(w, req)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestDeleteTestimonial(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewTestimonialHandler(conn, cfg, &testutil.FakeMailer{})

	testutil.CreateTestTestimonial(t, conn, "Sarah Johnson", models.StatusApproved)

	req := testutil.MakeRequest("DELETE", "/api/admin/testimonials/1", nil, nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM testimonials`).Scan(&count); err != nil {
		t.Fatalf("Failed to count testimonials: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 testimonials after delete, got %d", count)
	}
}
