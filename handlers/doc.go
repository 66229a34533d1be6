/*
Package handlers contains HTTP request handlers for the QuantumBit API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ProductHandler: Product catalog CRUD
  - OrderHandler: Order creation, listing, admin status updates
  - TestimonialHandler: Public submissions and admin moderation
  - ReviewHandler: Per-product review submission and listing
  - BlogHandler: Public blog and admin CRUD
  - ProjectHandler: Portfolio CRUD
  - CategoryHandler: Product categories
  - NewsletterHandler: Subscriptions and admin subscriber list
  - ContactHandler: Contact form email relay
  - SettingsHandler: Social links singleton

Handlers are created via constructor functions that accept *sql.DB and
Config; handlers that notify by email also take a mailer.Mailer:

	orderHandler := handlers.NewOrderHandler(db, cfg, mail)

# Moderation Flow

Testimonials and product reviews are created with status "pending".
Public list endpoints only return "approved" rows. Testimonials are
approved or deleted through the /api/admin/testimonials routes; reviews
have no approval route yet, so they stay pending.

# Order Flow

	POST /api/orders → validate → load product (404 if missing)
	                 → reject when stock < quantity (400)
	                 → insert order (total = price × quantity)
	                 → decrement stock (best effort, separate statement)
	                 → email customer and admin (fire-and-forget)

The stock decrement is intentionally not transactional with the insert;
concurrent orders against the last unit can both succeed.

# Admin Routes

Routes under /api/admin, plus product writes, require the bearer token
(middleware.WithAdminAuth). Project and category writes are public -
a long-standing quirk the dashboard relies on.
*/
package handlers
