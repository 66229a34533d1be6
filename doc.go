/*
Package main provides the entry point for the QuantumBit Systems API server.

The server backs the QuantumBit marketing site: a product catalog with
orders and reviews, customer testimonials, a blog, a portfolio of projects,
newsletter subscriptions, and a shared-secret admin dashboard, all persisted
in a single SQLite file.

# Starting the Server

The server reads configuration from environment variables (a .env file is
honored) or CLI flags:

	ADMIN_TOKEN=... go run main.go

Or with flags:

	go run main.go -p 3001 -d quantum.db --admin-token ...

# Configuration

Required settings:

  - ADMIN_TOKEN (--admin-token): Bearer token for admin routes

Optional settings:

  - PORT (-p): Server port (default: 3001)
  - DATABASE_PATH (-d): SQLite database file (default: quantum.db)
  - EMAIL_HOST, EMAIL_PORT, EMAIL_USER, EMAIL_PASS: SMTP relay for
    notification emails; notifications are skipped when EMAIL_HOST is unset
  - ADMIN_EMAIL: recipient for order/contact/testimonial/subscriber
    notifications

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (products, orders, testimonials, blog,
    projects, reviews, newsletter, contact, settings)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Admin bearer token validation
  - mailer: SMTP notification emails
  - db: Schema creation, migrations, seed data
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
