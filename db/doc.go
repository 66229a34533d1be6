/*
Package db handles database schema creation, migrations, and seed data.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

The schema includes:

  - products: Catalog items (brand, model, price, stock)
  - orders: Customer orders referencing a product
  - testimonials: Customer testimonials with moderation status
  - categories: Product categories shown in filters
  - projects: Portfolio projects
  - newsletter_subscribers: Unique subscriber emails
  - product_reviews: Per-product reviews with moderation status
  - blog_posts: Blog content with published/draft status
  - settings: Single-row site settings (social links JSON)

# Relationships

	products 1──* orders
	products 1──* product_reviews

Testimonial and review ratings are constrained to 1-5 with a CHECK.

# Migrations

Migrate applies additive ALTER TABLE statements for columns introduced
after the initial schema (products.image_url, projects.features).
Statements that fail with "duplicate column name" are treated as already
applied.

# Seed Data

Seed inserts the default categories, sample products and testimonials,
and the default social links row. All inserts use INSERT OR IGNORE so an
existing database is left alone.
*/
package db
