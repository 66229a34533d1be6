package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Seed inserts default rows on first startup. Every statement uses
// INSERT OR IGNORE, so databases that already have data are untouched.
func Seed(db *sql.DB) error {
	stmts := []string{
		`INSERT OR IGNORE INTO categories (name, value) VALUES
			('Toner', 'toner'),
			('Ink', 'ink'),
			('OPC Drum', 'opc_drum'),
			('Cleaning Blade', 'cleaning_blade'),
			('Fuser Roller', 'fuser_roller'),
			('Teflon', 'teflon')`,

		`INSERT OR IGNORE INTO products (id, brand, model, price, stock, category) VALUES
			(1, 'HP', 'CF217A Toner Cartridge', 8500, 15, 'toner'),
			(2, 'Kyocera', 'TK-1170 Toner Kit', 12000, 8, 'toner'),
			(3, 'Epson', 'T664 Ink Bottles Set', 3200, 10, 'ink'),
			(4, 'Canon', 'CRG-337 Toner', 6800, 12, 'toner')`,

		// Older databases had products created before stock tracking
		`UPDATE products SET stock = 10 WHERE stock = 0`,

		`INSERT OR IGNORE INTO testimonials (id, customer_name, customer_email, company, rating, message, status) VALUES
			(1, 'Sarah Johnson', 'sarah@techstart.com', 'TechStart Inc.', 5, 'Quantum Systems delivered our e-commerce platform ahead of schedule. Their attention to detail and technical expertise is outstanding.', 'approved'),
			(2, 'Michael Chen', 'michael@globalcorp.com', 'Global Corp', 5, 'Professional WiFi installation for our 200-person office. Zero downtime and excellent ongoing support.', 'approved'),
			(3, 'Lisa Rodriguez', 'lisa@creative.com', 'Creative Agency', 5, 'Our printer fleet has never run smoother. Quantum maintenance service is reliable and cost-effective.', 'approved')`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}
	}

	// Default social links (settings row id=1)
	links, err := json.Marshal(map[string]string{
		"facebook":  "https://facebook.com/quantumbitsystems",
		"twitter":   "https://twitter.com/quantumbitsys",
		"linkedin":  "https://linkedin.com/company/quantumbit-systems",
		"instagram": "https://instagram.com/quantumbitsystems",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal default social links: %w", err)
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO settings (id, social_links) VALUES (1, ?)`, string(links)); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	return nil
}
