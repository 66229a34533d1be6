package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/quantumbitsystems/backend/cliparse"
	"github.com/quantumbitsystems/backend/db"
	"github.com/quantumbitsystems/backend/mailer"
	"github.com/quantumbitsystems/backend/router"
)

func main() {
	var err error

	// Load .env if present; actual environment variables win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open SQLite database
	dbConn, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema, apply additive migrations, insert seed rows
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(dbConn); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := db.Seed(dbConn); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "path", cfg.DatabasePath)

	// Notification emails
	mail := mailer.New(cfg)
	if !mail.Enabled() {
		slog.Warn("EMAIL_HOST not set, notification emails disabled")
	}

	// Create router
	handler := router.NewRouter(dbConn, cfg, mail)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
